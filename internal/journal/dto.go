package journal

type CreateEntryDTO struct {
	Content string   `json:"content"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
}

type StatsResponse struct {
	Entries       int `json:"entries"`
	DaysJournaled int `json:"days_journaled"`
}
