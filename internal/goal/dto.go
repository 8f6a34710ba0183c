package goal

type CreateGoalDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Progress    int    `json:"progress"`
	Category    string `json:"category"`
}

// UpdateGoalDTO replaces every mutable field of the goal. Completed can be
// set directly here without forcing progress; only the toggle path couples
// the two fields.
type UpdateGoalDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TargetDate  string `json:"targetDate"`
	Progress    int    `json:"progress"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
}

type StatsResponse struct {
	Total           int `json:"total"`
	Done            int `json:"done"`
	Active          int `json:"active"`
	AverageProgress int `json:"average_progress"`
}
