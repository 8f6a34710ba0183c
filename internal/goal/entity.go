package goal

// Goal is a user-defined target with a due date and a progress percentage.
// JSON field names match the mobile client's stored format, so a collection
// exported from the device round-trips unchanged.
type Goal struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TargetDate  string   `json:"targetDate"`
	Progress    int      `json:"progress"`
	Category    Category `json:"category"`
	Completed   bool     `json:"completed"`
}
