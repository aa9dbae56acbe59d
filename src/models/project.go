package models

// Project is a portfolio entry. Technologies is the many-to-many association
// managed through the project_technologies link table; each technology appears
// at most once per project.
//
// Dates travel as ISO strings (YYYY-MM-DD), validated at the transport layer.
type Project struct {
	ID              int64        `json:"id"`
	Title           string       `json:"title"`
	StartDate       string       `json:"start_date"`
	EndDate         *string      `json:"end_date"`
	Description     string       `json:"description"`
	Tags            string       `json:"tags"` // comma-separated
	RepoLink        *string      `json:"repo_link"`
	DemoLink        *string      `json:"demo_link"`
	BackgroundImage []byte       `json:"-"`
	BackgroundType  string       `json:"-"`
	HasBackground   bool         `json:"has_background"`
	Technologies    []Technology `json:"technologies"`
}
