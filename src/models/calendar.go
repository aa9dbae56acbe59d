package models

// CalendarEvent is a timeline entry, optionally linked to a project.
type CalendarEvent struct {
	ID        int64   `json:"id"`
	ProjectID *int64  `json:"project_id"`
	Title     string  `json:"title"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Icon      *string `json:"icon"`
}
