package models

import "time"

// About is the singleton "about me" section.
type About struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// Resume is the singleton resume document, stored as an opaque JSON blob
// that the frontend renders.
type Resume struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteSettings holds site-wide presentation settings.
type SiteSettings struct {
	ID                int64 `json:"id"`
	CalendarStartYear int   `json:"calendar_start_year"`
	CalendarEndYear   int   `json:"calendar_end_year"`
}

// DefaultSettings returns the settings applied when none are stored yet.
func DefaultSettings() *SiteSettings {
	return &SiteSettings{CalendarStartYear: 2020, CalendarEndYear: 2030}
}
