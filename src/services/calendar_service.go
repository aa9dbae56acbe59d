package services

import (
	"context"
	"errors"
	"time"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// CalendarService handles calendar event operations
type CalendarService struct {
	events repositories.CalendarRepository
}

// NewCalendarService creates a new calendar service
func NewCalendarService(events repositories.CalendarRepository) *CalendarService {
	return &CalendarService{events: events}
}

// ValidateDate checks an ISO date string (YYYY-MM-DD)
func ValidateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	return nil
}

func validateEvent(event *models.CalendarEvent) error {
	if event.Title == "" {
		return errors.New("title is required")
	}
	if err := ValidateDate(event.StartDate); err != nil {
		return err
	}
	if event.EndDate != nil {
		if err := ValidateDate(*event.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// List returns all calendar events ordered by start date
func (s *CalendarService) List(ctx context.Context) ([]models.CalendarEvent, error) {
	return s.events.List(ctx)
}

// Create stores a new calendar event
func (s *CalendarService) Create(ctx context.Context, event *models.CalendarEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	return s.events.Create(ctx, event)
}

// Update rewrites an existing calendar event
func (s *CalendarService) Update(ctx context.Context, event *models.CalendarEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	return s.events.Update(ctx, event)
}

// Delete removes a calendar event
func (s *CalendarService) Delete(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}
