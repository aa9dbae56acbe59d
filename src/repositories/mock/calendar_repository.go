package mock

import (
	"context"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// CalendarRepository is a mock implementation of repositories.CalendarRepository
type CalendarRepository struct {
	CreateFunc  func(ctx context.Context, event *models.CalendarEvent) error
	GetByIDFunc func(ctx context.Context, id int64) (*models.CalendarEvent, error)
	ListFunc    func(ctx context.Context) ([]models.CalendarEvent, error)
	UpdateFunc  func(ctx context.Context, event *models.CalendarEvent) error
	DeleteFunc  func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewCalendarRepository creates a new mock calendar repository
func NewCalendarRepository() *CalendarRepository {
	return &CalendarRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *CalendarRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	m.Calls["Create"] = append(m.Calls["Create"], event)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	event.ID = int64(len(m.Calls["Create"]))
	return nil
}

func (m *CalendarRepository) GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *CalendarRepository) List(ctx context.Context) ([]models.CalendarEvent, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.CalendarEvent{}, nil
}

func (m *CalendarRepository) Update(ctx context.Context, event *models.CalendarEvent) error {
	m.Calls["Update"] = append(m.Calls["Update"], event)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, event)
	}
	return nil
}

func (m *CalendarRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.CalendarRepository = (*CalendarRepository)(nil)
