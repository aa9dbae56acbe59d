package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// CalendarRepository is the pgx-backed implementation of repositories.CalendarRepository
type CalendarRepository struct {
	pool *pgxpool.Pool
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

func (r *CalendarRepository) Create(ctx context.Context, event *models.CalendarEvent) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO calendar_events (project_id, title, start_date, end_date, icon)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		event.ProjectID, event.Title, event.StartDate, event.EndDate, event.Icon,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}
	return nil
}

func (r *CalendarRepository) GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error) {
	event := &models.CalendarEvent{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, project_id, title, start_date, end_date, icon
		 FROM calendar_events WHERE id = $1`,
		id,
	).Scan(&event.ID, &event.ProjectID, &event.Title, &event.StartDate, &event.EndDate, &event.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query calendar event: %w", err)
	}
	return event, nil
}

func (r *CalendarRepository) List(ctx context.Context) ([]models.CalendarEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, project_id, title, start_date, end_date, icon
		 FROM calendar_events ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		var e models.CalendarEvent
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Title, &e.StartDate, &e.EndDate, &e.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan calendar event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *CalendarRepository) Update(ctx context.Context, event *models.CalendarEvent) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE calendar_events
		 SET project_id = $1, title = $2, start_date = $3, end_date = $4, icon = $5
		 WHERE id = $6`,
		event.ProjectID, event.Title, event.StartDate, event.EndDate, event.Icon, event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update calendar event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *CalendarRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM calendar_events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.CalendarRepository = (*CalendarRepository)(nil)
