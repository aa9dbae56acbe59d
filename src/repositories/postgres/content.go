package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// ContentRepository is the pgx-backed implementation of
// repositories.ContentRepository. Each table holds at most one row; upserts
// update the first row when present and insert otherwise.
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository creates a new content repository
func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

func (r *ContentRepository) GetAbout(ctx context.Context) (*models.About, error) {
	about := &models.About{}
	err := r.pool.QueryRow(ctx,
		"SELECT id, title, description, image_url FROM about ORDER BY id LIMIT 1",
	).Scan(&about.ID, &about.Title, &about.Description, &about.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query about: %w", err)
	}
	return about, nil
}

func (r *ContentRepository) UpsertAbout(ctx context.Context, about *models.About) error {
	existing, err := r.GetAbout(ctx)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if existing == nil {
		return r.pool.QueryRow(ctx,
			"INSERT INTO about (title, description, image_url) VALUES ($1, $2, $3) RETURNING id",
			about.Title, about.Description, about.ImageURL,
		).Scan(&about.ID)
	}
	about.ID = existing.ID
	_, err = r.pool.Exec(ctx,
		"UPDATE about SET title = $1, description = $2, image_url = $3 WHERE id = $4",
		about.Title, about.Description, about.ImageURL, about.ID,
	)
	return err
}

func (r *ContentRepository) GetResume(ctx context.Context) (*models.Resume, error) {
	resume := &models.Resume{}
	err := r.pool.QueryRow(ctx,
		"SELECT id, content, updated_at FROM resume ORDER BY id LIMIT 1",
	).Scan(&resume.ID, &resume.Content, &resume.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query resume: %w", err)
	}
	return resume, nil
}

func (r *ContentRepository) UpsertResume(ctx context.Context, resume *models.Resume) error {
	existing, err := r.GetResume(ctx)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	resume.UpdatedAt = time.Now()
	if existing == nil {
		return r.pool.QueryRow(ctx,
			"INSERT INTO resume (content, updated_at) VALUES ($1, $2) RETURNING id",
			resume.Content, resume.UpdatedAt,
		).Scan(&resume.ID)
	}
	resume.ID = existing.ID
	_, err = r.pool.Exec(ctx,
		"UPDATE resume SET content = $1, updated_at = $2 WHERE id = $3",
		resume.Content, resume.UpdatedAt, resume.ID,
	)
	return err
}

func (r *ContentRepository) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings := &models.SiteSettings{}
	err := r.pool.QueryRow(ctx,
		"SELECT id, calendar_start_year, calendar_end_year FROM site_settings ORDER BY id LIMIT 1",
	).Scan(&settings.ID, &settings.CalendarStartYear, &settings.CalendarEndYear)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	return settings, nil
}

func (r *ContentRepository) UpsertSettings(ctx context.Context, settings *models.SiteSettings) error {
	existing, err := r.GetSettings(ctx)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return err
	}
	if existing == nil {
		return r.pool.QueryRow(ctx,
			"INSERT INTO site_settings (calendar_start_year, calendar_end_year) VALUES ($1, $2) RETURNING id",
			settings.CalendarStartYear, settings.CalendarEndYear,
		).Scan(&settings.ID)
	}
	settings.ID = existing.ID
	_, err = r.pool.Exec(ctx,
		"UPDATE site_settings SET calendar_start_year = $1, calendar_end_year = $2 WHERE id = $3",
		settings.CalendarStartYear, settings.CalendarEndYear, settings.ID,
	)
	return err
}

var _ repositories.ContentRepository = (*ContentRepository)(nil)
