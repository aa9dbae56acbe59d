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

// TechnologyRepository is the pgx-backed implementation of repositories.TechnologyRepository
type TechnologyRepository struct {
	pool *pgxpool.Pool
}

// NewTechnologyRepository creates a new technology repository
func NewTechnologyRepository(pool *pgxpool.Pool) *TechnologyRepository {
	return &TechnologyRepository{pool: pool}
}

func (r *TechnologyRepository) Create(ctx context.Context, tech *models.Technology) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO technologies (title, image, image_type)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		tech.Title, tech.Image, tech.ImageType,
	).Scan(&tech.ID)
	if err != nil {
		return fmt.Errorf("failed to create technology: %w", err)
	}
	return nil
}

func (r *TechnologyRepository) GetByID(ctx context.Context, id int64) (*models.Technology, error) {
	tech := &models.Technology{}
	err := r.pool.QueryRow(ctx,
		"SELECT id, title, image, image_type FROM technologies WHERE id = $1",
		id,
	).Scan(&tech.ID, &tech.Title, &tech.Image, &tech.ImageType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query technology: %w", err)
	}
	return tech, nil
}

// List returns the catalog without image blobs; images are served separately.
func (r *TechnologyRepository) List(ctx context.Context) ([]models.Technology, error) {
	rows, err := r.pool.Query(ctx, "SELECT id, title FROM technologies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list technologies: %w", err)
	}
	defer rows.Close()

	techs := []models.Technology{}
	for rows.Next() {
		var t models.Technology
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("failed to scan technology: %w", err)
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

func (r *TechnologyRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM technologies WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete technology: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

var _ repositories.TechnologyRepository = (*TechnologyRepository)(nil)
