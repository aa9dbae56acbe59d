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

// ProjectRepository is the pgx-backed implementation of repositories.ProjectRepository
type ProjectRepository struct {
	pool *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	p := &models.Project{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, start_date, end_date, description, tags, repo_link, demo_link,
		        background_image, COALESCE(background_type, ''), background_image IS NOT NULL
		 FROM projects WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Title, &p.StartDate, &p.EndDate, &p.Description, &p.Tags,
		&p.RepoLink, &p.DemoLink, &p.BackgroundImage, &p.BackgroundType, &p.HasBackground)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	techs, err := r.technologiesFor(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Technologies = techs
	return p, nil
}

// List returns all projects without background blobs, each with its linked
// technologies attached.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, start_date, end_date, description, tags, repo_link, demo_link,
		        background_image IS NOT NULL
		 FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	index := map[int64]int{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.StartDate, &p.EndDate, &p.Description,
			&p.Tags, &p.RepoLink, &p.DemoLink, &p.HasBackground); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Technologies = []models.Technology{}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	linkRows, err := r.pool.Query(ctx,
		`SELECT pt.project_id, t.id, t.title
		 FROM project_technologies pt
		 JOIN technologies t ON t.id = pt.technology_id
		 ORDER BY pt.project_id, t.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list project technologies: %w", err)
	}
	defer linkRows.Close()

	for linkRows.Next() {
		var projectID int64
		var t models.Technology
		if err := linkRows.Scan(&projectID, &t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("failed to scan project technology: %w", err)
		}
		if i, ok := index[projectID]; ok {
			projects[i].Technologies = append(projects[i].Technologies, t)
		}
	}
	return projects, linkRows.Err()
}

// CreateWithTechnologies inserts the project row and its technology links in
// one transaction.
func (r *ProjectRepository) CreateWithTechnologies(ctx context.Context, project *models.Project, techIDs []int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO projects (title, start_date, end_date, description, tags,
			                       repo_link, demo_link, background_image, background_type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			 RETURNING id`,
			project.Title, project.StartDate, project.EndDate, project.Description,
			project.Tags, project.RepoLink, project.DemoLink,
			project.BackgroundImage, nullableType(project.BackgroundType),
		).Scan(&project.ID)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}
		return attachTechnologies(ctx, tx, project.ID, techIDs)
	})
}

// UpdateWithTechnologies updates the project row and, when replace is true,
// atomically swaps its link set for techIDs. A nil techIDs with replace=false
// leaves the existing links alone.
func (r *ProjectRepository) UpdateWithTechnologies(ctx context.Context, project *models.Project, techIDs []int64, replace bool) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE projects
			 SET title = $1, start_date = $2, end_date = $3, description = $4, tags = $5,
			     repo_link = $6, demo_link = $7, background_image = $8, background_type = $9
			 WHERE id = $10`,
			project.Title, project.StartDate, project.EndDate, project.Description,
			project.Tags, project.RepoLink, project.DemoLink,
			project.BackgroundImage, nullableType(project.BackgroundType),
			project.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return repositories.ErrNotFound
		}
		if !replace {
			return nil
		}
		if _, err := tx.Exec(ctx,
			"DELETE FROM project_technologies WHERE project_id = $1", project.ID); err != nil {
			return fmt.Errorf("failed to clear project technologies: %w", err)
		}
		return attachTechnologies(ctx, tx, project.ID, techIDs)
	})
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) technologiesFor(ctx context.Context, projectID int64) ([]models.Technology, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.title
		 FROM project_technologies pt
		 JOIN technologies t ON t.id = pt.technology_id
		 WHERE pt.project_id = $1
		 ORDER BY t.id`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project technologies: %w", err)
	}
	defer rows.Close()

	techs := []models.Technology{}
	for rows.Next() {
		var t models.Technology
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("failed to scan project technology: %w", err)
		}
		techs = append(techs, t)
	}
	return techs, rows.Err()
}

// attachTechnologies inserts link rows inside tx. The ON CONFLICT guard keeps
// the (project_id, technology_id) pair unique even if the caller passes
// duplicates.
func attachTechnologies(ctx context.Context, tx pgx.Tx, projectID int64, techIDs []int64) error {
	for _, techID := range techIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO project_technologies (project_id, technology_id)
			 VALUES ($1, $2)
			 ON CONFLICT DO NOTHING`,
			projectID, techID); err != nil {
			return fmt.Errorf("failed to link technology %d: %w", techID, err)
		}
	}
	return nil
}

func nullableType(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)
