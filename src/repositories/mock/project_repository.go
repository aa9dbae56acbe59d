package mock

import (
	"context"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// ProjectMutation records the arguments of a CreateWithTechnologies or
// UpdateWithTechnologies call so tests can assert on the exact link set the
// repository was asked to persist.
type ProjectMutation struct {
	Project *models.Project
	TechIDs []int64
	Replace bool
}

// ProjectRepository is a mock implementation of repositories.ProjectRepository
type ProjectRepository struct {
	GetByIDFunc                func(ctx context.Context, id int64) (*models.Project, error)
	ListFunc                   func(ctx context.Context) ([]models.Project, error)
	CreateWithTechnologiesFunc func(ctx context.Context, project *models.Project, techIDs []int64) error
	UpdateWithTechnologiesFunc func(ctx context.Context, project *models.Project, techIDs []int64, replace bool) error
	DeleteFunc                 func(ctx context.Context, id int64) error

	Mutations []ProjectMutation
	Calls     map[string][]interface{}
}

// NewProjectRepository creates a new mock project repository
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Project{}, nil
}

func (m *ProjectRepository) CreateWithTechnologies(ctx context.Context, project *models.Project, techIDs []int64) error {
	m.Calls["CreateWithTechnologies"] = append(m.Calls["CreateWithTechnologies"], project)
	m.Mutations = append(m.Mutations, ProjectMutation{Project: project, TechIDs: techIDs})
	if m.CreateWithTechnologiesFunc != nil {
		return m.CreateWithTechnologiesFunc(ctx, project, techIDs)
	}
	project.ID = int64(len(m.Mutations))
	return nil
}

func (m *ProjectRepository) UpdateWithTechnologies(ctx context.Context, project *models.Project, techIDs []int64, replace bool) error {
	m.Calls["UpdateWithTechnologies"] = append(m.Calls["UpdateWithTechnologies"], project)
	m.Mutations = append(m.Mutations, ProjectMutation{Project: project, TechIDs: techIDs, Replace: replace})
	if m.UpdateWithTechnologiesFunc != nil {
		return m.UpdateWithTechnologiesFunc(ctx, project, techIDs, replace)
	}
	return nil
}

func (m *ProjectRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)
