package mock

import (
	"context"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// TechnologyRepository is a mock implementation of repositories.TechnologyRepository
type TechnologyRepository struct {
	CreateFunc  func(ctx context.Context, tech *models.Technology) error
	GetByIDFunc func(ctx context.Context, id int64) (*models.Technology, error)
	ListFunc    func(ctx context.Context) ([]models.Technology, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	Calls map[string][]interface{}
}

// NewTechnologyRepository creates a new mock technology repository
func NewTechnologyRepository() *TechnologyRepository {
	return &TechnologyRepository{
		Calls: make(map[string][]interface{}),
	}
}

// WithCatalog returns a mock whose GetByID resolves from the given
// technologies and fails with ErrNotFound for anything else.
func WithCatalog(techs ...models.Technology) *TechnologyRepository {
	m := NewTechnologyRepository()
	m.GetByIDFunc = func(ctx context.Context, id int64) (*models.Technology, error) {
		for _, t := range techs {
			if t.ID == id {
				cp := t
				return &cp, nil
			}
		}
		return nil, repositories.ErrNotFound
	}
	m.ListFunc = func(ctx context.Context) ([]models.Technology, error) {
		return techs, nil
	}
	return m
}

func (m *TechnologyRepository) Create(ctx context.Context, tech *models.Technology) error {
	m.Calls["Create"] = append(m.Calls["Create"], tech)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tech)
	}
	return nil
}

func (m *TechnologyRepository) GetByID(ctx context.Context, id int64) (*models.Technology, error) {
	m.Calls["GetByID"] = append(m.Calls["GetByID"], id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repositories.ErrNotFound
}

func (m *TechnologyRepository) List(ctx context.Context) ([]models.Technology, error) {
	m.Calls["List"] = append(m.Calls["List"], nil)
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []models.Technology{}, nil
}

func (m *TechnologyRepository) Delete(ctx context.Context, id int64) error {
	m.Calls["Delete"] = append(m.Calls["Delete"], id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

var _ repositories.TechnologyRepository = (*TechnologyRepository)(nil)
