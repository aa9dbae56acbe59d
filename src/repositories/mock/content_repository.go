package mock

import (
	"context"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// ContentRepository is a mock implementation of repositories.ContentRepository.
// By default it behaves like an empty store that remembers upserts.
type ContentRepository struct {
	GetAboutFunc       func(ctx context.Context) (*models.About, error)
	UpsertAboutFunc    func(ctx context.Context, about *models.About) error
	GetResumeFunc      func(ctx context.Context) (*models.Resume, error)
	UpsertResumeFunc   func(ctx context.Context, resume *models.Resume) error
	GetSettingsFunc    func(ctx context.Context) (*models.SiteSettings, error)
	UpsertSettingsFunc func(ctx context.Context, settings *models.SiteSettings) error

	About    *models.About
	Resume   *models.Resume
	Settings *models.SiteSettings

	Calls map[string][]interface{}
}

// NewContentRepository creates a new mock content repository
func NewContentRepository() *ContentRepository {
	return &ContentRepository{
		Calls: make(map[string][]interface{}),
	}
}

func (m *ContentRepository) GetAbout(ctx context.Context) (*models.About, error) {
	m.Calls["GetAbout"] = append(m.Calls["GetAbout"], nil)
	if m.GetAboutFunc != nil {
		return m.GetAboutFunc(ctx)
	}
	if m.About == nil {
		return nil, repositories.ErrNotFound
	}
	return m.About, nil
}

func (m *ContentRepository) UpsertAbout(ctx context.Context, about *models.About) error {
	m.Calls["UpsertAbout"] = append(m.Calls["UpsertAbout"], about)
	if m.UpsertAboutFunc != nil {
		return m.UpsertAboutFunc(ctx, about)
	}
	m.About = about
	return nil
}

func (m *ContentRepository) GetResume(ctx context.Context) (*models.Resume, error) {
	m.Calls["GetResume"] = append(m.Calls["GetResume"], nil)
	if m.GetResumeFunc != nil {
		return m.GetResumeFunc(ctx)
	}
	if m.Resume == nil {
		return nil, repositories.ErrNotFound
	}
	return m.Resume, nil
}

func (m *ContentRepository) UpsertResume(ctx context.Context, resume *models.Resume) error {
	m.Calls["UpsertResume"] = append(m.Calls["UpsertResume"], resume)
	if m.UpsertResumeFunc != nil {
		return m.UpsertResumeFunc(ctx, resume)
	}
	m.Resume = resume
	return nil
}

func (m *ContentRepository) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	m.Calls["GetSettings"] = append(m.Calls["GetSettings"], nil)
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc(ctx)
	}
	if m.Settings == nil {
		return nil, repositories.ErrNotFound
	}
	return m.Settings, nil
}

func (m *ContentRepository) UpsertSettings(ctx context.Context, settings *models.SiteSettings) error {
	m.Calls["UpsertSettings"] = append(m.Calls["UpsertSettings"], settings)
	if m.UpsertSettingsFunc != nil {
		return m.UpsertSettingsFunc(ctx, settings)
	}
	m.Settings = settings
	return nil
}

var _ repositories.ContentRepository = (*ContentRepository)(nil)
