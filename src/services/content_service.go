package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// ContentService handles the singleton site content: the about section, the
// resume blob and the site settings.
type ContentService struct {
	content repositories.ContentRepository
}

// NewContentService creates a new content service
func NewContentService(content repositories.ContentRepository) *ContentService {
	return &ContentService{content: content}
}

// GetAbout returns the about section, or a placeholder when none is stored
func (s *ContentService) GetAbout(ctx context.Context) (*models.About, error) {
	about, err := s.content.GetAbout(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.About{
				Title:       "Welcome",
				Description: "Please configure the about section.",
			}, nil
		}
		return nil, err
	}
	return about, nil
}

// SaveAbout creates or replaces the about section
func (s *ContentService) SaveAbout(ctx context.Context, about *models.About) error {
	if about.Title == "" {
		return errors.New("title is required")
	}
	return s.content.UpsertAbout(ctx, about)
}

// GetResume returns the resume, or an empty document when none is stored
func (s *ContentService) GetResume(ctx context.Context) (*models.Resume, error) {
	resume, err := s.content.GetResume(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &models.Resume{Content: "{}"}, nil
		}
		return nil, err
	}
	return resume, nil
}

// SaveResume creates or replaces the resume. The content must be valid JSON;
// it is stored opaquely and rendered by the frontend.
func (s *ContentService) SaveResume(ctx context.Context, content string) (*models.Resume, error) {
	if !json.Valid([]byte(content)) {
		return nil, errors.New("resume content must be valid JSON")
	}
	resume := &models.Resume{Content: content}
	if err := s.content.UpsertResume(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// GetSettings returns the site settings, creating defaults when none exist
func (s *ContentService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.content.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			settings = models.DefaultSettings()
			if err := s.content.UpsertSettings(ctx, settings); err != nil {
				return nil, err
			}
			return settings, nil
		}
		return nil, err
	}
	return settings, nil
}

// SaveSettings replaces the site settings
func (s *ContentService) SaveSettings(ctx context.Context, settings *models.SiteSettings) error {
	if settings.CalendarStartYear > settings.CalendarEndYear {
		return errors.New("calendar start year must not be after end year")
	}
	return s.content.UpsertSettings(ctx, settings)
}
