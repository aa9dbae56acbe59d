package services

import (
	"context"
	"errors"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// TechnologyService handles the technology catalog
type TechnologyService struct {
	technologies repositories.TechnologyRepository
}

// NewTechnologyService creates a new technology service
func NewTechnologyService(technologies repositories.TechnologyRepository) *TechnologyService {
	return &TechnologyService{technologies: technologies}
}

// List returns the catalog (without image blobs)
func (s *TechnologyService) List(ctx context.Context) ([]models.Technology, error) {
	return s.technologies.List(ctx)
}

// Create stores a new technology with its icon image
func (s *TechnologyService) Create(ctx context.Context, title string, image []byte, imageType string) (*models.Technology, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if len(image) == 0 {
		return nil, errors.New("image is required")
	}
	if imageType == "" {
		imageType = "image/png"
	}

	tech := &models.Technology{
		Title:     title,
		Image:     image,
		ImageType: imageType,
	}
	if err := s.technologies.Create(ctx, tech); err != nil {
		return nil, err
	}
	return tech, nil
}

// GetImage returns the stored icon bytes and their content type
func (s *TechnologyService) GetImage(ctx context.Context, id int64) ([]byte, string, error) {
	tech, err := s.technologies.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if len(tech.Image) == 0 {
		return nil, "", repositories.ErrNotFound
	}
	return tech.Image, tech.ImageType, nil
}

// Delete removes a technology; cascades remove its project links
func (s *TechnologyService) Delete(ctx context.Context, id int64) error {
	return s.technologies.Delete(ctx, id)
}
