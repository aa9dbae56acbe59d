package repositories

import (
	"context"
	"errors"

	"github.com/khabaroff/portfolio-backend/src/models"
)

// ErrNotFound indicates the requested row does not exist
var ErrNotFound = errors.New("not found")

// AdminRepository defines the interface for admin account data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.AdminAccount) error
	GetByUsername(ctx context.Context, username string) (*models.AdminAccount, error)
	UpdateLastLogin(ctx context.Context, adminID int64) error
	Count(ctx context.Context) (int, error)
}

// TechnologyRepository defines the interface for technology catalog data access
type TechnologyRepository interface {
	Create(ctx context.Context, tech *models.Technology) error
	GetByID(ctx context.Context, id int64) (*models.Technology, error)
	List(ctx context.Context) ([]models.Technology, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository defines the interface for project data access.
//
// CreateWithTechnologies and UpdateWithTechnologies write the project row and
// its technology links in a single transaction: either the full mutation is
// visible afterwards or none of it is. For updates, a nil techIDs slice leaves
// the existing links untouched; replace=true clears them before attaching.
type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	CreateWithTechnologies(ctx context.Context, project *models.Project, techIDs []int64) error
	UpdateWithTechnologies(ctx context.Context, project *models.Project, techIDs []int64, replace bool) error
	Delete(ctx context.Context, id int64) error
}

// CalendarRepository defines the interface for calendar event data access
type CalendarRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) error
	GetByID(ctx context.Context, id int64) (*models.CalendarEvent, error)
	List(ctx context.Context) ([]models.CalendarEvent, error)
	Update(ctx context.Context, event *models.CalendarEvent) error
	Delete(ctx context.Context, id int64) error
}

// ContentRepository defines the interface for the singleton content rows
// (about section, resume blob, site settings)
type ContentRepository interface {
	GetAbout(ctx context.Context) (*models.About, error)
	UpsertAbout(ctx context.Context, about *models.About) error

	GetResume(ctx context.Context) (*models.Resume, error)
	UpsertResume(ctx context.Context, resume *models.Resume) error

	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	UpsertSettings(ctx context.Context, settings *models.SiteSettings) error
}
