package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
)

// ProjectService handles project operations, including management of the
// project <-> technology association set.
type ProjectService struct {
	projects     repositories.ProjectRepository
	technologies repositories.TechnologyRepository
}

// NewProjectService creates a new project service
func NewProjectService(projects repositories.ProjectRepository, technologies repositories.TechnologyRepository) *ProjectService {
	return &ProjectService{projects: projects, technologies: technologies}
}

// ParseTechnologyIDs parses a caller-supplied technology id list. Two
// encodings are accepted: a JSON integer array (`[1,2,3]`) and a
// comma-separated integer string (`1,2,3`).
//
// The set flag distinguishes "no input" from "replace with this set": an
// empty raw string returns set=false (leave associations untouched), while an
// explicit `[]` returns set=true with no ids (clear all associations).
// Anything else that is not one of the two shapes fails with
// ErrMalformedTechnologyList.
func ParseTechnologyIDs(raw string) (ids []int64, set bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false, nil
	}

	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, false, ErrMalformedTechnologyList
		}
		return ids, true, nil
	}

	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, false, ErrMalformedTechnologyList
		}
		ids = append(ids, id)
	}
	return ids, true, nil
}

// resolveTechnologyIDs maps ids to existing technologies, deduplicated in
// input order. Ids with no matching catalog entry are skipped, not errors:
// this tolerates stale client-side selections. Store failures other than
// not-found still abort.
func (s *ProjectService) resolveTechnologyIDs(ctx context.Context, ids []int64) ([]int64, error) {
	resolved := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if _, err := s.technologies.GetByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve technology %d: %w", id, err)
		}
		resolved = append(resolved, id)
	}
	return resolved, nil
}

// List returns all projects with their linked technologies
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

// Get returns a single project by id
func (s *ProjectService) Get(ctx context.Context, id int64) (*models.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Create stores a new project. rawTechIDs, when present, is resolved against
// the technology catalog and the surviving ids become the initial association
// set; a malformed list aborts before anything is written.
func (s *ProjectService) Create(ctx context.Context, project *models.Project, rawTechIDs string) error {
	ids, _, err := ParseTechnologyIDs(rawTechIDs)
	if err != nil {
		return err
	}

	resolved, err := s.resolveTechnologyIDs(ctx, ids)
	if err != nil {
		return err
	}
	return s.projects.CreateWithTechnologies(ctx, project, resolved)
}

// Update rewrites a project. When rawTechIDs is present the association set
// is replaced wholesale with the resolved ids (replace semantics); when
// absent the existing links are left untouched. The project row and the link
// rows commit or roll back together.
func (s *ProjectService) Update(ctx context.Context, project *models.Project, rawTechIDs string) error {
	ids, set, err := ParseTechnologyIDs(rawTechIDs)
	if err != nil {
		return err
	}

	if !set {
		return s.projects.UpdateWithTechnologies(ctx, project, nil, false)
	}

	resolved, err := s.resolveTechnologyIDs(ctx, ids)
	if err != nil {
		return err
	}
	return s.projects.UpdateWithTechnologies(ctx, project, resolved, true)
}

// Delete removes a project and, via the store's cascade, its link rows
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.projects.Delete(ctx, id)
}
