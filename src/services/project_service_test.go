package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories/mock"
)

func TestParseTechnologyIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantIDs []int64
		wantSet bool
		wantErr bool
	}{
		{name: "absent", raw: "", wantIDs: nil, wantSet: false},
		{name: "whitespace only", raw: "   ", wantIDs: nil, wantSet: false},
		{name: "json array", raw: "[1,2,3]", wantIDs: []int64{1, 2, 3}, wantSet: true},
		{name: "json array with duplicates", raw: "[1,2,2]", wantIDs: []int64{1, 2, 2}, wantSet: true},
		{name: "empty json array", raw: "[]", wantIDs: nil, wantSet: true},
		{name: "comma separated", raw: "1,2,3", wantIDs: []int64{1, 2, 3}, wantSet: true},
		{name: "comma separated with spaces", raw: " 1, 2 ,3 ", wantIDs: []int64{1, 2, 3}, wantSet: true},
		{name: "single id", raw: "7", wantIDs: []int64{7}, wantSet: true},
		{name: "not a list", raw: "not-a-list", wantErr: true},
		{name: "json with strings", raw: `["a","b"]`, wantErr: true},
		{name: "trailing comma", raw: "1,", wantErr: true},
		{name: "malformed json", raw: "[1,2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, set, err := ParseTechnologyIDs(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedTechnologyList) {
					t.Fatalf("expected ErrMalformedTechnologyList, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if set != tt.wantSet {
				t.Errorf("set = %v, want %v", set, tt.wantSet)
			}
			if len(ids) != 0 || len(tt.wantIDs) != 0 {
				if !reflect.DeepEqual(ids, tt.wantIDs) {
					t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
				}
			}
		})
	}
}

func catalogService(projects *mock.ProjectRepository) *ProjectService {
	techs := mock.WithCatalog(
		models.Technology{ID: 1, Title: "Go"},
		models.Technology{ID: 2, Title: "PostgreSQL"},
		models.Technology{ID: 3, Title: "React"},
	)
	return NewProjectService(projects, techs)
}

func TestUpdateReplacesAssociationsDeduplicated(t *testing.T) {
	projects := mock.NewProjectRepository()
	svc := catalogService(projects)

	project := &models.Project{ID: 10, Title: "Portfolio", StartDate: "2024-01-01"}
	if err := svc.Update(context.Background(), project, "[1,2,2]"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(projects.Mutations) != 1 {
		t.Fatalf("expected exactly one mutation, got %d", len(projects.Mutations))
	}
	got := projects.Mutations[0]
	if !got.Replace {
		t.Error("expected replace semantics for an explicit id list")
	}
	if !reflect.DeepEqual(got.TechIDs, []int64{1, 2}) {
		t.Errorf("link set = %v, want [1 2]", got.TechIDs)
	}
}

func TestCreateSkipsUnresolvableIDs(t *testing.T) {
	projects := mock.NewProjectRepository()
	svc := catalogService(projects)

	project := &models.Project{Title: "Portfolio", StartDate: "2024-01-01"}
	if err := svc.Create(context.Background(), project, "1,999"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(projects.Mutations) != 1 {
		t.Fatalf("expected exactly one mutation, got %d", len(projects.Mutations))
	}
	if !reflect.DeepEqual(projects.Mutations[0].TechIDs, []int64{1}) {
		t.Errorf("link set = %v, want [1] (id 999 has no catalog entry)", projects.Mutations[0].TechIDs)
	}
}

func TestUpdateMalformedListDoesNotMutate(t *testing.T) {
	projects := mock.NewProjectRepository()
	svc := catalogService(projects)

	project := &models.Project{ID: 10, Title: "Portfolio", StartDate: "2024-01-01"}
	err := svc.Update(context.Background(), project, "not-a-list")
	if !errors.Is(err, ErrMalformedTechnologyList) {
		t.Fatalf("expected ErrMalformedTechnologyList, got %v", err)
	}
	if len(projects.Mutations) != 0 {
		t.Error("a malformed id list must abort before any store write")
	}
}

func TestUpdateAbsentListLeavesAssociationsUntouched(t *testing.T) {
	projects := mock.NewProjectRepository()
	svc := catalogService(projects)

	project := &models.Project{ID: 10, Title: "Portfolio", StartDate: "2024-01-01"}
	if err := svc.Update(context.Background(), project, ""); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(projects.Mutations) != 1 {
		t.Fatalf("expected exactly one mutation, got %d", len(projects.Mutations))
	}
	got := projects.Mutations[0]
	if got.Replace {
		t.Error("absent id list must not trigger replace")
	}
	if len(got.TechIDs) != 0 {
		t.Errorf("expected no link set, got %v", got.TechIDs)
	}
}

func TestUpdateEmptyListClearsAssociations(t *testing.T) {
	projects := mock.NewProjectRepository()
	svc := catalogService(projects)

	project := &models.Project{ID: 10, Title: "Portfolio", StartDate: "2024-01-01"}
	if err := svc.Update(context.Background(), project, "[]"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(projects.Mutations) != 1 {
		t.Fatalf("expected exactly one mutation, got %d", len(projects.Mutations))
	}
	got := projects.Mutations[0]
	if !got.Replace {
		t.Error("explicit empty list must replace (clear) the link set")
	}
	if len(got.TechIDs) != 0 {
		t.Errorf("expected empty link set, got %v", got.TechIDs)
	}
}
