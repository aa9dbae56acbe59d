package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
	"github.com/khabaroff/portfolio-backend/src/services"
)

// ProjectHandler handles project CRUD. Create and update accept multipart
// form data because project payloads mix text fields with an optional
// background image upload.
type ProjectHandler struct {
	projects *services.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// HandleList returns all projects with their technologies
func (ph *ProjectHandler) HandleList(c *gin.Context) {
	projects, err := ph.projects.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// HandleGet returns a single project
func (ph *ProjectHandler) HandleGet(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	project, err := ph.projects.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// HandleCreate stores a new project. The technology_ids field may be a JSON
// array or a comma-separated string; unknown ids are skipped, a structurally
// invalid list rejects the whole request before anything is written.
func (ph *ProjectHandler) HandleCreate(c *gin.Context) {
	project := &models.Project{
		Title:       c.PostForm("title"),
		StartDate:   c.PostForm("start_date"),
		Description: c.PostForm("description"),
		Tags:        c.PostForm("tags"),
	}
	if project.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if err := services.ValidateDate(project.StartDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	if v, ok := c.GetPostForm("end_date"); ok && v != "" {
		if err := services.ValidateDate(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
			return
		}
		project.EndDate = &v
	}
	if v, ok := c.GetPostForm("repo_link"); ok && v != "" {
		project.RepoLink = &v
	}
	if v, ok := c.GetPostForm("demo_link"); ok && v != "" {
		project.DemoLink = &v
	}

	image, contentType, present, err := readFormFile(c, "background_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid background image"})
		return
	}
	if present {
		project.BackgroundImage = image
		project.BackgroundType = contentType
	}

	if err := ph.projects.Create(c.Request.Context(), project, c.PostForm("technology_ids")); err != nil {
		if errors.Is(err, services.ErrMalformedTechnologyList) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed technology_ids"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	created, err := ph.projects.Get(c.Request.Context(), project.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load created project"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// HandleUpdate rewrites a project. Absent form fields keep their stored
// values; an absent technology_ids leaves the association set untouched while
// an explicit list (including "[]") replaces it.
func (ph *ProjectHandler) HandleUpdate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	project, err := ph.projects.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load project"})
		return
	}

	if v, ok := c.GetPostForm("title"); ok {
		project.Title = v
	}
	if v, ok := c.GetPostForm("start_date"); ok {
		if err := services.ValidateDate(v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
			return
		}
		project.StartDate = v
	}
	if v, ok := c.GetPostForm("end_date"); ok {
		if v == "" {
			project.EndDate = nil
		} else {
			if err := services.ValidateDate(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
				return
			}
			project.EndDate = &v
		}
	}
	if v, ok := c.GetPostForm("description"); ok {
		project.Description = v
	}
	if v, ok := c.GetPostForm("tags"); ok {
		project.Tags = v
	}
	if v, ok := c.GetPostForm("repo_link"); ok {
		if v == "" {
			project.RepoLink = nil
		} else {
			project.RepoLink = &v
		}
	}
	if v, ok := c.GetPostForm("demo_link"); ok {
		if v == "" {
			project.DemoLink = nil
		} else {
			project.DemoLink = &v
		}
	}

	image, contentType, present, err := readFormFile(c, "background_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid background image"})
		return
	}
	if present {
		project.BackgroundImage = image
		project.BackgroundType = contentType
	}

	if err := ph.projects.Update(c.Request.Context(), project, c.PostForm("technology_ids")); err != nil {
		switch {
		case errors.Is(err, services.ErrMalformedTechnologyList):
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed technology_ids"})
		case errors.Is(err, repositories.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		}
		return
	}

	updated, err := ph.projects.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load updated project"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// HandleDelete removes a project
func (ph *ProjectHandler) HandleDelete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ph.projects.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleBackground serves the stored background image bytes verbatim
func (ph *ProjectHandler) HandleBackground(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	project, err := ph.projects.Get(c.Request.Context(), id)
	if err != nil || len(project.BackgroundImage) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}

	contentType := project.BackgroundType
	if contentType == "" {
		contentType = "image/png"
	}
	c.Data(http.StatusOK, contentType, project.BackgroundImage)
}
