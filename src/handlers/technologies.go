package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/repositories"
	"github.com/khabaroff/portfolio-backend/src/services"
)

// TechnologyHandler handles the technology catalog
type TechnologyHandler struct {
	technologies *services.TechnologyService
}

// NewTechnologyHandler creates a new technology handler
func NewTechnologyHandler(technologies *services.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{technologies: technologies}
}

// HandleList returns the catalog without image blobs
func (th *TechnologyHandler) HandleList(c *gin.Context) {
	techs, err := th.technologies.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list technologies"})
		return
	}
	c.JSON(http.StatusOK, techs)
}

// HandleCreate stores a new technology from a multipart form (title + image)
func (th *TechnologyHandler) HandleCreate(c *gin.Context) {
	title := c.PostForm("title")

	image, contentType, present, err := readFormFile(c, "image")
	if err != nil || !present {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}

	tech, err := th.technologies.Create(c.Request.Context(), title, image, contentType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tech)
}

// HandleImage serves the stored icon bytes with their recorded content type
func (th *TechnologyHandler) HandleImage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	image, contentType, err := th.technologies.GetImage(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		return
	}
	c.Data(http.StatusOK, contentType, image)
}

// HandleDelete removes a technology and its project links
func (th *TechnologyHandler) HandleDelete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := th.technologies.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "technology not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete technology"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
