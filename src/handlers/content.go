package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/services"
)

// ContentHandler handles the singleton content endpoints: about section,
// resume blob and site settings.
type ContentHandler struct {
	content *services.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// AboutRequest is the JSON body for the about upsert
type AboutRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// HandleGetAbout returns the about section (placeholder when unset)
func (ch *ContentHandler) HandleGetAbout(c *gin.Context) {
	about, err := ch.content.GetAbout(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load about"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// HandleSaveAbout creates or replaces the about section
func (ch *ContentHandler) HandleSaveAbout(c *gin.Context) {
	var req AboutRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	about := &models.About{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if err := ch.content.SaveAbout(c.Request.Context(), about); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save about"})
		return
	}
	c.JSON(http.StatusOK, about)
}

// ResumeRequest is the JSON body for the resume upsert
type ResumeRequest struct {
	Content string `json:"content" binding:"required"`
}

// HandleGetResume returns the resume (empty document when unset)
func (ch *ContentHandler) HandleGetResume(c *gin.Context) {
	resume, err := ch.content.GetResume(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load resume"})
		return
	}
	c.JSON(http.StatusOK, resume)
}

// HandleSaveResume creates or replaces the resume blob
func (ch *ContentHandler) HandleSaveResume(c *gin.Context) {
	var req ResumeRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resume, err := ch.content.SaveResume(c.Request.Context(), req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resume)
}

// SettingsRequest is the JSON body for the settings update
type SettingsRequest struct {
	CalendarStartYear int `json:"calendar_start_year" binding:"required"`
	CalendarEndYear   int `json:"calendar_end_year" binding:"required"`
}

// HandleGetSettings returns the site settings, creating defaults on first use
func (ch *ContentHandler) HandleGetSettings(c *gin.Context) {
	settings, err := ch.content.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// HandleSaveSettings replaces the site settings
func (ch *ContentHandler) HandleSaveSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings := &models.SiteSettings{
		CalendarStartYear: req.CalendarStartYear,
		CalendarEndYear:   req.CalendarEndYear,
	}
	if err := ch.content.SaveSettings(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
