package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/portfolio-backend/src/models"
	"github.com/khabaroff/portfolio-backend/src/repositories"
	"github.com/khabaroff/portfolio-backend/src/services"
)

// CalendarHandler handles calendar event CRUD
type CalendarHandler struct {
	calendar *services.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendar *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// EventRequest is the JSON body for create/update
type EventRequest struct {
	ProjectID *int64  `json:"project_id"`
	Title     string  `json:"title" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date"`
	Icon      *string `json:"icon"`
}

// HandleList returns all events
func (ch *CalendarHandler) HandleList(c *gin.Context) {
	events, err := ch.calendar.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// HandleCreate stores a new event
func (ch *CalendarHandler) HandleCreate(c *gin.Context) {
	var req EventRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event := &models.CalendarEvent{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Icon:      req.Icon,
	}
	if err := ch.calendar.Create(c.Request.Context(), event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// HandleUpdate rewrites an event
func (ch *CalendarHandler) HandleUpdate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req EventRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	event := &models.CalendarEvent{
		ID:        id,
		ProjectID: req.ProjectID,
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Icon:      req.Icon,
	}
	if err := ch.calendar.Update(c.Request.Context(), event); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, event)
}

// HandleDelete removes an event
func (ch *CalendarHandler) HandleDelete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ch.calendar.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
