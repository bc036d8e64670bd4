package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req service.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Error creating event")
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching events")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, "Error fetching event")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req service.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), eventID, &req)
	if err != nil {
		respondError(c, err, "Error updating event")
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID); err != nil {
		respondError(c, err, "Error deleting event")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// GetConflicts lists published events from other clubs overlapping the
// requested [start_datetime, end_datetime) window.
func (h *EventHandler) GetConflicts(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start_datetime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_datetime, expected RFC3339"})
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end_datetime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_datetime, expected RFC3339"})
		return
	}

	var excludeClubID int64
	if raw := c.Query("exclude_club_id"); raw != "" {
		excludeClubID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid exclude_club_id"})
			return
		}
	}

	conflicts, err := h.eventService.GetConflicts(c.Request.Context(), start, end, excludeClubID)
	if err != nil {
		respondError(c, err, "Error fetching conflicting events")
		return
	}

	c.JSON(http.StatusOK, conflicts)
}

func (h *EventHandler) SearchEvents(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing search query"})
		return
	}

	events, err := h.eventService.SearchEvents(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Error searching events")
		return
	}

	c.JSON(http.StatusOK, events)
}
