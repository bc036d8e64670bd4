package transport

import (
	"net/http"
	"strconv"

	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubService service.ClubService
}

func NewClubHandler(clubService service.ClubService) *ClubHandler {
	return &ClubHandler{clubService: clubService}
}

func (h *ClubHandler) GetClubs(c *gin.Context) {
	clubs, err := h.clubService.GetAllClubs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching clubs")
		return
	}

	c.JSON(http.StatusOK, clubs)
}

func (h *ClubHandler) GetClubEvents(c *gin.Context) {
	clubID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid club id"})
		return
	}

	upcomingOnly := true
	if raw := c.Query("upcoming"); raw != "" {
		upcomingOnly, err = strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upcoming flag"})
			return
		}
	}

	events, err := h.clubService.GetClubEvents(c.Request.Context(), clubID, upcomingOnly)
	if err != nil {
		respondError(c, err, "Error fetching club events")
		return
	}

	c.JSON(http.StatusOK, events)
}
