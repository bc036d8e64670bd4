package transport

import (
	"net/http"

	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type InvitationHandler struct {
	invitationService service.InvitationService
}

func NewInvitationHandler(invitationService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invitation, err := h.invitationService.CreateInvitation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Error creating invitation")
		return
	}

	c.JSON(http.StatusCreated, invitation)
}
