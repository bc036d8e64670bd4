package transport

import (
	"net/http"
	"strconv"

	"github.com/clubhub/clubhub-api/internal/entity"
	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService service.StudentService
}

func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

func (h *StudentHandler) GetStudents(c *gin.Context) {
	students, err := h.studentService.GetAllStudents(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching students")
		return
	}

	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) GetStudentRSVPs(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	rsvps, err := h.studentService.GetUpcomingRSVPs(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err, "Error fetching RSVPs")
		return
	}

	c.JSON(http.StatusOK, rsvps)
}

func (h *StudentHandler) CreateRSVP(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	var req service.CreateRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rsvp, err := h.studentService.CreateRSVP(c.Request.Context(), studentID, &req)
	if err != nil {
		respondError(c, err, "Error creating RSVP")
		return
	}

	c.JSON(http.StatusCreated, rsvp)
}

func (h *StudentHandler) CancelRSVP(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	rsvpID, err := strconv.ParseInt(c.Param("rsvp_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rsvp id"})
		return
	}

	if err := h.studentService.CancelRSVP(c.Request.Context(), studentID, rsvpID); err != nil {
		respondError(c, err, "Error cancelling RSVP")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "RSVP cancelled successfully"})
}

func (h *StudentHandler) GetInvitations(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	invitations, err := h.studentService.GetReceivedInvitations(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err, "Error fetching invitations")
		return
	}

	c.JSON(http.StatusOK, invitations)
}

func (h *StudentHandler) GetAllInvitations(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	invitations, err := h.studentService.GetAllInvitations(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err, "Error fetching invitations")
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// UpdateInvitationRequest carries the recipient's response to an invitation
type UpdateInvitationRequest struct {
	Status entity.InvitationStatus `json:"status" binding:"required"`
}

func (h *StudentHandler) UpdateInvitationStatus(c *gin.Context) {
	studentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid student id"})
		return
	}

	invitationID, err := strconv.ParseInt(c.Param("inv_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation id"})
		return
	}

	var req UpdateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.studentService.RespondToInvitation(c.Request.Context(), studentID, invitationID, req.Status); err != nil {
		respondError(c, err, "Error updating invitation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invitation status updated successfully"})
}
