package transport

import (
	"errors"
	"net/http"

	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps service errors onto the HTTP taxonomy: not-found -> 404,
// duplicate -> 409, bad input -> 400, anything else -> 500 with a generic
// message (the real cause is only logged server-side).
func respondError(c *gin.Context, err error, genericMsg string) {
	switch {
	case errors.Is(err, entity.ErrRSVPNotFound),
		errors.Is(err, entity.ErrInvitationNotFound),
		errors.Is(err, entity.ErrEventNotFound),
		errors.Is(err, entity.ErrStudentNotFound),
		errors.Is(err, entity.ErrClubNotFound),
		errors.Is(err, entity.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrRSVPAlreadyExists),
		errors.Is(err, entity.ErrInvitationAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrInvalidInvitationStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logrus.Errorf("%s: %v", genericMsg, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericMsg})
	}
}
