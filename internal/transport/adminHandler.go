package transport

import (
	"net/http"
	"strconv"

	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	logs, err := h.adminService.GetAuditLogs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching audit logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *AdminHandler) GetAlerts(c *gin.Context) {
	alerts, err := h.adminService.GetUnresolvedAlerts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching alerts")
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (h *AdminHandler) ResolveAlert(c *gin.Context) {
	alertID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert id"})
		return
	}

	if err := h.adminService.ResolveAlert(c.Request.Context(), alertID); err != nil {
		respondError(c, err, "Error resolving alert")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert resolved successfully"})
}

func (h *AdminHandler) GetMetrics(c *gin.Context) {
	metrics, err := h.adminService.GetSystemMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching system metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// NotImplemented backs the documentation placeholder routes.
func (h *AdminHandler) NotImplemented(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "Not implemented"})
}
