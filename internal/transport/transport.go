package transport

import (
	"net/http"
	"time"

	"github.com/clubhub/clubhub-api/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

func InitRoutes(
	studentHandler *StudentHandler,
	clubHandler *ClubHandler,
	eventHandler *EventHandler,
	invitationHandler *InvitationHandler,
	adminHandler *AdminHandler,
	analyticsHandler *AnalyticsHandler,
) *gin.Engine {

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// Student routes
	students := router.Group("/students")
	{
		students.GET("", studentHandler.GetStudents)
		students.GET("/:id/rsvps", studentHandler.GetStudentRSVPs)
		students.POST("/:id/rsvps", studentHandler.CreateRSVP)
		students.DELETE("/:id/rsvps/:rsvp_id", studentHandler.CancelRSVP)
		students.GET("/:id/invitations", studentHandler.GetInvitations)
		students.GET("/:id/invitations/all", studentHandler.GetAllInvitations)
		students.PUT("/:id/invitations/:inv_id", studentHandler.UpdateInvitationStatus)
	}

	// Invitation routes
	router.POST("/invitations", invitationHandler.CreateInvitation)

	// Club routes
	clubs := router.Group("/clubs")
	{
		clubs.GET("", clubHandler.GetClubs)
		clubs.GET("/:id/events", clubHandler.GetClubEvents)
	}

	// Event routes. Static paths are registered before /:id so gin does not
	// treat "conflicts" or "search" as an event id.
	events := router.Group("/events")
	{
		events.GET("/conflicts", eventHandler.GetConflicts)
		events.GET("/search", eventHandler.SearchEvents)
		events.POST("", eventHandler.CreateEvent)
		events.GET("", eventHandler.GetEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.PUT("/:id", eventHandler.UpdateEvent)
		events.DELETE("/:id", eventHandler.DeleteEvent)
	}

	// Admin routes
	admin := router.Group("/admin")
	{
		admin.GET("/audit-logs", adminHandler.GetAuditLogs)
		admin.GET("/alerts", adminHandler.GetAlerts)
		admin.PUT("/alerts/:id", adminHandler.ResolveAlert)
		admin.GET("/metrics", adminHandler.GetMetrics)

		admin.GET("/documentation", adminHandler.NotImplemented)
		admin.POST("/documentation", adminHandler.NotImplemented)
		admin.PUT("/documentation/:id", adminHandler.NotImplemented)
	}

	// Analytics routes
	analytics := router.Group("/analytics")
	{
		engagement := analytics.Group("/engagement")
		{
			engagement.GET("/current-metrics", analyticsHandler.GetCurrentMetrics)
			engagement.GET("/previous-metrics", analyticsHandler.GetPreviousMetrics)
			engagement.GET("/events-by-month", analyticsHandler.GetEventsByMonth)
			engagement.GET("/top-clubs", analyticsHandler.GetTopClubs)
			engagement.GET("/engagement-rate", analyticsHandler.GetEngagementRate)
		}

		analytics.GET("/search-queries", analyticsHandler.GetSearchQueries)
		analytics.GET("/search/summary", analyticsHandler.GetSearchSummary)
		analytics.GET("/demographics", analyticsHandler.GetDemographics)
		analytics.GET("/reports", analyticsHandler.GetReports)
		analytics.POST("/reports", analyticsHandler.GenerateReport)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return router
}
