package transport

import (
	"net/http"

	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) GetCurrentMetrics(c *gin.Context) {
	metrics, err := h.analyticsService.GetCurrentPeriodMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching current period metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *AnalyticsHandler) GetPreviousMetrics(c *gin.Context) {
	metrics, err := h.analyticsService.GetPreviousPeriodMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching previous period metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

func (h *AnalyticsHandler) GetEventsByMonth(c *gin.Context) {
	months, err := h.analyticsService.GetEventsByMonth(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching events by month")
		return
	}

	c.JSON(http.StatusOK, months)
}

func (h *AnalyticsHandler) GetTopClubs(c *gin.Context) {
	clubs, err := h.analyticsService.GetTopClubs(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching top clubs")
		return
	}

	c.JSON(http.StatusOK, clubs)
}

func (h *AnalyticsHandler) GetEngagementRate(c *gin.Context) {
	rate, err := h.analyticsService.GetEngagementRate(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching engagement rate")
		return
	}

	c.JSON(http.StatusOK, rate)
}

func (h *AnalyticsHandler) GetSearchQueries(c *gin.Context) {
	stats, err := h.analyticsService.GetSearchQueryAnalysis(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching search query analysis")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetSearchSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetSearchSummary(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching search summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *AnalyticsHandler) GetDemographics(c *gin.Context) {
	buckets, err := h.analyticsService.GetDemographics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching demographics")
		return
	}

	c.JSON(http.StatusOK, buckets)
}

func (h *AnalyticsHandler) GetReports(c *gin.Context) {
	reports, err := h.analyticsService.GetReports(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

func (h *AnalyticsHandler) GenerateReport(c *gin.Context) {
	if err := h.analyticsService.GenerateWeeklyReport(c.Request.Context()); err != nil {
		respondError(c, err, "Error generating report")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report generated successfully"})
}
