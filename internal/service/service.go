package service

import (
	"context"
	"time"

	"github.com/clubhub/clubhub-api/internal/entity"
)

type StudentService interface {
	GetAllStudents(ctx context.Context) ([]*entity.Student, error)

	// RSVP operations
	GetUpcomingRSVPs(ctx context.Context, studentID int64) ([]*entity.StudentRSVP, error)
	CreateRSVP(ctx context.Context, studentID int64, req *CreateRSVPRequest) (*entity.RSVP, error)
	CancelRSVP(ctx context.Context, studentID, rsvpID int64) error

	// Invitation inbox operations
	GetReceivedInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error)
	GetAllInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error)
	RespondToInvitation(ctx context.Context, studentID, invitationID int64, status entity.InvitationStatus) error
}

type ClubService interface {
	GetAllClubs(ctx context.Context) ([]*entity.Club, error)
	GetClubEvents(ctx context.Context, clubID int64, upcomingOnly bool) ([]*entity.Event, error)
}

type EventService interface {
	CreateEvent(ctx context.Context, req *CreateEventRequest) (*entity.Event, error)
	GetEvent(ctx context.Context, id int64) (*entity.Event, error)
	GetAllEvents(ctx context.Context) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *UpdateEventRequest) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id int64) error

	GetConflicts(ctx context.Context, start, end time.Time, excludeClubID int64) ([]*entity.EventConflict, error)

	// SearchEvents also appends a search_logs row with the result count.
	SearchEvents(ctx context.Context, query string) ([]*entity.Event, error)
}

type InvitationService interface {
	CreateInvitation(ctx context.Context, req *CreateInvitationRequest) (*entity.Invitation, error)
}

type AdminService interface {
	GetAuditLogs(ctx context.Context) ([]*entity.AuditLogEntry, error)
	GetUnresolvedAlerts(ctx context.Context) ([]*entity.Alert, error)
	ResolveAlert(ctx context.Context, alertID int64) error
	GetSystemMetrics(ctx context.Context) (*entity.SystemMetrics, error)
}

type AnalyticsService interface {
	GetCurrentPeriodMetrics(ctx context.Context) (*entity.PeriodMetrics, error)
	GetPreviousPeriodMetrics(ctx context.Context) (*entity.PeriodMetrics, error)
	GetEventsByMonth(ctx context.Context) ([]*entity.MonthlyEventCount, error)
	GetTopClubs(ctx context.Context) ([]*entity.ClubEngagement, error)
	GetEngagementRate(ctx context.Context) (*entity.EngagementRate, error)
	GetSearchQueryAnalysis(ctx context.Context) ([]*entity.SearchQueryStats, error)
	GetSearchSummary(ctx context.Context) (*entity.SearchSummary, error)
	GetDemographics(ctx context.Context) ([]*entity.DemographicEngagement, error)

	GetReports(ctx context.Context) ([]*entity.EngagementReport, error)
	GenerateWeeklyReport(ctx context.Context) error

	// CleanupSearchLogs purges search logs past the retention window.
	CleanupSearchLogs(ctx context.Context, retention time.Duration) (int64, error)
}

// AnalyticsCache is the read cache in front of the analytics queries. A nil
// cache means every read goes straight to the store.
type AnalyticsCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}
