package repository

import (
	"context"
	"time"

	"github.com/clubhub/clubhub-api/internal/entity"
)

type StudentRepository interface {
	GetAll(ctx context.Context) ([]*entity.Student, error)

	// RSVP operations
	GetUpcomingRSVPs(ctx context.Context, studentID int64) ([]*entity.StudentRSVP, error)
	CreateRSVP(ctx context.Context, studentID, eventID int64) (*entity.RSVP, error)
	DeleteRSVP(ctx context.Context, studentID, rsvpID int64) error

	// Invitation inbox operations
	GetReceivedInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error)
	GetAllInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error)
	UpdateInvitationStatus(ctx context.Context, studentID, invitationID int64, status entity.InvitationStatus) error
}

type ClubRepository interface {
	GetAll(ctx context.Context) ([]*entity.Club, error)
	GetEvents(ctx context.Context, clubID int64, upcomingOnly bool) ([]*entity.Event, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	GetAll(ctx context.Context) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id int64) error

	GetConflicts(ctx context.Context, start, end time.Time, excludeClubID int64) ([]*entity.EventConflict, error)
	Search(ctx context.Context, query string) ([]*entity.Event, error)
}

type InvitationRepository interface {
	// Create inserts a pending invitation and reselects the created row.
	Create(ctx context.Context, eventID, senderID, recipientID int64) (*entity.Invitation, error)
}

type AdminRepository interface {
	GetAuditLogs(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error)
	GetUnresolvedAlerts(ctx context.Context) ([]*entity.Alert, error)
	ResolveAlert(ctx context.Context, alertID int64) error
	GetSystemMetrics(ctx context.Context) (*entity.SystemMetrics, error)
}

type AnalyticsRepository interface {
	// Windowed aggregates; windows are half-open [start, end).
	GetPeriodMetrics(ctx context.Context, start, end time.Time) (*entity.PeriodMetrics, error)
	GetEventsByMonth(ctx context.Context, since time.Time) ([]*entity.MonthlyEventCount, error)
	GetTopClubs(ctx context.Context, since time.Time, limit int) ([]*entity.ClubEngagement, error)
	GetEngagementRate(ctx context.Context, since time.Time) (*entity.EngagementRate, error)
	GetSearchQueryStats(ctx context.Context, since time.Time) ([]*entity.SearchQueryStats, error)
	GetSearchSummary(ctx context.Context, since time.Time) (*entity.SearchSummary, error)
	GetDemographics(ctx context.Context, since time.Time) ([]*entity.DemographicEngagement, error)

	// Engagement report snapshots
	GetReports(ctx context.Context, limit int) ([]*entity.EngagementReport, error)
	InsertWeeklyReport(ctx context.Context) error

	// Search log write path and retention
	RecordSearch(ctx context.Context, log *entity.SearchLog) error
	DeleteSearchLogsBefore(ctx context.Context, before time.Time) (int64, error)
}
