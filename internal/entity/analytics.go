package entity

import (
	"time"
)

// PeriodMetrics holds the engagement aggregates for one fixed time window.
type PeriodMetrics struct {
	PeriodStart   time.Time `json:"period_start"`
	PeriodEnd     time.Time `json:"period_end"`
	TotalEvents   int64     `json:"total_events"`
	TotalRSVPs    int64     `json:"total_rsvps"`
	TotalCheckins int64     `json:"total_checkins"`
	ActiveUsers   int64     `json:"active_users"`
}

type MonthlyEventCount struct {
	Month      string `json:"month"`
	MonthName  string `json:"month_name"`
	EventCount int64  `json:"event_count"`
}

type ClubEngagement struct {
	ClubID          int64  `json:"club_id"`
	ClubName        string `json:"club_name"`
	TotalCheckins   int64  `json:"total_checkins"`
	EventsHosted    int64  `json:"events_hosted"`
	UniqueAttendees int64  `json:"unique_attendees"`
}

// EngagementRate is nil-valued when the platform has no students at all.
type EngagementRate struct {
	ActiveStudents int64    `json:"active_students"`
	TotalStudents  int64    `json:"total_students"`
	EngagementRate *float64 `json:"engagement_rate"`
}

type SearchQueryStats struct {
	SearchQuery      string    `json:"search_query"`
	SearchCount      int64     `json:"search_count"`
	ZeroResultsCount int64     `json:"zero_results_count"`
	AvgResultsCount  float64   `json:"avg_results_count"`
	LastSearched     time.Time `json:"last_searched"`
}

type SearchSummary struct {
	TotalSearches    int64 `json:"total_searches"`
	UniqueQueries    int64 `json:"unique_queries"`
	NoResultSearches int64 `json:"no_result_searches"`
}

// DemographicEngagement buckets RSVP and attendance activity by student year
// and major. AttendanceRate is nil when the bucket RSVPed to no events.
type DemographicEngagement struct {
	StudentYear        string   `json:"student_year"`
	Major              string   `json:"major"`
	StudentsWithRSVPs  int64    `json:"students_with_rsvps"`
	UniqueEventsRSVPed int64    `json:"unique_events_rsvped"`
	TotalRSVPs         int64    `json:"total_rsvps"`
	EventsAttended     int64    `json:"events_attended"`
	AttendanceRate     *float64 `json:"attendance_rate"`
}

// EngagementReport is one materialized weekly snapshot of audit-log activity.
type EngagementReport struct {
	ReportID           int64     `json:"report_id"`
	ReportPeriodStart  time.Time `json:"report_period_start"`
	ReportPeriodEnd    time.Time `json:"report_period_end"`
	TotalActiveUsers   int64     `json:"total_active_users"`
	TotalEventsCreated int64     `json:"total_events_created"`
	TotalRSVPs         int64     `json:"total_rsvps"`
	TotalAttendance    int64     `json:"total_attendance"`
	TotalSearches      int64     `json:"total_searches"`
	GeneratedDateTime  time.Time `json:"generated_datetime"`
}

type SearchLog struct {
	ID             int64     `json:"search_id" db:"search_id"`
	SearchQuery    string    `json:"search_query" db:"search_query"`
	ResultsCount   int       `json:"results_count" db:"results_count"`
	SearchDateTime time.Time `json:"search_datetime" db:"search_datetime"`
}
