package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clubhub/clubhub-api/internal/entity"
)

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetPeriodMetrics(ctx context.Context, start, end time.Time) (*entity.PeriodMetrics, error) {
	query := `
		SELECT
			COUNT(DISTINCT e.event_id) AS total_events,
			(
				SELECT COUNT(DISTINCT invitation_id)
				FROM event_invitations
				WHERE status = 'accepted'
				  AND sent_datetime >= $1
				  AND sent_datetime < $2
			) AS total_rsvps,
			COUNT(DISTINCT ea.attendance_id) AS total_checkins,
			COUNT(DISTINCT ea.student_id) AS active_users
		FROM events e
		LEFT JOIN event_attendance ea
			ON e.event_id = ea.event_id
			AND ea.checkin_datetime >= $1
			AND ea.checkin_datetime < $2
		WHERE e.start_datetime >= $1
		  AND e.start_datetime < $2
	`

	metrics := entity.PeriodMetrics{PeriodStart: start, PeriodEnd: end}
	err := r.db.QueryRowContext(ctx, query, start, end).Scan(
		&metrics.TotalEvents,
		&metrics.TotalRSVPs,
		&metrics.TotalCheckins,
		&metrics.ActiveUsers,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query period metrics: %w", err)
	}

	return &metrics, nil
}

func (r *analyticsRepository) GetEventsByMonth(ctx context.Context, since time.Time) ([]*entity.MonthlyEventCount, error) {
	query := `
		SELECT
			to_char(start_datetime, 'YYYY-MM') AS month,
			to_char(start_datetime, 'FMMonth YYYY') AS month_name,
			COUNT(DISTINCT event_id) AS event_count
		FROM events
		WHERE start_datetime >= $1
		GROUP BY
			to_char(start_datetime, 'YYYY-MM'),
			to_char(start_datetime, 'FMMonth YYYY')
		ORDER BY month ASC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by month: %w", err)
	}
	defer rows.Close()

	var months []*entity.MonthlyEventCount
	for rows.Next() {
		var m entity.MonthlyEventCount
		if err := rows.Scan(&m.Month, &m.MonthName, &m.EventCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count: %w", err)
		}
		months = append(months, &m)
	}

	return months, rows.Err()
}

func (r *analyticsRepository) GetTopClubs(ctx context.Context, since time.Time, limit int) ([]*entity.ClubEngagement, error) {
	if limit <= 0 {
		limit = 10
	}

	// HAVING keeps clubs with at least one event hosted inside the window.
	query := `
		SELECT
			c.club_id,
			c.name AS club_name,
			COUNT(DISTINCT ea.attendance_id) AS total_checkins,
			COUNT(DISTINCT e.event_id) AS events_hosted,
			COUNT(DISTINCT ea.student_id) AS unique_attendees
		FROM clubs c
		JOIN events e ON c.club_id = e.club_id
		LEFT JOIN event_attendance ea
			ON e.event_id = ea.event_id
			AND ea.checkin_datetime >= $1
		WHERE e.start_datetime >= $1
		GROUP BY c.club_id, c.name
		HAVING COUNT(DISTINCT e.event_id) > 0
		ORDER BY total_checkins DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*entity.ClubEngagement
	for rows.Next() {
		var club entity.ClubEngagement
		err := rows.Scan(
			&club.ClubID,
			&club.ClubName,
			&club.TotalCheckins,
			&club.EventsHosted,
			&club.UniqueAttendees,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan club engagement: %w", err)
		}
		clubs = append(clubs, &club)
	}

	return clubs, rows.Err()
}

func (r *analyticsRepository) GetEngagementRate(ctx context.Context, since time.Time) (*entity.EngagementRate, error) {
	// NULLIF keeps the division null-safe when the platform has no students.
	query := `
		SELECT
			COUNT(DISTINCT ea.student_id) AS active_students,
			(SELECT COUNT(*) FROM students) AS total_students,
			ROUND(
				COUNT(DISTINCT ea.student_id) * 100.0 /
				NULLIF((SELECT COUNT(*) FROM students), 0),
				2
			) AS engagement_rate
		FROM event_attendance ea
		WHERE ea.checkin_datetime >= $1
	`

	var (
		result entity.EngagementRate
		rate   sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, query, since).Scan(
		&result.ActiveStudents,
		&result.TotalStudents,
		&rate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query engagement rate: %w", err)
	}
	if rate.Valid {
		result.EngagementRate = &rate.Float64
	}

	return &result, nil
}

func (r *analyticsRepository) GetSearchQueryStats(ctx context.Context, since time.Time) ([]*entity.SearchQueryStats, error) {
	query := `
		SELECT
			search_query,
			COUNT(*) AS search_count,
			SUM(CASE WHEN results_count = 0 THEN 1 ELSE 0 END) AS zero_results_count,
			AVG(results_count) AS avg_results_count,
			MAX(search_datetime) AS last_searched
		FROM search_logs
		WHERE search_datetime >= $1
		GROUP BY search_query
		HAVING SUM(CASE WHEN results_count = 0 THEN 1 ELSE 0 END) > 0
		ORDER BY search_count DESC, zero_results_count DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query search stats: %w", err)
	}
	defer rows.Close()

	var stats []*entity.SearchQueryStats
	for rows.Next() {
		var s entity.SearchQueryStats
		err := rows.Scan(
			&s.SearchQuery,
			&s.SearchCount,
			&s.ZeroResultsCount,
			&s.AvgResultsCount,
			&s.LastSearched,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search stats: %w", err)
		}
		stats = append(stats, &s)
	}

	return stats, rows.Err()
}

func (r *analyticsRepository) GetSearchSummary(ctx context.Context, since time.Time) (*entity.SearchSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total_searches,
			COUNT(DISTINCT search_query) AS unique_queries,
			COALESCE(SUM(CASE WHEN results_count = 0 THEN 1 ELSE 0 END), 0) AS no_result_searches
		FROM search_logs
		WHERE search_datetime >= $1
	`

	var summary entity.SearchSummary
	err := r.db.QueryRowContext(ctx, query, since).Scan(
		&summary.TotalSearches,
		&summary.UniqueQueries,
		&summary.NoResultSearches,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query search summary: %w", err)
	}

	return &summary, nil
}

func (r *analyticsRepository) GetDemographics(ctx context.Context, since time.Time) ([]*entity.DemographicEngagement, error) {
	query := `
		SELECT
			s.student_year,
			s.major,
			COUNT(DISTINCT r.student_id) AS students_with_rsvps,
			COUNT(DISTINCT r.event_id) AS unique_events_rsvped,
			COUNT(r.rsvp_id) AS total_rsvps,
			COUNT(DISTINCT a.event_id) AS events_attended,
			ROUND(
				COUNT(DISTINCT a.event_id) * 100.0 /
				NULLIF(COUNT(DISTINCT r.event_id), 0),
				2
			) AS attendance_rate
		FROM students s
		LEFT JOIN rsvps r
			ON s.student_id = r.student_id
		LEFT JOIN event_attendance a
			ON s.student_id = a.student_id
			AND r.event_id = a.event_id
		WHERE r.created_datetime >= $1
		GROUP BY s.student_year, s.major
		ORDER BY total_rsvps DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query demographics: %w", err)
	}
	defer rows.Close()

	var buckets []*entity.DemographicEngagement
	for rows.Next() {
		var (
			d    entity.DemographicEngagement
			rate sql.NullFloat64
		)
		err := rows.Scan(
			&d.StudentYear,
			&d.Major,
			&d.StudentsWithRSVPs,
			&d.UniqueEventsRSVPed,
			&d.TotalRSVPs,
			&d.EventsAttended,
			&rate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan demographics: %w", err)
		}
		if rate.Valid {
			d.AttendanceRate = &rate.Float64
		}
		buckets = append(buckets, &d)
	}

	return buckets, rows.Err()
}

func (r *analyticsRepository) GetReports(ctx context.Context, limit int) ([]*entity.EngagementReport, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT report_id, report_period_start, report_period_end,
			total_active_users, total_events_created, total_rsvps,
			total_attendance, total_searches, generated_datetime
		FROM engagement_reports
		ORDER BY generated_datetime DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query engagement reports: %w", err)
	}
	defer rows.Close()

	var reports []*entity.EngagementReport
	for rows.Next() {
		var rep entity.EngagementReport
		err := rows.Scan(
			&rep.ReportID,
			&rep.ReportPeriodStart,
			&rep.ReportPeriodEnd,
			&rep.TotalActiveUsers,
			&rep.TotalEventsCreated,
			&rep.TotalRSVPs,
			&rep.TotalAttendance,
			&rep.TotalSearches,
			&rep.GeneratedDateTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan engagement report: %w", err)
		}
		reports = append(reports, &rep)
	}

	return reports, rows.Err()
}

func (r *analyticsRepository) InsertWeeklyReport(ctx context.Context) error {
	// Each call appends a fresh snapshot of the trailing 7 days; no dedup.
	query := `
		INSERT INTO engagement_reports
			(report_period_start,
			 report_period_end,
			 total_active_users,
			 total_events_created,
			 total_rsvps,
			 total_attendance,
			 total_searches,
			 generated_datetime)
		SELECT
			CURRENT_DATE - INTERVAL '7 days' AS report_period_start,
			CURRENT_DATE AS report_period_end,
			COUNT(DISTINCT CASE
				WHEN al.action_type IN ('login', 'event_view', 'search')
				THEN al.user_id
			END) AS total_active_users,
			COUNT(DISTINCT CASE
				WHEN al.action_type = 'event_created'
				THEN al.entity_id
			END) AS total_events_created,
			COUNT(DISTINCT CASE
				WHEN al.action_type = 'rsvp_created'
				THEN al.log_id
			END) AS total_rsvps,
			COUNT(DISTINCT CASE
				WHEN al.action_type = 'check_in'
				THEN al.log_id
			END) AS total_attendance,
			COUNT(DISTINCT CASE
				WHEN al.action_type = 'search'
				THEN al.log_id
			END) AS total_searches,
			NOW() AS generated_datetime
		FROM audit_logs al
		WHERE al.log_timestamp >= CURRENT_DATE - INTERVAL '7 days'
		  AND al.log_timestamp < CURRENT_DATE + INTERVAL '1 day'
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to insert engagement report: %w", err)
	}

	return nil
}

func (r *analyticsRepository) RecordSearch(ctx context.Context, log *entity.SearchLog) error {
	query := `
		INSERT INTO search_logs (search_query, results_count, search_datetime)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		RETURNING search_id, search_datetime
	`

	err := r.db.QueryRowContext(ctx, query, log.SearchQuery, log.ResultsCount).
		Scan(&log.ID, &log.SearchDateTime)
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	return nil
}

func (r *analyticsRepository) DeleteSearchLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM search_logs WHERE search_datetime < $1`

	result, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old search logs: %w", err)
	}

	return result.RowsAffected()
}
