package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubhub/clubhub-api/internal/entity"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetAuditLogs(ctx context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	if limit <= 0 {
		limit = 500
	}

	query := `
		SELECT
			el.log_id,
			el.log_timestamp,
			el.status,
			el.severity,
			el.message,
			el.server_id,
			s.ip_address,
			s.status AS server_status,
			s.last_updated AS server_last_updated
		FROM event_log el
		LEFT JOIN servers s ON el.server_id = s.server_id
		ORDER BY el.log_timestamp DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.AuditLogEntry
	for rows.Next() {
		var (
			log         entity.AuditLogEntry
			serverID    sql.NullInt64
			ipAddress   sql.NullString
			status      sql.NullString
			lastUpdated sql.NullTime
		)
		err := rows.Scan(
			&log.LogID,
			&log.LogTimestamp,
			&log.Status,
			&log.Severity,
			&log.Message,
			&serverID,
			&ipAddress,
			&status,
			&lastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		if serverID.Valid {
			log.ServerID = &serverID.Int64
		}
		if ipAddress.Valid {
			log.IPAddress = &ipAddress.String
		}
		if status.Valid {
			log.ServerStatus = &status.String
		}
		if lastUpdated.Valid {
			log.ServerLastUpdated = &lastUpdated.Time
		}
		logs = append(logs, &log)
	}

	return logs, rows.Err()
}

func (r *adminRepository) GetUnresolvedAlerts(ctx context.Context) ([]*entity.Alert, error) {
	query := `
		SELECT alert_id, event_id, student_id, alert_type, is_solved, description
		FROM alerts
		WHERE is_solved = FALSE
		ORDER BY alert_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*entity.Alert
	for rows.Next() {
		var (
			alert     entity.Alert
			eventID   sql.NullInt64
			studentID sql.NullInt64
		)
		err := rows.Scan(
			&alert.ID,
			&eventID,
			&studentID,
			&alert.AlertType,
			&alert.IsSolved,
			&alert.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		if eventID.Valid {
			alert.EventID = &eventID.Int64
		}
		if studentID.Valid {
			alert.StudentID = &studentID.Int64
		}
		alerts = append(alerts, &alert)
	}

	return alerts, rows.Err()
}

func (r *adminRepository) ResolveAlert(ctx context.Context, alertID int64) error {
	// Filtering on is_solved makes a repeat resolve signal not-found rather
	// than silently succeeding.
	query := `
		UPDATE alerts
		SET is_solved = TRUE
		WHERE alert_id = $1
		  AND is_solved = FALSE
	`

	result, err := r.db.ExecContext(ctx, query, alertID)
	if err != nil {
		return fmt.Errorf("failed to resolve alert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrAlertNotFound
	}

	return nil
}

func (r *adminRepository) GetSystemMetrics(ctx context.Context) (*entity.SystemMetrics, error) {
	var metrics entity.SystemMetrics

	serverQuery := `
		SELECT
			COUNT(*) AS total_servers,
			COALESCE(SUM(CASE WHEN status = 'online' THEN 1 ELSE 0 END), 0) AS servers_online,
			COALESCE(SUM(CASE WHEN status != 'online' OR status IS NULL THEN 1 ELSE 0 END), 0) AS servers_offline
		FROM servers
	`

	err := r.db.QueryRowContext(ctx, serverQuery).Scan(
		&metrics.TotalServers,
		&metrics.ServersOnline,
		&metrics.ServersOffline,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query server stats: %w", err)
	}

	logsQuery := `
		SELECT
			COUNT(*) AS total_logs_last_hour,
			COALESCE(SUM(CASE WHEN severity = 'ERROR' THEN 1 ELSE 0 END), 0) AS error_logs_last_hour
		FROM event_log
		WHERE log_timestamp >= NOW() - INTERVAL '1 hour'
	`

	err = r.db.QueryRowContext(ctx, logsQuery).Scan(
		&metrics.TotalLogsLastHour,
		&metrics.ErrorLogsLastHour,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query log stats: %w", err)
	}

	if metrics.TotalLogsLastHour > 0 {
		rate := float64(metrics.ErrorLogsLastHour) / float64(metrics.TotalLogsLastHour)
		metrics.ErrorRateLastHour = &rate
	}

	return &metrics, nil
}
