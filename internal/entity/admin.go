package entity

import (
	"time"
)

// AuditLogEntry is an event_log row joined with its originating server.
// Server fields are nil when the log entry has no server reference.
type AuditLogEntry struct {
	LogID             int64      `json:"log_id"`
	LogTimestamp      time.Time  `json:"log_timestamp"`
	Status            string     `json:"status"`
	Severity          string     `json:"severity"`
	Message           string     `json:"message"`
	ServerID          *int64     `json:"server_id"`
	IPAddress         *string    `json:"ip_address"`
	ServerStatus      *string    `json:"server_status"`
	ServerLastUpdated *time.Time `json:"server_last_updated"`
}

type Server struct {
	ID          int64     `json:"server_id" db:"server_id"`
	IPAddress   string    `json:"ip_address" db:"ip_address"`
	Status      string    `json:"status" db:"status"`
	LastUpdated time.Time `json:"last_updated" db:"last_updated"`
}

type Alert struct {
	ID          int64  `json:"alert_id" db:"alert_id"`
	EventID     *int64 `json:"event_id" db:"event_id"`
	StudentID   *int64 `json:"student_id" db:"student_id"`
	AlertType   string `json:"alert_type" db:"alert_type"`
	IsSolved    bool   `json:"is_solved" db:"is_solved"`
	Description string `json:"description" db:"description"`
}

// SystemMetrics is the server and log-volume health snapshot.
// ErrorRateLastHour is nil when no logs were written in the window.
type SystemMetrics struct {
	TotalServers      int64    `json:"total_servers"`
	ServersOnline     int64    `json:"servers_online"`
	ServersOffline    int64    `json:"servers_offline"`
	TotalLogsLastHour int64    `json:"total_logs_last_hour"`
	ErrorLogsLastHour int64    `json:"error_logs_last_hour"`
	ErrorRateLastHour *float64 `json:"error_rate_last_hour"`
}
