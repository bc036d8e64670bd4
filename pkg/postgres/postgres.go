package postgres

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/clubhub/clubhub-api/config"

	_ "github.com/lib/pq"
)

func NewPostgresDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to PostgreSQL")
	return db, nil
}

func RunMigrations(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS students (
			student_id SERIAL PRIMARY KEY,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			student_year VARCHAR(20) NOT NULL,
			major VARCHAR(100) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS clubs (
			club_id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			club_type VARCHAR(100),
			budget NUMERIC(12,2) DEFAULT 0,
			member_count INTEGER DEFAULT 0,
			competitiveness_level VARCHAR(50)
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			event_id SERIAL PRIMARY KEY,
			club_id INTEGER REFERENCES clubs(club_id),
			name VARCHAR(255) NOT NULL,
			description TEXT,
			event_type VARCHAR(100),
			category VARCHAR(100),
			start_datetime TIMESTAMP NOT NULL,
			end_datetime TIMESTAMP NOT NULL,
			location VARCHAR(255),
			building_name VARCHAR(255),
			room_number VARCHAR(50),
			capacity INTEGER NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'draft',
			tags TEXT,
			require_rsvp BOOLEAN DEFAULT TRUE,
			enable_checkin BOOLEAN DEFAULT TRUE,
			created_by_user_id INTEGER,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS rsvps (
			rsvp_id SERIAL PRIMARY KEY,
			student_id INTEGER REFERENCES students(student_id),
			event_id INTEGER REFERENCES events(event_id),
			status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
			created_datetime TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT uq_rsvps_student_event UNIQUE (student_id, event_id)
		)`,

		`CREATE TABLE IF NOT EXISTS event_invitations (
			invitation_id SERIAL PRIMARY KEY,
			event_id INTEGER REFERENCES events(event_id),
			sender_student_id INTEGER REFERENCES students(student_id),
			recipient_student_id INTEGER REFERENCES students(student_id),
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			sent_datetime TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE UNIQUE INDEX IF NOT EXISTS uq_invitations_pending
			ON event_invitations (event_id, sender_student_id, recipient_student_id)
			WHERE status = 'pending'`,

		`CREATE TABLE IF NOT EXISTS event_attendance (
			attendance_id SERIAL PRIMARY KEY,
			event_id INTEGER REFERENCES events(event_id),
			student_id INTEGER REFERENCES students(student_id),
			checkin_datetime TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS servers (
			server_id SERIAL PRIMARY KEY,
			ip_address VARCHAR(45) NOT NULL,
			status VARCHAR(20),
			last_updated TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS event_log (
			log_id SERIAL PRIMARY KEY,
			server_id INTEGER REFERENCES servers(server_id),
			log_timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			status VARCHAR(50),
			severity VARCHAR(20),
			message TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS alerts (
			alert_id SERIAL PRIMARY KEY,
			event_id INTEGER REFERENCES events(event_id),
			student_id INTEGER REFERENCES students(student_id),
			alert_type VARCHAR(100) NOT NULL,
			is_solved BOOLEAN NOT NULL DEFAULT FALSE,
			description TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS search_logs (
			search_id SERIAL PRIMARY KEY,
			search_query TEXT NOT NULL,
			results_count INTEGER NOT NULL DEFAULT 0,
			search_datetime TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS audit_logs (
			log_id SERIAL PRIMARY KEY,
			user_id INTEGER,
			action_type VARCHAR(50) NOT NULL,
			entity_id INTEGER,
			log_timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS engagement_reports (
			report_id SERIAL PRIMARY KEY,
			report_period_start TIMESTAMP NOT NULL,
			report_period_end TIMESTAMP NOT NULL,
			total_active_users INTEGER NOT NULL DEFAULT 0,
			total_events_created INTEGER NOT NULL DEFAULT 0,
			total_rsvps INTEGER NOT NULL DEFAULT 0,
			total_attendance INTEGER NOT NULL DEFAULT 0,
			total_searches INTEGER NOT NULL DEFAULT 0,
			generated_datetime TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,

		// Indexes
		`CREATE INDEX IF NOT EXISTS idx_events_club_id ON events(club_id)`,
		`CREATE INDEX IF NOT EXISTS idx_events_start_datetime ON events(start_datetime)`,
		`CREATE INDEX IF NOT EXISTS idx_rsvps_student_id ON rsvps(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_rsvps_event_id ON rsvps(event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_invitations_recipient ON event_invitations(recipient_student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_invitations_sender ON event_invitations(sender_student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_event_id ON event_attendance(event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_event_log_timestamp ON event_log(log_timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_is_solved ON alerts(is_solved)`,
		`CREATE INDEX IF NOT EXISTS idx_search_logs_datetime ON search_logs(search_datetime)`,
		`CREATE INDEX IF NOT EXISTS idx_audit_logs_timestamp ON audit_logs(log_timestamp)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %v", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
