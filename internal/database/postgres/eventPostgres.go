package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clubhub/clubhub-api/internal/entity"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `event_id, club_id, name, description, event_type, category,
	start_datetime, end_datetime, location, building_name, room_number,
	capacity, status, tags, require_rsvp, enable_checkin,
	created_by_user_id, created_at, last_updated`

func scanEvent(row *sql.Row) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(
		&e.ID,
		&e.ClubID,
		&e.Name,
		&e.Description,
		&e.EventType,
		&e.Category,
		&e.StartDateTime,
		&e.EndDateTime,
		&e.Location,
		&e.BuildingName,
		&e.RoomNumber,
		&e.Capacity,
		&e.Status,
		&e.Tags,
		&e.RequireRSVP,
		&e.EnableCheckin,
		&e.CreatedByUserID,
		&e.CreatedAt,
		&e.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEvents(rows *sql.Rows) ([]*entity.Event, error) {
	var events []*entity.Event
	for rows.Next() {
		var e entity.Event
		err := rows.Scan(
			&e.ID,
			&e.ClubID,
			&e.Name,
			&e.Description,
			&e.EventType,
			&e.Category,
			&e.StartDateTime,
			&e.EndDateTime,
			&e.Location,
			&e.BuildingName,
			&e.RoomNumber,
			&e.Capacity,
			&e.Status,
			&e.Tags,
			&e.RequireRSVP,
			&e.EnableCheckin,
			&e.CreatedByUserID,
			&e.CreatedAt,
			&e.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (club_id, name, description, event_type, category,
			start_datetime, end_datetime, location, building_name, room_number,
			capacity, status, tags, require_rsvp, enable_checkin,
			created_by_user_id, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING event_id
	`

	now := time.Now()
	event.CreatedAt = now
	event.LastUpdated = now

	return r.db.QueryRowContext(ctx, query,
		event.ClubID,
		event.Name,
		event.Description,
		event.EventType,
		event.Category,
		event.StartDateTime,
		event.EndDateTime,
		event.Location,
		event.BuildingName,
		event.RoomNumber,
		event.Capacity,
		event.Status,
		event.Tags,
		event.RequireRSVP,
		event.EnableCheckin,
		event.CreatedByUserID,
		event.CreatedAt,
		event.LastUpdated,
	).Scan(&event.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (r *eventRepository) GetAll(ctx context.Context) ([]*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_datetime ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET name = $1, description = $2, event_type = $3, category = $4,
			start_datetime = $5, end_datetime = $6, location = $7,
			building_name = $8, room_number = $9, capacity = $10,
			status = $11, tags = $12, require_rsvp = $13, enable_checkin = $14,
			last_updated = $15
		WHERE event_id = $16
	`

	result, err := r.db.ExecContext(ctx, query,
		event.Name,
		event.Description,
		event.EventType,
		event.Category,
		event.StartDateTime,
		event.EndDateTime,
		event.Location,
		event.BuildingName,
		event.RoomNumber,
		event.Capacity,
		event.Status,
		event.Tags,
		event.RequireRSVP,
		event.EnableCheckin,
		time.Now(),
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE event_id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) GetConflicts(ctx context.Context, start, end time.Time, excludeClubID int64) ([]*entity.EventConflict, error) {
	query := `
		SELECT
			e.event_id,
			e.name,
			c.name AS club_name,
			e.start_datetime,
			e.end_datetime,
			e.location,
			e.capacity
		FROM events e
		JOIN clubs c ON e.club_id = c.club_id
		WHERE e.status = 'published'
			AND e.club_id != $1
			AND e.start_datetime < $2
			AND e.end_datetime > $3
		ORDER BY e.start_datetime ASC
	`

	rows, err := r.db.QueryContext(ctx, query, excludeClubID, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting events: %w", err)
	}
	defer rows.Close()

	var conflicts []*entity.EventConflict
	for rows.Next() {
		var conflict entity.EventConflict
		err := rows.Scan(
			&conflict.EventID,
			&conflict.Name,
			&conflict.ClubName,
			&conflict.StartDateTime,
			&conflict.EndDateTime,
			&conflict.Location,
			&conflict.Capacity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conflicting event: %w", err)
		}
		conflicts = append(conflicts, &conflict)
	}

	return conflicts, rows.Err()
}

func (r *eventRepository) Search(ctx context.Context, query string) ([]*entity.Event, error) {
	stmt := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = 'published'
			AND (name ILIKE $1 OR description ILIKE $1 OR tags ILIKE $1)
		ORDER BY start_datetime ASC
	`

	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx, stmt, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}
