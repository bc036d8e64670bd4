package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubhub/clubhub-api/internal/entity"
)

type clubRepository struct {
	db *sql.DB
}

func NewClubRepository(db *sql.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) GetAll(ctx context.Context) ([]*entity.Club, error) {
	query := `
		SELECT club_id, name, club_type, budget, member_count, competitiveness_level
		FROM clubs
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clubs: %w", err)
	}
	defer rows.Close()

	var clubs []*entity.Club
	for rows.Next() {
		var club entity.Club
		err := rows.Scan(
			&club.ID,
			&club.Name,
			&club.ClubType,
			&club.Budget,
			&club.MemberCount,
			&club.CompetitivenessLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan club: %w", err)
		}
		clubs = append(clubs, &club)
	}

	return clubs, rows.Err()
}

func (r *clubRepository) GetEvents(ctx context.Context, clubID int64, upcomingOnly bool) ([]*entity.Event, error) {
	query := `
		SELECT event_id, club_id, name, description, event_type, category,
			start_datetime, end_datetime, location, building_name, room_number,
			capacity, status, tags, require_rsvp, enable_checkin,
			created_by_user_id, created_at, last_updated
		FROM events
		WHERE club_id = $1
	`
	if upcomingOnly {
		query += ` AND start_datetime > CURRENT_TIMESTAMP`
	}
	query += ` ORDER BY start_datetime ASC`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to query club events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}
