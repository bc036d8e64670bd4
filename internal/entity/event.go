package entity

import (
	"time"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

type Event struct {
	ID              int64       `json:"event_id" db:"event_id"`
	ClubID          int64       `json:"club_id" db:"club_id"`
	Name            string      `json:"name" db:"name"`
	Description     string      `json:"description" db:"description"`
	EventType       string      `json:"event_type" db:"event_type"`
	Category        string      `json:"category" db:"category"`
	StartDateTime   time.Time   `json:"start_datetime" db:"start_datetime"`
	EndDateTime     time.Time   `json:"end_datetime" db:"end_datetime"`
	Location        string      `json:"location" db:"location"`
	BuildingName    string      `json:"building_name" db:"building_name"`
	RoomNumber      string      `json:"room_number" db:"room_number"`
	Capacity        int         `json:"capacity" db:"capacity"`
	Status          EventStatus `json:"status" db:"status"`
	Tags            string      `json:"tags" db:"tags"`
	RequireRSVP     bool        `json:"require_rsvp" db:"require_rsvp"`
	EnableCheckin   bool        `json:"enable_checkin" db:"enable_checkin"`
	CreatedByUserID int64       `json:"created_by_user_id" db:"created_by_user_id"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	LastUpdated     time.Time   `json:"last_updated" db:"last_updated"`
}

// EventConflict is a published event overlapping a proposed time window,
// joined with its hosting club for display.
type EventConflict struct {
	EventID       int64     `json:"event_id"`
	Name          string    `json:"name"`
	ClubName      string    `json:"club_name"`
	StartDateTime time.Time `json:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime"`
	Location      string    `json:"location"`
	Capacity      int       `json:"expected_attendance"`
}
