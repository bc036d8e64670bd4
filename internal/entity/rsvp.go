package entity

import (
	"time"
)

type RSVPStatus string

const (
	RSVPStatusConfirmed RSVPStatus = "confirmed"
	RSVPStatusCancelled RSVPStatus = "cancelled"
)

type RSVP struct {
	ID              int64      `json:"rsvp_id" db:"rsvp_id"`
	StudentID       int64      `json:"student_id" db:"student_id"`
	EventID         int64      `json:"event_id" db:"event_id"`
	Status          RSVPStatus `json:"status" db:"status"`
	CreatedDateTime time.Time  `json:"created_datetime" db:"created_datetime"`
}

// StudentRSVP is an upcoming confirmed RSVP joined with its event and club
// for the student schedule view.
type StudentRSVP struct {
	RSVPID        int64     `json:"rsvp_id"`
	EventID       int64     `json:"event_id"`
	EventName     string    `json:"event_name"`
	StartDateTime time.Time `json:"start_datetime"`
	Location      string    `json:"location"`
	LastUpdated   time.Time `json:"last_updated"`
	ClubName      string    `json:"club_name"`
}
