package entity

import (
	"time"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusDeclined InvitationStatus = "declined"
)

// IsTerminal reports whether a status ends the pending -> accepted/declined
// transition. There is no path back to pending.
func (s InvitationStatus) IsTerminal() bool {
	return s == InvitationStatusAccepted || s == InvitationStatusDeclined
}

type Invitation struct {
	ID                 int64            `json:"invitation_id" db:"invitation_id"`
	EventID            int64            `json:"event_id" db:"event_id"`
	SenderStudentID    int64            `json:"sender_student_id" db:"sender_student_id"`
	RecipientStudentID int64            `json:"recipient_student_id" db:"recipient_student_id"`
	Status             InvitationStatus `json:"invitation_status" db:"status"`
	SentDateTime       time.Time        `json:"sent_datetime" db:"sent_datetime"`
}

// StudentInvitation is an invitation joined with its event and sender for the
// student inbox view. RecipientStudentID is zero for received-only listings.
type StudentInvitation struct {
	InvitationID       int64            `json:"invitation_id"`
	EventID            int64            `json:"event_id"`
	EventName          string           `json:"event_name"`
	StartDateTime      time.Time        `json:"start_datetime"`
	SenderStudentID    int64            `json:"sender_student_id"`
	RecipientStudentID int64            `json:"recipient_student_id,omitempty"`
	SenderFirstName    string           `json:"sender_first_name"`
	SenderLastName     string           `json:"sender_last_name"`
	Status             InvitationStatus `json:"invitation_status"`
	SentDateTime       time.Time        `json:"sent_datetime"`
}
