package entity

import "errors"

var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")
	ErrEventDatePast = errors.New("event date cannot be in the past")

	// RSVP errors
	ErrRSVPNotFound      = errors.New("RSVP not found")
	ErrRSVPAlreadyExists = errors.New("RSVP already exists for this event")

	// Invitation errors
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationAlreadyExists = errors.New("pending invitation already exists")
	ErrInvalidInvitationStatus = errors.New("invalid invitation status")

	// Student / club errors
	ErrStudentNotFound = errors.New("student not found")
	ErrClubNotFound    = errors.New("club not found")

	// Admin errors
	ErrAlertNotFound = errors.New("alert not found")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
)
