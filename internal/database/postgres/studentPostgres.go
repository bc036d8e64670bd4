package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

type studentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetAll(ctx context.Context) ([]*entity.Student, error) {
	query := `
		SELECT student_id, first_name, last_name, email, student_year, major, created_at
		FROM students
		ORDER BY student_id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var students []*entity.Student
	for rows.Next() {
		var s entity.Student
		err := rows.Scan(
			&s.ID,
			&s.FirstName,
			&s.LastName,
			&s.Email,
			&s.StudentYear,
			&s.Major,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, &s)
	}

	return students, rows.Err()
}

func (r *studentRepository) GetUpcomingRSVPs(ctx context.Context, studentID int64) ([]*entity.StudentRSVP, error) {
	query := `
		SELECT
			r.rsvp_id,
			e.event_id,
			e.name AS event_name,
			e.start_datetime,
			e.location,
			e.last_updated,
			c.name AS club_name
		FROM rsvps r
		JOIN events e ON r.event_id = e.event_id
		JOIN clubs c ON e.club_id = c.club_id
		WHERE r.student_id = $1
			AND e.start_datetime > CURRENT_TIMESTAMP
			AND r.status = 'confirmed'
		ORDER BY e.start_datetime ASC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming RSVPs: %w", err)
	}
	defer rows.Close()

	var rsvps []*entity.StudentRSVP
	for rows.Next() {
		var rsvp entity.StudentRSVP
		err := rows.Scan(
			&rsvp.RSVPID,
			&rsvp.EventID,
			&rsvp.EventName,
			&rsvp.StartDateTime,
			&rsvp.Location,
			&rsvp.LastUpdated,
			&rsvp.ClubName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan RSVP: %w", err)
		}
		rsvps = append(rsvps, &rsvp)
	}

	return rsvps, rows.Err()
}

func (r *studentRepository) CreateRSVP(ctx context.Context, studentID, eventID int64) (*entity.RSVP, error) {
	query := `
		INSERT INTO rsvps (student_id, event_id, status, created_datetime)
		VALUES ($1, $2, 'confirmed', CURRENT_TIMESTAMP)
		RETURNING rsvp_id, student_id, event_id, status, created_datetime
	`

	var rsvp entity.RSVP
	err := r.db.QueryRowContext(ctx, query, studentID, eventID).Scan(
		&rsvp.ID,
		&rsvp.StudentID,
		&rsvp.EventID,
		&rsvp.Status,
		&rsvp.CreatedDateTime,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, entity.ErrRSVPAlreadyExists
		}
		return nil, fmt.Errorf("failed to create RSVP: %w", err)
	}

	return &rsvp, nil
}

func (r *studentRepository) DeleteRSVP(ctx context.Context, studentID, rsvpID int64) error {
	query := `DELETE FROM rsvps WHERE rsvp_id = $1 AND student_id = $2`

	result, err := r.db.ExecContext(ctx, query, rsvpID, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete RSVP: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrRSVPNotFound
	}

	return nil
}

func (r *studentRepository) GetReceivedInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error) {
	query := `
		SELECT
			ei.invitation_id,
			ei.event_id,
			e.name AS event_name,
			e.start_datetime,
			ei.sender_student_id,
			s.first_name AS sender_first_name,
			s.last_name AS sender_last_name,
			ei.status AS invitation_status,
			ei.sent_datetime
		FROM event_invitations ei
		JOIN events e ON ei.event_id = e.event_id
		JOIN students s ON ei.sender_student_id = s.student_id
		WHERE ei.recipient_student_id = $1
		ORDER BY ei.sent_datetime DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*entity.StudentInvitation
	for rows.Next() {
		var inv entity.StudentInvitation
		err := rows.Scan(
			&inv.InvitationID,
			&inv.EventID,
			&inv.EventName,
			&inv.StartDateTime,
			&inv.SenderStudentID,
			&inv.SenderFirstName,
			&inv.SenderLastName,
			&inv.Status,
			&inv.SentDateTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	return invitations, rows.Err()
}

func (r *studentRepository) GetAllInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error) {
	query := `
		SELECT
			ei.invitation_id,
			ei.event_id,
			e.name AS event_name,
			e.start_datetime,
			ei.sender_student_id,
			ei.recipient_student_id,
			s.first_name AS sender_first_name,
			s.last_name AS sender_last_name,
			ei.status AS invitation_status,
			ei.sent_datetime
		FROM event_invitations ei
		JOIN events e ON ei.event_id = e.event_id
		JOIN students s ON ei.sender_student_id = s.student_id
		WHERE ei.sender_student_id = $1
		   OR ei.recipient_student_id = $1
		ORDER BY ei.sent_datetime DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query all invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*entity.StudentInvitation
	for rows.Next() {
		var inv entity.StudentInvitation
		err := rows.Scan(
			&inv.InvitationID,
			&inv.EventID,
			&inv.EventName,
			&inv.StartDateTime,
			&inv.SenderStudentID,
			&inv.RecipientStudentID,
			&inv.SenderFirstName,
			&inv.SenderLastName,
			&inv.Status,
			&inv.SentDateTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	return invitations, rows.Err()
}

func (r *studentRepository) UpdateInvitationStatus(ctx context.Context, studentID, invitationID int64, status entity.InvitationStatus) error {
	// Only the recipient may resolve an invitation.
	query := `
		UPDATE event_invitations
		SET status = $1
		WHERE invitation_id = $2
		  AND recipient_student_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, invitationID, studentID)
	if err != nil {
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return entity.ErrInvitationNotFound
	}

	return nil
}
