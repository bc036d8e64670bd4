package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/lib/pq"
)

type invitationRepository struct {
	db *sql.DB
}

func NewInvitationRepository(db *sql.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, eventID, senderID, recipientID int64) (*entity.Invitation, error) {
	insertQuery := `
		INSERT INTO event_invitations
			(event_id, sender_student_id, recipient_student_id, status, sent_datetime)
		VALUES ($1, $2, $3, 'pending', CURRENT_TIMESTAMP)
		RETURNING invitation_id
	`

	var newID int64
	err := r.db.QueryRowContext(ctx, insertQuery, eventID, senderID, recipientID).Scan(&newID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, entity.ErrInvitationAlreadyExists
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	selectQuery := `
		SELECT invitation_id, event_id, sender_student_id, recipient_student_id,
			status, sent_datetime
		FROM event_invitations
		WHERE invitation_id = $1
	`

	var inv entity.Invitation
	err = r.db.QueryRowContext(ctx, selectQuery, newID).Scan(
		&inv.ID,
		&inv.EventID,
		&inv.SenderStudentID,
		&inv.RecipientStudentID,
		&inv.Status,
		&inv.SentDateTime,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reselect created invitation: %w", err)
	}

	return &inv, nil
}
