package service

import (
	"context"
	"fmt"

	repository "github.com/clubhub/clubhub-api/internal/database/postgres"
	"github.com/clubhub/clubhub-api/internal/entity"
)

// CreateInvitationRequest represents the data needed to invite a student to an event
type CreateInvitationRequest struct {
	EventID            int64 `json:"event_id" binding:"required"`
	SenderStudentID    int64 `json:"sender_student_id" binding:"required"`
	RecipientStudentID int64 `json:"recipient_student_id" binding:"required"`
}

type invitationService struct {
	invitationRepo repository.InvitationRepository
}

// NewInvitationService creates a new instance of InvitationService
func NewInvitationService(invitationRepo repository.InvitationRepository) InvitationService {
	return &invitationService{invitationRepo: invitationRepo}
}

func (s *invitationService) CreateInvitation(ctx context.Context, req *CreateInvitationRequest) (*entity.Invitation, error) {
	if req.SenderStudentID == req.RecipientStudentID {
		return nil, fmt.Errorf("%w: cannot invite yourself", entity.ErrInvalidInput)
	}

	invitation, err := s.invitationRepo.Create(ctx, req.EventID, req.SenderStudentID, req.RecipientStudentID)
	if err != nil {
		if err == entity.ErrInvitationAlreadyExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return invitation, nil
}
