package service

import (
	"context"
	"fmt"

	repository "github.com/clubhub/clubhub-api/internal/database/postgres"
	"github.com/clubhub/clubhub-api/internal/entity"
)

// CreateRSVPRequest represents the data needed to RSVP to an event
type CreateRSVPRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
}

type studentService struct {
	studentRepo repository.StudentRepository
	eventRepo   repository.EventRepository
}

// NewStudentService creates a new instance of StudentService
func NewStudentService(
	studentRepo repository.StudentRepository,
	eventRepo repository.EventRepository,
) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		eventRepo:   eventRepo,
	}
}

func (s *studentService) GetAllStudents(ctx context.Context) ([]*entity.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}

	return students, nil
}

func (s *studentService) GetUpcomingRSVPs(ctx context.Context, studentID int64) ([]*entity.StudentRSVP, error) {
	rsvps, err := s.studentRepo.GetUpcomingRSVPs(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming RSVPs: %w", err)
	}

	return rsvps, nil
}

func (s *studentService) CreateRSVP(ctx context.Context, studentID int64, req *CreateRSVPRequest) (*entity.RSVP, error) {
	rsvp, err := s.studentRepo.CreateRSVP(ctx, studentID, req.EventID)
	if err != nil {
		if err == entity.ErrRSVPAlreadyExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create RSVP: %w", err)
	}

	return rsvp, nil
}

func (s *studentService) CancelRSVP(ctx context.Context, studentID, rsvpID int64) error {
	if err := s.studentRepo.DeleteRSVP(ctx, studentID, rsvpID); err != nil {
		if err == entity.ErrRSVPNotFound {
			return err
		}
		return fmt.Errorf("failed to cancel RSVP: %w", err)
	}

	return nil
}

func (s *studentService) GetReceivedInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error) {
	invitations, err := s.studentRepo.GetReceivedInvitations(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get received invitations: %w", err)
	}

	return invitations, nil
}

func (s *studentService) GetAllInvitations(ctx context.Context, studentID int64) ([]*entity.StudentInvitation, error) {
	invitations, err := s.studentRepo.GetAllInvitations(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get all invitations: %w", err)
	}

	return invitations, nil
}

func (s *studentService) RespondToInvitation(ctx context.Context, studentID, invitationID int64, status entity.InvitationStatus) error {
	// pending -> accepted/declined is the only legal transition.
	if !status.IsTerminal() {
		return entity.ErrInvalidInvitationStatus
	}

	if err := s.studentRepo.UpdateInvitationStatus(ctx, studentID, invitationID, status); err != nil {
		if err == entity.ErrInvitationNotFound {
			return err
		}
		return fmt.Errorf("failed to update invitation: %w", err)
	}

	return nil
}
