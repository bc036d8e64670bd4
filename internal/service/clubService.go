package service

import (
	"context"
	"fmt"

	repository "github.com/clubhub/clubhub-api/internal/database/postgres"
	"github.com/clubhub/clubhub-api/internal/entity"
)

type clubService struct {
	clubRepo repository.ClubRepository
}

// NewClubService creates a new instance of ClubService
func NewClubService(clubRepo repository.ClubRepository) ClubService {
	return &clubService{clubRepo: clubRepo}
}

func (s *clubService) GetAllClubs(ctx context.Context) ([]*entity.Club, error) {
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get clubs: %w", err)
	}

	return clubs, nil
}

func (s *clubService) GetClubEvents(ctx context.Context, clubID int64, upcomingOnly bool) ([]*entity.Event, error) {
	events, err := s.clubRepo.GetEvents(ctx, clubID, upcomingOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get club events: %w", err)
	}

	return events, nil
}
