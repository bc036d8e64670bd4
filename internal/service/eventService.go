package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/clubhub/clubhub-api/internal/database/postgres"
	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/sirupsen/logrus"
)

// CreateEventRequest represents the data needed to create an event
type CreateEventRequest struct {
	ClubID          int64     `json:"club_id" binding:"required"`
	Name            string    `json:"name" binding:"required,min=1,max=255"`
	Description     string    `json:"description" binding:"max=1000"`
	EventType       string    `json:"event_type"`
	Category        string    `json:"category"`
	StartDateTime   time.Time `json:"start_datetime" binding:"required"`
	EndDateTime     time.Time `json:"end_datetime" binding:"required"`
	Location        string    `json:"location" binding:"required"`
	BuildingName    string    `json:"building_name"`
	RoomNumber      string    `json:"room_number"`
	Capacity        int       `json:"capacity" binding:"required,min=1,max=10000"`
	Status          string    `json:"status"`
	Tags            string    `json:"tags"`
	RequireRSVP     bool      `json:"require_rsvp"`
	EnableCheckin   bool      `json:"enable_checkin"`
	CreatedByUserID int64     `json:"created_by_user_id" binding:"required"`
}

// UpdateEventRequest represents the data needed to update an event
type UpdateEventRequest struct {
	Name          *string    `json:"name,omitempty"`
	Description   *string    `json:"description,omitempty"`
	EventType     *string    `json:"event_type,omitempty"`
	Category      *string    `json:"category,omitempty"`
	StartDateTime *time.Time `json:"start_datetime,omitempty"`
	EndDateTime   *time.Time `json:"end_datetime,omitempty"`
	Location      *string    `json:"location,omitempty"`
	BuildingName  *string    `json:"building_name,omitempty"`
	RoomNumber    *string    `json:"room_number,omitempty"`
	Capacity      *int       `json:"capacity,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Tags          *string    `json:"tags,omitempty"`
	RequireRSVP   *bool      `json:"require_rsvp,omitempty"`
	EnableCheckin *bool      `json:"enable_checkin,omitempty"`
}

type eventService struct {
	eventRepo     repository.EventRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewEventService creates a new instance of EventService
func NewEventService(
	eventRepo repository.EventRepository,
	analyticsRepo repository.AnalyticsRepository,
) EventService {
	return &eventService{
		eventRepo:     eventRepo,
		analyticsRepo: analyticsRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, req *CreateEventRequest) (*entity.Event, error) {
	if !req.EndDateTime.After(req.StartDateTime) {
		return nil, fmt.Errorf("%w: event end time must be after start time", entity.ErrInvalidInput)
	}

	status := entity.EventStatus(req.Status)
	if status != entity.EventStatusPublished {
		status = entity.EventStatusDraft
	}

	event := &entity.Event{
		ClubID:          req.ClubID,
		Name:            req.Name,
		Description:     req.Description,
		EventType:       req.EventType,
		Category:        req.Category,
		StartDateTime:   req.StartDateTime,
		EndDateTime:     req.EndDateTime,
		Location:        req.Location,
		BuildingName:    req.BuildingName,
		RoomNumber:      req.RoomNumber,
		Capacity:        req.Capacity,
		Status:          status,
		Tags:            req.Tags,
		RequireRSVP:     req.RequireRSVP,
		EnableCheckin:   req.EnableCheckin,
		CreatedByUserID: req.CreatedByUserID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if err == entity.ErrEventNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]*entity.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}

	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id int64, req *UpdateEventRequest) (*entity.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if err == entity.ErrEventNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get existing event: %w", err)
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.StartDateTime != nil {
		event.StartDateTime = *req.StartDateTime
	}
	if req.EndDateTime != nil {
		event.EndDateTime = *req.EndDateTime
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.BuildingName != nil {
		event.BuildingName = *req.BuildingName
	}
	if req.RoomNumber != nil {
		event.RoomNumber = *req.RoomNumber
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Status != nil {
		event.Status = entity.EventStatus(*req.Status)
	}
	if req.Tags != nil {
		event.Tags = *req.Tags
	}
	if req.RequireRSVP != nil {
		event.RequireRSVP = *req.RequireRSVP
	}
	if req.EnableCheckin != nil {
		event.EnableCheckin = *req.EnableCheckin
	}

	if !event.EndDateTime.After(event.StartDateTime) {
		return nil, fmt.Errorf("%w: event end time must be after start time", entity.ErrInvalidInput)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if err == entity.ErrEventNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if err == entity.ErrEventNotFound {
			return err
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

func (s *eventService) GetConflicts(ctx context.Context, start, end time.Time, excludeClubID int64) ([]*entity.EventConflict, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: conflict window end must be after start", entity.ErrInvalidInput)
	}

	conflicts, err := s.eventRepo.GetConflicts(ctx, start, end, excludeClubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conflicting events: %w", err)
	}

	return conflicts, nil
}

func (s *eventService) SearchEvents(ctx context.Context, query string) ([]*entity.Event, error) {
	events, err := s.eventRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	// The search log is append-only bookkeeping; a failed write must not
	// fail the search itself.
	searchLog := &entity.SearchLog{
		SearchQuery:  query,
		ResultsCount: len(events),
	}
	if err := s.analyticsRepo.RecordSearch(ctx, searchLog); err != nil {
		logrus.Errorf("Failed to record search log for query %q: %v", query, err)
	}

	return events, nil
}
