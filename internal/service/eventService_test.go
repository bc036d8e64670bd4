package service

import (
	"context"
	"testing"
	"time"

	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEventRepo struct {
	createFn  func(ctx context.Context, event *entity.Event) error
	getByIDFn func(ctx context.Context, id int64) (*entity.Event, error)
	searchFn  func(ctx context.Context, query string) ([]*entity.Event, error)
}

func (s *stubEventRepo) Create(ctx context.Context, event *entity.Event) error {
	if s.createFn != nil {
		return s.createFn(ctx, event)
	}
	return nil
}

func (s *stubEventRepo) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, entity.ErrEventNotFound
}

func (s *stubEventRepo) GetAll(ctx context.Context) ([]*entity.Event, error) {
	return nil, nil
}

func (s *stubEventRepo) Update(ctx context.Context, event *entity.Event) error {
	return nil
}

func (s *stubEventRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

func (s *stubEventRepo) GetConflicts(ctx context.Context, start, end time.Time, excludeClubID int64) ([]*entity.EventConflict, error) {
	return nil, nil
}

func (s *stubEventRepo) Search(ctx context.Context, query string) ([]*entity.Event, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query)
	}
	return nil, nil
}

func validCreateEventRequest() *CreateEventRequest {
	start := time.Now().Add(24 * time.Hour)
	return &CreateEventRequest{
		ClubID:          1,
		Name:            "Intro Night",
		StartDateTime:   start,
		EndDateTime:     start.Add(2 * time.Hour),
		Location:        "Main Hall",
		Capacity:        100,
		CreatedByUserID: 9,
	}
}

func TestCreateEventRejectsInvertedTimes(t *testing.T) {
	svc := NewEventService(&stubEventRepo{}, &stubAnalyticsRepo{})

	req := validCreateEventRequest()
	req.EndDateTime = req.StartDateTime.Add(-time.Hour)

	event, err := svc.CreateEvent(context.Background(), req)

	assert.Nil(t, event)
	assert.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestCreateEventNormalizesStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		wantStatus entity.EventStatus
	}{
		{name: "published stays published", status: "published", wantStatus: entity.EventStatusPublished},
		{name: "empty status falls back to draft", status: "", wantStatus: entity.EventStatusDraft},
		{name: "unknown status falls back to draft", status: "archived", wantStatus: entity.EventStatusDraft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created *entity.Event
			repo := &stubEventRepo{
				createFn: func(ctx context.Context, event *entity.Event) error {
					created = event
					return nil
				},
			}
			svc := NewEventService(repo, &stubAnalyticsRepo{})

			req := validCreateEventRequest()
			req.Status = tt.status

			_, err := svc.CreateEvent(context.Background(), req)

			require.NoError(t, err)
			require.NotNil(t, created)
			assert.Equal(t, tt.wantStatus, created.Status)
		})
	}
}

func TestSearchEventsRecordsSearchLog(t *testing.T) {
	events := []*entity.Event{{ID: 1}, {ID: 2}, {ID: 3}}
	eventRepo := &stubEventRepo{
		searchFn: func(ctx context.Context, query string) ([]*entity.Event, error) {
			return events, nil
		},
	}

	var recorded *entity.SearchLog
	analyticsRepo := &stubAnalyticsRepo{
		recordSearchFn: func(ctx context.Context, log *entity.SearchLog) error {
			recorded = log
			return nil
		},
	}

	svc := NewEventService(eventRepo, analyticsRepo)
	got, err := svc.SearchEvents(context.Background(), "chess")

	require.NoError(t, err)
	assert.Len(t, got, 3)
	require.NotNil(t, recorded)
	assert.Equal(t, "chess", recorded.SearchQuery)
	assert.Equal(t, 3, recorded.ResultsCount)
}

func TestSearchEventsSurvivesLogFailure(t *testing.T) {
	eventRepo := &stubEventRepo{
		searchFn: func(ctx context.Context, query string) ([]*entity.Event, error) {
			return nil, nil
		},
	}
	analyticsRepo := &stubAnalyticsRepo{
		recordSearchFn: func(ctx context.Context, log *entity.SearchLog) error {
			return context.DeadlineExceeded
		},
	}

	svc := NewEventService(eventRepo, analyticsRepo)
	_, err := svc.SearchEvents(context.Background(), "robotics")

	assert.NoError(t, err)
}
