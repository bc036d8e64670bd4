package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAnalyticsRepo lets each test override just the methods it exercises.
type stubAnalyticsRepo struct {
	periodMetricsFn      func(ctx context.Context, start, end time.Time) (*entity.PeriodMetrics, error)
	reportsFn            func(ctx context.Context, limit int) ([]*entity.EngagementReport, error)
	insertWeeklyReportFn func(ctx context.Context) error
	deleteSearchLogsFn   func(ctx context.Context, before time.Time) (int64, error)
	recordSearchFn       func(ctx context.Context, log *entity.SearchLog) error
}

func (s *stubAnalyticsRepo) GetPeriodMetrics(ctx context.Context, start, end time.Time) (*entity.PeriodMetrics, error) {
	if s.periodMetricsFn != nil {
		return s.periodMetricsFn(ctx, start, end)
	}
	return &entity.PeriodMetrics{PeriodStart: start, PeriodEnd: end}, nil
}

func (s *stubAnalyticsRepo) GetEventsByMonth(ctx context.Context, since time.Time) ([]*entity.MonthlyEventCount, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) GetTopClubs(ctx context.Context, since time.Time, limit int) ([]*entity.ClubEngagement, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) GetEngagementRate(ctx context.Context, since time.Time) (*entity.EngagementRate, error) {
	return &entity.EngagementRate{}, nil
}

func (s *stubAnalyticsRepo) GetSearchQueryStats(ctx context.Context, since time.Time) ([]*entity.SearchQueryStats, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) GetSearchSummary(ctx context.Context, since time.Time) (*entity.SearchSummary, error) {
	return &entity.SearchSummary{}, nil
}

func (s *stubAnalyticsRepo) GetDemographics(ctx context.Context, since time.Time) ([]*entity.DemographicEngagement, error) {
	return nil, nil
}

func (s *stubAnalyticsRepo) GetReports(ctx context.Context, limit int) ([]*entity.EngagementReport, error) {
	if s.reportsFn != nil {
		return s.reportsFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubAnalyticsRepo) InsertWeeklyReport(ctx context.Context) error {
	if s.insertWeeklyReportFn != nil {
		return s.insertWeeklyReportFn(ctx)
	}
	return nil
}

func (s *stubAnalyticsRepo) RecordSearch(ctx context.Context, log *entity.SearchLog) error {
	if s.recordSearchFn != nil {
		return s.recordSearchFn(ctx, log)
	}
	return nil
}

func (s *stubAnalyticsRepo) DeleteSearchLogsBefore(ctx context.Context, before time.Time) (int64, error) {
	if s.deleteSearchLogsFn != nil {
		return s.deleteSearchLogsFn(ctx, before)
	}
	return 0, nil
}

// fakeCache is an in-memory stand-in for the redis cache.
type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := f.data[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func TestEngagementWindowsAreContiguous(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	currentStart, currentEnd := currentWindow(now)
	previousStart, previousEnd := previousWindow(now)

	assert.Equal(t, now, currentEnd)
	assert.Equal(t, currentStart, previousEnd)
	assert.Equal(t, 30, int(currentEnd.Sub(currentStart).Hours()/24))
	assert.Equal(t, 30, int(previousEnd.Sub(previousStart).Hours()/24))
}

func TestAnalyticsCacheMissThenHit(t *testing.T) {
	calls := 0
	repo := &stubAnalyticsRepo{
		periodMetricsFn: func(ctx context.Context, start, end time.Time) (*entity.PeriodMetrics, error) {
			calls++
			return &entity.PeriodMetrics{
				PeriodStart: start,
				PeriodEnd:   end,
				TotalEvents: 7,
			}, nil
		},
	}
	cache := newFakeCache()
	svc := NewAnalyticsService(repo, cache)

	first, err := svc.GetCurrentPeriodMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), first.TotalEvents)
	assert.Equal(t, 1, calls)

	second, err := svc.GetCurrentPeriodMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), second.TotalEvents)
	assert.Equal(t, 1, calls, "second read should be served from cache")
}

func TestAnalyticsWorksWithoutCache(t *testing.T) {
	calls := 0
	repo := &stubAnalyticsRepo{
		periodMetricsFn: func(ctx context.Context, start, end time.Time) (*entity.PeriodMetrics, error) {
			calls++
			return &entity.PeriodMetrics{PeriodStart: start, PeriodEnd: end}, nil
		},
	}
	svc := NewAnalyticsService(repo, nil)

	_, err := svc.GetCurrentPeriodMetrics(context.Background())
	require.NoError(t, err)
	_, err = svc.GetCurrentPeriodMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGenerateWeeklyReportInvalidatesReportsCache(t *testing.T) {
	repoCalls := 0
	repo := &stubAnalyticsRepo{
		reportsFn: func(ctx context.Context, limit int) ([]*entity.EngagementReport, error) {
			repoCalls++
			return []*entity.EngagementReport{{ReportID: int64(repoCalls)}}, nil
		},
	}
	cache := newFakeCache()
	svc := NewAnalyticsService(repo, cache)

	_, err := svc.GetReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repoCalls)

	// Cached until a new snapshot lands.
	_, err = svc.GetReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repoCalls)

	require.NoError(t, svc.GenerateWeeklyReport(context.Background()))

	reports, err := svc.GetReports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repoCalls)
	require.Len(t, reports, 1)
	assert.Equal(t, int64(2), reports[0].ReportID)
}

func TestCleanupSearchLogsUsesRetentionCutoff(t *testing.T) {
	var gotCutoff time.Time
	repo := &stubAnalyticsRepo{
		deleteSearchLogsFn: func(ctx context.Context, before time.Time) (int64, error) {
			gotCutoff = before
			return 12, nil
		},
	}
	svc := NewAnalyticsService(repo, nil)

	retention := 180 * 24 * time.Hour
	deleted, err := svc.CleanupSearchLogs(context.Background(), retention)

	require.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	assert.WithinDuration(t, time.Now().Add(-retention), gotCutoff, time.Minute)
}
