package service

import (
	"context"
	"fmt"
	"time"

	repository "github.com/clubhub/clubhub-api/internal/database/postgres"
	"github.com/clubhub/clubhub-api/internal/entity"

	"github.com/sirupsen/logrus"
)

const (
	engagementWindowDays = 30
	eventsByMonthDays    = 180
	demographicsDays     = 90
	searchWindowDays     = 30
	topClubsLimit        = 10
	reportsLimit         = 50
)

// Cache keys for the analytics read cache.
const (
	cacheKeyCurrentMetrics  = "analytics:current_metrics"
	cacheKeyPreviousMetrics = "analytics:previous_metrics"
	cacheKeyEventsByMonth   = "analytics:events_by_month"
	cacheKeyTopClubs        = "analytics:top_clubs"
	cacheKeyEngagementRate  = "analytics:engagement_rate"
	cacheKeySearchQueries   = "analytics:search_queries"
	cacheKeySearchSummary   = "analytics:search_summary"
	cacheKeyDemographics    = "analytics:demographics"
	cacheKeyReports         = "analytics:reports"
)

// currentWindow is the trailing engagement window ending at now.
func currentWindow(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -engagementWindowDays), now
}

// previousWindow is the engagement window immediately preceding the current
// one; previous.end == current.start, so the two are contiguous and
// non-overlapping.
func previousWindow(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -2*engagementWindowDays), now.AddDate(0, 0, -engagementWindowDays)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	cache         AnalyticsCache
}

// NewAnalyticsService creates a new instance of AnalyticsService. cache may
// be nil, in which case every read goes straight to the store.
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, cache AnalyticsCache) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		cache:         cache,
	}
}

// cached wraps a repository read with the redis cache. Cache failures degrade
// to a direct read, never to a request failure.
func cached[T any](ctx context.Context, cache AnalyticsCache, key string, load func() (T, error)) (T, error) {
	if cache != nil {
		var value T
		if err := cache.Get(ctx, key, &value); err == nil {
			return value, nil
		}
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if cache != nil {
		if err := cache.Set(ctx, key, value); err != nil {
			logrus.Warnf("Failed to cache %s: %v", key, err)
		}
	}

	return value, nil
}

func (s *analyticsService) GetCurrentPeriodMetrics(ctx context.Context) (*entity.PeriodMetrics, error) {
	return cached(ctx, s.cache, cacheKeyCurrentMetrics, func() (*entity.PeriodMetrics, error) {
		start, end := currentWindow(time.Now())
		metrics, err := s.analyticsRepo.GetPeriodMetrics(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get current period metrics: %w", err)
		}
		return metrics, nil
	})
}

func (s *analyticsService) GetPreviousPeriodMetrics(ctx context.Context) (*entity.PeriodMetrics, error) {
	return cached(ctx, s.cache, cacheKeyPreviousMetrics, func() (*entity.PeriodMetrics, error) {
		start, end := previousWindow(time.Now())
		metrics, err := s.analyticsRepo.GetPeriodMetrics(ctx, start, end)
		if err != nil {
			return nil, fmt.Errorf("failed to get previous period metrics: %w", err)
		}
		return metrics, nil
	})
}

func (s *analyticsService) GetEventsByMonth(ctx context.Context) ([]*entity.MonthlyEventCount, error) {
	return cached(ctx, s.cache, cacheKeyEventsByMonth, func() ([]*entity.MonthlyEventCount, error) {
		since := time.Now().AddDate(0, 0, -eventsByMonthDays)
		months, err := s.analyticsRepo.GetEventsByMonth(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("failed to get events by month: %w", err)
		}
		return months, nil
	})
}

func (s *analyticsService) GetTopClubs(ctx context.Context) ([]*entity.ClubEngagement, error) {
	return cached(ctx, s.cache, cacheKeyTopClubs, func() ([]*entity.ClubEngagement, error) {
		since := time.Now().AddDate(0, 0, -engagementWindowDays)
		clubs, err := s.analyticsRepo.GetTopClubs(ctx, since, topClubsLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to get top clubs: %w", err)
		}
		return clubs, nil
	})
}

func (s *analyticsService) GetEngagementRate(ctx context.Context) (*entity.EngagementRate, error) {
	return cached(ctx, s.cache, cacheKeyEngagementRate, func() (*entity.EngagementRate, error) {
		since := time.Now().AddDate(0, 0, -engagementWindowDays)
		rate, err := s.analyticsRepo.GetEngagementRate(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("failed to get engagement rate: %w", err)
		}
		return rate, nil
	})
}

func (s *analyticsService) GetSearchQueryAnalysis(ctx context.Context) ([]*entity.SearchQueryStats, error) {
	return cached(ctx, s.cache, cacheKeySearchQueries, func() ([]*entity.SearchQueryStats, error) {
		since := time.Now().AddDate(0, 0, -searchWindowDays)
		stats, err := s.analyticsRepo.GetSearchQueryStats(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("failed to get search query analysis: %w", err)
		}
		return stats, nil
	})
}

func (s *analyticsService) GetSearchSummary(ctx context.Context) (*entity.SearchSummary, error) {
	return cached(ctx, s.cache, cacheKeySearchSummary, func() (*entity.SearchSummary, error) {
		since := time.Now().AddDate(0, 0, -searchWindowDays)
		summary, err := s.analyticsRepo.GetSearchSummary(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("failed to get search summary: %w", err)
		}
		return summary, nil
	})
}

func (s *analyticsService) GetDemographics(ctx context.Context) ([]*entity.DemographicEngagement, error) {
	return cached(ctx, s.cache, cacheKeyDemographics, func() ([]*entity.DemographicEngagement, error) {
		since := time.Now().AddDate(0, 0, -demographicsDays)
		buckets, err := s.analyticsRepo.GetDemographics(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("failed to get demographics: %w", err)
		}
		return buckets, nil
	})
}

func (s *analyticsService) GetReports(ctx context.Context) ([]*entity.EngagementReport, error) {
	return cached(ctx, s.cache, cacheKeyReports, func() ([]*entity.EngagementReport, error) {
		reports, err := s.analyticsRepo.GetReports(ctx, reportsLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to get engagement reports: %w", err)
		}
		return reports, nil
	})
}

func (s *analyticsService) GenerateWeeklyReport(ctx context.Context) error {
	if err := s.analyticsRepo.InsertWeeklyReport(ctx); err != nil {
		return fmt.Errorf("failed to generate weekly report: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cacheKeyReports); err != nil {
			logrus.Warnf("Failed to invalidate reports cache: %v", err)
		}
	}

	return nil
}

func (s *analyticsService) CleanupSearchLogs(ctx context.Context, retention time.Duration) (int64, error) {
	before := time.Now().Add(-retention)

	deleted, err := s.analyticsRepo.DeleteSearchLogsBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup search logs: %w", err)
	}

	return deleted, nil
}
