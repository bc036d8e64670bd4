package worker

import (
	"context"
	"time"

	"github.com/clubhub/clubhub-api/internal/service"

	"github.com/sirupsen/logrus"
)

// SearchLogCleanupWorker periodically purges search logs older than the
// configured retention window.
type SearchLogCleanupWorker struct {
	analyticsService service.AnalyticsService
	interval         time.Duration
	retention        time.Duration
}

func NewSearchLogCleanupWorker(analyticsService service.AnalyticsService, interval, retention time.Duration) *SearchLogCleanupWorker {
	return &SearchLogCleanupWorker{
		analyticsService: analyticsService,
		interval:         interval,
		retention:        retention,
	}
}

func (w *SearchLogCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Search log cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Search log cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanupSearchLogs(ctx)
		}
	}
}

func (w *SearchLogCleanupWorker) cleanupSearchLogs(ctx context.Context) {
	logrus.Info("Starting search log cleanup")

	deleted, err := w.analyticsService.CleanupSearchLogs(ctx, w.retention)
	if err != nil {
		logrus.Errorf("Failed to cleanup search logs: %v", err)
		return
	}

	if deleted == 0 {
		logrus.Info("No search logs past retention")
		return
	}

	logrus.Infof("Search log cleanup completed: %d rows deleted", deleted)
}

// GetStats returns worker metadata for diagnostics
func (w *SearchLogCleanupWorker) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"worker_type": "search_log_cleanup",
		"interval":    w.interval.String(),
		"retention":   w.retention.String(),
	}
}
