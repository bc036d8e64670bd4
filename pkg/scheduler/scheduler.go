package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/clubhub/clubhub-api/internal/service"
	"github.com/clubhub/clubhub-api/pkg/telegram"

	"github.com/sirupsen/logrus"
)

// Scheduler appends an engagement report snapshot on a fixed interval and
// optionally pings a telegram chat when one lands.
type Scheduler struct {
	analyticsService service.AnalyticsService
	interval         time.Duration
	bot              *telegram.Bot
	chatID           string
}

func NewScheduler(analyticsService service.AnalyticsService, interval time.Duration, bot *telegram.Bot, chatID string) *Scheduler {
	return &Scheduler{
		analyticsService: analyticsService,
		interval:         interval,
		bot:              bot,
		chatID:           chatID,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logrus.Info("Report scheduler started")

	for {
		select {
		case <-ticker.C:
			s.generateReport(ctx)
		case <-ctx.Done():
			logrus.Info("Report scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) generateReport(ctx context.Context) {
	if err := s.analyticsService.GenerateWeeklyReport(ctx); err != nil {
		logrus.Errorf("Error generating scheduled report: %v", err)
		return
	}

	logrus.Info("Scheduled engagement report generated")

	if s.bot != nil && s.chatID != "" {
		msg := fmt.Sprintf("Engagement report generated at %s", time.Now().Format(time.RFC3339))
		if err := s.bot.SendMessage(s.chatID, msg); err != nil {
			logrus.Warnf("Failed to send report notification: %v", err)
		}
	}
}
