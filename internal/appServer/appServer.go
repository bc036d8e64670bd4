package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clubhub/clubhub-api/config"
	repository "github.com/clubhub/clubhub-api/internal/database/postgres"
	rediscache "github.com/clubhub/clubhub-api/internal/database/redis"
	"github.com/clubhub/clubhub-api/internal/service"
	"github.com/clubhub/clubhub-api/internal/transport"
	"github.com/clubhub/clubhub-api/internal/worker"

	"github.com/clubhub/clubhub-api/pkg/postgres"
	"github.com/clubhub/clubhub-api/pkg/redis"
	"github.com/clubhub/clubhub-api/pkg/scheduler"
	"github.com/clubhub/clubhub-api/pkg/telegram"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	// Initialize database
	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	studentRepo := repository.NewStudentRepository(db)
	clubRepo := repository.NewClubRepository(db)
	eventRepo := repository.NewEventRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize analytics read cache
	var analyticsCache service.AnalyticsCache
	if cfg.Cache.Enabled {
		redisClient := redis.NewRedisClient(&cfg.Redis)
		defer redisClient.Close()

		analyticsCache = rediscache.NewCacheRepository(redisClient, cfg.Cache.TTL)
		logrus.Info("Analytics cache initialized")
	} else {
		logrus.Warn("Analytics cache disabled, reads go straight to the store")
	}

	// Initialize Telegram bot
	var telegramBot *telegram.Bot
	if cfg.Telegram.Enabled && cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
		logrus.Info("Telegram bot initialized")
	} else {
		logrus.Warn("Telegram bot token not provided, notifications disabled")
	}

	// Initialize services
	studentService := service.NewStudentService(studentRepo, eventRepo)
	clubService := service.NewClubService(clubRepo)
	eventService := service.NewEventService(eventRepo, analyticsRepo)
	invitationService := service.NewInvitationService(invitationRepo)
	adminService := service.NewAdminService(adminRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo, analyticsCache)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize and start report scheduler
	if cfg.Reports.Enabled {
		reportScheduler := scheduler.NewScheduler(analyticsService, cfg.Reports.Interval, telegramBot, cfg.Telegram.ChatID)
		go reportScheduler.Start(ctx)
		logrus.Info("Report scheduler started")
	}

	// Initialize search log cleanup worker
	retention := time.Duration(cfg.Worker.RetentionDays) * 24 * time.Hour
	cleanupWorker := worker.NewSearchLogCleanupWorker(analyticsService, cfg.Worker.CleanupInterval, retention)
	go cleanupWorker.Start(ctx)
	logrus.Info("Cleanup worker started")

	// Initialize handlers
	studentHandler := transport.NewStudentHandler(studentService)
	clubHandler := transport.NewClubHandler(clubService)
	eventHandler := transport.NewEventHandler(eventService)
	invitationHandler := transport.NewInvitationHandler(invitationService)
	adminHandler := transport.NewAdminHandler(adminService)
	analyticsHandler := transport.NewAnalyticsHandler(analyticsService)

	// Setup HTTP server
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		router := transport.InitRoutes(studentHandler, clubHandler, eventHandler, invitationHandler, adminHandler, analyticsHandler)
		if err := srv.Run(cfg, router); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
