package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"meetsync/config"
	_ "meetsync/docs" // Swagger docs
	"meetsync/internal/calendar"
	"meetsync/internal/httpserver"
	"meetsync/pkg/gcal"
	"meetsync/pkg/ics"
	"meetsync/pkg/log"
	"meetsync/pkg/msgraph"
)

const defaultFeedCacheTTL = 15 * time.Minute

// @title       MeetSync API
// @description Scheduling service syncing events across Google Calendar, Outlook, and iCalendar feeds.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration (.env is optional, real env wins)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MeetSync API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to ping postgres: ", err)
		return
	}
	logger.Info(ctx, "Postgres connected")

	// 4. Calendar backends
	googleOAuth := gcal.NewOAuth(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
	outlookOAuth := msgraph.NewOAuth(cfg.Microsoft.ClientID, cfg.Microsoft.ClientSecret, cfg.Microsoft.RedirectURL, cfg.Microsoft.Tenant)
	outlookClient := msgraph.NewClient()

	feedTTL := defaultFeedCacheTTL
	if cfg.Sync.FeedCacheTTL != "" {
		parsed, ttlErr := time.ParseDuration(cfg.Sync.FeedCacheTTL)
		if ttlErr != nil {
			logger.Warnf(ctx, "Invalid feed cache TTL %q, using %s: %v", cfg.Sync.FeedCacheTTL, defaultFeedCacheTTL, ttlErr)
		} else {
			feedTTL = parsed
		}
	}
	feedFetcher := ics.NewFetcher(feedTTL)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		JWTSecret:   cfg.JWT.Secret,

		PostgresDB: db,

		GoogleOAuth:   googleOAuth,
		OutlookOAuth:  outlookOAuth,
		OutlookClient: outlookClient,
		FeedFetcher:   feedFetcher,
		SyncWindow: calendar.SyncWindow{
			PastDays:   cfg.Sync.PastDays,
			FutureDays: cfg.Sync.FutureDays,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
