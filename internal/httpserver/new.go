package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"meetsync/internal/calendar"
	"meetsync/pkg/gcal"
	"meetsync/pkg/ics"
	"meetsync/pkg/log"
	"meetsync/pkg/msgraph"
)

// HTTPServer holds all dependencies for the HTTP server. Domain wiring
// happens in the domain_*.go files off these shared pieces.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	jwtSecret   string

	// Storage
	postgresDB *sql.DB

	// Calendar backends
	googleOAuth   *gcal.OAuth
	outlookOAuth  *msgraph.OAuth
	outlookClient *msgraph.Client
	feedFetcher   *ics.Fetcher
	syncWindow    calendar.SyncWindow
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	JWTSecret   string

	PostgresDB *sql.DB

	GoogleOAuth   *gcal.OAuth
	OutlookOAuth  *msgraph.OAuth
	OutlookClient *msgraph.Client
	FeedFetcher   *ics.Fetcher
	SyncWindow    calendar.SyncWindow
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:             logger,
		gin:           gin.Default(),
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		jwtSecret:     cfg.JWTSecret,
		postgresDB:    cfg.PostgresDB,
		googleOAuth:   cfg.GoogleOAuth,
		outlookOAuth:  cfg.OutlookOAuth,
		outlookClient: cfg.OutlookClient,
		feedFetcher:   cfg.FeedFetcher,
		syncWindow:    cfg.SyncWindow,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.jwtSecret == "" {
		return errors.New("jwt secret is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	return nil
}
