package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"meetsync/internal/calendar"
	calendarHTTP "meetsync/internal/calendar/delivery/http"
	"meetsync/internal/calendar/google"
	"meetsync/internal/calendar/ical"
	"meetsync/internal/calendar/local"
	"meetsync/internal/calendar/outlook"
	calendarUC "meetsync/internal/calendar/usecase"
	eventRepoPg "meetsync/internal/event/repository/postgre"
	integrationRepoPg "meetsync/internal/integration/repository/postgre"
	"meetsync/internal/middleware"
	"meetsync/internal/model"
	"meetsync/internal/reminder"
	reminderRepoPg "meetsync/internal/reminder/repository/postgre"
	settingsRepoPg "meetsync/internal/settings/repository/postgre"
)

// setupCalendarDomain wires the calendar orchestrator: repositories, the
// provider adapters, target resolution, token refresh, and the HTTP layer.
// The use case is returned so the booking domain can create events through it.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (calendar.UseCase, error) {
	// 1. Repositories
	eventRepo := eventRepoPg.New(srv.postgresDB, srv.l)
	integrationRepo := integrationRepoPg.New(srv.postgresDB, srv.l)
	settingsRepo := settingsRepoPg.New(srv.postgresDB, srv.l)
	reminderRepo := reminderRepoPg.New(srv.postgresDB, srv.l)

	reminders := reminder.NewService(reminderRepo, eventRepo, srv.l)

	// 2. Provider adapters
	localProvider := local.New(srv.l, eventRepo, integrationRepo)
	googleProvider := google.New(srv.l, eventRepo, integrationRepo, srv.googleOAuth)
	outlookProvider := outlook.New(srv.l, eventRepo, integrationRepo, srv.outlookClient, srv.outlookOAuth, srv.syncWindow)
	icalProvider := ical.New(srv.l, eventRepo, integrationRepo, srv.feedFetcher, srv.syncWindow)

	registry := calendar.NewRegistry(localProvider, googleProvider, outlookProvider, icalProvider)
	resolver := calendar.NewResolver(integrationRepo, settingsRepo)
	auth := calendar.NewAuthenticator(srv.l, integrationRepo, map[model.CalendarType]calendar.TokenRefresher{
		model.CalendarTypeGoogle:  srv.googleOAuth,
		model.CalendarTypeOutlook: srv.outlookOAuth,
	})

	// 3. UseCase
	uc := calendarUC.New(srv.l, registry, resolver, auth, eventRepo, integrationRepo,
		reminders, localProvider, googleProvider, outlookProvider, icalProvider)

	// 4. HTTP Handler + Routes: /api/v1/events, /api/v1/calendar/connect
	h := calendarHTTP.New(srv.l, uc)
	calendarHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return uc, nil
}
