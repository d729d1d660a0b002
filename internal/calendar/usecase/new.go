package usecase

import (
	"context"
	"time"

	"meetsync/internal/calendar"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/internal/reminder"
	"meetsync/pkg/log"
)

const reminderTimeout = 10 * time.Second

// authenticator abstracts the token-freshness check for tests.
type authenticator interface {
	IsAuthenticated(ctx context.Context, intg integration.Integration) (integration.Integration, bool)
}

type implUseCase struct {
	l               log.Logger
	registry        calendar.Registry
	resolver        calendar.Resolver
	auth            authenticator
	eventRepo       eventRepo.Repository
	integrationRepo integrationRepo.Repository
	reminders       reminder.Service
	local           calendar.Provider
	oauth           map[model.CalendarType]calendar.OAuthProvider
	feed            calendar.FeedProvider
}

// New builds the calendar orchestrator. The local provider doubles as the
// degraded write path when an external backend fails authentication.
func New(
	l log.Logger,
	registry calendar.Registry,
	resolver calendar.Resolver,
	auth authenticator,
	er eventRepo.Repository,
	ir integrationRepo.Repository,
	reminders reminder.Service,
	local calendar.Provider,
	google calendar.OAuthProvider,
	outlook calendar.OAuthProvider,
	feed calendar.FeedProvider,
) calendar.UseCase {
	return implUseCase{
		l:               l,
		registry:        registry,
		resolver:        resolver,
		auth:            auth,
		eventRepo:       er,
		integrationRepo: ir,
		reminders:       reminders,
		local:           local,
		oauth: map[model.CalendarType]calendar.OAuthProvider{
			model.CalendarTypeGoogle:  google,
			model.CalendarTypeOutlook: outlook,
		},
		feed: feed,
	}
}
