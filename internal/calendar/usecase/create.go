package usecase

import (
	"context"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// CreateEvent resolves the target integration (explicit id, settings
// default, primary of the default type, local-only), authenticates it, and
// creates the event through the matching provider, degrading to a tagged
// local write when authentication fails.
func (uc implUseCase) CreateEvent(ctx context.Context, sc model.Scope, input calendar.CreateEventInput) (event.Event, error) {
	tgt, err := uc.resolver.Resolve(ctx, sc, input.CalendarIntegrationID)
	if err != nil {
		uc.l.Warnf(ctx, "calendar.CreateEvent: resolve failed: %v", err)
		return event.Event{}, err
	}

	ev, err := uc.dispatch(ctx, tgt, func(p calendar.Provider, intg integration.Integration) (event.Event, error) {
		return p.CreateEvent(ctx, sc, intg, input)
	})
	if err != nil {
		return event.Event{}, err
	}

	if len(ev.Reminders) > 0 {
		uc.scheduleReminders(ev.ID)
	}
	return ev, nil
}
