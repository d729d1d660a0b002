package usecase

import (
	"context"
	"errors"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
)

// providerOp is one adapter call against an authenticated integration.
type providerOp func(p calendar.Provider, intg integration.Integration) (event.Event, error)

// dispatch is the single fallback-to-local combinator. It authenticates the
// target and runs op against the matching provider; when authentication
// fails, or the provider itself reports not-authenticated, the same op runs
// against the local provider with the integration's tags preserved, so the
// user-visible operation degrades instead of failing.
func (uc implUseCase) dispatch(ctx context.Context, tgt calendar.Target, op providerOp) (event.Event, error) {
	if tgt.Local() {
		return op(uc.local, integration.Integration{})
	}

	intg, ok := uc.auth.IsAuthenticated(ctx, tgt.Integration)
	if !ok {
		uc.l.Infof(ctx, "calendar.dispatch: integration %s unauthenticated, degrading to local write", tgt.Integration.ID)
		return op(uc.local, intg)
	}

	p, err := uc.registry.Provider(intg.Type)
	if err != nil {
		return event.Event{}, err
	}

	res, err := op(p, intg)
	if errors.Is(err, calendar.ErrNotAuthenticated) {
		uc.l.Infof(ctx, "calendar.dispatch: provider %s reported unauthenticated, degrading to local write", intg.Type)
		return op(uc.local, intg)
	}
	return res, err
}

// ownedEvent loads the event and verifies it belongs to the acting user.
func (uc implUseCase) ownedEvent(ctx context.Context, sc model.Scope, id string) (event.Event, error) {
	ev, err := uc.eventRepo.GetOneEvent(ctx, eventRepo.GetOneEventOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.ownedEvent: %v", err)
		return event.Event{}, err
	}
	if ev.ID == "" {
		return event.Event{}, calendar.ErrEventNotFound
	}
	if ev.UserID != sc.UserID {
		return event.Event{}, calendar.ErrForbidden
	}
	return ev, nil
}

// targetForEvent rebuilds the write target an existing event belongs to.
// A dangling integration reference degrades to local-only rather than
// failing the operation.
func (uc implUseCase) targetForEvent(ctx context.Context, ev event.Event) (calendar.Target, error) {
	if ev.LocalOnly() || ev.CalendarIntegrationID == "" {
		return calendar.Target{Kind: calendar.TargetLocalOnly}, nil
	}

	intg, err := uc.integrationRepo.GetOneIntegration(ctx, integrationRepo.GetOneIntegrationOptions{
		ID: ev.CalendarIntegrationID,
	})
	if err != nil {
		return calendar.Target{}, err
	}
	if intg.ID == "" {
		uc.l.Warnf(ctx, "calendar.targetForEvent: event %s references missing integration %s", ev.ID, ev.CalendarIntegrationID)
		return calendar.Target{Kind: calendar.TargetLocalOnly}, nil
	}
	if intg.Type != ev.CalendarType {
		return calendar.Target{}, calendar.ErrTypeMismatch
	}
	return calendar.Target{Kind: calendar.TargetExplicit, Integration: intg}, nil
}

func (uc implUseCase) scheduleReminders(eventID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderTimeout)
		defer cancel()
		if err := uc.reminders.ScheduleReminders(ctx, eventID); err != nil {
			uc.l.Warnf(ctx, "calendar.scheduleReminders: event %s: %v", eventID, err)
		}
	}()
}

func (uc implUseCase) clearReminders(eventID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderTimeout)
		defer cancel()
		if err := uc.reminders.ClearReminders(ctx, eventID); err != nil {
			uc.l.Warnf(ctx, "calendar.clearReminders: event %s: %v", eventID, err)
		}
	}()
}
