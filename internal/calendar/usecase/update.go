package usecase

import (
	"context"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// UpdateEvent applies a partial update to an owned event. Reassigning the
// event to an integration of the same type commits in place; reassigning
// across provider types becomes a move: create in the target, then
// best-effort removal of the old record.
func (uc implUseCase) UpdateEvent(ctx context.Context, sc model.Scope, id string, input calendar.UpdateEventInput) (event.Event, error) {
	existing, err := uc.ownedEvent(ctx, sc, id)
	if err != nil {
		return event.Event{}, err
	}

	if input.CalendarIntegrationID != "" && input.CalendarIntegrationID != existing.CalendarIntegrationID {
		return uc.reassignEvent(ctx, sc, existing, input)
	}

	tgt, err := uc.targetForEvent(ctx, existing)
	if err != nil {
		return event.Event{}, err
	}

	ev, err := uc.dispatch(ctx, tgt, func(p calendar.Provider, intg integration.Integration) (event.Event, error) {
		return p.UpdateEvent(ctx, sc, intg, existing, input)
	})
	if err != nil {
		return event.Event{}, err
	}

	if input.Reminders != nil || !input.StartTime.IsZero() {
		uc.scheduleReminders(ev.ID)
	}
	return ev, nil
}

// reassignEvent validates the new integration and either retags the event
// (same provider type) or moves it across providers.
func (uc implUseCase) reassignEvent(ctx context.Context, sc model.Scope, existing event.Event, input calendar.UpdateEventInput) (event.Event, error) {
	tgt, err := uc.resolver.Resolve(ctx, sc, input.CalendarIntegrationID)
	if err != nil {
		uc.l.Warnf(ctx, "calendar.reassignEvent: resolve failed: %v", err)
		return event.Event{}, err
	}

	if tgt.Integration.Type == existing.CalendarType {
		retagged := existing
		retagged.CalendarIntegrationID = tgt.Integration.ID
		ev, err := uc.dispatch(ctx, tgt, func(p calendar.Provider, intg integration.Integration) (event.Event, error) {
			return p.UpdateEvent(ctx, sc, intg, retagged, input)
		})
		if err != nil {
			return event.Event{}, err
		}
		return ev, nil
	}

	return uc.moveEvent(ctx, sc, existing, tgt, input)
}

// moveEvent implements the cross-provider move: a brand-new event is
// created in the target integration with the merged fields (dropping the
// old id and external id), then the old record is removed best-effort. The
// two steps are not transactional; a failed removal is logged and the new
// event is returned regardless.
func (uc implUseCase) moveEvent(ctx context.Context, sc model.Scope, existing event.Event, tgt calendar.Target, input calendar.UpdateEventInput) (event.Event, error) {
	merged := calendar.ApplyUpdate(existing, input)

	created, err := uc.dispatch(ctx, tgt, func(p calendar.Provider, intg integration.Integration) (event.Event, error) {
		return p.CreateEvent(ctx, sc, intg, calendar.CreateEventInput{
			Title:       merged.Title,
			Description: merged.Description,
			StartTime:   merged.StartTime,
			EndTime:     merged.EndTime,
			Location:    merged.Location,
			MeetingURL:  merged.MeetingURL,
			IsAllDay:    merged.IsAllDay,
			Attendees:   merged.Attendees,
			Reminders:   merged.Reminders,
			Timezone:    merged.Timezone,
			Recurrence:  merged.Recurrence,
		})
	})
	if err != nil {
		return event.Event{}, err
	}

	uc.removeMovedEvent(ctx, sc, existing)

	uc.clearReminders(existing.ID)
	if len(created.Reminders) > 0 {
		uc.scheduleReminders(created.ID)
	}
	return created, nil
}

// removeMovedEvent deletes the source record of a move. Failures are
// logged, never surfaced: the move already succeeded from the user's point
// of view, a leftover duplicate is the accepted worst case.
func (uc implUseCase) removeMovedEvent(ctx context.Context, sc model.Scope, existing event.Event) {
	tgt, err := uc.targetForEvent(ctx, existing)
	if err != nil {
		uc.l.Warnf(ctx, "calendar.removeMovedEvent: failed to load source integration for event %s: %v", existing.ID, err)
		tgt = calendar.Target{Kind: calendar.TargetLocalOnly}
	}

	if _, err := uc.dispatch(ctx, tgt, func(p calendar.Provider, intg integration.Integration) (event.Event, error) {
		return event.Event{}, p.DeleteEvent(ctx, sc, intg, existing)
	}); err != nil {
		uc.l.Warnf(ctx, "calendar.removeMovedEvent: failed to delete source event %s: %v", existing.ID, err)
	}
}
