package local

import (
	"context"
	"time"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/pkg/log"
)

// Provider stores events without any remote calls. It serves two roles:
// the backend for events that never had an integration, and the degraded
// write path when an external integration fails authentication. In the
// second case the resolved integration's type and id are kept on the event
// so a later sync can reconcile it.
type Provider struct {
	l               log.Logger
	eventRepo       eventRepo.Repository
	integrationRepo integrationRepo.Repository
}

func New(l log.Logger, er eventRepo.Repository, ir integrationRepo.Repository) *Provider {
	return &Provider{l: l, eventRepo: er, integrationRepo: ir}
}

func (p *Provider) Type() model.CalendarType {
	return model.CalendarTypeLocal
}

func (p *Provider) CreateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, input calendar.CreateEventInput) (event.Event, error) {
	typ := model.CalendarTypeLocal
	if intg.ID != "" {
		typ = intg.Type
	}

	ev, err := p.eventRepo.CreateEvent(ctx, eventRepo.CreateEventOptions{
		UserID:                sc.UserID,
		Title:                 input.Title,
		Description:           input.Description,
		StartTime:             input.StartTime,
		EndTime:               input.EndTime,
		Location:              input.Location,
		MeetingURL:            input.MeetingURL,
		IsAllDay:              input.IsAllDay,
		CalendarType:          typ,
		CalendarIntegrationID: intg.ID,
		Attendees:             input.Attendees,
		Reminders:             input.Reminders,
		Timezone:              input.Timezone,
		Recurrence:            input.Recurrence,
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.local.CreateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

func (p *Provider) UpdateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event, input calendar.UpdateEventInput) (event.Event, error) {
	merged := calendar.ApplyUpdate(existing, input)

	ev, err := p.eventRepo.UpdateEvent(ctx, calendar.OverwriteOptions(merged))
	if err != nil {
		p.l.Errorf(ctx, "calendar.local.UpdateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

func (p *Provider) DeleteEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event) error {
	if err := p.eventRepo.DeleteEvent(ctx, existing.ID); err != nil {
		p.l.Errorf(ctx, "calendar.local.DeleteEvent: %v", err)
		return err
	}
	return nil
}

// SyncEvents has nothing to import; it only stamps lastSynced when called
// against a real integration record.
func (p *Provider) SyncEvents(ctx context.Context, sc model.Scope, intg integration.Integration) (integration.Integration, error) {
	if intg.ID == "" {
		return intg, nil
	}
	updated, err := p.integrationRepo.UpdateIntegration(ctx, integrationRepo.UpdateIntegrationOptions{
		ID:         intg.ID,
		LastSynced: time.Now(),
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.local.SyncEvents: %v", err)
		return intg, err
	}
	return updated, nil
}
