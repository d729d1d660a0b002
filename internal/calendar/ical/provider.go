package ical

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/pkg/ics"
	"meetsync/pkg/log"
)

const defaultName = "iCalendar Feed"

// Provider handles read-only iCalendar feed integrations. The feed URL is
// stored in the integration's calendarId slot and there is no token
// lifecycle. Events created against a feed integration are local mirrors
// only; the feed itself is ingested through SyncEvents.
type Provider struct {
	l               log.Logger
	eventRepo       eventRepo.Repository
	integrationRepo integrationRepo.Repository
	fetcher         *ics.Fetcher
	window          calendar.SyncWindow
	now             func() time.Time
}

func New(l log.Logger, er eventRepo.Repository, ir integrationRepo.Repository, fetcher *ics.Fetcher, window calendar.SyncWindow) *Provider {
	return &Provider{
		l:               l,
		eventRepo:       er,
		integrationRepo: ir,
		fetcher:         fetcher,
		window:          window,
		now:             time.Now,
	}
}

func (p *Provider) Type() model.CalendarType {
	return model.CalendarTypeICal
}

// ConnectFeed validates the URL actually serves iCalendar data, then
// inserts a new integration row. The new row becomes primary when the user
// has no primary feed integration yet.
func (p *Provider) ConnectFeed(ctx context.Context, sc model.Scope, input calendar.ConnectFeedInput) (integration.Integration, error) {
	if err := p.fetcher.Validate(ctx, input.FeedURL); err != nil {
		p.l.Warnf(ctx, "calendar.ical.ConnectFeed: feed validation failed for %s: %v", input.FeedURL, err)
		return integration.Integration{}, fmt.Errorf("%w: %v", calendar.ErrInvalidFeedURL, err)
	}

	name := input.Name
	if name == "" {
		name = defaultName
	}

	existing, err := p.integrationRepo.GetOneIntegration(ctx, integrationRepo.GetOneIntegrationOptions{
		UserID:      sc.UserID,
		Type:        model.CalendarTypeICal,
		OnlyPrimary: true,
	})
	if err != nil {
		return integration.Integration{}, err
	}

	intg, err := p.integrationRepo.CreateIntegration(ctx, integrationRepo.CreateIntegrationOptions{
		UserID:      sc.UserID,
		Type:        model.CalendarTypeICal,
		Name:        name,
		CalendarID:  input.FeedURL,
		IsConnected: true,
		IsPrimary:   existing.ID == "",
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.ical.ConnectFeed: %v", err)
		return integration.Integration{}, err
	}
	return intg, nil
}

func (p *Provider) CreateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, input calendar.CreateEventInput) (event.Event, error) {
	ev, err := p.eventRepo.CreateEvent(ctx, eventRepo.CreateEventOptions{
		UserID:                sc.UserID,
		Title:                 input.Title,
		Description:           input.Description,
		StartTime:             input.StartTime,
		EndTime:               input.EndTime,
		Location:              input.Location,
		MeetingURL:            input.MeetingURL,
		IsAllDay:              input.IsAllDay,
		ExternalID:            "ical_" + uuid.NewString(),
		CalendarType:          model.CalendarTypeICal,
		CalendarIntegrationID: intg.ID,
		Attendees:             input.Attendees,
		Reminders:             input.Reminders,
		Timezone:              input.Timezone,
		Recurrence:            input.Recurrence,
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.ical.CreateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

func (p *Provider) UpdateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event, input calendar.UpdateEventInput) (event.Event, error) {
	merged := calendar.ApplyUpdate(existing, input)

	ev, err := p.eventRepo.UpdateEvent(ctx, calendar.OverwriteOptions(merged))
	if err != nil {
		p.l.Errorf(ctx, "calendar.ical.UpdateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

func (p *Provider) DeleteEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event) error {
	if err := p.eventRepo.DeleteEvent(ctx, existing.ID); err != nil {
		p.l.Errorf(ctx, "calendar.ical.DeleteEvent: %v", err)
		return err
	}
	return nil
}

// SyncEvents fetches the feed and mirrors occurrences inside the sync
// window into local storage. The import is one-way and additive, keyed by
// the feed event's UID; cancelled entries are skipped.
func (p *Provider) SyncEvents(ctx context.Context, sc model.Scope, intg integration.Integration) (integration.Integration, error) {
	from, to := p.window.Range(p.now())

	feedEvents, err := p.fetcher.FetchEvents(ctx, intg.CalendarID, from, to)
	if err != nil {
		p.l.Warnf(ctx, "calendar.ical.SyncEvents: feed fetch failed for %s: %v", intg.CalendarID, err)
		return intg, fmt.Errorf("failed to fetch calendar feed: %w", err)
	}

	known, err := p.knownExternalIDs(ctx, intg.ID)
	if err != nil {
		return intg, err
	}

	for _, fe := range feedEvents {
		if fe.Cancelled() {
			continue
		}
		uid := fe.UID
		if uid == "" {
			uid = "ical_" + uuid.NewString()
		}
		if known[uid] {
			continue
		}
		if _, err := p.eventRepo.CreateEvent(ctx, eventRepo.CreateEventOptions{
			UserID:                sc.UserID,
			Title:                 fe.Title,
			Description:           fe.Description,
			StartTime:             fe.StartTime,
			EndTime:               fe.EndTime,
			Location:              fe.Location,
			IsAllDay:              fe.IsAllDay,
			ExternalID:            uid,
			CalendarType:          model.CalendarTypeICal,
			CalendarIntegrationID: intg.ID,
		}); err != nil {
			p.l.Errorf(ctx, "calendar.ical.SyncEvents: failed to mirror feed event %s: %v", uid, err)
			return intg, err
		}
	}

	updated, err := p.integrationRepo.UpdateIntegration(ctx, integrationRepo.UpdateIntegrationOptions{
		ID:         intg.ID,
		LastSynced: p.now(),
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.ical.SyncEvents: %v", err)
		return intg, err
	}
	return updated, nil
}

func (p *Provider) knownExternalIDs(ctx context.Context, integrationID string) (map[string]bool, error) {
	local, err := p.eventRepo.ListEvents(ctx, eventRepo.ListEventsOptions{
		IntegrationID: integrationID,
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.ical.knownExternalIDs: %v", err)
		return nil, err
	}
	known := make(map[string]bool, len(local))
	for _, ev := range local {
		if ev.ExternalID != "" {
			known[ev.ExternalID] = true
		}
	}
	return known, nil
}
