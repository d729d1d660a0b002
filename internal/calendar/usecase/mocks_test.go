package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/internal/settings"
)

type memEventRepo struct {
	mu    sync.Mutex
	items map[string]event.Event
	seq   int
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{items: make(map[string]event.Event)}
}

func (r *memEventRepo) CreateEvent(ctx context.Context, opt eventRepo.CreateEventOptions) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	ev := event.Event{
		ID:                    fmt.Sprintf("ev-%d", r.seq),
		UserID:                opt.UserID,
		Title:                 opt.Title,
		Description:           opt.Description,
		StartTime:             opt.StartTime,
		EndTime:               opt.EndTime,
		Location:              opt.Location,
		MeetingURL:            opt.MeetingURL,
		IsAllDay:              opt.IsAllDay,
		ExternalID:            opt.ExternalID,
		CalendarType:          opt.CalendarType,
		CalendarIntegrationID: opt.CalendarIntegrationID,
		Attendees:             opt.Attendees,
		Reminders:             opt.Reminders,
		Timezone:              opt.Timezone,
		Recurrence:            opt.Recurrence,
		CreatedAt:             time.Now(),
	}
	r.items[ev.ID] = ev
	return ev, nil
}

func (r *memEventRepo) GetOneEvent(ctx context.Context, opt eventRepo.GetOneEventOptions) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range r.items {
		if opt.ID != "" && ev.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && ev.UserID != opt.UserID {
			continue
		}
		if opt.ExternalID != "" && ev.ExternalID != opt.ExternalID {
			continue
		}
		return ev, nil
	}
	return event.Event{}, nil
}

func (r *memEventRepo) ListEvents(ctx context.Context, opt eventRepo.ListEventsOptions) ([]event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, ev := range r.items {
		if opt.UserID != "" && ev.UserID != opt.UserID {
			continue
		}
		if opt.CalendarType != "" && ev.CalendarType != opt.CalendarType {
			continue
		}
		if opt.IntegrationID != "" && ev.CalendarIntegrationID != opt.IntegrationID {
			continue
		}
		if !opt.From.IsZero() && !ev.EndTime.After(opt.From) {
			continue
		}
		if !opt.To.IsZero() && !ev.StartTime.Before(opt.To) {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

func (r *memEventRepo) UpdateEvent(ctx context.Context, opt eventRepo.UpdateEventOptions) (event.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ev, ok := r.items[opt.ID]
	if !ok {
		return event.Event{}, nil
	}
	ev.Title = opt.Title
	ev.Description = opt.Description
	ev.StartTime = opt.StartTime
	ev.EndTime = opt.EndTime
	ev.Location = opt.Location
	ev.MeetingURL = opt.MeetingURL
	ev.IsAllDay = opt.IsAllDay
	ev.ExternalID = opt.ExternalID
	ev.CalendarType = opt.CalendarType
	ev.CalendarIntegrationID = opt.CalendarIntegrationID
	ev.Attendees = opt.Attendees
	ev.Reminders = opt.Reminders
	ev.Timezone = opt.Timezone
	ev.Recurrence = opt.Recurrence
	ev.UpdatedAt = time.Now()
	r.items[opt.ID] = ev
	return ev, nil
}

func (r *memEventRepo) DeleteEvent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memEventRepo) DeleteEventsByIntegration(ctx context.Context, integrationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, ev := range r.items {
		if ev.CalendarIntegrationID == integrationID {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *memEventRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

type memIntegrationRepo struct {
	items map[string]integration.Integration
	seq   int
}

func newMemIntegrationRepo(seed ...integration.Integration) *memIntegrationRepo {
	r := &memIntegrationRepo{items: make(map[string]integration.Integration)}
	for _, intg := range seed {
		r.items[intg.ID] = intg
	}
	return r
}

func (r *memIntegrationRepo) CreateIntegration(ctx context.Context, opt integrationRepo.CreateIntegrationOptions) (integration.Integration, error) {
	r.seq++
	intg := integration.Integration{
		ID:           fmt.Sprintf("intg-%d", r.seq),
		UserID:       opt.UserID,
		Type:         opt.Type,
		Name:         opt.Name,
		AccessToken:  opt.AccessToken,
		RefreshToken: opt.RefreshToken,
		ExpiresAt:    opt.ExpiresAt,
		CalendarID:   opt.CalendarID,
		IsConnected:  opt.IsConnected,
		IsPrimary:    opt.IsPrimary,
	}
	r.items[intg.ID] = intg
	return intg, nil
}

func (r *memIntegrationRepo) GetOneIntegration(ctx context.Context, opt integrationRepo.GetOneIntegrationOptions) (integration.Integration, error) {
	for _, intg := range r.items {
		if opt.ID != "" && intg.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && intg.UserID != opt.UserID {
			continue
		}
		if opt.Type != "" && intg.Type != opt.Type {
			continue
		}
		if opt.OnlyPrimary && !intg.IsPrimary {
			continue
		}
		if opt.OnlyConnected && !intg.IsConnected {
			continue
		}
		return intg, nil
	}
	return integration.Integration{}, nil
}

func (r *memIntegrationRepo) ListIntegrations(ctx context.Context, opt integrationRepo.ListIntegrationsOptions) ([]integration.Integration, error) {
	var out []integration.Integration
	for _, intg := range r.items {
		if opt.UserID != "" && intg.UserID != opt.UserID {
			continue
		}
		if opt.Type != "" && intg.Type != opt.Type {
			continue
		}
		if opt.OnlyConnected && !intg.IsConnected {
			continue
		}
		out = append(out, intg)
	}
	return out, nil
}

func (r *memIntegrationRepo) UpdateIntegration(ctx context.Context, opt integrationRepo.UpdateIntegrationOptions) (integration.Integration, error) {
	intg, ok := r.items[opt.ID]
	if !ok {
		return integration.Integration{}, nil
	}
	if opt.Name != "" {
		intg.Name = opt.Name
	}
	if opt.AccessToken != "" {
		intg.AccessToken = opt.AccessToken
	}
	if opt.RefreshToken != "" {
		intg.RefreshToken = opt.RefreshToken
	}
	if !opt.ExpiresAt.IsZero() {
		intg.ExpiresAt = opt.ExpiresAt
	}
	if !opt.LastSynced.IsZero() {
		intg.LastSynced = opt.LastSynced
	}
	if opt.IsConnected != nil {
		intg.IsConnected = *opt.IsConnected
	}
	if opt.IsPrimary != nil {
		intg.IsPrimary = *opt.IsPrimary
	}
	r.items[opt.ID] = intg
	return intg, nil
}

func (r *memIntegrationRepo) DeleteIntegration(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memIntegrationRepo) ClearPrimary(ctx context.Context, userID string, typ model.CalendarType) error {
	for id, intg := range r.items {
		if intg.UserID == userID && intg.Type == typ && intg.IsPrimary {
			intg.IsPrimary = false
			r.items[id] = intg
		}
	}
	return nil
}

type memSettingsRepo struct {
	settings map[string]settings.Settings
}

func (r *memSettingsRepo) GetSettings(ctx context.Context, userID string) (settings.Settings, error) {
	return r.settings[userID], nil
}

// stubAuth marks listed integration ids as unauthenticated and flips their
// isConnected flag like the real check does.
type stubAuth struct {
	repo   *memIntegrationRepo
	failed map[string]bool
}

func (a *stubAuth) IsAuthenticated(ctx context.Context, intg integration.Integration) (integration.Integration, bool) {
	if !intg.IsConnected {
		return intg, false
	}
	if a.failed[intg.ID] {
		connected := false
		updated, _ := a.repo.UpdateIntegration(ctx, integrationRepo.UpdateIntegrationOptions{
			ID:          intg.ID,
			IsConnected: &connected,
		})
		return updated, false
	}
	return intg, true
}

// fakeProvider is a scriptable external backend writing through the shared
// in-memory event store.
type fakeProvider struct {
	typ        model.CalendarType
	events     *memEventRepo
	createErr  error
	deleteErr  error
	syncCalled int
}

func (p *fakeProvider) Type() model.CalendarType { return p.typ }

func (p *fakeProvider) CreateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, input calendar.CreateEventInput) (event.Event, error) {
	if p.createErr != nil {
		return event.Event{}, p.createErr
	}
	return p.events.CreateEvent(ctx, eventRepo.CreateEventOptions{
		UserID:                sc.UserID,
		Title:                 input.Title,
		Description:           input.Description,
		StartTime:             input.StartTime,
		EndTime:               input.EndTime,
		Location:              input.Location,
		MeetingURL:            input.MeetingURL,
		IsAllDay:              input.IsAllDay,
		ExternalID:            string(p.typ) + "-ext",
		CalendarType:          p.typ,
		CalendarIntegrationID: intg.ID,
		Attendees:             input.Attendees,
		Reminders:             input.Reminders,
		Timezone:              input.Timezone,
		Recurrence:            input.Recurrence,
	})
}

func (p *fakeProvider) UpdateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event, input calendar.UpdateEventInput) (event.Event, error) {
	merged := calendar.ApplyUpdate(existing, input)
	merged.CalendarIntegrationID = existing.CalendarIntegrationID
	return p.events.UpdateEvent(ctx, calendar.OverwriteOptions(merged))
}

func (p *fakeProvider) DeleteEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event) error {
	if p.deleteErr != nil {
		return p.deleteErr
	}
	return p.events.DeleteEvent(ctx, existing.ID)
}

func (p *fakeProvider) SyncEvents(ctx context.Context, sc model.Scope, intg integration.Integration) (integration.Integration, error) {
	p.syncCalled++
	intg.LastSynced = time.Now()
	return intg, nil
}

type fakeOAuthProvider struct {
	*fakeProvider
	integrations *memIntegrationRepo
}

func (p *fakeOAuthProvider) AuthURL(state string) string {
	return "https://auth.example/" + string(p.typ) + "?state=" + state
}

func (p *fakeOAuthProvider) HandleAuthCallback(ctx context.Context, sc model.Scope, input calendar.AuthCallbackInput) (integration.Integration, error) {
	return p.integrations.CreateIntegration(ctx, integrationRepo.CreateIntegrationOptions{
		UserID:      sc.UserID,
		Type:        p.typ,
		Name:        input.Name,
		CalendarID:  input.CalendarID,
		IsConnected: true,
	})
}

type fakeFeedProvider struct {
	*fakeProvider
	integrations *memIntegrationRepo
}

func (p *fakeFeedProvider) ConnectFeed(ctx context.Context, sc model.Scope, input calendar.ConnectFeedInput) (integration.Integration, error) {
	return p.integrations.CreateIntegration(ctx, integrationRepo.CreateIntegrationOptions{
		UserID:      sc.UserID,
		Type:        model.CalendarTypeICal,
		Name:        input.Name,
		CalendarID:  input.FeedURL,
		IsConnected: true,
	})
}

type recordingReminders struct {
	mu        sync.Mutex
	scheduled []string
	cleared   []string
}

func (r *recordingReminders) ScheduleReminders(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, eventID)
	return nil
}

func (r *recordingReminders) ClearReminders(ctx context.Context, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared = append(r.cleared, eventID)
	return nil
}

func (r *recordingReminders) scheduledCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.scheduled)
}
