package google

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
	"meetsync/pkg/gcal"
	"meetsync/pkg/log"
)

const defaultName = "Google Calendar"

// Provider handles Google calendar integrations. Event writes are mirrored
// locally with synthesized external ids; the Calendar API is only called
// during the OAuth callback to discover the account's primary calendar.
// Remote events reach local storage through sync, not through live fetches.
type Provider struct {
	l               log.Logger
	eventRepo       eventRepo.Repository
	integrationRepo integrationRepo.Repository
	oauth           *gcal.OAuth

	// newClient is swappable so tests can point the calendar probe at a
	// fake server.
	newClient func(ctx context.Context, accessToken string) (*gcal.Client, error)
}

func New(l log.Logger, er eventRepo.Repository, ir integrationRepo.Repository, oauth *gcal.OAuth) *Provider {
	return &Provider{
		l:               l,
		eventRepo:       er,
		integrationRepo: ir,
		oauth:           oauth,
		newClient:       gcal.NewClientFromToken,
	}
}

func (p *Provider) Type() model.CalendarType {
	return model.CalendarTypeGoogle
}

func (p *Provider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// HandleAuthCallback exchanges the authorization code and inserts a new
// integration row. When the request does not name a calendar the account's
// primary calendar is probed; a probe failure falls back to the "primary"
// alias rather than failing the connect. The new row becomes primary when
// the user has no primary Google integration yet.
func (p *Provider) HandleAuthCallback(ctx context.Context, sc model.Scope, input calendar.AuthCallbackInput) (integration.Integration, error) {
	tok, err := p.oauth.Exchange(ctx, input.Code)
	if err != nil {
		p.l.Warnf(ctx, "calendar.google.HandleAuthCallback: %v", err)
		return integration.Integration{}, fmt.Errorf("google authorization failed: %w", err)
	}

	calendarID := input.CalendarID
	name := input.Name
	if calendarID == "" || calendarID == "primary" {
		calendarID = "primary"
		client, err := p.newClient(ctx, tok.AccessToken)
		if err == nil {
			if cal, probeErr := client.PrimaryCalendar(ctx); probeErr == nil {
				calendarID = cal.ID
				if name == "" {
					name = cal.Name
				}
			} else {
				p.l.Warnf(ctx, "calendar.google.HandleAuthCallback: primary calendar probe failed: %v", probeErr)
			}
		} else {
			p.l.Warnf(ctx, "calendar.google.HandleAuthCallback: failed to build calendar client: %v", err)
		}
	}
	if name == "" {
		name = defaultName
	}

	isPrimary, err := p.userHasNoPrimary(ctx, sc)
	if err != nil {
		return integration.Integration{}, err
	}

	intg, err := p.integrationRepo.CreateIntegration(ctx, integrationRepo.CreateIntegrationOptions{
		UserID:       sc.UserID,
		Type:         model.CalendarTypeGoogle,
		Name:         name,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
		CalendarID:   calendarID,
		IsConnected:  true,
		IsPrimary:    isPrimary,
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.google.HandleAuthCallback: %v", err)
		return integration.Integration{}, err
	}
	return intg, nil
}

func (p *Provider) userHasNoPrimary(ctx context.Context, sc model.Scope) (bool, error) {
	existing, err := p.integrationRepo.GetOneIntegration(ctx, integrationRepo.GetOneIntegrationOptions{
		UserID:      sc.UserID,
		Type:        model.CalendarTypeGoogle,
		OnlyPrimary: true,
	})
	if err != nil {
		return false, err
	}
	return existing.ID == "", nil
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
		ExternalID:            "google_" + uuid.NewString(),
		CalendarType:          model.CalendarTypeGoogle,
		CalendarIntegrationID: intg.ID,
		Attendees:             input.Attendees,
		Reminders:             input.Reminders,
		Timezone:              input.Timezone,
		Recurrence:            input.Recurrence,
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.google.CreateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

func (p *Provider) UpdateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event, input calendar.UpdateEventInput) (event.Event, error) {
	merged := calendar.ApplyUpdate(existing, input)

	ev, err := p.eventRepo.UpdateEvent(ctx, calendar.OverwriteOptions(merged))
	if err != nil {
		p.l.Errorf(ctx, "calendar.google.UpdateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

func (p *Provider) DeleteEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event) error {
	if err := p.eventRepo.DeleteEvent(ctx, existing.ID); err != nil {
		p.l.Errorf(ctx, "calendar.google.DeleteEvent: %v", err)
		return err
	}
	return nil
}

// SyncEvents stamps lastSynced. Google events are written through this
// service in the first place, so there is nothing to import.
func (p *Provider) SyncEvents(ctx context.Context, sc model.Scope, intg integration.Integration) (integration.Integration, error) {
	updated, err := p.integrationRepo.UpdateIntegration(ctx, integrationRepo.UpdateIntegrationOptions{
		ID:         intg.ID,
		LastSynced: time.Now(),
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.google.SyncEvents: %v", err)
		return intg, err
	}
	return updated, nil
}
