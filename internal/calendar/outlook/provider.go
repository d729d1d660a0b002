package outlook

import (
	"context"
	"fmt"
	"time"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/pkg/log"
	"meetsync/pkg/msgraph"
)

const defaultName = "Outlook Calendar"

// Provider handles Outlook calendar integrations against Microsoft Graph.
// Unlike the Google adapter it makes live Graph calls: create must succeed
// remotely before anything is stored locally, while update and delete
// commit locally even when the remote call fails, since local storage is
// the source of truth of last resort.
type Provider struct {
	l               log.Logger
	eventRepo       eventRepo.Repository
	integrationRepo integrationRepo.Repository
	client          *msgraph.Client
	oauth           *msgraph.OAuth
	window          calendar.SyncWindow
	now             func() time.Time
}

func New(l log.Logger, er eventRepo.Repository, ir integrationRepo.Repository, client *msgraph.Client, oauth *msgraph.OAuth, window calendar.SyncWindow) *Provider {
	return &Provider{
		l:               l,
		eventRepo:       er,
		integrationRepo: ir,
		client:          client,
		oauth:           oauth,
		window:          window,
		now:             time.Now,
	}
}

func (p *Provider) Type() model.CalendarType {
	return model.CalendarTypeOutlook
}

func (p *Provider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

// HandleAuthCallback exchanges the authorization code and inserts a new
// integration row, probing Graph for the account's default calendar when
// none is named. The new row becomes primary when the user has no primary
// Outlook integration yet.
func (p *Provider) HandleAuthCallback(ctx context.Context, sc model.Scope, input calendar.AuthCallbackInput) (integration.Integration, error) {
	tok, err := p.oauth.Exchange(ctx, input.Code)
	if err != nil {
		p.l.Warnf(ctx, "calendar.outlook.HandleAuthCallback: %v", err)
		return integration.Integration{}, fmt.Errorf("outlook authorization failed: %w", err)
	}

	calendarID := input.CalendarID
	name := input.Name
	if calendarID == "" {
		if cal, probeErr := p.client.DefaultCalendar(ctx, tok.AccessToken); probeErr == nil {
			calendarID = cal.ID
			if name == "" {
				name = cal.Name
			}
		} else {
			p.l.Warnf(ctx, "calendar.outlook.HandleAuthCallback: default calendar probe failed: %v", probeErr)
		}
	}
	if name == "" {
		name = defaultName
	}

	existing, err := p.integrationRepo.GetOneIntegration(ctx, integrationRepo.GetOneIntegrationOptions{
		UserID:      sc.UserID,
		Type:        model.CalendarTypeOutlook,
		OnlyPrimary: true,
	})
	if err != nil {
		return integration.Integration{}, err
	}

	intg, err := p.integrationRepo.CreateIntegration(ctx, integrationRepo.CreateIntegrationOptions{
		UserID:       sc.UserID,
		Type:         model.CalendarTypeOutlook,
		Name:         name,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
		CalendarID:   calendarID,
		IsConnected:  true,
		IsPrimary:    existing.ID == "",
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.outlook.HandleAuthCallback: %v", err)
		return integration.Integration{}, err
	}
	return intg, nil
}

// CreateEvent pushes the event to Graph first. A remote failure propagates
// and leaves no local record behind.
func (p *Provider) CreateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, input calendar.CreateEventInput) (event.Event, error) {
	payload := toGraphEvent(event.Event{
		Title:       input.Title,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Location:    input.Location,
		MeetingURL:  input.MeetingURL,
		IsAllDay:    input.IsAllDay,
		Attendees:   input.Attendees,
		Timezone:    input.Timezone,
	})

	created, err := p.client.CreateEvent(ctx, intg.AccessToken, payload)
	if err != nil {
		p.l.Warnf(ctx, "calendar.outlook.CreateEvent: graph create failed: %v", err)
		return event.Event{}, fmt.Errorf("failed to create outlook event: %w", err)
	}

	meetingURL := input.MeetingURL
	if meetingURL == "" && created.OnlineMeeting != nil {
		meetingURL = created.OnlineMeeting.JoinURL
	}

	ev, err := p.eventRepo.CreateEvent(ctx, eventRepo.CreateEventOptions{
		UserID:                sc.UserID,
		Title:                 input.Title,
		Description:           input.Description,
		StartTime:             input.StartTime,
		EndTime:               input.EndTime,
		Location:              input.Location,
		MeetingURL:            meetingURL,
		IsAllDay:              input.IsAllDay,
		ExternalID:            created.ID,
		CalendarType:          model.CalendarTypeOutlook,
		CalendarIntegrationID: intg.ID,
		Attendees:             input.Attendees,
		Reminders:             input.Reminders,
		Timezone:              input.Timezone,
		Recurrence:            input.Recurrence,
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.outlook.CreateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

// UpdateEvent pushes the merged fields to Graph and commits locally whether
// or not the push succeeded.
func (p *Provider) UpdateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event, input calendar.UpdateEventInput) (event.Event, error) {
	merged := calendar.ApplyUpdate(existing, input)

	if existing.ExternalID != "" {
		if _, err := p.client.GetEvent(ctx, intg.AccessToken, existing.ExternalID); err != nil {
			p.l.Warnf(ctx, "calendar.outlook.UpdateEvent: graph lookup failed for %s, committing locally: %v", existing.ExternalID, err)
		} else if err := p.client.UpdateEvent(ctx, intg.AccessToken, existing.ExternalID, toGraphEvent(merged)); err != nil {
			p.l.Warnf(ctx, "calendar.outlook.UpdateEvent: graph update failed for %s, committing locally: %v", existing.ExternalID, err)
		}
	}

	ev, err := p.eventRepo.UpdateEvent(ctx, calendar.OverwriteOptions(merged))
	if err != nil {
		p.l.Errorf(ctx, "calendar.outlook.UpdateEvent: %v", err)
		return event.Event{}, err
	}
	return ev, nil
}

// DeleteEvent removes the event from Graph best-effort, then locally.
func (p *Provider) DeleteEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event) error {
	if existing.ExternalID != "" {
		if err := p.client.DeleteEvent(ctx, intg.AccessToken, existing.ExternalID); err != nil {
			p.l.Warnf(ctx, "calendar.outlook.DeleteEvent: graph delete failed for %s, deleting locally: %v", existing.ExternalID, err)
		}
	}
	if err := p.eventRepo.DeleteEvent(ctx, existing.ID); err != nil {
		p.l.Errorf(ctx, "calendar.outlook.DeleteEvent: %v", err)
		return err
	}
	return nil
}

// SyncEvents imports the Graph calendar view inside the sync window. The
// import is one-way and additive: events whose external id is already
// mirrored are left untouched, nothing is updated or deleted.
func (p *Provider) SyncEvents(ctx context.Context, sc model.Scope, intg integration.Integration) (integration.Integration, error) {
	from, to := p.window.Range(p.now())

	remote, err := p.client.CalendarView(ctx, intg.AccessToken, from, to)
	if err != nil {
		p.l.Warnf(ctx, "calendar.outlook.SyncEvents: graph calendar view failed: %v", err)
		return intg, fmt.Errorf("failed to fetch outlook calendar view: %w", err)
	}

	known, err := p.knownExternalIDs(ctx, intg.ID)
	if err != nil {
		return intg, err
	}

	for _, gev := range remote {
		if gev.ID == "" || known[gev.ID] {
			continue
		}
		mapped := fromGraphEvent(gev)
		if _, err := p.eventRepo.CreateEvent(ctx, eventRepo.CreateEventOptions{
			UserID:                sc.UserID,
			Title:                 mapped.Title,
			Description:           mapped.Description,
			StartTime:             mapped.StartTime,
			EndTime:               mapped.EndTime,
			Location:              mapped.Location,
			MeetingURL:            mapped.MeetingURL,
			IsAllDay:              mapped.IsAllDay,
			ExternalID:            mapped.ExternalID,
			CalendarType:          model.CalendarTypeOutlook,
			CalendarIntegrationID: intg.ID,
			Attendees:             mapped.Attendees,
			Timezone:              mapped.Timezone,
		}); err != nil {
			p.l.Errorf(ctx, "calendar.outlook.SyncEvents: failed to mirror event %s: %v", gev.ID, err)
			return intg, err
		}
	}

	updated, err := p.integrationRepo.UpdateIntegration(ctx, integrationRepo.UpdateIntegrationOptions{
		ID:         intg.ID,
		LastSynced: p.now(),
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.outlook.SyncEvents: %v", err)
		return intg, err
	}
	return updated, nil
}

func (p *Provider) knownExternalIDs(ctx context.Context, integrationID string) (map[string]bool, error) {
	local, err := p.eventRepo.ListEvents(ctx, eventRepo.ListEventsOptions{
		IntegrationID: integrationID,
	})
	if err != nil {
		p.l.Errorf(ctx, "calendar.outlook.knownExternalIDs: %v", err)
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
