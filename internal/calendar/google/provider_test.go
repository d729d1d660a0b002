package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/pkg/gcal"
	"meetsync/pkg/log"
)

type memEventRepo struct {
	items map[string]event.Event
	seq   int
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{items: make(map[string]event.Event)}
}

func (r *memEventRepo) CreateEvent(ctx context.Context, opt eventRepo.CreateEventOptions) (event.Event, error) {
	r.seq++
	ev := event.Event{
		ID:                    fmt.Sprintf("ev-%d", r.seq),
		UserID:                opt.UserID,
		Title:                 opt.Title,
		StartTime:             opt.StartTime,
		EndTime:               opt.EndTime,
		ExternalID:            opt.ExternalID,
		CalendarType:          opt.CalendarType,
		CalendarIntegrationID: opt.CalendarIntegrationID,
		Reminders:             opt.Reminders,
	}
	r.items[ev.ID] = ev
	return ev, nil
}

func (r *memEventRepo) GetOneEvent(ctx context.Context, opt eventRepo.GetOneEventOptions) (event.Event, error) {
	return r.items[opt.ID], nil
}

func (r *memEventRepo) ListEvents(ctx context.Context, opt eventRepo.ListEventsOptions) ([]event.Event, error) {
	return nil, nil
}

func (r *memEventRepo) UpdateEvent(ctx context.Context, opt eventRepo.UpdateEventOptions) (event.Event, error) {
	ev := r.items[opt.ID]
	ev.Title = opt.Title
	ev.ExternalID = opt.ExternalID
	ev.CalendarType = opt.CalendarType
	ev.CalendarIntegrationID = opt.CalendarIntegrationID
	r.items[opt.ID] = ev
	return ev, nil
}

func (r *memEventRepo) DeleteEvent(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memEventRepo) DeleteEventsByIntegration(ctx context.Context, integrationID string) error {
	return nil
}

type memIntegrationRepo struct {
	items map[string]integration.Integration
	seq   int
}

func newMemIntegrationRepo() *memIntegrationRepo {
	return &memIntegrationRepo{items: make(map[string]integration.Integration)}
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
		return intg, nil
	}
	return integration.Integration{}, nil
}

func (r *memIntegrationRepo) ListIntegrations(ctx context.Context, opt integrationRepo.ListIntegrationsOptions) ([]integration.Integration, error) {
	return nil, nil
}

func (r *memIntegrationRepo) UpdateIntegration(ctx context.Context, opt integrationRepo.UpdateIntegrationOptions) (integration.Integration, error) {
	intg := r.items[opt.ID]
	if !opt.LastSynced.IsZero() {
		intg.LastSynced = opt.LastSynced
	}
	r.items[opt.ID] = intg
	return intg, nil
}

func (r *memIntegrationRepo) DeleteIntegration(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memIntegrationRepo) ClearPrimary(ctx context.Context, userID string, typ model.CalendarType) error {
	return nil
}

// rewriteTransport redirects every request of the Google SDK client to the
// test server.
type rewriteTransport struct {
	host string
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	u, _ := url.Parse(t.host)
	req.URL.Scheme = u.Scheme
	req.URL.Host = u.Host
	return http.DefaultTransport.RoundTrip(req)
}

var sc = model.Scope{UserID: "u1"}

func TestCreateEvent(t *testing.T) {
	events := newMemEventRepo()
	p := New(log.NewNop(), events, newMemIntegrationRepo(), nil)
	intg := integration.Integration{ID: "g1", UserID: "u1", Type: model.CalendarTypeGoogle, IsConnected: true}

	ev, err := p.CreateEvent(context.Background(), sc, intg, calendar.CreateEventInput{
		Title:     "Standup",
		StartTime: time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 6, 2, 9, 15, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ev.ExternalID, "google_") {
		t.Errorf("expected synthesized external id, got %q", ev.ExternalID)
	}
	if ev.CalendarType != model.CalendarTypeGoogle || ev.CalendarIntegrationID != "g1" {
		t.Errorf("unexpected tags: %+v", ev)
	}
}

func TestSyncEventsStampsLastSynced(t *testing.T) {
	integrations := newMemIntegrationRepo()
	intg, _ := integrations.CreateIntegration(context.Background(), integrationRepo.CreateIntegrationOptions{
		UserID: "u1", Type: model.CalendarTypeGoogle, IsConnected: true,
	})
	p := New(log.NewNop(), newMemEventRepo(), integrations, nil)

	updated, err := p.SyncEvents(context.Background(), sc, intg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LastSynced.IsZero() {
		t.Error("expected lastSynced stamped")
	}
}

func TestHandleAuthCallback(t *testing.T) {
	newOAuth := func(t *testing.T) (*gcal.OAuth, string) {
		t.Helper()
		tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1","expires_in":3600,"token_type":"Bearer"}`))
		}))
		t.Cleanup(tokenSrv.Close)

		oauth := gcal.NewOAuth("client", "secret", "http://localhost/callback")
		oauth.SetEndpoint(tokenSrv.URL+"/auth", tokenSrv.URL+"/token")
		return oauth, tokenSrv.URL
	}

	t.Run("probe failure falls back to the primary alias", func(t *testing.T) {
		oauth, _ := newOAuth(t)
		integrations := newMemIntegrationRepo()
		p := New(log.NewNop(), newMemEventRepo(), integrations, oauth)
		p.newClient = func(ctx context.Context, accessToken string) (*gcal.Client, error) {
			return nil, errors.New("probe unavailable")
		}

		intg, err := p.HandleAuthCallback(context.Background(), sc, calendar.AuthCallbackInput{Code: "code-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intg.AccessToken != "at-1" || intg.RefreshToken != "rt-1" {
			t.Errorf("expected exchanged tokens stored, got %+v", intg)
		}
		if intg.CalendarID != "primary" {
			t.Errorf("expected primary alias, got %q", intg.CalendarID)
		}
		if intg.Name != defaultName {
			t.Errorf("expected default name, got %q", intg.Name)
		}
		if !intg.IsConnected || !intg.IsPrimary {
			t.Errorf("expected first integration connected and primary, got %+v", intg)
		}
	})

	t.Run("probe resolves the real primary calendar", func(t *testing.T) {
		oauth, _ := newOAuth(t)
		calSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/users/me/calendarList") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"id":"alice@example.com","summary":"Alice","primary":true}]}`))
		}))
		t.Cleanup(calSrv.Close)

		integrations := newMemIntegrationRepo()
		p := New(log.NewNop(), newMemEventRepo(), integrations, oauth)
		p.newClient = func(ctx context.Context, accessToken string) (*gcal.Client, error) {
			return gcal.NewClientFromHTTP(ctx, &http.Client{Transport: rewriteTransport{host: calSrv.URL}})
		}

		intg, err := p.HandleAuthCallback(context.Background(), sc, calendar.AuthCallbackInput{Code: "code-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if intg.CalendarID != "alice@example.com" {
			t.Errorf("expected probed calendar id, got %q", intg.CalendarID)
		}
		if intg.Name != "Alice" {
			t.Errorf("expected probed name, got %q", intg.Name)
		}
	})

	t.Run("second callback inserts a non-primary row", func(t *testing.T) {
		oauth, _ := newOAuth(t)
		integrations := newMemIntegrationRepo()
		p := New(log.NewNop(), newMemEventRepo(), integrations, oauth)
		p.newClient = func(ctx context.Context, accessToken string) (*gcal.Client, error) {
			return nil, errors.New("probe unavailable")
		}

		first, err := p.HandleAuthCallback(context.Background(), sc, calendar.AuthCallbackInput{Code: "code-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := p.HandleAuthCallback(context.Background(), sc, calendar.AuthCallbackInput{Code: "code-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.ID == second.ID {
			t.Error("expected a new integration row per callback")
		}
		if second.IsPrimary {
			t.Error("expected second integration not primary")
		}
		if len(integrations.items) != 2 {
			t.Errorf("expected 2 rows, got %d", len(integrations.items))
		}
	})
}
