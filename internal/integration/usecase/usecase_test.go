package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/integration"
	repo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/pkg/log"
)

type memIntegrationRepo struct {
	seq   int
	items map[string]integration.Integration
}

func newMemIntegrationRepo() *memIntegrationRepo {
	return &memIntegrationRepo{items: map[string]integration.Integration{}}
}

func (r *memIntegrationRepo) CreateIntegration(_ context.Context, opt repo.CreateIntegrationOptions) (integration.Integration, error) {
	r.seq++
	in := integration.Integration{
		ID:          fmt.Sprintf("i%d", r.seq),
		UserID:      opt.UserID,
		Type:        opt.Type,
		Name:        opt.Name,
		CalendarID:  opt.CalendarID,
		IsConnected: opt.IsConnected,
		IsPrimary:   opt.IsPrimary,
	}
	r.items[in.ID] = in
	return in, nil
}

func (r *memIntegrationRepo) GetOneIntegration(_ context.Context, opt repo.GetOneIntegrationOptions) (integration.Integration, error) {
	for _, in := range r.items {
		if opt.ID != "" && in.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && in.UserID != opt.UserID {
			continue
		}
		if opt.Type != "" && in.Type != opt.Type {
			continue
		}
		if opt.OnlyPrimary && !in.IsPrimary {
			continue
		}
		if opt.OnlyConnected && !in.IsConnected {
			continue
		}
		return in, nil
	}
	return integration.Integration{}, nil
}

func (r *memIntegrationRepo) ListIntegrations(_ context.Context, opt repo.ListIntegrationsOptions) ([]integration.Integration, error) {
	var out []integration.Integration
	for _, in := range r.items {
		if opt.UserID != "" && in.UserID != opt.UserID {
			continue
		}
		if opt.Type != "" && in.Type != opt.Type {
			continue
		}
		if opt.OnlyConnected && !in.IsConnected {
			continue
		}
		out = append(out, in)
	}
	return out, nil
}

func (r *memIntegrationRepo) UpdateIntegration(_ context.Context, opt repo.UpdateIntegrationOptions) (integration.Integration, error) {
	in, ok := r.items[opt.ID]
	if !ok {
		return integration.Integration{}, nil
	}
	if opt.Name != "" {
		in.Name = opt.Name
	}
	if opt.IsConnected != nil {
		in.IsConnected = *opt.IsConnected
	}
	if opt.IsPrimary != nil {
		in.IsPrimary = *opt.IsPrimary
	}
	r.items[in.ID] = in
	return in, nil
}

func (r *memIntegrationRepo) DeleteIntegration(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *memIntegrationRepo) ClearPrimary(_ context.Context, userID string, typ model.CalendarType) error {
	for id, in := range r.items {
		if in.UserID == userID && in.Type == typ && in.IsPrimary {
			in.IsPrimary = false
			r.items[id] = in
		}
	}
	return nil
}

// stubEventRepo only tracks the integration-delete cascade.
type stubEventRepo struct {
	deletedIntegrations []string
}

func (r *stubEventRepo) CreateEvent(context.Context, eventRepo.CreateEventOptions) (event.Event, error) {
	return event.Event{}, nil
}

func (r *stubEventRepo) GetOneEvent(context.Context, eventRepo.GetOneEventOptions) (event.Event, error) {
	return event.Event{}, nil
}

func (r *stubEventRepo) ListEvents(context.Context, eventRepo.ListEventsOptions) ([]event.Event, error) {
	return nil, nil
}

func (r *stubEventRepo) UpdateEvent(context.Context, eventRepo.UpdateEventOptions) (event.Event, error) {
	return event.Event{}, nil
}

func (r *stubEventRepo) DeleteEvent(context.Context, string) error { return nil }

func (r *stubEventRepo) DeleteEventsByIntegration(_ context.Context, integrationID string) error {
	r.deletedIntegrations = append(r.deletedIntegrations, integrationID)
	return nil
}

func seed(t *testing.T, r *memIntegrationRepo, userID string, typ model.CalendarType, primary bool) integration.Integration {
	t.Helper()
	in, err := r.CreateIntegration(context.Background(), repo.CreateIntegrationOptions{
		UserID: userID, Type: typ, Name: string(typ), IsConnected: true, IsPrimary: primary,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return in
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	r := newMemIntegrationRepo()
	uc := New(r, &stubEventRepo{}, log.NewNop())
	mine := seed(t, r, "u1", model.CalendarTypeGoogle, true)
	other := seed(t, r, "u2", model.CalendarTypeGoogle, true)

	t.Run("owned", func(t *testing.T) {
		out, err := uc.Detail(ctx, sc, mine.ID)
		if err != nil {
			t.Fatalf("Detail: %v", err)
		}
		if out.Integration.ID != mine.ID {
			t.Errorf("got %q, want %q", out.Integration.ID, mine.ID)
		}
	})

	t.Run("foreign is not owned", func(t *testing.T) {
		_, err := uc.Detail(ctx, sc, other.ID)
		if !errors.Is(err, integration.ErrNotOwned) {
			t.Fatalf("err = %v, want ErrNotOwned", err)
		}
	})

	t.Run("unknown is not found", func(t *testing.T) {
		_, err := uc.Detail(ctx, sc, "nope")
		if !errors.Is(err, integration.ErrIntegrationNotFound) {
			t.Fatalf("err = %v, want ErrIntegrationNotFound", err)
		}
	})
}

func TestSetPrimary(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	r := newMemIntegrationRepo()
	uc := New(r, &stubEventRepo{}, log.NewNop())
	first := seed(t, r, "u1", model.CalendarTypeGoogle, true)
	second := seed(t, r, "u1", model.CalendarTypeGoogle, false)
	outlook := seed(t, r, "u1", model.CalendarTypeOutlook, true)

	out, err := uc.SetPrimary(ctx, sc, second.ID)
	if err != nil {
		t.Fatalf("SetPrimary: %v", err)
	}
	if !out.Integration.IsPrimary {
		t.Error("promoted integration should be primary")
	}
	if r.items[first.ID].IsPrimary {
		t.Error("previous primary of the same type should be cleared")
	}
	if !r.items[outlook.ID].IsPrimary {
		t.Error("primary of a different type must be untouched")
	}
}

func TestDisconnect(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	r := newMemIntegrationRepo()
	uc := New(r, &stubEventRepo{}, log.NewNop())
	in := seed(t, r, "u1", model.CalendarTypeGoogle, true)

	out, err := uc.Disconnect(ctx, sc, in.ID)
	if err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if out.Integration.IsConnected {
		t.Error("integration should be disconnected")
	}
	if _, ok := r.items[in.ID]; !ok {
		t.Error("disconnect must keep the record")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	r := newMemIntegrationRepo()
	events := &stubEventRepo{}
	uc := New(r, events, log.NewNop())
	in := seed(t, r, "u1", model.CalendarTypeICal, false)

	if err := uc.Delete(ctx, sc, in.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := r.items[in.ID]; ok {
		t.Error("record should be gone")
	}
	if len(events.deletedIntegrations) != 1 || events.deletedIntegrations[0] != in.ID {
		t.Errorf("event cascade ran for %v, want [%s]", events.deletedIntegrations, in.ID)
	}
}
