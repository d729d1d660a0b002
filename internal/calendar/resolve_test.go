package calendar

import (
	"context"
	"errors"
	"testing"

	"meetsync/internal/integration"
	"meetsync/internal/model"
	"meetsync/internal/settings"
)

func TestResolveTarget(t *testing.T) {
	google1 := integration.Integration{ID: "1", UserID: "u1", Type: model.CalendarTypeGoogle, IsConnected: true, IsPrimary: true}
	google2 := integration.Integration{ID: "2", UserID: "u1", Type: model.CalendarTypeGoogle, IsConnected: true}
	outlook := integration.Integration{ID: "3", UserID: "u1", Type: model.CalendarTypeOutlook, IsConnected: true}
	all := []integration.Integration{google1, google2, outlook}

	tests := []struct {
		name         string
		explicitID   string
		settings     settings.Settings
		integrations []integration.Integration
		wantKind     TargetKind
		wantID       string
		wantErr      error
	}{
		{
			name:         "explicit id wins over everything",
			explicitID:   "3",
			settings:     settings.Settings{DefaultCalendarIntegrationID: "1"},
			integrations: all,
			wantKind:     TargetExplicit,
			wantID:       "3",
		},
		{
			name:         "explicit id not in list",
			explicitID:   "99",
			integrations: all,
			wantErr:      ErrIntegrationNotFound,
		},
		{
			name:         "settings default integration",
			settings:     settings.Settings{DefaultCalendarIntegrationID: "2"},
			integrations: all,
			wantKind:     TargetDefault,
			wantID:       "2",
		},
		{
			name:         "stale settings default falls through to primary of type",
			settings:     settings.Settings{DefaultCalendarIntegrationID: "99", DefaultCalendarType: model.CalendarTypeGoogle},
			integrations: all,
			wantKind:     TargetPrimary,
			wantID:       "1",
		},
		{
			name:         "primary of default type",
			settings:     settings.Settings{DefaultCalendarType: model.CalendarTypeGoogle},
			integrations: all,
			wantKind:     TargetPrimary,
			wantID:       "1",
		},
		{
			name:         "no primary, any connected of type",
			settings:     settings.Settings{DefaultCalendarType: model.CalendarTypeOutlook},
			integrations: all,
			wantKind:     TargetPrimary,
			wantID:       "3",
		},
		{
			name:         "default type with no integrations of it",
			settings:     settings.Settings{DefaultCalendarType: model.CalendarTypeICal},
			integrations: all,
			wantKind:     TargetLocalOnly,
		},
		{
			name:         "no default set, primary integration still wins",
			integrations: all,
			wantKind:     TargetPrimary,
			wantID:       "1",
		},
		{
			name:         "no default and no primary, any connected wins",
			integrations: []integration.Integration{google2, outlook},
			wantKind:     TargetPrimary,
			wantID:       "2",
		},
		{
			name:         "no default and nothing connected",
			integrations: []integration.Integration{{ID: "4", UserID: "u1", Type: model.CalendarTypeGoogle}},
			wantKind:     TargetLocalOnly,
		},
		{
			name:     "nothing configured",
			wantKind: TargetLocalOnly,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveTarget(tc.explicitID, tc.settings, tc.integrations)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != tc.wantKind {
				t.Errorf("expected kind %s, got %s", tc.wantKind, got.Kind)
			}
			if got.Integration.ID != tc.wantID {
				t.Errorf("expected integration %q, got %q", tc.wantID, got.Integration.ID)
			}
		})
	}
}

func TestResolverOwnership(t *testing.T) {
	repo := newMemIntegrationRepo(
		integration.Integration{ID: "mine", UserID: "u1", Type: model.CalendarTypeGoogle, IsConnected: true},
		integration.Integration{ID: "theirs", UserID: "u2", Type: model.CalendarTypeGoogle, IsConnected: true},
	)
	r := NewResolver(repo, &memSettingsRepo{})
	sc := model.Scope{UserID: "u1"}

	t.Run("owned explicit id resolves", func(t *testing.T) {
		tgt, err := r.Resolve(context.Background(), sc, "mine")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tgt.Kind != TargetExplicit || tgt.Integration.ID != "mine" {
			t.Errorf("unexpected target: %+v", tgt)
		}
	})

	t.Run("foreign explicit id is forbidden", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), sc, "theirs")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("unknown explicit id is not found", func(t *testing.T) {
		_, err := r.Resolve(context.Background(), sc, "nope")
		if !errors.Is(err, ErrIntegrationNotFound) {
			t.Fatalf("expected ErrIntegrationNotFound, got %v", err)
		}
	})
}
