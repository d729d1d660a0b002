package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/internal/settings"
)

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
		CreatedAt:    time.Now(),
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
	intg.UpdatedAt = time.Now()
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

type mockRefresher struct {
	token *oauth2.Token
	err   error
	calls int
}

func (m *mockRefresher) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.token, nil
}
