package calendar

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/pkg/log"
)

// TokenRefresher trades a refresh token for a fresh token set. Both OAuth
// backends satisfy it.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error)
}

// Authenticator performs the shared token-freshness check. An expired token
// with no refresh token disconnects the integration; an expired token with
// one gets exactly one refresh attempt, persisting the rotated tokens on
// success and disconnecting on failure. Feed integrations have no token
// concept and pass as long as they are connected.
type Authenticator struct {
	l          log.Logger
	repo       integrationRepo.Repository
	refreshers map[model.CalendarType]TokenRefresher
	now        func() time.Time
}

func NewAuthenticator(l log.Logger, repo integrationRepo.Repository, refreshers map[model.CalendarType]TokenRefresher) *Authenticator {
	return &Authenticator{
		l:          l,
		repo:       repo,
		refreshers: refreshers,
		now:        time.Now,
	}
}

// IsAuthenticated reports whether the integration can be used for remote
// calls and returns it with any refreshed token fields applied. When the
// check disconnects the integration the updated record is persisted before
// returning false.
func (a *Authenticator) IsAuthenticated(ctx context.Context, intg integration.Integration) (integration.Integration, bool) {
	if !intg.IsConnected {
		return intg, false
	}
	if intg.Type == model.CalendarTypeICal {
		return intg, true
	}
	if !intg.TokenExpired(a.now()) {
		return intg, true
	}

	if intg.RefreshToken == "" {
		a.l.Warnf(ctx, "calendar.Authenticator.IsAuthenticated: integration %s token expired with no refresh token, disconnecting", intg.ID)
		return a.disconnect(ctx, intg), false
	}

	refresher, ok := a.refreshers[intg.Type]
	if !ok {
		a.l.Errorf(ctx, "calendar.Authenticator.IsAuthenticated: no refresher for type %s", intg.Type)
		return a.disconnect(ctx, intg), false
	}

	tok, err := refresher.Refresh(ctx, intg.RefreshToken)
	if err != nil {
		a.l.Warnf(ctx, "calendar.Authenticator.IsAuthenticated: refresh failed for integration %s: %v", intg.ID, err)
		return a.disconnect(ctx, intg), false
	}

	opt := integrationRepo.UpdateIntegrationOptions{
		ID:          intg.ID,
		AccessToken: tok.AccessToken,
		ExpiresAt:   tok.Expiry,
	}
	// some providers rotate the refresh token on every refresh
	if tok.RefreshToken != "" {
		opt.RefreshToken = tok.RefreshToken
	}

	updated, err := a.repo.UpdateIntegration(ctx, opt)
	if err != nil {
		a.l.Errorf(ctx, "calendar.Authenticator.IsAuthenticated: failed to persist refreshed tokens for integration %s: %v", intg.ID, err)
		return intg, false
	}
	return updated, true
}

func (a *Authenticator) disconnect(ctx context.Context, intg integration.Integration) integration.Integration {
	connected := false
	updated, err := a.repo.UpdateIntegration(ctx, integrationRepo.UpdateIntegrationOptions{
		ID:          intg.ID,
		IsConnected: &connected,
	})
	if err != nil {
		a.l.Errorf(ctx, "calendar.Authenticator.disconnect: failed to update integration %s: %v", intg.ID, err)
		intg.IsConnected = false
		return intg
	}
	return updated
}
