package usecase

import (
	"context"

	"meetsync/internal/calendar"
	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// AuthURL returns the consent page URL for an OAuth-backed provider.
func (uc implUseCase) AuthURL(ctx context.Context, sc model.Scope, typ model.CalendarType, state string) (string, error) {
	p, ok := uc.oauth[typ]
	if !ok {
		return "", calendar.ErrUnsupportedCalendarType
	}
	return p.AuthURL(state), nil
}

// HandleAuthCallback completes the OAuth flow for the given provider type
// and returns the newly inserted integration.
func (uc implUseCase) HandleAuthCallback(ctx context.Context, sc model.Scope, typ model.CalendarType, input calendar.AuthCallbackInput) (integration.Integration, error) {
	p, ok := uc.oauth[typ]
	if !ok {
		return integration.Integration{}, calendar.ErrUnsupportedCalendarType
	}
	return p.HandleAuthCallback(ctx, sc, input)
}

// ConnectFeed registers an iCalendar feed URL as a new integration.
func (uc implUseCase) ConnectFeed(ctx context.Context, sc model.Scope, input calendar.ConnectFeedInput) (integration.Integration, error) {
	return uc.feed.ConnectFeed(ctx, sc, input)
}
