package calendar

import (
	"context"

	"meetsync/internal/event"
	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// Provider is a calendar backend adapter. Implementations exist for Google,
// Outlook, iCalendar feeds, and local-only storage. The orchestrator resolves
// and authenticates the integration before calling; adapters receive it
// already verified and always write the resulting event through local
// storage, whatever the remote call did.
type Provider interface {
	Type() model.CalendarType

	// CreateEvent pushes the event to the backend and stores the local
	// mirror. Whether a remote failure aborts the local write is
	// provider-specific.
	CreateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, input CreateEventInput) (event.Event, error)

	// UpdateEvent merges the partial input into existing and commits it.
	UpdateEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event, input UpdateEventInput) (event.Event, error)

	// DeleteEvent removes the event locally and, where supported, remotely.
	DeleteEvent(ctx context.Context, sc model.Scope, intg integration.Integration, existing event.Event) error

	// SyncEvents imports backend events into local storage additively and
	// returns the integration with lastSynced stamped.
	SyncEvents(ctx context.Context, sc model.Scope, intg integration.Integration) (integration.Integration, error)
}

// OAuthProvider is implemented by backends connected through the
// authorization-code flow.
type OAuthProvider interface {
	Provider

	AuthURL(state string) string

	// HandleAuthCallback exchanges the code, probes the backend for the
	// primary calendar when none is given, and inserts a new integration
	// row. Re-running the flow always inserts, supporting multiple
	// accounts per provider.
	HandleAuthCallback(ctx context.Context, sc model.Scope, input AuthCallbackInput) (integration.Integration, error)
}

// FeedProvider is implemented by backends connected through a feed URL.
type FeedProvider interface {
	Provider

	// ConnectFeed validates the URL serves iCalendar data and inserts a
	// new integration row. No token exchange is involved.
	ConnectFeed(ctx context.Context, sc model.Scope, input ConnectFeedInput) (integration.Integration, error)
}

// UseCase is the calendar orchestrator: it resolves the target integration,
// checks authentication, dispatches to the matching Provider, and degrades
// to local-only writes when the backend is unreachable for auth reasons.
type UseCase interface {
	CreateEvent(ctx context.Context, sc model.Scope, input CreateEventInput) (event.Event, error)
	GetEvent(ctx context.Context, sc model.Scope, id string) (event.Event, error)
	ListEvents(ctx context.Context, sc model.Scope, input ListEventsInput) ([]event.Event, error)
	UpdateEvent(ctx context.Context, sc model.Scope, id string, input UpdateEventInput) (event.Event, error)
	DeleteEvent(ctx context.Context, sc model.Scope, id string) error

	SyncEvents(ctx context.Context, sc model.Scope, input SyncInput) (SyncOutput, error)

	AuthURL(ctx context.Context, sc model.Scope, typ model.CalendarType, state string) (string, error)
	HandleAuthCallback(ctx context.Context, sc model.Scope, typ model.CalendarType, input AuthCallbackInput) (integration.Integration, error)
	ConnectFeed(ctx context.Context, sc model.Scope, input ConnectFeedInput) (integration.Integration, error)
}
