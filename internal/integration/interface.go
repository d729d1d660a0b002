package integration

import (
	"context"

	"meetsync/internal/model"
)

// UseCase defines the business logic interface for managing calendar
// integrations. Connecting new integrations happens in the calendar domain
// (OAuth callbacks and feed registration); this domain manages the records.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)

	// SetPrimary marks the integration as the primary one of its type for
	// the user, clearing any previous primary of the same (user, type).
	SetPrimary(ctx context.Context, sc model.Scope, id string) (SetPrimaryOutput, error)

	// Disconnect flips isConnected off without deleting the record or
	// revoking provider-side tokens.
	Disconnect(ctx context.Context, sc model.Scope, id string) (DisconnectOutput, error)

	// Delete removes the integration and cascades to its mirrored events.
	Delete(ctx context.Context, sc model.Scope, id string) error
}
