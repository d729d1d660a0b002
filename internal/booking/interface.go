package booking

import (
	"context"

	"meetsync/internal/model"
)

// UseCase defines the business logic interface for bookings.
type UseCase interface {
	// Create reserves a slot on the host's schedule and materializes the
	// matching calendar event. Called without authentication, on behalf of
	// the invitee.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// List returns the authenticated user's bookings.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
}
