package repository

import (
	"context"

	"meetsync/internal/event"
)

// Repository defines all data access methods for the Event entity.
// The event store is the source of truth of last resort: provider adapters
// always write through it, whether or not the remote call succeeded.
type Repository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (event.Event, error)
	GetOneEvent(ctx context.Context, opt GetOneEventOptions) (event.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]event.Event, error)
	UpdateEvent(ctx context.Context, opt UpdateEventOptions) (event.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	// DeleteEventsByIntegration removes every event mirrored from the given
	// integration. Used by the integration-delete cascade.
	DeleteEventsByIntegration(ctx context.Context, integrationID string) error
}
