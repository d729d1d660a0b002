package usecase

import (
	"context"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// DeleteEvent removes an owned event through its owning provider. When the
// integration cannot be authenticated the local mirror is still removed.
func (uc implUseCase) DeleteEvent(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.ownedEvent(ctx, sc, id)
	if err != nil {
		return err
	}

	tgt, err := uc.targetForEvent(ctx, existing)
	if err != nil {
		return err
	}

	if _, err := uc.dispatch(ctx, tgt, func(p calendar.Provider, intg integration.Integration) (event.Event, error) {
		return event.Event{}, p.DeleteEvent(ctx, sc, intg, existing)
	}); err != nil {
		return err
	}

	uc.clearReminders(existing.ID)
	return nil
}
