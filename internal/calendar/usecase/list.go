package usecase

import (
	"context"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
	"meetsync/internal/model"
)

func (uc implUseCase) GetEvent(ctx context.Context, sc model.Scope, id string) (event.Event, error) {
	return uc.ownedEvent(ctx, sc, id)
}

// ListEvents returns locally mirrored events in the requested range. An
// explicit integration filter is ownership-checked first: a foreign id is
// an error, not an empty result.
func (uc implUseCase) ListEvents(ctx context.Context, sc model.Scope, input calendar.ListEventsInput) ([]event.Event, error) {
	typ := input.Type
	if input.IntegrationID != "" {
		tgt, err := uc.resolver.Resolve(ctx, sc, input.IntegrationID)
		if err != nil {
			return nil, err
		}
		typ = tgt.Integration.Type
	}

	events, err := uc.eventRepo.ListEvents(ctx, eventRepo.ListEventsOptions{
		UserID:        sc.UserID,
		CalendarType:  typ,
		IntegrationID: input.IntegrationID,
		From:          input.From,
		To:            input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}
