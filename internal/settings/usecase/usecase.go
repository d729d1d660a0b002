package usecase

import (
	"context"

	"meetsync/internal/model"
	"meetsync/internal/settings"
	"meetsync/internal/settings/repository"
	"meetsync/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new settings UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l}
}

// Get returns the acting user's settings, defaulting to the zero value.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (settings.GetOutput, error) {
	s, err := uc.repo.GetSettings(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Get GetSettings: %v", err)
		return settings.GetOutput{}, err
	}
	return settings.GetOutput{Settings: s}, nil
}

// Update overwrites the acting user's settings.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input settings.UpdateInput) (settings.UpdateOutput, error) {
	s, err := uc.repo.UpsertSettings(ctx, settings.Settings{
		UserID:                       sc.UserID,
		DefaultCalendarIntegrationID: input.DefaultCalendarIntegrationID,
		DefaultCalendarType:          input.DefaultCalendarType,
		Timezone:                     input.Timezone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpsertSettings: %v", err)
		return settings.UpdateOutput{}, err
	}
	return settings.UpdateOutput{Settings: s}, nil
}
