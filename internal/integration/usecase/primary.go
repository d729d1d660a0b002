package usecase

import (
	"context"

	"meetsync/internal/integration"
	repo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
)

// SetPrimary marks the integration as primary for its (user, type).
// The previous primary is cleared first so at most one integration per
// (user, type) carries the flag.
func (uc *implUseCase) SetPrimary(ctx context.Context, sc model.Scope, id string) (integration.SetPrimaryOutput, error) {
	in, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return integration.SetPrimaryOutput{}, err
	}

	if err := uc.repo.ClearPrimary(ctx, sc.UserID, in.Type); err != nil {
		uc.l.Errorf(ctx, "uc.SetPrimary ClearPrimary: %v", err)
		return integration.SetPrimaryOutput{}, err
	}

	primary := true
	updated, err := uc.repo.UpdateIntegration(ctx, repo.UpdateIntegrationOptions{
		ID:        in.ID,
		IsPrimary: &primary,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetPrimary UpdateIntegration: %v", err)
		return integration.SetPrimaryOutput{}, err
	}

	return integration.SetPrimaryOutput{Integration: updated}, nil
}
