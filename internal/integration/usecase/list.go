package usecase

import (
	"context"

	"meetsync/internal/integration"
	repo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
)

// List returns all integrations of the acting user.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (integration.ListOutput, error) {
	ins, err := uc.repo.ListIntegrations(ctx, repo.ListIntegrationsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListIntegrations: %v", err)
		return integration.ListOutput{}, err
	}
	return integration.ListOutput{Integrations: ins}, nil
}

// Detail retrieves a single integration owned by the acting user.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (integration.DetailOutput, error) {
	in, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return integration.DetailOutput{}, err
	}
	return integration.DetailOutput{Integration: in}, nil
}

// getOwned loads an integration and verifies it belongs to the acting user.
// Lookup is by id alone so a foreign-owned id yields ErrNotOwned, not
// a silent not-found.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (integration.Integration, error) {
	in, err := uc.repo.GetOneIntegration(ctx, repo.GetOneIntegrationOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getOwned GetOneIntegration: %v", err)
		return integration.Integration{}, err
	}
	if in.ID == "" {
		return integration.Integration{}, integration.ErrIntegrationNotFound
	}
	if in.UserID != sc.UserID {
		return integration.Integration{}, integration.ErrNotOwned
	}
	return in, nil
}
