package usecase

import (
	"context"

	"meetsync/internal/integration"
	repo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
)

// Disconnect sets isConnected=false on the integration. The record and its
// provider-side tokens are kept; no remote revocation is attempted.
func (uc *implUseCase) Disconnect(ctx context.Context, sc model.Scope, id string) (integration.DisconnectOutput, error) {
	in, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return integration.DisconnectOutput{}, err
	}

	connected := false
	updated, err := uc.repo.UpdateIntegration(ctx, repo.UpdateIntegrationOptions{
		ID:          in.ID,
		IsConnected: &connected,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Disconnect UpdateIntegration: %v", err)
		return integration.DisconnectOutput{}, err
	}

	return integration.DisconnectOutput{Integration: updated}, nil
}

// Delete hard-deletes the integration and every event mirrored from it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	in, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.events.DeleteEventsByIntegration(ctx, in.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEventsByIntegration: %v", err)
		return err
	}
	if err := uc.repo.DeleteIntegration(ctx, in.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteIntegration: %v", err)
		return err
	}

	uc.l.Infof(ctx, "integration %s deleted with its mirrored events", in.ID)
	return nil
}
