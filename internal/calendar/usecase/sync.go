package usecase

import (
	"context"

	"meetsync/internal/calendar"
	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
)

// SyncEvents imports backend events for one integration, or for every
// connected integration of the user when no id is given. Per-integration
// failures are reported in the result instead of aborting the batch.
func (uc implUseCase) SyncEvents(ctx context.Context, sc model.Scope, input calendar.SyncInput) (calendar.SyncOutput, error) {
	var targets []integration.Integration

	if input.IntegrationID != "" {
		tgt, err := uc.resolver.Resolve(ctx, sc, input.IntegrationID)
		if err != nil {
			return calendar.SyncOutput{}, err
		}
		targets = []integration.Integration{tgt.Integration}
	} else {
		list, err := uc.integrationRepo.ListIntegrations(ctx, integrationRepo.ListIntegrationsOptions{
			UserID:        sc.UserID,
			OnlyConnected: true,
		})
		if err != nil {
			uc.l.Errorf(ctx, "calendar.SyncEvents: %v", err)
			return calendar.SyncOutput{}, err
		}
		targets = list
	}

	out := calendar.SyncOutput{Results: make([]calendar.SyncResult, 0, len(targets))}
	for _, intg := range targets {
		out.Results = append(out.Results, uc.syncOne(ctx, sc, intg))
	}
	return out, nil
}

func (uc implUseCase) syncOne(ctx context.Context, sc model.Scope, intg integration.Integration) calendar.SyncResult {
	result := calendar.SyncResult{IntegrationID: intg.ID, Type: intg.Type}

	authed, ok := uc.auth.IsAuthenticated(ctx, intg)
	if !ok {
		result.Err = calendar.ErrNotAuthenticated.Error()
		return result
	}

	p, err := uc.registry.Provider(authed.Type)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	if _, err := p.SyncEvents(ctx, sc, authed); err != nil {
		uc.l.Warnf(ctx, "calendar.syncOne: integration %s: %v", intg.ID, err)
		result.Err = err.Error()
		return result
	}

	result.Synced = true
	return result
}
