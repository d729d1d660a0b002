package calendar

import (
	"context"

	"meetsync/internal/integration"
	integrationRepo "meetsync/internal/integration/repository"
	"meetsync/internal/model"
	"meetsync/internal/settings"
)

// ResolveTarget picks the write target for a mutating operation from the
// user's own integrations, in precedence order: explicit id, settings
// default, primary of the default type, any primary, local-only. A settings
// default that no longer exists falls through to the next level; an
// explicit id that is not in the list is an error, since callers pass only
// validated ids. With no default preference at all the user still lands on
// their primary integration, so connecting a calendar is enough to route
// writes to it without touching settings.
func ResolveTarget(explicitID string, st settings.Settings, userIntegrations []integration.Integration) (Target, error) {
	if explicitID != "" {
		for _, intg := range userIntegrations {
			if intg.ID == explicitID {
				return Target{Kind: TargetExplicit, Integration: intg}, nil
			}
		}
		return Target{}, ErrIntegrationNotFound
	}

	if st.DefaultCalendarIntegrationID != "" {
		for _, intg := range userIntegrations {
			if intg.ID == st.DefaultCalendarIntegrationID {
				return Target{Kind: TargetDefault, Integration: intg}, nil
			}
		}
	}

	// A configured default type narrows the candidates to that type;
	// otherwise every integration competes.
	var fallback *integration.Integration
	for i, intg := range userIntegrations {
		if st.DefaultCalendarType.External() && intg.Type != st.DefaultCalendarType {
			continue
		}
		if intg.IsPrimary {
			return Target{Kind: TargetPrimary, Integration: intg}, nil
		}
		if fallback == nil && intg.IsConnected {
			fallback = &userIntegrations[i]
		}
	}
	if fallback != nil {
		return Target{Kind: TargetPrimary, Integration: *fallback}, nil
	}

	return Target{Kind: TargetLocalOnly}, nil
}

// Resolver loads the data ResolveTarget needs and adds the ownership check
// an explicit id requires: a foreign integration is forbidden, not absent.
type Resolver struct {
	integrationRepo integrationRepo.Repository
	settingsRepo    settingsRepo
}

type settingsRepo interface {
	GetSettings(ctx context.Context, userID string) (settings.Settings, error)
}

func NewResolver(ir integrationRepo.Repository, sr settingsRepo) Resolver {
	return Resolver{integrationRepo: ir, settingsRepo: sr}
}

// Resolve returns the write target for the user. With a non-empty explicitID
// the integration is fetched directly so a foreign-owned id surfaces as
// ErrForbidden before any precedence logic runs.
func (r Resolver) Resolve(ctx context.Context, sc model.Scope, explicitID string) (Target, error) {
	if explicitID != "" {
		intg, err := r.ownedIntegration(ctx, sc, explicitID)
		if err != nil {
			return Target{}, err
		}
		return Target{Kind: TargetExplicit, Integration: intg}, nil
	}

	st, err := r.settingsRepo.GetSettings(ctx, sc.UserID)
	if err != nil {
		return Target{}, err
	}

	list, err := r.integrationRepo.ListIntegrations(ctx, integrationRepo.ListIntegrationsOptions{
		UserID: sc.UserID,
	})
	if err != nil {
		return Target{}, err
	}

	return ResolveTarget("", st, list)
}

// ownedIntegration fetches the integration by id alone and distinguishes
// missing from foreign-owned.
func (r Resolver) ownedIntegration(ctx context.Context, sc model.Scope, id string) (integration.Integration, error) {
	intg, err := r.integrationRepo.GetOneIntegration(ctx, integrationRepo.GetOneIntegrationOptions{
		ID: id,
	})
	if err != nil {
		return integration.Integration{}, err
	}
	if intg.ID == "" {
		return integration.Integration{}, ErrIntegrationNotFound
	}
	if intg.UserID != sc.UserID {
		return integration.Integration{}, ErrForbidden
	}
	return intg, nil
}
