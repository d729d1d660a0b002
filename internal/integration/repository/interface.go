package repository

import (
	"context"

	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// Repository defines all data access methods for the Integration entity.
type Repository interface {
	CreateIntegration(ctx context.Context, opt CreateIntegrationOptions) (integration.Integration, error)
	GetOneIntegration(ctx context.Context, opt GetOneIntegrationOptions) (integration.Integration, error)
	ListIntegrations(ctx context.Context, opt ListIntegrationsOptions) ([]integration.Integration, error)
	UpdateIntegration(ctx context.Context, opt UpdateIntegrationOptions) (integration.Integration, error)
	DeleteIntegration(ctx context.Context, id string) error

	// ClearPrimary unsets isPrimary on every integration of the given
	// (user, type). Called before setting a new primary so at most one
	// row per (user, type) carries the flag.
	ClearPrimary(ctx context.Context, userID string, typ model.CalendarType) error
}
