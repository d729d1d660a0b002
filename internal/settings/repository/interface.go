package repository

import (
	"context"
	"errors"

	"meetsync/internal/settings"
)

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToUpsert = errors.New("failed to upsert record")
)

// Repository defines data access for per-user Settings.
type Repository interface {
	// GetSettings returns the user's settings, or the zero value when the
	// user has never saved any.
	GetSettings(ctx context.Context, userID string) (settings.Settings, error)
	UpsertSettings(ctx context.Context, s settings.Settings) (settings.Settings, error)
}
