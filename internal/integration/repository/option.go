package repository

import (
	"time"

	"meetsync/internal/model"
)

// CreateIntegrationOptions holds parameters for inserting a new Integration.
type CreateIntegrationOptions struct {
	UserID       string
	Type         model.CalendarType
	Name         string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CalendarID   string
	IsConnected  bool
	IsPrimary    bool
}

// GetOneIntegrationOptions holds filter parameters for fetching a single
// Integration. All non-zero fields are applied as AND conditions.
type GetOneIntegrationOptions struct {
	ID            string
	UserID        string
	Type          model.CalendarType
	OnlyPrimary   bool
	OnlyConnected bool
}

// ListIntegrationsOptions holds filter parameters for listing Integrations.
type ListIntegrationsOptions struct {
	UserID        string
	Type          model.CalendarType
	OnlyConnected bool
}

// UpdateIntegrationOptions holds parameters for updating an Integration.
// String fields are kept when empty; time fields are kept when zero;
// boolean flags are only applied when non-nil.
type UpdateIntegrationOptions struct {
	ID           string
	Name         string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	LastSynced   time.Time
	IsConnected  *bool
	IsPrimary    *bool
}
