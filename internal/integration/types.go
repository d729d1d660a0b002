package integration

import (
	"time"

	"meetsync/internal/model"
)

// Integration is one user's connection to one external calendar account.
// For iCal integrations CalendarID holds the feed URL and the token fields
// stay empty.
type Integration struct {
	ID           string
	UserID       string
	Type         model.CalendarType
	Name         string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CalendarID   string
	LastSynced   time.Time
	IsConnected  bool
	IsPrimary    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TokenExpired reports whether the access token's expiry is in the past.
// A zero ExpiresAt means the provider has no token lifetime (iCal feeds).
func (i Integration) TokenExpired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// --- UseCase Inputs/Outputs ---

type ListOutput struct {
	Integrations []Integration
}

type DetailOutput struct {
	Integration Integration
}

type SetPrimaryOutput struct {
	Integration Integration
}

type DisconnectOutput struct {
	Integration Integration
}
