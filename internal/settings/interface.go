package settings

import (
	"context"

	"meetsync/internal/model"
)

// UseCase defines the business logic interface for user settings.
type UseCase interface {
	Get(ctx context.Context, sc model.Scope) (GetOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
}
