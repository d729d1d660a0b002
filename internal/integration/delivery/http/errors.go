package http

import (
	"errors"

	"meetsync/internal/integration"
	pkgErrors "meetsync/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, integration.ErrIntegrationNotFound):
		return pkgErrors.NewHTTPError(404, "calendar integration not found")
	case errors.Is(err, integration.ErrNotOwned):
		return pkgErrors.NewHTTPError(403, "integration belongs to another user")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
