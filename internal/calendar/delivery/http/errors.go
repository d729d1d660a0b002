package http

import (
	"errors"

	"meetsync/internal/calendar"
	pkgErrors "meetsync/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrForbidden):
		return pkgErrors.NewHTTPError(403, "integration belongs to another user")
	case errors.Is(err, calendar.ErrEventNotFound):
		return pkgErrors.NewHTTPError(404, "event not found")
	case errors.Is(err, calendar.ErrIntegrationNotFound):
		return pkgErrors.NewHTTPError(404, "calendar integration not found")
	case errors.Is(err, calendar.ErrUnsupportedCalendarType):
		return pkgErrors.NewHTTPError(400, "unsupported calendar type")
	case errors.Is(err, calendar.ErrInvalidFeedURL):
		return pkgErrors.NewHTTPError(400, "URL does not serve iCalendar data")
	case errors.Is(err, calendar.ErrTypeMismatch):
		return pkgErrors.NewHTTPError(400, "integration type does not match")
	case errors.Is(err, calendar.ErrNotAuthenticated):
		return pkgErrors.NewHTTPError(401, "calendar integration is not authenticated")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
