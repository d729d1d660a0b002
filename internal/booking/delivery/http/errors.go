package http

import (
	"errors"

	"meetsync/internal/booking"
	"meetsync/internal/calendar"
	pkgErrors "meetsync/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Booking creation runs through the calendar orchestrator, so its errors can
// surface here too.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTimeRange):
		return pkgErrors.NewHTTPError(400, "end_time must be after start_time")
	case errors.Is(err, booking.ErrBookingNotFound):
		return pkgErrors.NewHTTPError(404, "booking not found")
	case errors.Is(err, calendar.ErrIntegrationNotFound):
		return pkgErrors.NewHTTPError(404, "calendar integration not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
