package repository

import (
	"context"

	"meetsync/internal/booking"
)

// Repository defines data access for the Booking entity.
type Repository interface {
	CreateBooking(ctx context.Context, opt CreateBookingOptions) (booking.Booking, error)
	GetOneBooking(ctx context.Context, opt GetOneBookingOptions) (booking.Booking, error)
	ListBookings(ctx context.Context, opt ListBookingsOptions) ([]booking.Booking, error)
}
