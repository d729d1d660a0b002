package repository

import "time"

// CreateBookingOptions holds parameters for inserting a new Booking.
type CreateBookingOptions struct {
	UserID       string
	InviteeName  string
	InviteeEmail string
	StartTime    time.Time
	EndTime      time.Time
	Notes        string
	EventID      string
}

// GetOneBookingOptions holds filter parameters for fetching one Booking.
type GetOneBookingOptions struct {
	ID     string
	UserID string
}

// ListBookingsOptions holds filter parameters for listing Bookings.
type ListBookingsOptions struct {
	UserID string
	From   time.Time
	To     time.Time
}
