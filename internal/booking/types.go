package booking

import "time"

// Booking is a third party's reservation of a time slot on a user's
// schedule. Creating one materializes a calendar event through the user's
// resolved calendar integration; EventID references that event.
type Booking struct {
	ID           string
	UserID       string
	InviteeName  string
	InviteeEmail string
	StartTime    time.Time
	EndTime      time.Time
	Notes        string
	EventID      string
	CreatedAt    time.Time
}

// --- UseCase Inputs/Outputs ---

// CreateInput is submitted by the invitee, not the calendar owner.
// HostUserID identifies whose schedule is being booked.
type CreateInput struct {
	HostUserID   string
	InviteeName  string
	InviteeEmail string
	StartTime    time.Time
	EndTime      time.Time
	Notes        string
}

type CreateOutput struct {
	Booking Booking
}

type ListOutput struct {
	Bookings []Booking
}
