package usecase

import (
	"context"
	"fmt"

	"meetsync/internal/booking"
	"meetsync/internal/booking/repository"
	"meetsync/internal/calendar"
	"meetsync/internal/model"
)

// Create reserves a slot on the host's schedule. The calendar event is
// materialized first, through the host's resolved integration, so that a
// provider rejection leaves no dangling booking row. A degraded (local
// only) event is still a valid event, so auth failures do not block the
// invitee.
func (uc *implUseCase) Create(ctx context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	if !input.EndTime.After(input.StartTime) {
		return booking.CreateOutput{}, booking.ErrInvalidTimeRange
	}

	hostScope := model.Scope{UserID: input.HostUserID}
	ev, err := uc.calendar.CreateEvent(ctx, hostScope, calendar.CreateEventInput{
		Title:       fmt.Sprintf("Meeting with %s", input.InviteeName),
		Description: input.Notes,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Attendees:   []string{input.InviteeEmail},
	})
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.Create.CreateEvent: %v", err)
		return booking.CreateOutput{}, err
	}

	b, err := uc.repo.CreateBooking(ctx, repository.CreateBookingOptions{
		UserID:       input.HostUserID,
		InviteeName:  input.InviteeName,
		InviteeEmail: input.InviteeEmail,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Notes:        input.Notes,
		EventID:      ev.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.Create.CreateBooking: %v", err)
		return booking.CreateOutput{}, err
	}

	return booking.CreateOutput{Booking: b}, nil
}

// List returns the authenticated user's bookings.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (booking.ListOutput, error) {
	bs, err := uc.repo.ListBookings(ctx, repository.ListBookingsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "booking.usecase.List: %v", err)
		return booking.ListOutput{}, err
	}
	return booking.ListOutput{Bookings: bs}, nil
}
