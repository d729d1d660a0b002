package http

import (
	"time"

	"meetsync/internal/booking"
)

// --- Request DTOs ---

type createReq struct {
	HostUserID   string    `json:"host_user_id"  binding:"required"`
	InviteeName  string    `json:"invitee_name"  binding:"required,min=1,max=255"`
	InviteeEmail string    `json:"invitee_email" binding:"required,email"`
	StartTime    time.Time `json:"start_time"    binding:"required"`
	EndTime      time.Time `json:"end_time"      binding:"required"`
	Notes        string    `json:"notes"         binding:"max=2000"`
}

func (r createReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		HostUserID:   r.HostUserID,
		InviteeName:  r.InviteeName,
		InviteeEmail: r.InviteeEmail,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Notes:        r.Notes,
	}
}

// --- Response DTOs ---

type bookingResp struct {
	ID           string    `json:"id"`
	InviteeName  string    `json:"invitee_name"`
	InviteeEmail string    `json:"invitee_email"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Notes        string    `json:"notes,omitempty"`
	EventID      string    `json:"event_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func newBookingResp(b booking.Booking) bookingResp {
	return bookingResp{
		ID:           b.ID,
		InviteeName:  b.InviteeName,
		InviteeEmail: b.InviteeEmail,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Notes:        b.Notes,
		EventID:      b.EventID,
		CreatedAt:    b.CreatedAt,
	}
}

type createResp struct {
	Booking bookingResp `json:"booking"`
}

func (h *handler) newCreateResp(out booking.CreateOutput) createResp {
	return createResp{Booking: newBookingResp(out.Booking)}
}

type listResp struct {
	Bookings []bookingResp `json:"bookings"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out booking.ListOutput) listResp {
	items := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		items[i] = newBookingResp(b)
	}
	return listResp{Bookings: items, Total: len(items)}
}
