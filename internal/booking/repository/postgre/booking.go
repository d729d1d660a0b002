package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"meetsync/internal/booking"
	repo "meetsync/internal/booking/repository"
)

const bookingColumns = `id, user_id, invitee_name, invitee_email, start_time, end_time,
	notes, event_id, created_at`

func scanBooking(row interface{ Scan(...any) error }) (booking.Booking, error) {
	var b booking.Booking
	var eventID sql.NullString
	err := row.Scan(
		&b.ID, &b.UserID, &b.InviteeName, &b.InviteeEmail, &b.StartTime, &b.EndTime,
		&b.Notes, &eventID, &b.CreatedAt,
	)
	if err != nil {
		return booking.Booking{}, err
	}
	if eventID.Valid {
		b.EventID = eventID.String
	}
	return b, nil
}

// CreateBooking inserts a new Booking row and returns the created entity.
func (r *implRepository) CreateBooking(ctx context.Context, opt repo.CreateBookingOptions) (booking.Booking, error) {
	query := fmt.Sprintf(`
		INSERT INTO bookings
			(user_id, invitee_name, invitee_email, start_time, end_time, notes, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s`, bookingColumns)

	row := r.db.QueryRowContext(ctx, query,
		opt.UserID, opt.InviteeName, opt.InviteeEmail, opt.StartTime, opt.EndTime,
		opt.Notes, sql.NullString{String: opt.EventID, Valid: opt.EventID != ""},
	)
	b, err := scanBooking(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateBooking"), err)
		return booking.Booking{}, repo.ErrFailedToInsert
	}
	return b, nil
}

// GetOneBooking retrieves a single Booking by the provided filters.
// Returns zero-value Booking (ID == "") when not found.
func (r *implRepository) GetOneBooking(ctx context.Context, opt repo.GetOneBookingOptions) (booking.Booking, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE %s LIMIT 1", bookingColumns, mods)

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return booking.Booking{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneBooking"), err)
		return booking.Booking{}, repo.ErrFailedToGet
	}
	return b, nil
}

// ListBookings returns all Bookings matching the filters, upcoming first.
func (r *implRepository) ListBookings(ctx context.Context, opt repo.ListBookingsOptions) ([]booking.Booking, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE %s ORDER BY start_time ASC",
		bookingColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBookings"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var out []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, repo.ErrFailedToList
		}
		out = append(out, b)
	}
	return out, nil
}
