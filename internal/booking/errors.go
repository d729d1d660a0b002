package booking

import "errors"

var (
	ErrInvalidTimeRange = errors.New("booking end time must be after start time")
	ErrBookingNotFound  = errors.New("booking not found")
)
