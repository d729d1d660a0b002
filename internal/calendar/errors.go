package calendar

import "errors"

var (
	// ErrNotAuthenticated means no usable token exists for the resolved
	// integration. Mutating flows consume it as a fallback-to-local signal
	// rather than surfacing it.
	ErrNotAuthenticated = errors.New("calendar integration is not authenticated")

	ErrIntegrationNotFound = errors.New("calendar integration not found")

	// ErrForbidden marks ownership violations: the integration or event
	// referenced by the request belongs to a different user.
	ErrForbidden = errors.New("resource does not belong to user")

	// ErrTypeMismatch marks an operation routed to a provider whose type
	// does not match the event's calendar type.
	ErrTypeMismatch = errors.New("event calendar type does not match provider")

	ErrEventNotFound = errors.New("event not found")

	ErrUnsupportedCalendarType = errors.New("unsupported calendar type")

	ErrInvalidFeedURL = errors.New("feed URL does not serve iCalendar data")
)
