package settings

import (
	"time"

	"meetsync/internal/model"
)

// Settings holds per-user scheduling preferences. A missing row reads as
// the zero value: no default integration, local-only events.
type Settings struct {
	UserID string

	// DefaultCalendarIntegrationID pins event creation to one integration.
	DefaultCalendarIntegrationID string

	// DefaultCalendarType selects which provider's primary integration is
	// used when no default integration id is set.
	DefaultCalendarType model.CalendarType

	Timezone  string
	UpdatedAt time.Time
}

type GetOutput struct {
	Settings Settings
}

type UpdateInput struct {
	DefaultCalendarIntegrationID string
	DefaultCalendarType          model.CalendarType
	Timezone                     string
}

type UpdateOutput struct {
	Settings Settings
}
