package event

import (
	"time"

	"meetsync/internal/model"
)

// Event is the canonical representation of a meeting, independent of which
// provider (if any) mirrors it.
type Event struct {
	ID          string
	UserID      string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	MeetingURL  string
	IsAllDay    bool

	// ExternalID is the provider-native event id; empty for local-only
	// events or events never pushed to a provider.
	ExternalID string

	// CalendarType mirrors the owning integration's type, or "local".
	CalendarType model.CalendarType

	// CalendarIntegrationID references the owning integration; empty when
	// the event is local-only.
	CalendarIntegrationID string

	Attendees []string

	// Reminders holds minutes-before-start offsets.
	Reminders []int

	Timezone   string
	Recurrence string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocalOnly reports whether the event has no external mirror.
func (e Event) LocalOnly() bool {
	return e.CalendarType == model.CalendarTypeLocal || e.CalendarType == ""
}
