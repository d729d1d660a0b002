package ics

import "time"

// FeedEvent is one occurrence parsed out of an iCalendar feed. Recurring
// events are expanded, so one VEVENT may yield several FeedEvents.
type FeedEvent struct {
	// UID is the feed's stable identifier for the occurrence. Expanded
	// recurrence instances get the base UID suffixed with their start time.
	UID         string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	IsAllDay    bool
	Status      string
}

// Cancelled reports whether the feed marked the event cancelled.
func (e FeedEvent) Cancelled() bool {
	return e.Status == "CANCELLED"
}
