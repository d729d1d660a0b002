package repository

import (
	"time"

	"meetsync/internal/model"
)

// CreateEventOptions holds parameters for inserting a new Event.
type CreateEventOptions struct {
	UserID                string
	Title                 string
	Description           string
	StartTime             time.Time
	EndTime               time.Time
	Location              string
	MeetingURL            string
	IsAllDay              bool
	ExternalID            string
	CalendarType          model.CalendarType
	CalendarIntegrationID string
	Attendees             []string
	Reminders             []int
	Timezone              string
	Recurrence            string
}

// GetOneEventOptions holds filter parameters for fetching a single Event.
// All non-zero fields are applied as AND conditions.
type GetOneEventOptions struct {
	ID         string
	UserID     string
	ExternalID string
}

// ListEventsOptions holds filter parameters for listing Events.
// From/To select events whose [start, end) intersects the range.
type ListEventsOptions struct {
	UserID        string
	CalendarType  model.CalendarType
	IntegrationID string
	From          time.Time
	To            time.Time
}

// UpdateEventOptions holds parameters for updating an existing Event.
// The update is a full overwrite of the listed fields; callers merge
// partial input against the existing record first.
type UpdateEventOptions struct {
	ID                    string
	Title                 string
	Description           string
	StartTime             time.Time
	EndTime               time.Time
	Location              string
	MeetingURL            string
	IsAllDay              bool
	ExternalID            string
	CalendarType          model.CalendarType
	CalendarIntegrationID string
	Attendees             []string
	Reminders             []int
	Timezone              string
	Recurrence            string
}
