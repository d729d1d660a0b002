package calendar

import (
	"time"

	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// TargetKind tags which precedence level resolved the write target.
type TargetKind string

const (
	// TargetExplicit: the request named a calendarIntegrationId.
	TargetExplicit TargetKind = "explicit"
	// TargetDefault: the user's settings name a default integration.
	TargetDefault TargetKind = "default"
	// TargetPrimary: the primary (or any connected) integration of the
	// user's default calendar type.
	TargetPrimary TargetKind = "primary"
	// TargetLocalOnly: no integration applies, the event stays local.
	TargetLocalOnly TargetKind = "local_only"
)

// Target is the resolved destination for a mutating calendar operation.
// Integration is the zero value when Kind is TargetLocalOnly.
type Target struct {
	Kind        TargetKind
	Integration integration.Integration
}

// Local reports whether the target carries no integration.
func (t Target) Local() bool {
	return t.Kind == TargetLocalOnly
}

// SyncWindow bounds how far back and forward syncs import events.
type SyncWindow struct {
	PastDays   int
	FutureDays int
}

// Range returns the concrete [from, to) interval around now.
func (w SyncWindow) Range(now time.Time) (time.Time, time.Time) {
	return now.AddDate(0, 0, -w.PastDays), now.AddDate(0, 0, w.FutureDays)
}

// --- UseCase Inputs/Outputs ---

// CreateEventInput holds the fields of a new event. CalendarIntegrationID,
// when set, pins the event to that integration; otherwise the target is
// resolved from the user's settings.
type CreateEventInput struct {
	Title                 string
	Description           string
	StartTime             time.Time
	EndTime               time.Time
	Location              string
	MeetingURL            string
	IsAllDay              bool
	Attendees             []string
	Reminders             []int
	Timezone              string
	Recurrence            string
	CalendarIntegrationID string
}

// UpdateEventInput is a partial update. String fields are kept when empty,
// time fields when zero; IsAllDay only applies when non-nil. Setting
// CalendarIntegrationID to a different integration moves the event, which
// across provider types means create-in-target then delete-from-source.
type UpdateEventInput struct {
	Title                 string
	Description           string
	StartTime             time.Time
	EndTime               time.Time
	Location              string
	MeetingURL            string
	IsAllDay              *bool
	Attendees             []string
	Reminders             []int
	Timezone              string
	Recurrence            string
	CalendarIntegrationID string
}

// ListEventsInput filters the locally mirrored events.
type ListEventsInput struct {
	From          time.Time
	To            time.Time
	IntegrationID string
	Type          model.CalendarType
}

// SyncInput selects which integration to sync. With an empty ID every
// connected integration of the user is synced in turn.
type SyncInput struct {
	IntegrationID string
}

// SyncResult reports the outcome for one integration.
type SyncResult struct {
	IntegrationID string
	Type          model.CalendarType
	Synced        bool
	Err           string
}

type SyncOutput struct {
	Results []SyncResult
}

// AuthCallbackInput carries the OAuth redirect parameters. CalendarID and
// Name are optional overrides; when empty the provider is probed for its
// primary calendar.
type AuthCallbackInput struct {
	Code       string
	CalendarID string
	Name       string
}

// ConnectFeedInput registers a read-only iCalendar feed.
type ConnectFeedInput struct {
	FeedURL string
	Name    string
}
