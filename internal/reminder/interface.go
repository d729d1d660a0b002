package reminder

import "context"

// Service (re)schedules notification triggers for an event. Calendar flows
// call it fire-and-forget after event mutations; failures are logged by the
// caller, never surfaced to the user-visible operation.
type Service interface {
	// ScheduleReminders replaces the event's pending reminders with ones
	// computed from its current reminder offsets.
	ScheduleReminders(ctx context.Context, eventID string) error

	// ClearReminders drops all pending reminders for the event.
	ClearReminders(ctx context.Context, eventID string) error
}
