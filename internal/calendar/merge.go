package calendar

import (
	"meetsync/internal/event"
	eventRepo "meetsync/internal/event/repository"
)

// ApplyUpdate merges a partial update into the existing event and returns
// the merged record. Provider adapters use it so every backend applies the
// same keep-when-empty semantics before committing.
func ApplyUpdate(existing event.Event, input UpdateEventInput) event.Event {
	merged := existing
	if input.Title != "" {
		merged.Title = input.Title
	}
	if input.Description != "" {
		merged.Description = input.Description
	}
	if !input.StartTime.IsZero() {
		merged.StartTime = input.StartTime
	}
	if !input.EndTime.IsZero() {
		merged.EndTime = input.EndTime
	}
	if input.Location != "" {
		merged.Location = input.Location
	}
	if input.MeetingURL != "" {
		merged.MeetingURL = input.MeetingURL
	}
	if input.IsAllDay != nil {
		merged.IsAllDay = *input.IsAllDay
	}
	if input.Attendees != nil {
		merged.Attendees = input.Attendees
	}
	if input.Reminders != nil {
		merged.Reminders = input.Reminders
	}
	if input.Timezone != "" {
		merged.Timezone = input.Timezone
	}
	if input.Recurrence != "" {
		merged.Recurrence = input.Recurrence
	}
	return merged
}

// OverwriteOptions turns a fully merged event into the repository's
// full-overwrite update options.
func OverwriteOptions(ev event.Event) eventRepo.UpdateEventOptions {
	return eventRepo.UpdateEventOptions{
		ID:                    ev.ID,
		Title:                 ev.Title,
		Description:           ev.Description,
		StartTime:             ev.StartTime,
		EndTime:               ev.EndTime,
		Location:              ev.Location,
		MeetingURL:            ev.MeetingURL,
		IsAllDay:              ev.IsAllDay,
		ExternalID:            ev.ExternalID,
		CalendarType:          ev.CalendarType,
		CalendarIntegrationID: ev.CalendarIntegrationID,
		Attendees:             ev.Attendees,
		Reminders:             ev.Reminders,
		Timezone:              ev.Timezone,
		Recurrence:            ev.Recurrence,
	}
}
