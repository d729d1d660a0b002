package http

import (
	"time"

	"meetsync/internal/calendar"
	"meetsync/internal/event"
	"meetsync/internal/integration"
	"meetsync/internal/model"
)

// --- Request DTOs ---

type createEventReq struct {
	Title                 string    `json:"title"       binding:"required,min=1,max=255"`
	Description           string    `json:"description" binding:"max=2000"`
	StartTime             time.Time `json:"start_time"  binding:"required"`
	EndTime               time.Time `json:"end_time"    binding:"required"`
	Location              string    `json:"location"    binding:"max=500"`
	MeetingURL            string    `json:"meeting_url" binding:"omitempty,url"`
	IsAllDay              bool      `json:"is_all_day"`
	Attendees             []string  `json:"attendees"   binding:"omitempty,dive,email"`
	Reminders             []int     `json:"reminders"   binding:"omitempty,dive,min=0"`
	Timezone              string    `json:"timezone"`
	Recurrence            string    `json:"recurrence"`
	CalendarIntegrationID string    `json:"calendar_integration_id"`
}

func (r createEventReq) validate() error {
	if !r.EndTime.After(r.StartTime) {
		return errInvalidTimeRange
	}
	return nil
}

func (r createEventReq) toInput() calendar.CreateEventInput {
	return calendar.CreateEventInput{
		Title:                 r.Title,
		Description:           r.Description,
		StartTime:             r.StartTime,
		EndTime:               r.EndTime,
		Location:              r.Location,
		MeetingURL:            r.MeetingURL,
		IsAllDay:              r.IsAllDay,
		Attendees:             r.Attendees,
		Reminders:             r.Reminders,
		Timezone:              r.Timezone,
		Recurrence:            r.Recurrence,
		CalendarIntegrationID: r.CalendarIntegrationID,
	}
}

// ---

type listEventsReq struct {
	From          time.Time `form:"from"  time_format:"2006-01-02T15:04:05Z07:00"`
	To            time.Time `form:"to"    time_format:"2006-01-02T15:04:05Z07:00"`
	IntegrationID string    `form:"calendar_integration_id"`
	Type          string    `form:"type"`
}

func (r listEventsReq) validate() error {
	if r.Type != "" && !model.CalendarType(r.Type).Valid() {
		return errUnknownCalendarType
	}
	return nil
}

func (r listEventsReq) toInput() calendar.ListEventsInput {
	return calendar.ListEventsInput{
		From:          r.From,
		To:            r.To,
		IntegrationID: r.IntegrationID,
		Type:          model.CalendarType(r.Type),
	}
}

// ---

type updateEventReq struct {
	ID                    string    `json:"-"` // populated from URI param
	Title                 string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description           string    `json:"description" binding:"omitempty,max=2000"`
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	Location              string    `json:"location"    binding:"omitempty,max=500"`
	MeetingURL            string    `json:"meeting_url" binding:"omitempty,url"`
	IsAllDay              *bool     `json:"is_all_day"`
	Attendees             []string  `json:"attendees"   binding:"omitempty,dive,email"`
	Reminders             []int     `json:"reminders"   binding:"omitempty,dive,min=0"`
	Timezone              string    `json:"timezone"`
	Recurrence            string    `json:"recurrence"`
	CalendarIntegrationID string    `json:"calendar_integration_id"`
}

func (r updateEventReq) validate() error {
	if !r.StartTime.IsZero() && !r.EndTime.IsZero() && !r.EndTime.After(r.StartTime) {
		return errInvalidTimeRange
	}
	return nil
}

func (r updateEventReq) toInput() calendar.UpdateEventInput {
	return calendar.UpdateEventInput{
		Title:                 r.Title,
		Description:           r.Description,
		StartTime:             r.StartTime,
		EndTime:               r.EndTime,
		Location:              r.Location,
		MeetingURL:            r.MeetingURL,
		IsAllDay:              r.IsAllDay,
		Attendees:             r.Attendees,
		Reminders:             r.Reminders,
		Timezone:              r.Timezone,
		Recurrence:            r.Recurrence,
		CalendarIntegrationID: r.CalendarIntegrationID,
	}
}

// ---

type syncReq struct {
	IntegrationID string `json:"calendar_integration_id"`
}

func (r syncReq) toInput() calendar.SyncInput {
	return calendar.SyncInput{IntegrationID: r.IntegrationID}
}

// ---

type authCallbackReq struct {
	Code       string `form:"code" binding:"required"`
	CalendarID string `form:"calendar_id"`
	Name       string `form:"name"`
}

func (r authCallbackReq) toInput() calendar.AuthCallbackInput {
	return calendar.AuthCallbackInput{
		Code:       r.Code,
		CalendarID: r.CalendarID,
		Name:       r.Name,
	}
}

// ---

type connectFeedReq struct {
	FeedURL string `json:"feed_url" binding:"required,url"`
	Name    string `json:"name"     binding:"max=255"`
}

func (r connectFeedReq) toInput() calendar.ConnectFeedInput {
	return calendar.ConnectFeedInput{
		FeedURL: r.FeedURL,
		Name:    r.Name,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Description           string    `json:"description,omitempty"`
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	Location              string    `json:"location,omitempty"`
	MeetingURL            string    `json:"meeting_url,omitempty"`
	IsAllDay              bool      `json:"is_all_day"`
	ExternalID            string    `json:"external_id,omitempty"`
	CalendarType          string    `json:"calendar_type"`
	CalendarIntegrationID string    `json:"calendar_integration_id,omitempty"`
	Attendees             []string  `json:"attendees,omitempty"`
	Reminders             []int     `json:"reminders,omitempty"`
	Timezone              string    `json:"timezone,omitempty"`
	Recurrence            string    `json:"recurrence,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func newEventResp(ev event.Event) eventResp {
	return eventResp{
		ID:                    ev.ID,
		Title:                 ev.Title,
		Description:           ev.Description,
		StartTime:             ev.StartTime,
		EndTime:               ev.EndTime,
		Location:              ev.Location,
		MeetingURL:            ev.MeetingURL,
		IsAllDay:              ev.IsAllDay,
		ExternalID:            ev.ExternalID,
		CalendarType:          string(ev.CalendarType),
		CalendarIntegrationID: ev.CalendarIntegrationID,
		Attendees:             ev.Attendees,
		Reminders:             ev.Reminders,
		Timezone:              ev.Timezone,
		Recurrence:            ev.Recurrence,
		CreatedAt:             ev.CreatedAt,
		UpdatedAt:             ev.UpdatedAt,
	}
}

type listEventsResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newListEventsResp(events []event.Event) listEventsResp {
	out := make([]eventResp, len(events))
	for i, ev := range events {
		out[i] = newEventResp(ev)
	}
	return listEventsResp{Events: out, Total: len(out)}
}

type syncResultResp struct {
	CalendarIntegrationID string `json:"calendar_integration_id"`
	Type                  string `json:"type"`
	Synced                bool   `json:"synced"`
	Error                 string `json:"error,omitempty"`
}

type syncResp struct {
	Results []syncResultResp `json:"results"`
}

func (h *handler) newSyncResp(out calendar.SyncOutput) syncResp {
	results := make([]syncResultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = syncResultResp{
			CalendarIntegrationID: r.IntegrationID,
			Type:                  string(r.Type),
			Synced:                r.Synced,
			Error:                 r.Err,
		}
	}
	return syncResp{Results: results}
}

type authURLResp struct {
	AuthURL string `json:"auth_url"`
}

// integrationResp deliberately omits token fields.
type integrationResp struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	CalendarID  string    `json:"calendar_id,omitempty"`
	IsConnected bool      `json:"is_connected"`
	IsPrimary   bool      `json:"is_primary"`
	LastSynced  time.Time `json:"last_synced,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newIntegrationResp(in integration.Integration) integrationResp {
	return integrationResp{
		ID:          in.ID,
		Type:        string(in.Type),
		Name:        in.Name,
		CalendarID:  in.CalendarID,
		IsConnected: in.IsConnected,
		IsPrimary:   in.IsPrimary,
		LastSynced:  in.LastSynced,
		CreatedAt:   in.CreatedAt,
	}
}
