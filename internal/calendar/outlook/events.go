package outlook

import (
	"time"

	"meetsync/internal/event"
	"meetsync/pkg/msgraph"
)

const graphTimeLayout = "2006-01-02T15:04:05.0000000"

func graphDateTime(t time.Time, tz string) *msgraph.GraphDateTime {
	if tz == "" {
		tz = "UTC"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
		tz = "UTC"
	}
	return &msgraph.GraphDateTime{
		DateTime: t.In(loc).Format(graphTimeLayout),
		TimeZone: tz,
	}
}

func parseGraphDateTime(dt *msgraph.GraphDateTime) time.Time {
	if dt == nil {
		return time.Time{}
	}
	loc := time.UTC
	if dt.TimeZone != "" {
		if l, err := time.LoadLocation(dt.TimeZone); err == nil {
			loc = l
		}
	}
	for _, layout := range []string{graphTimeLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, dt.DateTime, loc); err == nil {
			return t
		}
	}
	return time.Time{}
}

func graphAttendees(emails []string) []msgraph.GraphAttendee {
	if len(emails) == 0 {
		return nil
	}
	out := make([]msgraph.GraphAttendee, 0, len(emails))
	for _, email := range emails {
		out = append(out, msgraph.GraphAttendee{
			EmailAddress: msgraph.GraphEmailAddress{Address: email},
			Type:         "required",
		})
	}
	return out
}

// toGraphEvent maps the local event shape onto Graph's event resource.
func toGraphEvent(ev event.Event) msgraph.GraphEvent {
	gev := msgraph.GraphEvent{
		Subject:   ev.Title,
		Start:     graphDateTime(ev.StartTime, ev.Timezone),
		End:       graphDateTime(ev.EndTime, ev.Timezone),
		IsAllDay:  ev.IsAllDay,
		Attendees: graphAttendees(ev.Attendees),
	}
	if ev.Description != "" {
		gev.Body = &msgraph.GraphItemBody{ContentType: "text", Content: ev.Description}
	}
	if ev.Location != "" {
		gev.Location = &msgraph.GraphLocation{DisplayName: ev.Location}
	}
	if ev.MeetingURL != "" {
		gev.IsOnlineMeeting = true
	}
	return gev
}

func fromGraphEvent(gev msgraph.GraphEvent) event.Event {
	ev := event.Event{
		ExternalID: gev.ID,
		Title:      gev.Subject,
		StartTime:  parseGraphDateTime(gev.Start),
		EndTime:    parseGraphDateTime(gev.End),
		IsAllDay:   gev.IsAllDay,
	}
	if gev.Body != nil {
		ev.Description = gev.Body.Content
	}
	if gev.Location != nil {
		ev.Location = gev.Location.DisplayName
	}
	if gev.OnlineMeeting != nil {
		ev.MeetingURL = gev.OnlineMeeting.JoinURL
	}
	for _, att := range gev.Attendees {
		if att.EmailAddress.Address != "" {
			ev.Attendees = append(ev.Attendees, att.EmailAddress.Address)
		}
	}
	if gev.Start != nil && gev.Start.TimeZone != "" {
		ev.Timezone = gev.Start.TimeZone
	}
	return ev
}
