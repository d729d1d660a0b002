package msgraph

// GraphDateTime is Graph's dateTimeTimeZone shape.
type GraphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// GraphItemBody is Graph's itemBody shape.
type GraphItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// GraphLocation is Graph's location shape (displayName only).
type GraphLocation struct {
	DisplayName string `json:"displayName"`
}

// GraphEmailAddress is Graph's emailAddress shape.
type GraphEmailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// GraphAttendee is Graph's attendee shape.
type GraphAttendee struct {
	EmailAddress GraphEmailAddress `json:"emailAddress"`
	Type         string            `json:"type,omitempty"`
}

// GraphOnlineMeeting carries the join URL of an online meeting.
type GraphOnlineMeeting struct {
	JoinURL string `json:"joinUrl,omitempty"`
}

// GraphEvent is the subset of Graph's event resource this service reads
// and writes on /me/calendar/events.
type GraphEvent struct {
	ID              string              `json:"id,omitempty"`
	Subject         string              `json:"subject,omitempty"`
	Body            *GraphItemBody      `json:"body,omitempty"`
	Start           *GraphDateTime      `json:"start,omitempty"`
	End             *GraphDateTime      `json:"end,omitempty"`
	Location        *GraphLocation      `json:"location,omitempty"`
	Attendees       []GraphAttendee     `json:"attendees,omitempty"`
	IsAllDay        bool                `json:"isAllDay,omitempty"`
	IsOnlineMeeting bool                `json:"isOnlineMeeting,omitempty"`
	OnlineMeeting   *GraphOnlineMeeting `json:"onlineMeeting,omitempty"`
}

// calendarViewResponse is the envelope of GET /me/calendarView.
type calendarViewResponse struct {
	Value    []GraphEvent `json:"value"`
	NextLink string       `json:"@odata.nextLink"`
}

// graphCalendar is the subset of Graph's calendar resource used here.
type graphCalendar struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefaultCalendar"`
}

type calendarListResponse struct {
	Value []graphCalendar `json:"value"`
}

// Calendar is a simplified representation of an Outlook calendar.
type Calendar struct {
	ID      string
	Name    string
	Default bool
}
