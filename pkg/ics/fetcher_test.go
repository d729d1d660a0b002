package ics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const sampleFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//EN
BEGIN:VEVENT
UID:single-1
SUMMARY:Team standup
DESCRIPTION:Daily sync
LOCATION:Room 4
DTSTART:20260310T090000Z
DTEND:20260310T091500Z
STATUS:CONFIRMED
END:VEVENT
BEGIN:VEVENT
UID:weekly-1
SUMMARY:Weekly review
DTSTART:20260302T140000Z
DTEND:20260302T150000Z
RRULE:FREQ=WEEKLY;COUNT=4
END:VEVENT
BEGIN:VEVENT
UID:cancelled-1
SUMMARY:Old meeting
DTSTART:20260311T100000Z
DTEND:20260311T110000Z
STATUS:CANCELLED
END:VEVENT
END:VCALENDAR
`

func feedWindow() (time.Time, time.Time) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return from, to
}

func TestFetchEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	f := NewFetcher(time.Minute)
	from, to := feedWindow()

	events, err := f.FetchEvents(context.Background(), srv.URL, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// single + 4 weekly occurrences + cancelled
	if len(events) != 6 {
		t.Fatalf("expected 6 events, got %d", len(events))
	}

	byUID := make(map[string]FeedEvent)
	for _, ev := range events {
		byUID[ev.UID] = ev
	}

	single, ok := byUID["single-1"]
	if !ok {
		t.Fatal("expected single-1 in results")
	}
	if single.Title != "Team standup" || single.Location != "Room 4" {
		t.Errorf("unexpected event fields: %+v", single)
	}
	if !single.StartTime.Equal(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start time: %v", single.StartTime)
	}

	recurring := 0
	for uid := range byUID {
		if len(uid) > len("weekly-1") && uid[:len("weekly-1")] == "weekly-1" {
			recurring++
		}
	}
	if recurring != 4 {
		t.Errorf("expected 4 weekly occurrences, got %d", recurring)
	}

	cancelled, ok := byUID["cancelled-1"]
	if !ok {
		t.Fatal("expected cancelled-1 in results")
	}
	if !cancelled.Cancelled() {
		t.Error("expected cancelled event to report Cancelled()")
	}
}

func TestFetchCaching(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	f := NewFetcher(time.Minute)
	from, to := feedWindow()

	for i := 0; i < 3; i++ {
		if _, err := f.FetchEvents(context.Background(), srv.URL, from, to); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", got)
	}
}

func TestFetchRejectsInvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "html page", body: "<html><body>login</body></html>", code: http.StatusOK},
		{name: "not icalendar", body: "hello world", code: http.StatusOK},
		{name: "server error", body: "oops", code: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			f := NewFetcher(time.Minute)
			if err := f.Validate(context.Background(), srv.URL); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFetchWindowFiltering(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	f := NewFetcher(time.Minute)

	// window covering only the first weekly occurrence
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	events, err := f.FetchEvents(context.Background(), srv.URL, from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event in narrow window, got %d", len(events))
	}
}
