package msgraph_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"meetsync/pkg/msgraph"
)

func newTestClient(ts *httptest.Server) *msgraph.Client {
	c := msgraph.NewClient()
	c.SetBaseURL(ts.URL)
	return c
}

func TestCreateEvent(t *testing.T) {
	t.Run("posts to /me/calendar/events and decodes the id", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/calendar/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id": "AAMkAD-created", "subject": "Standup"}`))
		}))
		defer ts.Close()

		created, err := newTestClient(ts).CreateEvent(context.Background(), "tok-123", msgraph.GraphEvent{
			Subject: "Standup",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "AAMkAD-created" {
			t.Errorf("unexpected id: %s", created.ID)
		}
	})

	t.Run("surfaces graph errors", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"code": "ErrorInvalidRecipients"}}`))
		}))
		defer ts.Close()

		_, err := newTestClient(ts).CreateEvent(context.Background(), "tok", msgraph.GraphEvent{})
		if err == nil {
			t.Fatal("expected error for 400 response")
		}
	})
}

func TestUpdateAndDeleteEvent(t *testing.T) {
	var gotMethod, gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	client := newTestClient(ts)

	if err := client.UpdateEvent(context.Background(), "tok", "ev-1", msgraph.GraphEvent{Subject: "New"}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/me/events/ev-1" {
		t.Errorf("unexpected update request: %s %s", gotMethod, gotPath)
	}

	if err := client.DeleteEvent(context.Background(), "tok", "ev-1"); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("unexpected delete method: %s", gotMethod)
	}
}

func TestCalendarView(t *testing.T) {
	t.Run("follows nextLink pagination", func(t *testing.T) {
		var ts *httptest.Server
		ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/calendarView" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.WriteHeader(http.StatusOK)
			if r.URL.Query().Get("$skip") == "" {
				w.Write([]byte(`{
					"value": [{"id": "ev-1", "subject": "A"}],
					"@odata.nextLink": "` + ts.URL + `/me/calendarView?$skip=1"
				}`))
				return
			}
			w.Write([]byte(`{"value": [{"id": "ev-2", "subject": "B"}]}`))
		}))
		defer ts.Close()

		events, err := newTestClient(ts).CalendarView(context.Background(), "tok",
			time.Now().AddDate(0, 0, -30), time.Now().AddDate(0, 0, 90))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[1].ID != "ev-2" {
			t.Errorf("unexpected second event: %+v", events[1])
		}
	})

	t.Run("propagates api errors", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		_, err := newTestClient(ts).CalendarView(context.Background(), "tok", time.Now(), time.Now().Add(time.Hour))
		if err == nil {
			t.Fatal("expected api error")
		}
	})
}

func TestDefaultCalendar(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me/calendars" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"value": [
				{"id": "cal-x", "name": "Birthdays"},
				{"id": "cal-default", "name": "Calendar", "isDefaultCalendar": true}
			]
		}`))
	}))
	defer ts.Close()

	cal, err := newTestClient(ts).DefaultCalendar(context.Background(), "tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.ID != "cal-default" || !cal.Default {
		t.Errorf("unexpected calendar: %+v", cal)
	}
}
