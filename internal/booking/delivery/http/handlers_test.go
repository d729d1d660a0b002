package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"

	"meetsync/internal/booking"
	"meetsync/internal/middleware"
	"meetsync/internal/model"
	"meetsync/pkg/log"
)

const testSecret = "test-secret"

type stubUseCase struct {
	createErr error
	created   []booking.CreateInput
	listScope model.Scope
}

func (s *stubUseCase) Create(_ context.Context, input booking.CreateInput) (booking.CreateOutput, error) {
	if s.createErr != nil {
		return booking.CreateOutput{}, s.createErr
	}
	s.created = append(s.created, input)
	return booking.CreateOutput{Booking: booking.Booking{
		ID:           "b1",
		UserID:       input.HostUserID,
		InviteeName:  input.InviteeName,
		InviteeEmail: input.InviteeEmail,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		EventID:      "e1",
	}}, nil
}

func (s *stubUseCase) List(_ context.Context, sc model.Scope) (booking.ListOutput, error) {
	s.listScope = sc
	return booking.ListOutput{Bookings: []booking.Booking{{ID: "b1", UserID: sc.UserID}}}, nil
}

func newRouter(uc booking.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc)
	mw := middleware.New(log.NewNop(), testSecret)
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestCreateHandler(t *testing.T) {
	start := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	t.Run("public create succeeds without a token", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newRouter(uc)

		body := `{
			"host_user_id": "host-1",
			"invitee_name": "Dana",
			"invitee_email": "dana@example.com",
			"start_time": "` + start.Format(time.RFC3339) + `",
			"end_time": "` + start.Add(30*time.Minute).Format(time.RFC3339) + `"
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if len(uc.created) != 1 || uc.created[0].HostUserID != "host-1" {
			t.Errorf("usecase input = %+v", uc.created)
		}

		var resp struct {
			Data struct {
				Booking struct {
					ID      string `json:"id"`
					EventID string `json:"event_id"`
				} `json:"booking"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.Booking.EventID != "e1" {
			t.Errorf("event_id = %q, want e1", resp.Data.Booking.EventID)
		}
	})

	t.Run("missing invitee email is a bad request", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newRouter(uc)

		body := `{"host_user_id":"host-1","invitee_name":"Dana","start_time":"2026-07-01T10:00:00Z","end_time":"2026-07-01T11:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if len(uc.created) != 0 {
			t.Error("usecase must not be called")
		}
	})

	t.Run("inverted range maps to 400", func(t *testing.T) {
		uc := &stubUseCase{createErr: booking.ErrInvalidTimeRange}
		r := newRouter(uc)

		body := `{"host_user_id":"host-1","invitee_name":"Dana","invitee_email":"dana@example.com","start_time":"2026-07-01T11:00:00Z","end_time":"2026-07-01T10:00:00Z"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestListHandler(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		r := newRouter(&stubUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})

	t.Run("scopes to the token subject", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "host-1"))
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if uc.listScope.UserID != "host-1" {
			t.Errorf("scope = %q, want host-1", uc.listScope.UserID)
		}
	})
}
