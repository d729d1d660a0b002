package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

// Client is the Microsoft Graph HTTP API client, scoped to the calendar
// endpoints under /me. Requests are rate limited client-side to stay under
// Graph's per-app throttling budget.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new Graph client.
func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		// Graph allows far more, 10 rps keeps bursts polite.
		limiter: rate.NewLimiter(rate.Limit(10), 10),
	}
}

// SetBaseURL overrides the default Graph API URL for testing purposes.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, payload any) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call graph API: %w", err)
	}
	return resp, nil
}

func graphError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("graph API error %d: %s", resp.StatusCode, string(raw))
}

// CreateEvent creates an event on the user's default calendar and returns
// the created resource with its provider-native id.
func (c *Client) CreateEvent(ctx context.Context, accessToken string, ev GraphEvent) (GraphEvent, error) {
	resp, err := c.do(ctx, http.MethodPost, "/me/calendar/events", accessToken, ev)
	if err != nil {
		return GraphEvent{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return GraphEvent{}, graphError(resp)
	}

	var created GraphEvent
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return GraphEvent{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return created, nil
}

// GetEvent fetches one event by its provider-native id.
func (c *Client) GetEvent(ctx context.Context, accessToken, eventID string) (GraphEvent, error) {
	resp, err := c.do(ctx, http.MethodGet, "/me/events/"+url.PathEscape(eventID), accessToken, nil)
	if err != nil {
		return GraphEvent{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GraphEvent{}, graphError(resp)
	}

	var ev GraphEvent
	if err := json.NewDecoder(resp.Body).Decode(&ev); err != nil {
		return GraphEvent{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return ev, nil
}

// UpdateEvent patches an event by its provider-native id.
func (c *Client) UpdateEvent(ctx context.Context, accessToken, eventID string, ev GraphEvent) error {
	resp, err := c.do(ctx, http.MethodPatch, "/me/events/"+url.PathEscape(eventID), accessToken, ev)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return graphError(resp)
	}
	return nil
}

// DeleteEvent removes an event by its provider-native id.
func (c *Client) DeleteEvent(ctx context.Context, accessToken, eventID string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/me/events/"+url.PathEscape(eventID), accessToken, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return graphError(resp)
	}
	return nil
}

// CalendarView returns the expanded event instances between from and to.
// Pagination via @odata.nextLink is followed until exhausted.
func (c *Client) CalendarView(ctx context.Context, accessToken string, from, to time.Time) ([]GraphEvent, error) {
	path := fmt.Sprintf("/me/calendarView?startDateTime=%s&endDateTime=%s&$top=100",
		url.QueryEscape(from.UTC().Format(time.RFC3339)),
		url.QueryEscape(to.UTC().Format(time.RFC3339)),
	)

	var all []GraphEvent
	for path != "" {
		resp, err := c.do(ctx, http.MethodGet, path, accessToken, nil)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			err := graphError(resp)
			resp.Body.Close()
			return nil, err
		}

		var page calendarViewResponse
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		resp.Body.Close()

		all = append(all, page.Value...)

		path = ""
		if page.NextLink != "" {
			// nextLink is absolute; strip the base so do() can re-prefix it.
			if u, err := url.Parse(page.NextLink); err == nil {
				path = u.Path
				if u.RawQuery != "" {
					path += "?" + u.RawQuery
				}
				if base, err := url.Parse(c.baseURL); err == nil {
					path = trimPathPrefix(path, base.Path)
				}
			}
		}
	}
	return all, nil
}

func trimPathPrefix(path, prefix string) string {
	if prefix != "" && prefix != "/" && len(path) > len(prefix) && path[:len(prefix)] == prefix {
		return path[len(prefix):]
	}
	return path
}

// DefaultCalendar probes the account for its default calendar id and name.
func (c *Client) DefaultCalendar(ctx context.Context, accessToken string) (Calendar, error) {
	resp, err := c.do(ctx, http.MethodGet, "/me/calendars", accessToken, nil)
	if err != nil {
		return Calendar{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Calendar{}, graphError(resp)
	}

	var list calendarListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return Calendar{}, fmt.Errorf("failed to decode response: %w", err)
	}
	for _, cal := range list.Value {
		if cal.IsDefault {
			return Calendar{ID: cal.ID, Name: cal.Name, Default: true}, nil
		}
	}
	if len(list.Value) > 0 {
		return Calendar{ID: list.Value[0].ID, Name: list.Value[0].Name}, nil
	}
	return Calendar{}, fmt.Errorf("no calendars on account")
}
