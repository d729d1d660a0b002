package gcal

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service for one authenticated user.
type Client struct {
	service *calendar.Service
}

// NewClientFromToken creates a Calendar client from a user's OAuth token.
func NewClientFromToken(ctx context.Context, accessToken string) (*Client, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := calendar.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// PrimaryCalendar probes the account for its primary calendar id and name.
func (c *Client) PrimaryCalendar(ctx context.Context) (Calendar, error) {
	list, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return Calendar{}, fmt.Errorf("failed to list calendars: %w", err)
	}
	for _, item := range list.Items {
		if item.Primary {
			return Calendar{ID: item.Id, Name: item.Summary}, nil
		}
	}
	return Calendar{}, fmt.Errorf("no primary calendar on account")
}

// ListCalendars returns all calendars visible to the authenticated account.
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	list, err := c.service.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	out := make([]Calendar, 0, len(list.Items))
	for _, item := range list.Items {
		out = append(out, Calendar{ID: item.Id, Name: item.Summary, Primary: item.Primary})
	}
	return out, nil
}
