package ics

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxFeedSize = 10 << 20 // 10 MB

// Fetcher downloads and parses iCalendar feeds. Raw feed bodies are cached
// per URL with a TTL so repeated syncs do not hammer the remote host.
type Fetcher struct {
	httpClient *http.Client
	cache      *expirable.LRU[string, []byte]
}

// NewFetcher creates a Fetcher with the given cache TTL. A zero TTL disables
// expiry for cached entries.
func NewFetcher(ttl time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      expirable.NewLRU[string, []byte](64, nil, ttl),
	}
}

// SetHTTPClient overrides the HTTP client used for feed downloads.
func (f *Fetcher) SetHTTPClient(c *http.Client) {
	f.httpClient = c
}

// Validate fetches the feed once and checks it is an iCalendar payload.
// Used when a feed URL is first connected.
func (f *Fetcher) Validate(ctx context.Context, url string) error {
	_, err := f.fetch(ctx, url)
	return err
}

// FetchEvents downloads the feed at url and returns the event occurrences
// intersecting [from, to).
func (f *Fetcher) FetchEvents(ctx context.Context, url string, from, to time.Time) ([]FeedEvent, error) {
	body, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(body), from, to)
}

func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	if body, ok := f.cache.Get(url); ok {
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar feed: %w", err)
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html") {
		return nil, fmt.Errorf("URL returned HTML instead of calendar data")
	}
	if !strings.HasPrefix(trimmed, "BEGIN:VCALENDAR") {
		return nil, fmt.Errorf("response is not valid iCalendar data")
	}

	f.cache.Add(url, body)
	return body, nil
}
