package sources

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const fetchAttempts = 3

// Browser-like request headers. The newswire sites reject clients that
// look like bots, and the default Go user agent does.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9",
	"Connection":      "keep-alive",
}

// Client fetches raw source payloads with a bounded retry policy.
type Client struct {
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(httpClient *http.Client, timeout time.Duration) *Client {
	return &Client{
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Get fetches url, retrying up to fetchAttempts times. Any non-2xx
// status or transport error counts as a failed attempt; the last error
// is the one surfaced. No retry state is shared across calls.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= fetchAttempts; attempt++ {
		data, err := c.get(ctx, url)
		if err == nil {
			return data, nil
		}
		lastErr = err
		slog.Debug("Fetch attempt failed", "url", url, "attempt", attempt, "error", err)
	}

	return nil, fmt.Errorf("fetch failed after %d attempts: %w", fetchAttempts, lastErr)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, value := range defaultHeaders {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
