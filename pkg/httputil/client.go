// Package httputil provides a small context-aware HTTP client for JSON APIs.
//
// It wraps [net/http.Client] with a default timeout and maps HTTP status
// codes onto sentinel errors so callers can branch with errors.Is instead
// of inspecting responses. There is deliberately no retry loop and no
// response cache here; callers that want timeouts beyond the default
// inject their own *http.Client.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when the server responds with 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and non-200 responses.
	ErrNetwork = errors.New("network error")
)

// Client performs JSON GET requests against HTTP endpoints.
// The zero value is not usable; construct with [NewClient].
type Client struct {
	http *http.Client
}

// NewClient creates a Client with a standard 10 second timeout.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: defaultTimeout}}
}

// NewClientWith creates a Client around an existing *http.Client.
// Use this to control timeouts, transports, or to stub the network in tests.
func NewClientWith(h *http.Client) *Client {
	if h == nil {
		return NewClient()
	}
	return &Client{http: h}
}

// GetJSON performs a GET request and decodes the response body into v.
// A 404 yields [ErrNotFound]; transport failures and other non-200 statuses
// yield errors wrapping [ErrNetwork].
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
