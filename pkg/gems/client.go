// Package gems is a client for the hidden-gems recommendation service.
package gems

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "http://127.0.0.1:5000"

// NewClient instantiates a hidden-gems API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// Recommend fetches preference-bucketed places for a location. A non-2xx
// upstream status is returned as *StatusError so callers can pass the
// status through.
func (c *Client) Recommend(ctx context.Context, location string, preferences []string) (*Response, error) {
	if c == nil {
		return nil, fmt.Errorf("gems: client is nil")
	}

	values := url.Values{}
	values.Set("location", location)
	values.Set("preferences", strings.Join(preferences, ","))

	u := c.baseURL + "/recommend?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("gems: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gems: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp.Body),
		}
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("gems: decode response: %w", err)
	}

	return &payload, nil
}

// extractErrorMessage pulls the {"error": "..."} body the upstream emits on
// failure. An unparsable body yields an empty message.
func extractErrorMessage(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return strings.TrimSpace(payload.Error)
}
