// Package jobsearch is a client for the jobs search service.
package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "http://127.0.0.1:8080"

// NewClient instantiates a jobs API client
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

// Search returns raw job listings for a role query.
func (c *Client) Search(ctx context.Context, role string) ([]Job, error) {
	if c == nil {
		return nil, fmt.Errorf("jobsearch: client is nil")
	}
	if role == "" {
		return nil, fmt.Errorf("jobsearch: role is required")
	}

	values := url.Values{}
	values.Set("role", role)

	u := c.baseURL + "/api/jobs/search?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("jobsearch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobsearch: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jobsearch: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var jobs []Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("jobsearch: decode response: %w", err)
	}

	return jobs, nil
}
