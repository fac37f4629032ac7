// Package housing is a client for the housing search service.
package housing

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

// NewClient instantiates a housing API client
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

// SearchByCity returns raw rental listings for a city or postal code.
func (c *Client) SearchByCity(ctx context.Context, city string) ([]Property, error) {
	if c == nil {
		return nil, fmt.Errorf("housing: client is nil")
	}
	if city == "" {
		return nil, fmt.Errorf("housing: city is required")
	}

	values := url.Values{}
	values.Set("city", city)

	u := c.baseURL + "/api/housing/search-by-city?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("housing: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("housing: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("housing: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var properties []Property
	if err := json.NewDecoder(resp.Body).Decode(&properties); err != nil {
		return nil, fmt.Errorf("housing: decode response: %w", err)
	}

	return properties, nil
}
