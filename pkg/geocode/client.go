// Package geocode resolves free-text addresses to coordinates through a
// Google-style geocoding endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/honeycarbs/urban-match/pkg/geo"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// ErrNoAPIKey is returned when the client was built without a credential.
var ErrNoAPIKey = fmt.Errorf("geocode: api key is not configured")

// ErrNotFound is returned when the upstream resolves zero results.
var ErrNotFound = fmt.Errorf("geocode: location not found")

// Config defines geocoding client settings
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client queries the geocoding API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewClient instantiates a geocoding client. An empty API key is allowed;
// Geocode then fails with ErrNoAPIKey so enrichment can degrade silently.
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
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// Geocode resolves an address to a coordinate pair.
func (c *Client) Geocode(ctx context.Context, address string) (geo.Point, error) {
	if c == nil {
		return geo.Point{}, fmt.Errorf("geocode: client is nil")
	}
	if c.apiKey == "" {
		return geo.Point{}, ErrNoAPIKey
	}
	if strings.TrimSpace(address) == "" {
		return geo.Point{}, fmt.Errorf("geocode: address is required")
	}

	values := url.Values{}
	values.Set("address", address)
	values.Set("key", c.apiKey)

	u := c.baseURL + "?" + values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return geo.Point{}, fmt.Errorf("geocode: API error (%d)", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return geo.Point{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	if len(payload.Results) == 0 {
		return geo.Point{}, ErrNotFound
	}

	loc := payload.Results[0].Geometry.Location
	return geo.Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}
