package gems

import (
	"fmt"
	"net/http"
)

// Config defines hidden-gems API client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client queries the hidden-gems recommendation API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Place is a single recommended point of interest. All fields are
// best-effort: the upstream omits anything it could not resolve.
type Place struct {
	Name            *string  `json:"name"`
	Address         *string  `json:"address"`
	GoogleMapsURI   *string  `json:"googleMapsUri,omitempty"`
	WebsiteURI      *string  `json:"websiteUri,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	Summary         *string  `json:"summary,omitempty"`
	UserRatingCount *int     `json:"userRatingCount,omitempty"`
	Lat             *float64 `json:"lat,omitempty"`
	Lng             *float64 `json:"lng,omitempty"`
	Types           []string `json:"types,omitempty"`
}

// UserLocation is the geocoded search center echoed by the upstream.
type UserLocation struct {
	Text string  `json:"text"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Response is the hidden-gems payload, bucketed by preference category.
type Response struct {
	Preferences  []string           `json:"preferences"`
	Results      map[string][]Place `json:"results"`
	UserLocation *UserLocation      `json:"userLocation,omitempty"`
}

// StatusError reports a non-success upstream response. The message is
// extracted from the upstream error body when one is present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("hidden gems backend failed (%d)", e.StatusCode)
}
