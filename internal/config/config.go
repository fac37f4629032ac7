package config

import (
	"fmt"
	"os"
	"time"
)

// Config contains runtime settings for the aggregation server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default PORT env or 8080

	City        string // metro the service aggregates for
	HousingCity string // query string for the housing search upstream
	DefaultRole string // jobs search role when the profile names none

	Upstreams struct {
		GemsBaseURL    string
		JobsBaseURL    string
		HousingBaseURL string
		GeocodeBaseURL string
	}

	GoogleMapsAPIKey string // empty disables the life-overview geocoding

	HTTPClientTimeout time.Duration
}

// Load populates config from environment variables
func Load() (Config, error) {
	cfg := Config{
		LogLevel:    "info",
		Host:        "0.0.0.0",
		Port:        "8080",
		City:        "St Louis, MO",
		HousingCity: "St Louis",
		DefaultRole: "Software Engineer",

		HTTPClientTimeout: 15 * time.Second,
	}
	cfg.Upstreams.GemsBaseURL = "http://127.0.0.1:5000"
	cfg.Upstreams.JobsBaseURL = "http://127.0.0.1:8080"
	cfg.Upstreams.HousingBaseURL = "http://127.0.0.1:8080"

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("DEFAULT_CITY"); v != "" {
		cfg.City = v
	}

	if v := os.Getenv("HOUSING_SEARCH_CITY"); v != "" {
		cfg.HousingCity = v
	}

	if v := os.Getenv("DEFAULT_JOB_ROLE"); v != "" {
		cfg.DefaultRole = v
	}

	if v := os.Getenv("GEMS_API_BASE_URL"); v != "" {
		cfg.Upstreams.GemsBaseURL = v
	}

	// MAS_API_BASE_URL covers both collocated upstreams; the dedicated
	// variables override it per service.
	if v := os.Getenv("MAS_API_BASE_URL"); v != "" {
		cfg.Upstreams.JobsBaseURL = v
		cfg.Upstreams.HousingBaseURL = v
	}

	if v := os.Getenv("JOBS_API_BASE_URL"); v != "" {
		cfg.Upstreams.JobsBaseURL = v
	}

	if v := os.Getenv("HOUSING_API_BASE_URL"); v != "" {
		cfg.Upstreams.HousingBaseURL = v
	}

	if v := os.Getenv("GEOCODE_BASE_URL"); v != "" {
		cfg.Upstreams.GeocodeBaseURL = v
	}

	cfg.GoogleMapsAPIKey = os.Getenv("GOOGLE_MAPS_API_KEY")

	if v := os.Getenv("HTTP_CLIENT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPClientTimeout = d
	}

	return cfg, nil
}
