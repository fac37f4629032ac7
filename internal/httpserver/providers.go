package httpserver

import (
	"net/http"

	"github.com/honeycarbs/urban-match/internal/config"
	"github.com/honeycarbs/urban-match/internal/domain/recommend"
	"github.com/honeycarbs/urban-match/pkg/gems"
	"github.com/honeycarbs/urban-match/pkg/geocode"
	"github.com/honeycarbs/urban-match/pkg/housing"
	"github.com/honeycarbs/urban-match/pkg/jobsearch"
)

// provideHTTPClient builds the shared outbound client. One client serves
// every upstream so connection pools are reused.
func provideHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPClientTimeout}
}

// provideGemsConfig extracts hidden-gems client config from main config
func provideGemsConfig(cfg config.Config, client *http.Client) gems.Config {
	return gems.Config{
		BaseURL:    cfg.Upstreams.GemsBaseURL,
		HTTPClient: client,
	}
}

// provideJobsConfig extracts jobs client config from main config
func provideJobsConfig(cfg config.Config, client *http.Client) jobsearch.Config {
	return jobsearch.Config{
		BaseURL:    cfg.Upstreams.JobsBaseURL,
		HTTPClient: client,
	}
}

// provideHousingConfig extracts housing client config from main config
func provideHousingConfig(cfg config.Config, client *http.Client) housing.Config {
	return housing.Config{
		BaseURL:    cfg.Upstreams.HousingBaseURL,
		HTTPClient: client,
	}
}

// provideGeocodeConfig extracts geocoding config from main config. An
// empty API key is allowed; the composer degrades without it.
func provideGeocodeConfig(cfg config.Config, client *http.Client) geocode.Config {
	return geocode.Config{
		BaseURL:    cfg.Upstreams.GeocodeBaseURL,
		APIKey:     cfg.GoogleMapsAPIKey,
		HTTPClient: client,
	}
}

// provideSettings extracts orchestrator settings from main config
func provideSettings(cfg config.Config) recommend.Settings {
	return recommend.Settings{
		City:           cfg.City,
		HousingCity:    cfg.HousingCity,
		DefaultJobRole: cfg.DefaultRole,
	}
}
