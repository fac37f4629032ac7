package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4506 Lindell Blvd, St. Louis, MO, 63108", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"geometry": {"location": {"lat": 38.6446, "lng": -90.2576}}}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "test-key"})
	require.NoError(t, err)

	pt, err := client.Geocode(context.Background(), "4506 Lindell Blvd, St. Louis, MO, 63108")
	require.NoError(t, err)
	assert.InDelta(t, 38.6446, pt.Lat, 1e-9)
	assert.InDelta(t, -90.2576, pt.Lng, 1e-9)
}

func TestGeocodeNoAPIKey(t *testing.T) {
	client, err := NewClient(Config{})
	require.NoError(t, err)

	_, err = client.Geocode(context.Background(), "anywhere")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)

	_, err = client.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGeocodeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := NewClient(Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)

	_, err = client.Geocode(context.Background(), "somewhere")
	require.Error(t, err)
}
