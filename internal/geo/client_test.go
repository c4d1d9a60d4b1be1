package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(endpoint string) *Client {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.GeoEndpoint = endpoint
	cfg.HTTPTimeout = 2 * time.Second
	return NewClient(cfg)
}

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"latitude":-33.4489,"longitude":-70.6693}`))
	}))
	defer srv.Close()

	pos, err := newTestClient(srv.URL).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -33.4489, pos.Latitude)
	assert.Equal(t, -70.6693, pos.Longitude)
}

func TestCurrent_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Current(context.Background())
	assert.Error(t, err)
}

func TestCurrent_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Current(context.Background())
	assert.Error(t, err)
}
