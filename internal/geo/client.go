// Package geo queries the opaque geolocation collaborator for the device's
// current position.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/huellitas-app/huellitas/internal/config"
	"github.com/huellitas-app/huellitas/internal/models"
)

type Client struct {
	endpoint string
	httpc    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		endpoint: cfg.GeoEndpoint,
		httpc:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Current returns the current position as {latitude, longitude}.
func (c *Client) Current(ctx context.Context) (*models.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation returned %s", resp.Status)
	}

	pos := &models.Coordinates{}
	if err := json.NewDecoder(resp.Body).Decode(pos); err != nil {
		return nil, fmt.Errorf("decode position: %w", err)
	}
	return pos, nil
}
