// Package seed fetches the one-time catalog seed document over HTTP.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"showroom/internal/models"
)

// Client downloads the seed catalog from a static JSON resource.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a seed client for the given URL.
func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{},
	}
}

// Fetch performs the HTTP GET and decodes the car list. A non-2xx status
// is an error. The context governs cancellation; no retries are attempted.
func (c *Client) Fetch(ctx context.Context) ([]models.CarRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build seed request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch seed: unexpected status %d", resp.StatusCode)
	}

	var cars []models.CarRecord
	if err := json.NewDecoder(resp.Body).Decode(&cars); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	return cars, nil
}
