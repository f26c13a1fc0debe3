package hrmsapi

import (
	"context"
	"net/http"
)

// Livez checks if the service is alive.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// Readyz checks if the service is ready. A degraded service returns both its
// health report and an *APIError with status 503.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}
	status := resp.StatusCode

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK, http.StatusServiceUnavailable); err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return &health, &APIError{StatusCode: status, Message: health.Status}
	}
	return &health, nil
}
