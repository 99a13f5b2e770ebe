// Package carrierapi holds the transport pieces shared by the carrier rate
// adapters: an authenticated JSON POST and lenient numeric decoding.
package carrierapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shiprates/internal/core/ports"
)

// DefaultTimeout bounds a single HTTP exchange when no client is supplied.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of a failed response is kept for logging.
const maxErrorBody = 1024

// Client posts JSON to a rate endpoint with a bearer API key.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// NewClient creates a client. A nil httpClient gets one with DefaultTimeout.
func NewClient(url, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{url: url, apiKey: apiKey, http: httpClient}
}

// Configured reports whether both the endpoint and the API key are set.
func (c *Client) Configured() bool {
	return c.url != "" && c.apiKey != ""
}

// PostJSON sends payload and decodes a 2xx response into out.
//
// Errors:
//   - ports.ErrConfigurationMissing: no URL or API key
//   - ports.ErrTransportFailure: request could not be sent or status is not 2xx
//   - ports.ErrSchemaMapping: response body is not the expected JSON
func (c *Client) PostJSON(ctx context.Context, payload, out any) error {
	if !c.Configured() {
		return ports.ErrConfigurationMissing
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode request: %w", ports.ErrTransportFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ports.ErrTransportFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: status %d: %s", ports.ErrTransportFailure, resp.StatusCode, bytes.TrimSpace(b))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrSchemaMapping, err)
	}
	return nil
}
