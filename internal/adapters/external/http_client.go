// Package external provides adapters for the remote services the app talks to:
// reverse geocoding, prayer times and the invoice host, plus the key-value
// stores that back persisted entitlement.
package external

import (
	"context"
	"io"
	"net/http"

	"prayertimes.app/internal/ports"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func closeBody(body io.Closer, logger ports.Logger, provider string) {
	if err := body.Close(); err != nil && logger != nil {
		logger.Warn("Failed to close response body", ports.F("provider", provider), ports.F("error", err))
	}
}

func newGetRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}
