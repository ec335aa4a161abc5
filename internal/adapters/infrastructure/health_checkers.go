package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"prayertimes.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
	statusDisabled  = "disabled"

	upstreamCheckTimeout = 3 * time.Second
)

// StoreHealthChecker pings the entitlement store
type StoreHealthChecker struct {
	store ports.ManagedStore
}

func NewStoreHealthChecker(store ports.ManagedStore) *StoreHealthChecker {
	return &StoreHealthChecker{store: store}
}

func (s *StoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "store",
		Details:   make(map[string]interface{}),
	}

	if s.store == nil {
		status.Status = statusUnhealthy
		status.Error = "store is not configured"
		return status
	}

	status.Details["backend"] = s.store.GetStoreName()
	if err := s.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	status.Details["connected"] = true
	return status
}

// UpstreamHealthChecker sends a HEAD request to a remote API. Any HTTP answer
// below 500 counts as reachable; the status code of an API root is not
// meaningful to us.
type UpstreamHealthChecker struct {
	component string
	baseURL   string
	provider  string
	client    *http.Client
}

func NewUpstreamHealthChecker(component, provider, baseURL string) *UpstreamHealthChecker {
	return &UpstreamHealthChecker{
		component: component,
		provider:  provider,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: upstreamCheckTimeout},
	}
}

func (u *UpstreamHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: u.component,
		Details: map[string]interface{}{
			"provider": u.provider,
			"baseURL":  u.baseURL,
		},
	}

	if u.baseURL == "" {
		status.Status = statusDisabled
		return status
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.baseURL, nil)
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}

	startTime := time.Now()
	resp, err := u.client.Do(req)
	if err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
		return status
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	status.Details["statusCode"] = resp.StatusCode
	status.Details["latency_ms"] = time.Since(startTime).Milliseconds()

	if resp.StatusCode >= http.StatusInternalServerError {
		status.Status = statusUnhealthy
		status.Error = fmt.Sprintf("upstream returned status %d", resp.StatusCode)
		return status
	}

	status.Status = statusHealthy
	return status
}
