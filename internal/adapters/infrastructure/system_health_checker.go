package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"prayertimes.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
	version  string
}

type SystemHealthCheckerConfig struct {
	StoreChecker       ports.HealthChecker
	GeocoderChecker    ports.HealthChecker
	PrayerAPIChecker   ports.HealthChecker
	PaymentHostChecker ports.HealthChecker
	Version            string
}

func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.StoreChecker != nil {
		checkers["store"] = config.StoreChecker
	}
	if config.GeocoderChecker != nil {
		checkers["geocoder"] = config.GeocoderChecker
	}
	if config.PrayerAPIChecker != nil {
		checkers["prayerAPI"] = config.PrayerAPIChecker
	}
	if config.PaymentHostChecker != nil {
		checkers["paymentHost"] = config.PaymentHostChecker
	}

	return &SystemHealthChecker{checkers: checkers, version: config.Version}
}

// CheckAll runs every component check concurrently. If ctx ends first the
// remaining checks are abandoned and the app entry reports why.
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus, len(s.checkers)+1)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for name, checker := range s.checkers {
		name, checker := name, checker
		g.Go(func() error {
			status := checker.Check(gctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
			// component failures live in their status; only cancellation stops the group
			return ctx.Err()
		})
	}

	app := ports.HealthStatus{
		Component: "app",
		Status:    statusHealthy,
		Details:   map[string]interface{}{"version": s.version},
	}
	if err := g.Wait(); err != nil {
		app.Status = statusUnhealthy
		app.Error = fmt.Sprintf("health check interrupted: %v", err)
	}
	results["app"] = app

	return results
}

// IsHealthy reports whether no component is unhealthy. Disabled components do not count.
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status == statusUnhealthy {
			return false
		}
	}
	return true
}
