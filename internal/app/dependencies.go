package app

import (
	"fmt"
	"log/slog"
	"time"

	"prayertimes.app/internal/adapters/external"
	"prayertimes.app/internal/adapters/infrastructure"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/ports"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const noticeTTL = 30 * time.Second

// DependencyContainer builds the adapters behind every port
type DependencyContainer struct {
	config  *config.Config
	store   ports.ManagedStore
	metrics *infrastructure.PrometheusMetricsCollector
	notices *infrastructure.NoticeBoard
	ports   *ports.ApplicationPorts
}

// NewDependencyContainer wires adapters from configuration. The store is
// opened here so a bad STORE_TYPE fails before anything else starts.
func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	c := &DependencyContainer{config: cfg}

	if err := c.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return c, nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger, err := c.createLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	store, err := external.NewStoreFactory().CreateStore(&c.config.Store)
	if err != nil {
		return fmt.Errorf("create entitlement store: %w", err)
	}
	c.store = store
	logger.Info("Entitlement store ready", ports.F("store", store.GetStoreName()))

	c.metrics = infrastructure.NewPrometheusMetricsCollector()
	c.notices = infrastructure.NewNoticeBoard(logger, noticeTTL)

	geocoder := external.NewInstrumentedGeocoder(
		external.NewGeocoderLoggingDecorator(
			external.NewNominatimGeocoderAdapter(external.NominatimGeocoderParams{
				BaseURL:   c.config.Location.BaseURL,
				UserAgent: c.config.Location.UserAgent,
				Timeout:   c.config.Location.Timeout(),
				Logger:    logger,
			}),
			logger,
		),
		c.metrics,
	)

	provider := external.NewInstrumentedPrayerTimesProvider(
		external.NewPrayerTimesProviderLoggingDecorator(
			external.NewAladhanProviderAdapter(external.AladhanProviderParams{
				BaseURL: c.config.Prayer.BaseURL,
				Timeout: c.config.Prayer.Timeout(),
				Logger:  logger,
			}),
			logger,
		),
		c.metrics,
	)

	// No host configured means the app is not running inside the payment shell.
	var invoiceHost ports.InvoiceHost
	if c.config.Payment.HostEnabled() {
		invoiceHost = external.NewInstrumentedInvoiceHost(
			external.NewHTTPInvoiceHostAdapter(external.HTTPInvoiceHostParams{
				URL:     c.config.Payment.HostURL,
				Timeout: c.config.Payment.Timeout(),
				Logger:  logger,
			}),
			c.metrics,
		)
	} else {
		logger.Info("Payment host not configured, subscribe is disabled")
	}

	health := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		StoreChecker:       infrastructure.NewStoreHealthChecker(store),
		GeocoderChecker:    infrastructure.NewUpstreamHealthChecker("geocoder", "nominatim", c.config.Location.BaseURL),
		PrayerAPIChecker:   infrastructure.NewUpstreamHealthChecker("prayerAPI", "aladhan", c.config.Prayer.BaseURL),
		PaymentHostChecker: infrastructure.NewUpstreamHealthChecker("paymentHost", "http", c.config.Payment.HostURL),
		Version:            Version,
	})

	c.ports = &ports.ApplicationPorts{
		ReverseGeocoder:     geocoder,
		PrayerTimesProvider: provider,
		EntitlementStore:    store,
		InvoiceHost:         invoiceHost,
		Notifier:            c.notices,
		Logger:              logger,
		Metrics:             c.metrics,
		Health:              health,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) createLogger() (ports.Logger, error) {
	if c.config.Log.FilePath == "" {
		return infrastructure.NewSlogLoggerAdapter(slog.Default()), nil
	}
	fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath, c.config.Log.Level)
	if err != nil {
		return nil, err
	}
	return fileLogger, nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Notices is the board the controller reads failure notices from
func (c *DependencyContainer) Notices() *infrastructure.NoticeBoard {
	return c.notices
}

func (c *DependencyContainer) MetricsCollector() *infrastructure.PrometheusMetricsCollector {
	return c.metrics
}

// Cleanup closes the entitlement store
func (c *DependencyContainer) Cleanup() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
