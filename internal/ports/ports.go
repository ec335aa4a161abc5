package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Location
	ReverseGeocoder ReverseGeocoder

	// Prayer times
	PrayerTimesProvider PrayerTimesProvider

	// Entitlement and payment
	EntitlementStore KeyValueStore
	InvoiceHost      InvoiceHost
	Notifier         Notifier

	// Infrastructure
	Logger  Logger
	Metrics MetricsCollector
	Health  SystemHealthChecker
}
