package infrastructure

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func outcomeLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

// PrometheusMetricsCollector implements MetricsCollector on its own registry
type PrometheusMetricsCollector struct {
	registry *prometheus.Registry

	geocodeRequests *prometheus.CounterVec
	geocodeLatency  prometheus.Histogram
	prayerRequests  *prometheus.CounterVec
	prayerLatency   prometheus.Histogram
	payments        *prometheus.CounterVec
}

func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		geocodeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prayertimes_geocode_requests_total",
				Help: "Reverse geocoding requests by outcome",
			},
			[]string{"outcome"},
		),
		geocodeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "prayertimes_geocode_duration_seconds",
			Help:    "Reverse geocoding request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		prayerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prayertimes_prayer_fetches_total",
				Help: "Prayer times fetches by outcome",
			},
			[]string{"outcome"},
		),
		prayerLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "prayertimes_prayer_fetch_duration_seconds",
			Help:    "Prayer times fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		payments: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "prayertimes_payments_total",
				Help: "Invoice submissions by terminal status",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordGeocode(success bool, duration time.Duration) {
	m.geocodeRequests.WithLabelValues(outcomeLabel(success)).Inc()
	m.geocodeLatency.Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordPrayerFetch(success bool, duration time.Duration) {
	m.prayerRequests.WithLabelValues(outcomeLabel(success)).Inc()
	m.prayerLatency.Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordPayment(status string) {
	m.payments.WithLabelValues(status).Inc()
}

// Registry exposes the underlying registry for tests
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
