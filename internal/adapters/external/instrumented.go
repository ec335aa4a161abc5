package external

import (
	"context"
	"time"

	"prayertimes.app/internal/ports"
)

// InstrumentedGeocoder records geocode outcomes on a MetricsCollector
type InstrumentedGeocoder struct {
	ports.ReverseGeocoder
	metrics ports.MetricsCollector
}

func NewInstrumentedGeocoder(geocoder ports.ReverseGeocoder, metrics ports.MetricsCollector) ports.ReverseGeocoder {
	return &InstrumentedGeocoder{ReverseGeocoder: geocoder, metrics: metrics}
}

func (g *InstrumentedGeocoder) Reverse(ctx context.Context, latitude, longitude float64) (*ports.GeoAddress, error) {
	start := time.Now()
	addr, err := g.ReverseGeocoder.Reverse(ctx, latitude, longitude)
	g.metrics.RecordGeocode(err == nil, time.Since(start))
	return addr, err
}

// InstrumentedPrayerTimesProvider records fetch outcomes on a MetricsCollector
type InstrumentedPrayerTimesProvider struct {
	ports.PrayerTimesProvider
	metrics ports.MetricsCollector
}

func NewInstrumentedPrayerTimesProvider(provider ports.PrayerTimesProvider, metrics ports.MetricsCollector) ports.PrayerTimesProvider {
	return &InstrumentedPrayerTimesProvider{PrayerTimesProvider: provider, metrics: metrics}
}

func (p *InstrumentedPrayerTimesProvider) GetTimings(ctx context.Context, query ports.PrayerTimesQuery) ([]ports.PrayerTiming, error) {
	start := time.Now()
	timings, err := p.PrayerTimesProvider.GetTimings(ctx, query)
	p.metrics.RecordPrayerFetch(err == nil, time.Since(start))
	return timings, err
}

// InstrumentedInvoiceHost records the terminal status of every submission.
// Transport failures are recorded as "error".
type InstrumentedInvoiceHost struct {
	host    ports.InvoiceHost
	metrics ports.MetricsCollector
}

func NewInstrumentedInvoiceHost(host ports.InvoiceHost, metrics ports.MetricsCollector) ports.InvoiceHost {
	return &InstrumentedInvoiceHost{host: host, metrics: metrics}
}

func (h *InstrumentedInvoiceHost) SubmitInvoice(ctx context.Context, invoice ports.Invoice) (ports.InvoiceStatus, error) {
	status, err := h.host.SubmitInvoice(ctx, invoice)
	if err != nil {
		h.metrics.RecordPayment("error")
		return status, err
	}
	h.metrics.RecordPayment(string(status))
	return status, nil
}
