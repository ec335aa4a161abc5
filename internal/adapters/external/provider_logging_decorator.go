package external

import (
	"context"
	"time"

	"prayertimes.app/internal/ports"
)

// GeocoderLoggingDecorator decorates reverse geocoders with structured logging
type GeocoderLoggingDecorator struct {
	geocoder ports.ReverseGeocoder
	logger   ports.Logger
}

func NewGeocoderLoggingDecorator(geocoder ports.ReverseGeocoder, logger ports.Logger) ports.ReverseGeocoder {
	return &GeocoderLoggingDecorator{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Reverse wraps the geocoder call with structured logging
func (d *GeocoderLoggingDecorator) Reverse(ctx context.Context, latitude, longitude float64) (*ports.GeoAddress, error) {
	providerName := d.geocoder.GetProviderName()

	d.logger.Debug("Geocoding request started",
		ports.F("provider", providerName),
		ports.F("latitude", latitude),
		ports.F("longitude", longitude),
		ports.F("event", "request"))

	startTime := time.Now()
	addr, err := d.geocoder.Reverse(ctx, latitude, longitude)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Warn("Geocoding request failed",
			ports.F("provider", providerName),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
	}
	if addr != nil {
		fields = append(fields,
			ports.F("city", addr.City),
			ports.F("town", addr.Town),
			ports.F("country", addr.Country))
	}
	d.logger.Info("Geocoding request completed", fields...)

	return addr, nil
}

func (d *GeocoderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.geocoder.GetProviderName() + ")"
}

// PrayerTimesProviderLoggingDecorator decorates prayer-times providers with structured logging
type PrayerTimesProviderLoggingDecorator struct {
	provider ports.PrayerTimesProvider
	logger   ports.Logger
}

func NewPrayerTimesProviderLoggingDecorator(provider ports.PrayerTimesProvider, logger ports.Logger) ports.PrayerTimesProvider {
	return &PrayerTimesProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetTimings wraps the provider call with structured logging
func (d *PrayerTimesProviderLoggingDecorator) GetTimings(ctx context.Context, query ports.PrayerTimesQuery) ([]ports.PrayerTiming, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Prayer times API request started",
		ports.F("provider", providerName),
		ports.F("city", query.City),
		ports.F("country", query.Country),
		ports.F("date", query.Date),
		ports.F("event", "request"))

	startTime := time.Now()
	timings, err := d.provider.GetTimings(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Warn("Prayer times API request failed",
			ports.F("provider", providerName),
			ports.F("city", query.City),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Prayer times API request completed",
		ports.F("provider", providerName),
		ports.F("city", query.City),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("timings", len(timings)))

	return timings, nil
}

func (d *PrayerTimesProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}
