package ports

import "context"

// PrayerTimesQuery keys a single prayer-times request.
// Date is already formatted as DD-MM-YYYY.
type PrayerTimesQuery struct {
	City    string
	Country string
	Date    string
}

// PrayerTiming is one prayer name and its formatted local time, as returned by the API
type PrayerTiming struct {
	Name string
	Time string
}

// PrayerTimesProvider defines the contract for prayer-times sources.
// Timings keep the order the remote service sent them in.
type PrayerTimesProvider interface {
	GetTimings(ctx context.Context, query PrayerTimesQuery) ([]PrayerTiming, error)
	GetProviderName() string
}
