package ports

import "context"

// GeoAddress is the subset of a reverse-geocoding answer the resolver uses.
// Empty fields mean the service did not return them.
type GeoAddress struct {
	City    string
	Town    string
	Country string
}

// ReverseGeocoder defines the contract for coordinate to address lookups
type ReverseGeocoder interface {
	Reverse(ctx context.Context, latitude, longitude float64) (*GeoAddress, error)
	GetProviderName() string
}
