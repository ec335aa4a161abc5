package location

import (
	"fmt"
	"strings"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/validation"
)

// UnknownPlace fills address fields the geocoder did not return
const UnknownPlace = "Unknown"

// Location is the city/country pair used to query prayer times.
// An empty City means the location is not resolved yet.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// IsResolved reports whether a city has been determined
func (l Location) IsResolved() bool {
	return l.City != ""
}

// String returns a string representation of the location
func (l Location) String() string {
	if !l.IsResolved() {
		return "unresolved"
	}
	return fmt.Sprintf("%s, %s", l.City, l.Country)
}

// FromAddress maps a reverse-geocoding answer to a Location,
// preferring city over town and falling back to UnknownPlace.
func FromAddress(addr ports.GeoAddress) Location {
	city := firstNonEmpty(addr.City, addr.Town, UnknownPlace)
	country := firstNonEmpty(addr.Country, UnknownPlace)
	return Location{City: city, Country: country}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed, ok := validation.TrimAndValidate(v); ok {
			return trimmed
		}
	}
	return ""
}

// City is the closed set of cities reachable through timezone selection
type City int

const (
	CityUnknown City = iota
	CityLondon
	CityParis
	CityBerlin
	CityMoscow
	CityTallinn
	CityDubai
	CityJakarta
	CityKarachi
	CityRiyadh
	CityKualaLumpur
)

type cityInfo struct {
	name    string
	country string
}

var cities = map[City]cityInfo{
	CityLondon:      {name: "London", country: "UK"},
	CityParis:       {name: "Paris", country: "France"},
	CityBerlin:      {name: "Berlin", country: "Germany"},
	CityMoscow:      {name: "Moscow", country: "Russia"},
	CityTallinn:     {name: "Tallinn", country: "Estonia"},
	CityDubai:       {name: "Dubai", country: "UAE"},
	CityJakarta:     {name: "Jakarta", country: "Indonesia"},
	CityKarachi:     {name: "Karachi", country: "Pakistan"},
	CityRiyadh:      {name: "Riyadh", country: "Saudi Arabia"},
	CityKualaLumpur: {name: "Kuala Lumpur", country: "Malaysia"},
}

// Name returns the display name of the city
func (c City) Name() string {
	if info, ok := cities[c]; ok {
		return info.name
	}
	return UnknownPlace
}

// Country returns the country the city belongs to
func (c City) Country() string {
	if info, ok := cities[c]; ok {
		return info.country
	}
	return UnknownPlace
}

// IsValid checks if the city is a member of the closed set
func (c City) IsValid() bool {
	_, ok := cities[c]
	return ok
}

// CityFromName looks up a city by its display name
func CityFromName(name string) City {
	for c, info := range cities {
		if info.name == name {
			return c
		}
	}
	return CityUnknown
}

// TimeZone is the closed set of IANA zones offered in the location selector
type TimeZone int

const (
	TimeZoneUnknown TimeZone = iota
	TimeZoneEuropeLondon
	TimeZoneEuropeParis
	TimeZoneEuropeBerlin
	TimeZoneEuropeMoscow
	TimeZoneEuropeTallinn
	TimeZoneAsiaDubai
	TimeZoneAsiaJakarta
	TimeZoneAsiaKarachi
	TimeZoneAsiaRiyadh
	TimeZoneAsiaKualaLumpur
)

// DefaultTimeZone is the selector value shown before the user picks one
const DefaultTimeZone = TimeZoneEuropeTallinn

// selector order
var timeZones = []TimeZone{
	TimeZoneEuropeLondon,
	TimeZoneEuropeParis,
	TimeZoneEuropeBerlin,
	TimeZoneEuropeMoscow,
	TimeZoneEuropeTallinn,
	TimeZoneAsiaDubai,
	TimeZoneAsiaJakarta,
	TimeZoneAsiaKarachi,
	TimeZoneAsiaRiyadh,
	TimeZoneAsiaKualaLumpur,
}

var timeZoneIDs = map[TimeZone]string{
	TimeZoneEuropeLondon:    "Europe/London",
	TimeZoneEuropeParis:     "Europe/Paris",
	TimeZoneEuropeBerlin:    "Europe/Berlin",
	TimeZoneEuropeMoscow:    "Europe/Moscow",
	TimeZoneEuropeTallinn:   "Europe/Tallinn",
	TimeZoneAsiaDubai:       "Asia/Dubai",
	TimeZoneAsiaJakarta:     "Asia/Jakarta",
	TimeZoneAsiaKarachi:     "Asia/Karachi",
	TimeZoneAsiaRiyadh:      "Asia/Riyadh",
	TimeZoneAsiaKualaLumpur: "Asia/Kuala_Lumpur",
}

// AllTimeZones returns the selectable zones in display order
func AllTimeZones() []TimeZone {
	out := make([]TimeZone, len(timeZones))
	copy(out, timeZones)
	return out
}

// String returns the IANA identifier of the zone
func (tz TimeZone) String() string {
	if id, ok := timeZoneIDs[tz]; ok {
		return id
	}
	return "unknown"
}

// IsValid checks if the zone is a member of the closed set
func (tz TimeZone) IsValid() bool {
	_, ok := timeZoneIDs[tz]
	return ok
}

// TimeZoneFromString converts an IANA identifier to TimeZone enum
func TimeZoneFromString(s string) TimeZone {
	s = strings.TrimSpace(s)
	for tz, id := range timeZoneIDs {
		if id == s {
			return tz
		}
	}
	return TimeZoneUnknown
}

// CityName derives the city from the second path segment of the zone id,
// with underscores replaced by spaces.
func (tz TimeZone) CityName() string {
	parts := strings.SplitN(tz.String(), "/", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.ReplaceAll(parts[1], "_", " ")
}

// City returns the city the zone maps to
func (tz TimeZone) City() City {
	return CityFromName(tz.CityName())
}

// Location returns the city/country pair for the zone
func (tz TimeZone) Location() Location {
	city := tz.City()
	return Location{City: tz.CityName(), Country: city.Country()}
}

// MarshalText implements encoding.TextMarshaler
func (tz TimeZone) MarshalText() ([]byte, error) {
	return []byte(tz.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (tz *TimeZone) UnmarshalText(text []byte) error {
	*tz = TimeZoneFromString(string(text))
	return nil
}
