package prayer

import (
	"fmt"
	"time"

	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/ports"
)

const isoDateLayout = "2006-01-02"

// Date is a calendar date without a time component
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Format returns the date as DD-MM-YYYY, the form the prayer-times API expects
func (d Date) Format() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// ISO returns the date as YYYY-MM-DD
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether the date is unset
func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ISO()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Timing is a prayer name and its formatted local time
type Timing struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// TimeSet is the ordered list of timings for one location and date.
// A nil TimeSet means no fetch has succeeded yet.
type TimeSet []Timing

func timeSetFromPorts(timings []ports.PrayerTiming) TimeSet {
	set := make(TimeSet, 0, len(timings))
	for _, t := range timings {
		set = append(set, Timing{Name: t.Name, Time: t.Time})
	}
	return set
}

// Get returns the time for a prayer name
func (s TimeSet) Get(name string) (string, bool) {
	for _, t := range s {
		if t.Name == name {
			return t.Time, true
		}
	}
	return "", false
}

// Inputs are the values a fetch is keyed by
type Inputs struct {
	Location location.Location
	Date     Date
}

func (in Inputs) query() ports.PrayerTimesQuery {
	return ports.PrayerTimesQuery{
		City:    in.Location.City,
		Country: in.Location.Country,
		Date:    in.Date.Format(),
	}
}
