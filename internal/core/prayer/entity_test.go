package prayer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/ports"
)

func TestDate_Format(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected string
	}{
		{"ZeroPaddedDayAndMonth", Date{Year: 2024, Month: time.March, Day: 5}, "05-03-2024"},
		{"TwoDigitDayAndMonth", Date{Year: 2025, Month: time.December, Day: 31}, "31-12-2025"},
		{"LeapDay", Date{Year: 2028, Month: time.February, Day: 29}, "29-02-2028"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.Format())
		})
	}
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 5}, DateOf(ts))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 5}, d)
	assert.Equal(t, "2024-03-05", d.ISO())

	_, err = ParseDate("05-03-2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Date Date `json:"date"`
	}{Date: Date{Year: 2024, Month: time.March, Day: 5}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-03-05"}`, string(payload))

	var decoded struct {
		Date Date `json:"date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2025-01-09"}`), &decoded))
	assert.Equal(t, Date{Year: 2025, Month: time.January, Day: 9}, decoded.Date)
	assert.False(t, decoded.Date.IsZero())
	assert.True(t, Date{}.IsZero())
}

func TestTimeSet_PreservesOrder(t *testing.T) {
	set := timeSetFromPorts([]ports.PrayerTiming{
		{Name: "Fajr", Time: "05:12"},
		{Name: "Sunrise", Time: "06:40"},
		{Name: "Dhuhr", Time: "12:31"},
	})

	require.Len(t, set, 3)
	assert.Equal(t, "Fajr", set[0].Name)
	assert.Equal(t, "Dhuhr", set[2].Name)

	v, ok := set.Get("Sunrise")
	assert.True(t, ok)
	assert.Equal(t, "06:40", v)

	_, ok = set.Get("Isha")
	assert.False(t, ok)
}

func TestInputs_Query(t *testing.T) {
	in := Inputs{
		Location: location.Location{City: "Tallinn", Country: "Estonia"},
		Date:     Date{Year: 2024, Month: time.March, Day: 5},
	}

	assert.Equal(t, ports.PrayerTimesQuery{City: "Tallinn", Country: "Estonia", Date: "05-03-2024"}, in.query())
}
