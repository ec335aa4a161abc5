package external

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/mocks"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const aladhanTallinnResponse = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Fajr": "04:31",
			"Sunrise": "06:52",
			"Dhuhr": "12:31",
			"Asr": "14:59",
			"Sunset": "18:11",
			"Maghrib": "18:11",
			"Isha": "20:24",
			"Imsak": "04:21",
			"Midnight": "00:31"
		},
		"date": {"readable": "05 Mar 2024", "timestamp": "1709625600"},
		"meta": {"timezone": "Europe/Tallinn"}
	}
}`

func TestAladhanProvider_GetTimings_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/timingsByCity", r.URL.Path)
		assert.Equal(t, "Tallinn", r.URL.Query().Get("city"))
		assert.Equal(t, "Estonia", r.URL.Query().Get("country"))
		assert.Equal(t, "05-03-2024", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(aladhanTallinnResponse))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	provider := NewAladhanProviderAdapter(AladhanProviderParams{BaseURL: mockServer.URL, Logger: mocks.AllowLogs(mocks.NewLogger(t))})

	timings, err := provider.GetTimings(context.Background(), ports.PrayerTimesQuery{
		City: "Tallinn", Country: "Estonia", Date: "05-03-2024",
	})

	require.NoError(t, err)
	require.Len(t, timings, 9)

	names := make([]string, 0, len(timings))
	for _, timing := range timings {
		names = append(names, timing.Name)
	}
	assert.Equal(t, []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Sunset", "Maghrib", "Isha", "Imsak", "Midnight"}, names)
	assert.Equal(t, ports.PrayerTiming{Name: "Dhuhr", Time: "12:31"}, timings[2])
	assert.Equal(t, "aladhan", provider.GetProviderName())
}

func TestAladhanProvider_GetTimings_EmptyCityPassedThrough(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasCity := r.URL.Query()["city"]
		assert.True(t, hasCity)
		assert.Empty(t, r.URL.Query().Get("city"))
		assert.Empty(t, r.URL.Query().Get("country"))
		_, _ = w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"05:00"}}}`))
	}))
	defer mockServer.Close()

	provider := NewAladhanProviderAdapter(AladhanProviderParams{BaseURL: mockServer.URL + "/", Logger: mocks.AllowLogs(mocks.NewLogger(t))})

	timings, err := provider.GetTimings(context.Background(), ports.PrayerTimesQuery{Date: "05-03-2024"})

	require.NoError(t, err)
	assert.Equal(t, []ports.PrayerTiming{{Name: "Fajr", Time: "05:00"}}, timings)
}

func TestAladhanProvider_GetTimings_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "ServerError", status: http.StatusInternalServerError, body: `{"code":500}`},
		{name: "BadRequest", status: http.StatusBadRequest, body: `{"code":400,"data":"Please specify a city"}`},
		{name: "MissingData", status: http.StatusOK, body: `{"code":200}`},
		{name: "MissingTimings", status: http.StatusOK, body: `{"code":200,"data":{"date":{}}}`},
		{name: "TimingsNotObject", status: http.StatusOK, body: `{"code":200,"data":{"timings":["05:00"]}}`},
		{name: "TimingValueNotString", status: http.StatusOK, body: `{"code":200,"data":{"timings":{"Fajr":5}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer mockServer.Close()

			provider := NewAladhanProviderAdapter(AladhanProviderParams{BaseURL: mockServer.URL, Logger: mocks.AllowLogs(mocks.NewLogger(t))})

			timings, err := provider.GetTimings(context.Background(), ports.PrayerTimesQuery{City: "X", Date: "01-01-2024"})

			assert.Nil(t, timings)
			assert.True(t, errors.IsExternalAPIError(err))
		})
	}
}

func TestOrderedTimings_UnmarshalJSON(t *testing.T) {
	var timings orderedTimings
	err := json.Unmarshal([]byte(`{"Isha":"20:24","Fajr":"04:31"}`), &timings)

	require.NoError(t, err)
	assert.Equal(t, orderedTimings{{Name: "Isha", Time: "20:24"}, {Name: "Fajr", Time: "04:31"}}, timings)
}
