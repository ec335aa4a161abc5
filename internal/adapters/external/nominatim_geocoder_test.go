package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/mocks"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

func TestNominatimGeocoder_Reverse_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "59.437", r.URL.Query().Get("lat"))
		assert.Equal(t, "24.7536", r.URL.Query().Get("lon"))
		assert.Equal(t, "prayertimes-test/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"place_id": 1,
			"display_name": "Tallinn, Harju County, Estonia",
			"address": {"city": "Tallinn", "county": "Harju County", "country": "Estonia", "country_code": "ee"}
		}`))
		assert.NoError(t, err)
	}))
	defer mockServer.Close()

	geocoder := NewNominatimGeocoderAdapter(NominatimGeocoderParams{
		BaseURL:   mockServer.URL,
		UserAgent: "prayertimes-test/1.0",
		Logger:    mocks.AllowLogs(mocks.NewLogger(t)),
	})

	addr, err := geocoder.Reverse(context.Background(), 59.437, 24.7536)

	require.NoError(t, err)
	assert.Equal(t, "Tallinn", addr.City)
	assert.Empty(t, addr.Town)
	assert.Equal(t, "Estonia", addr.Country)
	assert.Equal(t, "nominatim", geocoder.GetProviderName())
}

func TestNominatimGeocoder_Reverse_TownOnly(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address": {"town": "Keila", "country": "Estonia"}}`))
	}))
	defer mockServer.Close()

	geocoder := NewNominatimGeocoderAdapter(NominatimGeocoderParams{BaseURL: mockServer.URL, Logger: mocks.AllowLogs(mocks.NewLogger(t))})

	addr, err := geocoder.Reverse(context.Background(), 59.30, 24.41)

	require.NoError(t, err)
	assert.Empty(t, addr.City)
	assert.Equal(t, "Keila", addr.Town)
}

func TestNominatimGeocoder_Reverse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "ServerError",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "RateLimited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			name: "MalformedBody",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"address":`))
			},
		},
		{
			name: "NoAddressObject",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
			},
		},
		{
			name: "EmptyObject",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(tt.handler)
			defer mockServer.Close()

			geocoder := NewNominatimGeocoderAdapter(NominatimGeocoderParams{BaseURL: mockServer.URL, Logger: mocks.AllowLogs(mocks.NewLogger(t))})

			addr, err := geocoder.Reverse(context.Background(), 1, 2)

			assert.Nil(t, addr)
			assert.True(t, errors.IsExternalAPIError(err))
		})
	}
}

func TestNominatimGeocoder_Reverse_EmptyAddressIsNotAnError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"address": {}}`))
	}))
	defer mockServer.Close()

	geocoder := NewNominatimGeocoderAdapter(NominatimGeocoderParams{BaseURL: mockServer.URL, Logger: mocks.AllowLogs(mocks.NewLogger(t))})

	addr, err := geocoder.Reverse(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, ports.GeoAddress{}, *addr)
}

func TestNominatimGeocoder_Reverse_Unreachable(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := mockServer.URL
	mockServer.Close()

	geocoder := NewNominatimGeocoderAdapter(NominatimGeocoderParams{BaseURL: url, Logger: mocks.AllowLogs(mocks.NewLogger(t))})

	_, err := geocoder.Reverse(context.Background(), 1, 2)

	assert.True(t, errors.IsExternalAPIError(err))
}
