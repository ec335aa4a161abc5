package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org/reverse"

// NominatimGeocoderAdapter implements ReverseGeocoder against an OSM Nominatim reverse endpoint
type NominatimGeocoderAdapter struct {
	baseURL   string
	userAgent string
	client    HTTPClient
	logger    ports.Logger
}

type NominatimGeocoderParams struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    ports.Logger
}

// NominatimResponse is the part of the reverse answer we read. Address is
// nil when nominatim could not geocode the point, e.g. over open sea.
type NominatimResponse struct {
	Address *struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Country string `json:"country"`
	} `json:"address"`
	Error string `json:"error"`
}

func NewNominatimGeocoderAdapter(params NominatimGeocoderParams) *NominatimGeocoderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultNominatimURL
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &NominatimGeocoderAdapter{
		baseURL:   baseURL,
		userAgent: params.UserAgent,
		client:    &http.Client{Timeout: timeout},
		logger:    params.Logger,
	}
}

// Reverse looks up the address for a coordinate pair
func (g *NominatimGeocoderAdapter) Reverse(ctx context.Context, latitude, longitude float64) (*ports.GeoAddress, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))

	req, err := newGetRequest(ctx, g.baseURL+"?"+query.Encode())
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build geocoding request", err)
	}
	// Nominatim's usage policy requires an identifying agent
	if g.userAgent != "" {
		req.Header.Set("User-Agent", g.userAgent)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call geocoding service", err)
	}
	defer closeBody(resp.Body, g.logger, g.GetProviderName())

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("geocoding service returned status %d", resp.StatusCode), nil)
	}

	var apiResp NominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode geocoding response", err)
	}
	if apiResp.Address == nil {
		msg := "geocoding response has no address"
		if apiResp.Error != "" {
			msg = fmt.Sprintf("%s: %s", msg, apiResp.Error)
		}
		return nil, errors.NewExternalAPIError(msg, nil)
	}

	return &ports.GeoAddress{
		City:    apiResp.Address.City,
		Town:    apiResp.Address.Town,
		Country: apiResp.Address.Country,
	}, nil
}

func (g *NominatimGeocoderAdapter) GetProviderName() string {
	return "nominatim"
}
