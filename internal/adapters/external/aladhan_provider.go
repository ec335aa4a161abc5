package external

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

const defaultAladhanURL = "https://api.aladhan.com"

// AladhanProviderAdapter implements PrayerTimesProvider for the Aladhan timingsByCity API
type AladhanProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

type AladhanProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
}

// AladhanResponse represents the response from the timingsByCity endpoint
type AladhanResponse struct {
	Code int `json:"code"`
	Data *struct {
		Timings orderedTimings `json:"timings"`
	} `json:"data"`
}

// orderedTimings decodes a JSON object of name -> time keeping key order
type orderedTimings []ports.PrayerTiming

func (o *orderedTimings) UnmarshalJSON(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("timings: expected object, got %v", tok)
	}

	out := make(orderedTimings, 0, 10)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("timings: unexpected key %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("timings: value for %s: %w", name, err)
		}
		out = append(out, ports.PrayerTiming{Name: name, Time: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = out
	return nil
}

func NewAladhanProviderAdapter(params AladhanProviderParams) *AladhanProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultAladhanURL
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &AladhanProviderAdapter{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  params.Logger,
	}
}

// GetTimings fetches the timings for one city and date. Empty city or
// country values are sent as is; the remote service decides what to answer.
func (p *AladhanProviderAdapter) GetTimings(ctx context.Context, query ports.PrayerTimesQuery) ([]ports.PrayerTiming, error) {
	params := url.Values{}
	params.Set("city", query.City)
	params.Set("country", query.Country)
	params.Set("date", query.Date)

	req, err := newGetRequest(ctx, fmt.Sprintf("%s/v1/timingsByCity?%s", p.baseURL, params.Encode()))
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build prayer times request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call prayer times API", err)
	}
	defer closeBody(resp.Body, p.logger, p.GetProviderName())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("prayer times API returned status %d", resp.StatusCode), nil)
	}

	var apiResp AladhanResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode prayer times response", err)
	}
	if apiResp.Data == nil || apiResp.Data.Timings == nil {
		return nil, errors.NewExternalAPIError("prayer times response has no timings", nil)
	}

	return apiResp.Data.Timings, nil
}

func (p *AladhanProviderAdapter) GetProviderName() string {
	return "aladhan"
}
