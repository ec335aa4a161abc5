package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestConfig(t *testing.T) *config.Config {
	return newTestConfigWithGeocoder(t, `{"address":{"city":"Tallinn","country":"Estonia"}}`)
}

func newTestConfigWithGeocoder(t *testing.T, geocoderReply string) *config.Config {
	prayerAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":200,"data":{"timings":{"Fajr":"05:12","Dhuhr":"12:31"}}}`))
	}))
	t.Cleanup(prayerAPI.Close)

	geocoder := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(geocoderReply))
	}))
	t.Cleanup(geocoder.Close)

	return &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 8080, AllowedOrigins: []string{"*"}},
		Location: config.LocationConfig{BaseURL: geocoder.URL, TimeoutSeconds: 5, UserAgent: "test"},
		Prayer:   config.PrayerConfig{BaseURL: prayerAPI.URL, TimeoutSeconds: 5},
		Payment:  config.PaymentConfig{TimeoutSeconds: 5},
		Store:    config.StoreConfig{Type: config.StoreTypeMemory},
		Log:      config.LogConfig{Level: "info"},
	}
}

func TestNewDependencyContainer_NilConfig(t *testing.T) {
	_, err := NewDependencyContainer(nil)
	assert.Error(t, err)
}

func TestNewDependencyContainer_WithoutPaymentHost(t *testing.T) {
	deps, err := NewDependencyContainer(newTestConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Cleanup() })

	p := deps.ApplicationPorts()
	assert.NotNil(t, p.ReverseGeocoder)
	assert.NotNil(t, p.PrayerTimesProvider)
	assert.NotNil(t, p.EntitlementStore)
	assert.Nil(t, p.InvoiceHost)
	assert.NotNil(t, p.Health)
}

func TestNewDependencyContainer_UnsupportedStore(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Store.Type = config.StoreTypeUnknown

	_, err := NewDependencyContainer(cfg)
	assert.Error(t, err)
}

func TestApplication_LaunchFetchesTodayForUnresolvedLocation(t *testing.T) {
	cfg := newTestConfig(t)

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.deps.Cleanup() })

	application.Launch(context.Background())
	application.GetController().Wait()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	application.GetRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["loading"])
	assert.Equal(t, true, body["subscribeVisible"])
	assert.Equal(t, false, body["paymentAvailable"])
	assert.Len(t, body["times"], 2)
}

func TestApplication_SubscribeWithoutHostIsSkipped(t *testing.T) {
	application, err := NewApplication(newTestConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.deps.Cleanup() })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe", nil)
	application.GetRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"skipped"`)
}

func getState(t *testing.T, application *Application) map[string]interface{} {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	application.GetRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestApplication_DeviceLocationResolvesCity(t *testing.T) {
	application, err := NewApplication(newTestConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.deps.Cleanup() })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/location/device", strings.NewReader(`{"latitude":59.43,"longitude":24.75}`))
	req.Header.Set("Content-Type", "application/json")
	application.GetRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusAccepted, w.Code)
	application.GetController().Wait()

	body := getState(t, application)
	assert.Equal(t, map[string]interface{}{"city": "Tallinn", "country": "Estonia"}, body["location"])
}

func TestApplication_UngeocodableDeviceLocationStaysUnresolved(t *testing.T) {
	application, err := NewApplication(newTestConfigWithGeocoder(t, `{"error":"Unable to geocode"}`))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.deps.Cleanup() })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/location/device", strings.NewReader(`{"latitude":0,"longitude":-30}`))
	req.Header.Set("Content-Type", "application/json")
	application.GetRouter().ServeHTTP(w, req)
	require.Equal(t, http.StatusAccepted, w.Code)
	application.GetController().Wait()

	body := getState(t, application)
	assert.Equal(t, map[string]interface{}{"city": "", "country": ""}, body["location"])
}

func TestApplication_HealthReachesUpstreams(t *testing.T) {
	application, err := NewApplication(newTestConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.deps.Cleanup() })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	application.GetRouter().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["geocoder"]["status"])
	assert.Equal(t, "healthy", body["prayerAPI"]["status"])
	assert.Equal(t, "disabled", body["paymentHost"]["status"])
}
