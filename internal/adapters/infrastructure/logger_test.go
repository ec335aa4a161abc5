package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"prayertimes.app/internal/ports"
)

func TestSlogLoggerAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	logger.Warn("Error fetching location",
		ports.F("latitude", 59.43),
		ports.F("error", fmt.Errorf("timeout")))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Error fetching location", entry["msg"])
	assert.Equal(t, 59.43, entry["latitude"])
	assert.Equal(t, "timeout", entry["error"])
}

func TestSlogLoggerAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	logger.Debug("dropped")
	assert.Zero(t, buf.Len())

	logger.Info("kept")
	assert.NotZero(t, buf.Len())
}

func TestSlogLoggerAdapter_ZeroValueUsesDefault(t *testing.T) {
	var logger SlogLoggerAdapter
	assert.NotPanics(t, func() { logger.Info("hello") })
}
