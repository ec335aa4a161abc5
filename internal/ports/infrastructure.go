package ports

import (
	"context"
	"time"
)

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsCollector defines the contract for metrics collection
type MetricsCollector interface {
	RecordGeocode(success bool, duration time.Duration)
	RecordPrayerFetch(success bool, duration time.Duration)
	RecordPayment(status string)
}

// Notifier surfaces a user-facing notice to the presentation layer.
// Clear withdraws the current notice once it no longer applies.
type Notifier interface {
	Notify(ctx context.Context, message string)
	Clear(ctx context.Context)
}
