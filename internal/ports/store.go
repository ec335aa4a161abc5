package ports

import "context"

// KeyValueStore persists small string values across process restarts.
// Get returns a NotFound error for missing keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// ManagedStore is a KeyValueStore that owns a connection
type ManagedStore interface {
	KeyValueStore
	Ping(ctx context.Context) error
	Close() error
	GetStoreName() string
}
