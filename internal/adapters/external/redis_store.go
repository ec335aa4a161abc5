package external

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"prayertimes.app/internal/config"
	"prayertimes.app/pkg/errors"
)

// RedisStoreAdapter implements KeyValueStore on Redis. Keys are namespaced
// with the configured prefix and stored without expiry.
type RedisStoreAdapter struct {
	client *redis.Client
	prefix string
}

// NewRedisStoreAdapter creates a new Redis store adapter and checks the connection
func NewRedisStoreAdapter(config *config.RedisConfig) (*RedisStoreAdapter, error) {
	if config == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  time.Duration(config.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewStorageError("failed to connect to Redis", err)
	}

	return &RedisStoreAdapter{
		client: client,
		prefix: config.KeyPrefix,
	}, nil
}

func (r *RedisStoreAdapter) key(k string) string {
	return r.prefix + k
}

// Get retrieves a value from Redis
func (r *RedisStoreAdapter) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("store key cannot be empty")
	}

	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NewNotFoundError("key not found")
		}
		return "", errors.NewStorageError("redis get operation failed", err)
	}

	return val, nil
}

// Set stores a value in Redis
func (r *RedisStoreAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("store key cannot be empty")
	}

	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return errors.NewStorageError("redis set operation failed", err)
	}

	return nil
}

// Close closes the Redis client connection
func (r *RedisStoreAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewStorageError("failed to close Redis connection", err)
	}
	return nil
}

// Ping checks if Redis connection is alive
func (r *RedisStoreAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewStorageError("Redis ping failed", err)
	}
	return nil
}

func (r *RedisStoreAdapter) GetStoreName() string { return "redis" }
