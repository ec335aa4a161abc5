package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"prayertimes.app/pkg/errors"
	"prayertimes.app/pkg/validation"
)

const (
	maxRedisDB        = 15
	maxPortNumber     = 65535
	maxTimeoutSeconds = 300
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Location LocationConfig `split_words:"true"`
	Prayer   PrayerConfig   `split_words:"true"`
	Payment  PaymentConfig  `split_words:"true"`
	Store    StoreConfig    `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

// ServerConfig configures the local UI bridge the web view talks to.
type ServerConfig struct {
	Host           string   `envconfig:"SERVER_HOST" default:"127.0.0.1"`
	Port           int      `envconfig:"SERVER_PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"SERVER_ALLOWED_ORIGINS" default:"*"`
}

// Addr returns the listen address for the bridge.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LocationConfig struct {
	BaseURL        string `envconfig:"LOCATION_API_URL" default:"https://nominatim.openstreetmap.org/reverse"`
	TimeoutSeconds int    `envconfig:"LOCATION_API_TIMEOUT_SECONDS" default:"10"`
	UserAgent      string `envconfig:"LOCATION_USER_AGENT" default:"prayertimes.app/1.0"`
}

func (l LocationConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

type PrayerConfig struct {
	BaseURL        string `envconfig:"PRAYER_API_URL" default:"https://api.aladhan.com"`
	TimeoutSeconds int    `envconfig:"PRAYER_API_TIMEOUT_SECONDS" default:"10"`
}

func (p PrayerConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// PaymentConfig configures the invoice host. An empty HostURL means the
// host runtime is absent and subscribing is a no-op.
type PaymentConfig struct {
	HostURL        string `envconfig:"PAYMENT_HOST_URL"`
	ProviderToken  string `envconfig:"PAYMENT_PROVIDER_TOKEN"`
	TimeoutSeconds int    `envconfig:"PAYMENT_TIMEOUT_SECONDS" default:"60"`
}

func (p PaymentConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// HostEnabled reports whether an invoice host is configured.
func (p PaymentConfig) HostEnabled() bool {
	return strings.TrimSpace(p.HostURL) != ""
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

// StoreType represents the backing store for persisted entitlement state
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
	StoreTypeDatabase
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeDatabase:
		return "database"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis || s == StoreTypeDatabase
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	case "database":
		return StoreTypeDatabase
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type     StoreType      `envconfig:"STORE_TYPE" default:"database"`
	Redis    RedisConfig    `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"prayertimes:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DatabaseConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	SQLitePath string `envconfig:"DB_SQLITE_PATH" default:"data/prayertimes.db"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"prayertimes"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if err := c.Prayer.Validate(); err != nil {
		return err
	}
	if err := c.Payment.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Host == "" {
		return errors.NewConfigurationError("SERVER_HOST cannot be empty", nil)
	}
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (l *LocationConfig) Validate() error {
	if !validation.IsHTTPURL(l.BaseURL) {
		return errors.NewConfigurationError("LOCATION_API_URL must start with http:// or https://", nil)
	}
	if err := validateTimeout("LOCATION_API_TIMEOUT_SECONDS", l.TimeoutSeconds); err != nil {
		return err
	}
	return nil
}

func (p *PrayerConfig) Validate() error {
	if !validation.IsHTTPURL(p.BaseURL) {
		return errors.NewConfigurationError("PRAYER_API_URL must start with http:// or https://", nil)
	}
	if err := validateTimeout("PRAYER_API_TIMEOUT_SECONDS", p.TimeoutSeconds); err != nil {
		return err
	}
	return nil
}

func (p *PaymentConfig) Validate() error {
	if !p.HostEnabled() {
		return nil
	}
	if !validation.IsHTTPURL(p.HostURL) {
		return errors.NewConfigurationError("PAYMENT_HOST_URL must start with http:// or https://", nil)
	}
	if !validation.IsNotEmpty(p.ProviderToken) {
		return errors.NewConfigurationError("PAYMENT_PROVIDER_TOKEN cannot be empty when PAYMENT_HOST_URL is set", nil)
	}
	return validateTimeout("PAYMENT_TIMEOUT_SECONDS", p.TimeoutSeconds)
}

func (s *StoreConfig) Validate() error {
	switch s.Type {
	case StoreTypeMemory:
		return nil
	case StoreTypeRedis:
		return s.Redis.Validate()
	case StoreTypeDatabase:
		return s.Database.Validate()
	default:
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, redis, database", nil)
	}
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty for sqlite driver", nil)
		}
		return nil
	case "postgres":
		if d.Host == "" {
			return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
		}
		if d.Port < 1 || d.Port > maxPortNumber {
			return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
		}
		if d.User == "" {
			return errors.NewConfigurationError("DB_USER cannot be empty", nil)
		}
		if d.Name == "" {
			return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
		}
		return d.ValidateSSLMode()
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: sqlite, postgres", nil)
	}
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func validateTimeout(name string, seconds int) error {
	if seconds < 1 || seconds > maxTimeoutSeconds {
		return errors.NewConfigurationError(fmt.Sprintf("%s must be between 1 and %d seconds", name, maxTimeoutSeconds), nil)
	}
	return nil
}
