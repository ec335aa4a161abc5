// Package api provides the local UI bridge: a JSON API the web-view front end
// polls for state and calls to report device events and user choices.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/core/controller"
	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/core/payment"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
	"prayertimes.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// PrayerController is the application surface the bridge drives
type PrayerController interface {
	DeviceLocation(latitude, longitude float64)
	DeviceLocationUnsupported()
	SelectTimezone(tz location.TimeZone) error
	ConfirmLocation()
	SelectDate(date prayer.Date) error
	Subscribe(ctx context.Context) (payment.Outcome, error)
	View() controller.View
}

// HTTPServerAdapter implements the bridge using Gin
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	controller     PrayerController
	health         ports.SystemHealthChecker
	metricsHandler http.Handler
	logger         ports.Logger
	paymentTimeout time.Duration
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config         ServerConfig
	Controller     PrayerController
	Health         ports.SystemHealthChecker
	MetricsHandler http.Handler
	Logger         ports.Logger
	// PaymentTimeout bounds a subscribe request; zero means the request context only
	PaymentTimeout time.Duration
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		controller:     opts.Controller,
		health:         opts.Health,
		metricsHandler: opts.MetricsHandler,
		logger:         opts.Logger,
		paymentTimeout: opts.PaymentTimeout,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.Controller == nil {
		return errors.NewValidationError("controller is required")
	}
	if opts.Health == nil {
		return errors.NewValidationError("health checker is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	origins := s.config.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.Use(cors.New(s.corsConfig()))
	s.router.Use(s.requestLogger())

	api := s.router.Group("/api")
	{
		api.GET("/state", s.getState)
		api.GET("/timezones", s.getTimezones)
		api.POST("/location/device", s.deviceLocation)
		api.POST("/location/unsupported", s.deviceLocationUnsupported)
		api.POST("/location/timezone", s.selectTimezone)
		api.POST("/location/confirm", s.confirmLocation)
		api.PUT("/date", s.selectDate)
		api.POST("/subscribe", s.subscribe)
		api.GET("/health", s.getHealth)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
}

func (s *HTTPServerAdapter) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.logger.Debug("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.FullPath()),
			ports.F("status", c.Writer.Status()),
			ports.F("duration_ms", time.Since(start).Milliseconds()))
	}
}

// Addr returns the listen address
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
