package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"prayertimes.app/internal/adapters/api"
	"prayertimes.app/internal/config"
	"prayertimes.app/internal/core/controller"
	"prayertimes.app/internal/core/entitlement"
	"prayertimes.app/internal/core/location"
	"prayertimes.app/internal/core/payment"
	"prayertimes.app/internal/core/prayer"
	"prayertimes.app/internal/ports"
)

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	// Core
	resolver    *location.Resolver
	sync        *prayer.Sync
	entitlement *entitlement.Service
	payment     *payment.Flow
	controller  *controller.Controller

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	ports *ports.ApplicationPorts
}

func NewApplication(cfg *config.Config) (*Application, error) {
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies builds the application on a prepared container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeCore(); err != nil {
		return nil, fmt.Errorf("initialize core: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeCore() error {
	slog.Info("Initializing core services...")

	resolver, err := location.NewResolver(location.ResolverDependencies{
		Geocoder: a.ports.ReverseGeocoder,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create location resolver: %w", err)
	}
	a.resolver = resolver

	sync, err := prayer.NewSync(prayer.SyncDependencies{
		Provider: a.ports.PrayerTimesProvider,
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create prayer times sync: %w", err)
	}
	a.sync = sync

	entitlementService, err := entitlement.NewService(entitlement.ServiceDependencies{
		Store:  a.ports.EntitlementStore,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create entitlement service: %w", err)
	}
	a.entitlement = entitlementService

	flow, err := payment.NewFlow(payment.FlowDependencies{
		Host:          a.ports.InvoiceHost,
		Entitlement:   a.entitlement,
		Notifier:      a.ports.Notifier,
		Logger:        a.ports.Logger,
		ProviderToken: a.config.Payment.ProviderToken,
	})
	if err != nil {
		return fmt.Errorf("create payment flow: %w", err)
	}
	a.payment = flow

	ctrl, err := controller.NewController(controller.ControllerDependencies{
		Resolver:    a.resolver,
		Sync:        a.sync,
		Entitlement: a.entitlement,
		Payment:     a.payment,
		Notices:     a.deps.Notices(),
		Logger:      a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}
	a.controller = ctrl

	slog.Info("Core services initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Host:           a.config.Server.Host,
			Port:           a.config.Server.Port,
			AllowedOrigins: a.config.Server.AllowedOrigins,
		},
		Controller:     a.controller,
		Health:         a.ports.Health,
		MetricsHandler: a.deps.MetricsCollector().Handler(),
		Logger:         a.ports.Logger,
		PaymentTimeout: a.config.Payment.Timeout(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	// WriteTimeout stays above the payment timeout so a subscribe can finish.
	a.httpServer = &http.Server{
		Addr:         httpAdapter.Addr(),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: a.config.Payment.Timeout() + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Launch restores persisted entitlement and issues the launch fetch. It
// does not serve HTTP; Start calls it before listening.
func (a *Application) Launch(ctx context.Context) {
	if err := a.entitlement.Restore(ctx); err != nil {
		// An unreadable store leaves the user unpaid for this run.
		a.ports.Logger.Warn("Failed to restore entitlement", ports.F("error", err))
	}

	a.controller.Start(ctx)
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	a.Launch(ctx)

	slog.Info("Starting HTTP server", "addr", a.httpServer.Addr)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	done := make(chan struct{})
	go func() {
		a.controller.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn("Background work still running at shutdown")
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error closing entitlement store", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetController returns the controller for testing
func (a *Application) GetController() *controller.Controller {
	return a.controller
}
