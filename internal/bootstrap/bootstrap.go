package bootstrap

import (
	"context"
	"net/http"

	"github.com/DominikMe/acs-token-exchange/internal/config"
	"github.com/DominikMe/acs-token-exchange/internal/core"
	"github.com/DominikMe/acs-token-exchange/internal/handlers"
	"github.com/DominikMe/acs-token-exchange/internal/services"
	"github.com/DominikMe/acs-token-exchange/internal/store"

	"github.com/appleboy/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config

	// Core infrastructure
	DB                   *store.Store
	MetricsRecorder      core.Recorder
	MetricsCache         core.Cache[int64]
	MetricsCacheCloser   func() error
	RateLimitRedisClient *redis.Client

	// Services
	Issuer          core.TokenIssuer
	ExchangeService *services.ExchangeService

	// HTTP
	ExchangeHandler *handlers.ExchangeHandler
	Router          *gin.Engine
	Server          *http.Server
}

// Run initializes and starts the application
func Run(cfg *config.Config) error {
	app := &Application{Config: cfg}
	ctx := context.Background()

	// Phase 1: Validate configuration
	validateAllConfiguration(cfg)

	// Phase 2: Initialize infrastructure
	if err := app.initializeInfrastructure(ctx); err != nil {
		return err
	}

	// Phase 3: Initialize business layer
	if err := app.initializeBusinessLayer(); err != nil {
		return err
	}

	// Phase 4: Initialize HTTP layer
	app.initializeHTTPLayer()

	// Phase 5: Start server with graceful shutdown
	app.startWithGracefulShutdown()

	return nil
}

// initializeInfrastructure sets up database, metrics, cache, and Redis
func (app *Application) initializeInfrastructure(ctx context.Context) error {
	var err error

	// Database
	app.DB, err = initializeDatabase(app.Config)
	if err != nil {
		return err
	}

	// Metrics
	app.MetricsRecorder = initializeMetrics(app.Config)
	app.MetricsCache, app.MetricsCacheCloser, err = initializeMetricsCache(ctx, app.Config)
	if err != nil {
		return err
	}

	// Redis (for rate limiting)
	app.RateLimitRedisClient, err = initializeRateLimitRedisClient(ctx, app.Config)
	if err != nil {
		return err
	}

	return nil
}

// initializeBusinessLayer sets up the issuer and exchange service
func (app *Application) initializeBusinessLayer() error {
	issuer, err := initializeIssuer(app.Config)
	if err != nil {
		return err
	}
	app.Issuer = issuer

	app.ExchangeService = services.NewExchangeService(
		app.DB,
		app.Issuer,
		app.Config.TokenScopes,
		app.Config.MinTokenValidity,
		app.MetricsRecorder,
	)
	return nil
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() {
	app.ExchangeHandler = handlers.NewExchangeHandler(
		app.ExchangeService,
		app.Config.ExternalIDHeader,
		app.Config.ProviderHeader,
	)

	app.Router = setupRouter(
		app.Config,
		app.DB,
		app.ExchangeHandler,
		app.MetricsRecorder,
		app.RateLimitRedisClient,
	)

	app.Server = createHTTPServer(app.Config, app.Router)
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func (app *Application) startWithGracefulShutdown() {
	m := graceful.NewManager()

	// Add jobs
	addServerRunningJob(m, app.Server)
	addServerShutdownJob(m, app.Server)
	addRedisClientShutdownJob(m, app.RateLimitRedisClient)
	addMetricsGaugeUpdateJob(m, app.Config, app.DB, app.MetricsRecorder, app.MetricsCache)
	addCacheCleanupJob(m, app.MetricsCacheCloser)

	// Wait for graceful shutdown
	<-m.Done()
}
