package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/cache"
	"github.com/DominikMe/acs-token-exchange/internal/config"
	"github.com/DominikMe/acs-token-exchange/internal/core"
	"github.com/DominikMe/acs-token-exchange/internal/metrics"
)

const cacheInitTimeout = 5 * time.Second

// initializeMetrics initializes Prometheus metrics
func initializeMetrics(cfg *config.Config) core.Recorder {
	recorder := metrics.Init(cfg.MetricsEnabled)
	if cfg.MetricsEnabled {
		log.Println("Prometheus metrics initialized")
	} else {
		log.Println("Metrics disabled (using noop implementation)")
	}
	return recorder
}

// initializeMetricsCache initializes the metrics cache based on configuration
func initializeMetricsCache(
	ctx context.Context,
	cfg *config.Config,
) (core.Cache[int64], func() error, error) {
	if !cfg.MetricsEnabled || !cfg.MetricsGaugeUpdateEnabled {
		return nil, nil, nil
	}

	// Create timeout context for cache initialization
	ctx, cancel := context.WithTimeout(ctx, cacheInitTimeout)
	defer cancel()

	switch cfg.MetricsCacheType {
	case config.MetricsCacheTypeRedis:
		metricsCache, err := cache.NewRueidisCache[int64](
			ctx,
			cfg.RedisAddr,
			cfg.RedisPassword,
			cfg.RedisDB,
			"acstx:metrics:",
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize redis metrics cache: %w", err)
		}
		log.Printf("Metrics cache: redis (addr=%s, db=%d)", cfg.RedisAddr, cfg.RedisDB)
		return metricsCache, metricsCache.Close, nil

	default: // memory
		metricsCache := cache.NewMemoryCache[int64]()
		log.Println("Metrics cache: memory (single instance only)")
		return metricsCache, metricsCache.Close, nil
	}
}
