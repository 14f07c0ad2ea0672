package bootstrap

import (
	"log"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/config"
	"github.com/DominikMe/acs-token-exchange/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// rateLimitMiddlewares holds rate limiting middlewares for different endpoints
type rateLimitMiddlewares struct {
	exchange gin.HandlerFunc
}

// setupRateLimiting configures rate limiting middlewares based on configuration.
// Accepts an optional go-redis client
func setupRateLimiting(
	cfg *config.Config,
	redisClient *redis.Client,
) rateLimitMiddlewares {
	// Return no-op middlewares when rate limiting is disabled
	noOpMiddleware := func(c *gin.Context) { c.Next() }
	disabledLimiters := rateLimitMiddlewares{
		exchange: noOpMiddleware,
	}

	switch {
	case !cfg.EnableRateLimit:
		return disabledLimiters
	default:
		return createRateLimiters(cfg, redisClient)
	}
}

// createRateLimiters creates rate limiting middlewares for all endpoints.
// Accepts an optional go-redis client
func createRateLimiters(
	cfg *config.Config,
	redisClient *redis.Client,
) rateLimitMiddlewares {
	log.Printf("Rate limiting enabled (store: %s)", cfg.RateLimitStore)

	storeType := middleware.RateLimitStoreType(cfg.RateLimitStore)

	// Log rate limiting configuration
	if storeType == middleware.RateLimitStoreRedis {
		log.Printf("Using shared Redis client for rate limiting (provided externally)")
	} else {
		log.Printf("In-memory rate limiting configured (single instance only)")
	}

	createLimiter := func(requestsPerMinute int, endpoint string) gin.HandlerFunc {
		limiter, err := middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerMinute: requestsPerMinute,
			StoreType:         storeType,
			RedisClient:       redisClient, // Use provided client (nil for memory store)
			CleanupInterval:   time.Minute,
		})
		if err != nil {
			log.Fatalf("Failed to create rate limiter for %s: %v", endpoint, err)
		}
		return limiter
	}

	return rateLimitMiddlewares{
		exchange: createLimiter(cfg.ExchangeRateLimit, "/token/exchange"),
	}
}
