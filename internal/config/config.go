package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Issuer mode constants
const (
	IssuerModeLocal   = "local"
	IssuerModeHTTPAPI = "http_api"
)

// Metrics cache type constants
const (
	MetricsCacheTypeMemory = "memory"
	MetricsCacheTypeRedis  = "redis"
)

type Config struct {
	// Server settings
	ServerAddr   string
	IsProduction bool

	// Identity headers injected by the upstream gateway
	ExternalIDHeader string
	ProviderHeader   string

	// Database
	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string // Database connection string (DSN or path)

	// Token exchange
	TokenScopes      []string
	MinTokenValidity time.Duration // refresh tokens expiring inside this window

	// Issuer
	IssuerMode string // "local" or "http_api"

	// HTTP API issuer
	IssuerAPIURL                string
	IssuerAPITimeout            time.Duration
	IssuerAPIInsecureSkipVerify bool
	IssuerAPIAuthMode           string // "none", "simple", or "hmac"
	IssuerAPIAuthSecret         string
	IssuerAPIAuthHeader         string
	IssuerAPIMaxRetries         int
	IssuerAPIRetryDelay         time.Duration
	IssuerAPIMaxRetryDelay      time.Duration

	// Local issuer (dev/test)
	LocalIssuerSecret   string
	LocalIssuerName     string
	LocalIssuerLifetime time.Duration

	// Metrics
	MetricsEnabled             bool
	MetricsToken               string
	MetricsGaugeUpdateEnabled  bool
	MetricsGaugeUpdateInterval time.Duration
	MetricsCacheType           string // "memory" or "redis"

	// Redis (metrics cache, rate limit store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limiting
	EnableRateLimit   bool
	ExchangeRateLimit int    // requests per minute per client
	RateLimitStore    string // "memory" or "redis"
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	// Determine database driver and DSN
	driver := getEnv("DATABASE_DRIVER", "sqlite")
	var dsn string
	if driver == "sqlite" {
		dsn = getEnv("DATABASE_DSN", getEnv("DATABASE_PATH", "mappings.db"))
	} else {
		dsn = getEnv("DATABASE_DSN", "")
	}

	return &Config{
		ServerAddr:   getEnv("SERVER_ADDR", ":8080"),
		IsProduction: getEnvBool("IS_PRODUCTION", false),

		ExternalIDHeader: getEnv("EXTERNAL_ID_HEADER", "X-External-User-Id"),
		ProviderHeader:   getEnv("PROVIDER_HEADER", "X-Identity-Provider"),

		DatabaseDriver: driver,
		DatabaseDSN:    dsn,

		TokenScopes:      getEnvSlice("TOKEN_SCOPES", []string{"chat", "voip"}),
		MinTokenValidity: getEnvDuration("MIN_TOKEN_VALIDITY", time.Hour),

		IssuerMode: getEnv("ISSUER_MODE", IssuerModeLocal),

		IssuerAPIURL:                getEnv("ISSUER_API_URL", ""),
		IssuerAPITimeout:            getEnvDuration("ISSUER_API_TIMEOUT", 10*time.Second),
		IssuerAPIInsecureSkipVerify: getEnvBool("ISSUER_API_INSECURE_SKIP_VERIFY", false),
		IssuerAPIAuthMode:           getEnv("ISSUER_API_AUTH_MODE", "none"),
		IssuerAPIAuthSecret:         getEnv("ISSUER_API_AUTH_SECRET", ""),
		IssuerAPIAuthHeader:         getEnv("ISSUER_API_AUTH_HEADER", "X-API-Secret"),
		IssuerAPIMaxRetries:         getEnvInt("ISSUER_API_MAX_RETRIES", 3),
		IssuerAPIRetryDelay:         getEnvDuration("ISSUER_API_RETRY_DELAY", 1*time.Second),
		IssuerAPIMaxRetryDelay:      getEnvDuration("ISSUER_API_MAX_RETRY_DELAY", 10*time.Second),

		LocalIssuerSecret:   getEnv("LOCAL_ISSUER_SECRET", "local-issuer-secret-change-in-production"),
		LocalIssuerName:     getEnv("LOCAL_ISSUER_NAME", "acs-token-exchange"),
		LocalIssuerLifetime: getEnvDuration("LOCAL_ISSUER_LIFETIME", 24*time.Hour),

		MetricsEnabled:             getEnvBool("METRICS_ENABLED", true),
		MetricsToken:               getEnv("METRICS_TOKEN", ""),
		MetricsGaugeUpdateEnabled:  getEnvBool("METRICS_GAUGE_UPDATE_ENABLED", true),
		MetricsGaugeUpdateInterval: getEnvDuration("METRICS_GAUGE_UPDATE_INTERVAL", time.Minute),
		MetricsCacheType:           getEnv("METRICS_CACHE_TYPE", MetricsCacheTypeMemory),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		EnableRateLimit:   getEnvBool("ENABLE_RATE_LIMIT", false),
		ExchangeRateLimit: getEnvInt("EXCHANGE_RATE_LIMIT", 60),
		RateLimitStore:    getEnv("RATE_LIMIT_STORE", "memory"),
	}
}

// Validate checks configuration consistency at startup.
func (c *Config) Validate() error {
	if c.DatabaseDriver != "sqlite" && c.DatabaseDriver != "postgres" {
		return fmt.Errorf("invalid DATABASE_DRIVER: %s (must be: sqlite, postgres)", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN is required for driver %s", c.DatabaseDriver)
	}

	switch c.IssuerMode {
	case IssuerModeHTTPAPI:
		if c.IssuerAPIURL == "" {
			return fmt.Errorf("ISSUER_API_URL is required when ISSUER_MODE=http_api")
		}
	case IssuerModeLocal:
		// No additional validation needed
	default:
		return fmt.Errorf("invalid ISSUER_MODE: %s (must be: local, http_api)", c.IssuerMode)
	}

	if len(c.TokenScopes) == 0 {
		return fmt.Errorf("TOKEN_SCOPES must name at least one scope")
	}
	if c.MinTokenValidity <= 0 {
		return fmt.Errorf("MIN_TOKEN_VALIDITY must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}
