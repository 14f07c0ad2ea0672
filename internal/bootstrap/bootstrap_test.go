package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DominikMe/acs-token-exchange/internal/config"
	"github.com/DominikMe/acs-token-exchange/internal/issuer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIssuerConfig(t *testing.T) {
	assert.NoError(t, validateIssuerConfig(&config.Config{
		IssuerMode:        config.IssuerModeLocal,
		LocalIssuerSecret: "s3cret",
	}))
	assert.NoError(t, validateIssuerConfig(&config.Config{
		IssuerMode:   config.IssuerModeHTTPAPI,
		IssuerAPIURL: "http://identity.example.com",
	}))

	err := validateIssuerConfig(&config.Config{IssuerMode: config.IssuerModeHTTPAPI})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ISSUER_API_URL is required")

	err = validateIssuerConfig(&config.Config{IssuerMode: config.IssuerModeLocal})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOCAL_ISSUER_SECRET")
}

func TestInitializeMetrics(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		cfg := &config.Config{MetricsEnabled: enabled}
		m := initializeMetrics(cfg)
		require.NotNil(t, m)
	}
}

func TestInitializeMetricsCacheDisabled(t *testing.T) {
	ctx := context.Background()

	// Metrics disabled - no cache
	c, closer, err := initializeMetricsCache(
		ctx,
		&config.Config{MetricsEnabled: false, MetricsGaugeUpdateEnabled: true},
	)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Nil(t, closer)

	// Gauge updates disabled - no cache
	c, closer, err = initializeMetricsCache(
		ctx,
		&config.Config{MetricsEnabled: true, MetricsGaugeUpdateEnabled: false},
	)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Nil(t, closer)
}

func TestInitializeMetricsCacheMemory(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		MetricsEnabled:            true,
		MetricsGaugeUpdateEnabled: true,
		MetricsCacheType:          config.MetricsCacheTypeMemory,
	}
	c, closer, err := initializeMetricsCache(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NotNil(t, closer)
	_ = closer()
}

func TestInitializeIssuerLocal(t *testing.T) {
	cfg := &config.Config{
		IssuerMode:          config.IssuerModeLocal,
		LocalIssuerSecret:   "s3cret",
		LocalIssuerName:     "test-issuer",
		LocalIssuerLifetime: 24 * time.Hour,
	}
	iss, err := initializeIssuer(cfg)
	require.NoError(t, err)
	require.NotNil(t, iss)
	assert.Equal(t, "local", iss.Name())
	assert.IsType(t, &issuer.LocalIssuer{}, iss)
}

func TestInitializeIssuerHTTPAPI(t *testing.T) {
	cfg := &config.Config{
		IssuerMode:          config.IssuerModeHTTPAPI,
		IssuerAPIURL:        "http://identity.example.com",
		IssuerAPIAuthMode:   "none",
		IssuerAPITimeout:    10 * time.Second,
		IssuerAPIMaxRetries: 3,
	}
	iss, err := initializeIssuer(cfg)
	require.NoError(t, err)
	require.NotNil(t, iss)
	assert.Equal(t, "http_api", iss.Name())
}

func TestSetupRateLimitingDisabled(t *testing.T) {
	limiters := setupRateLimiting(&config.Config{EnableRateLimit: false}, nil)
	require.NotNil(t, limiters.exchange)

	// Verify noop middleware doesn't panic
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	assert.NotPanics(t, func() { limiters.exchange(c) })
}

func TestSetupRateLimitingMemory(t *testing.T) {
	cfg := &config.Config{
		EnableRateLimit:   true,
		RateLimitStore:    "memory",
		ExchangeRateLimit: 60,
	}
	limiters := setupRateLimiting(cfg, nil)
	require.NotNil(t, limiters.exchange)
}

func TestCreateHTTPServer(t *testing.T) {
	srv := createHTTPServer(
		&config.Config{ServerAddr: ":8080"},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)
	require.NotNil(t, srv)
	assert.Equal(t, ":8080", srv.Addr)
}

func TestGinModeMap(t *testing.T) {
	assert.Equal(t, gin.ReleaseMode, ginModeMap[true])
	assert.Equal(t, gin.DebugMode, ginModeMap[false])
}

func TestErrorLogger(t *testing.T) {
	el := newErrorLogger()
	require.NotNil(t, el)
	assert.NotNil(t, el.lastErrorTimes)

	// Both calls should not panic
	assert.NotPanics(t, func() { el.logIfNeeded("test_op", assert.AnError) })
	assert.NotPanics(t, func() { el.logIfNeeded("test_op", assert.AnError) })
}
