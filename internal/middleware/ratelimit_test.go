package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLimitedRouter(t *testing.T, requestsPerMinute int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	limiter, err := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: requestsPerMinute,
		StoreType:         RateLimitStoreMemory,
		CleanupInterval:   1 * time.Minute,
	})
	require.NoError(t, err)
	require.NotNil(t, limiter)

	router := gin.New()
	router.Use(limiter)
	router.POST("/token/exchange", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func doLimitedRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/token/exchange", nil)
	req.Header.Set("X-Forwarded-For", ip)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewRateLimiter_MemoryStore(t *testing.T) {
	router := setupLimitedRouter(t, 5)

	// First requests should succeed
	for i := 0; i < 5; i++ {
		w := doLimitedRequest(router, "192.168.1.100")
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should succeed", i+1)
	}

	// Next request should be rate limited
	w := doLimitedRequest(router, "192.168.1.100")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	router := setupLimitedRouter(t, 2)

	// Different IPs should have independent limits
	ips := []string{"192.168.1.1", "192.168.1.2", "192.168.1.3"}

	for _, ip := range ips {
		for i := 0; i < 2; i++ {
			w := doLimitedRequest(router, ip)
			assert.Equal(t, http.StatusOK, w.Code, "Request %d from IP %s should succeed", i+1, ip)
		}

		w := doLimitedRequest(router, ip)
		assert.Equal(
			t,
			http.StatusTooManyRequests,
			w.Code,
			"Third request from IP %s should be rate limited",
			ip,
		)
	}
}

func TestNewRateLimiter_RedisStoreRequiresClient(t *testing.T) {
	limiter, err := NewRateLimiter(RateLimitConfig{
		RequestsPerMinute: 10,
		StoreType:         RateLimitStoreRedis,
		RedisClient:       nil,
	})
	assert.Error(t, err)
	assert.Nil(t, limiter)
}

func TestCreateRedisClient_InvalidAddress(t *testing.T) {
	client, err := CreateRedisClient("invalid-host:9999", "", 0)
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
