package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testToken = "test-secret-token-123"

func setupMetricsRouter(token string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsAuthMiddleware(token))
	r.GET("/metrics", func(c *gin.Context) {
		c.String(http.StatusOK, "metrics")
	})
	return r
}

func getMetrics(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/metrics", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestMetricsAuthMiddleware_NoAuthConfigured(t *testing.T) {
	// No token configured: open access
	w := getMetrics(setupMetricsRouter(""), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "metrics", w.Body.String())
}

func TestMetricsAuthMiddleware_ValidToken(t *testing.T) {
	w := getMetrics(setupMetricsRouter(testToken), "Bearer "+testToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "metrics", w.Body.String())
}

func TestMetricsAuthMiddleware_InvalidToken(t *testing.T) {
	w := getMetrics(setupMetricsRouter(testToken), "Bearer wrong-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
	assert.Equal(t, `Bearer realm="Metrics"`, w.Header().Get("WWW-Authenticate"))
}

func TestMetricsAuthMiddleware_NoAuthProvided(t *testing.T) {
	w := getMetrics(setupMetricsRouter(testToken), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer token required")
	assert.Equal(t, `Bearer realm="Metrics"`, w.Header().Get("WWW-Authenticate"))
}

func TestMetricsAuthMiddleware_WrongAuthScheme(t *testing.T) {
	w := getMetrics(setupMetricsRouter(testToken), "Basic dGVzdDp0ZXN0")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Bearer token required")
}

func TestMetricsAuthMiddleware_EmptyBearerToken(t *testing.T) {
	w := getMetrics(setupMetricsRouter(testToken), "Bearer ")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}
