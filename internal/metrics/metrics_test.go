package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	t.Run("new provider exposes a handler", func(t *testing.T) {
		provider, err := NewProvider("hireassist")
		require.NoError(t, err)
		defer func() { _ = provider.Shutdown(context.Background()) }()

		require.NotNil(t, provider.MeterProvider())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		provider.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("shutdown is idempotent on nil provider", func(t *testing.T) {
		p := &Provider{}
		assert.NoError(t, p.Shutdown(context.Background()))
	})
}

func TestBusinessMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("records operations and durations", func(t *testing.T) {
		provider, err := NewProvider("hireassist")
		require.NoError(t, err)
		defer func() { _ = provider.Shutdown(ctx) }()

		business, err := NewBusinessMetrics(provider.MeterProvider(), "hireassist")
		require.NoError(t, err)

		business.RecordOperation(ctx, "users", "register", "success")
		business.RecordDuration(ctx, "users", "register", 25*time.Millisecond, "success")

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		provider.Handler().ServeHTTP(rec, req)
		assert.Contains(t, rec.Body.String(), "hireassist_operations_total")
	})

	t.Run("no-op implementation accepts recordings", func(t *testing.T) {
		noop := NewNoOpBusinessMetrics()
		noop.RecordOperation(ctx, "users", "register", "success")
		noop.RecordDuration(ctx, "users", "register", time.Millisecond, "error")
	})
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("hireassist")
	require.NoError(t, err)
	defer func() { _ = provider.Shutdown(context.Background()) }()

	router := gin.New()
	router.Use(HTTPMetricsMiddleware(provider.MeterProvider(), "hireassist"))
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	metricsRec := httptest.NewRecorder()
	provider.Handler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metricsRec.Body.String(), "hireassist_http_requests_total")
}
