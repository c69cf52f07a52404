package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()

	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)
	require.NotNil(t, m)

	// Registering the same collector twice must fail.
	_, err = NewPrometheusMiddleware(reg)
	assert.Error(t, err)
}

func TestPrometheusMiddleware_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/api/files/metadata/:fileName", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for range 3 {
		req := httptest.NewRequest("GET", "/api/files/metadata/abc.txt", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	// Counted under the route pattern, not the concrete stored name.
	got := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/api/files/metadata/:fileName", "200"))
	assert.Equal(t, float64(3), got)
}

func TestPrometheusMiddleware_SkipsMetricsPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMiddleware(reg)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(m.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		return c.SendString("metrics")
	})

	req := httptest.NewRequest("GET", "/metrics", nil)
	_, err = app.Test(req)
	require.NoError(t, err)

	got := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/metrics", "200"))
	assert.Equal(t, float64(0), got)
}
