package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ordering/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := metrics.New()

	m.OrderCreated()
	m.OrderCreated()
	m.StatusUpdated("shipped")

	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderStatusUpdates.WithLabelValues("shipped")), 0)
}

func TestMetrics_SetOrdersByStatusReplacesSeries(t *testing.T) {
	m := metrics.New()

	m.SetOrdersByStatus(map[string]int64{"order placed": 3, "shipped": 1})
	m.SetOrdersByStatus(map[string]int64{"shipped": 4})

	assert.Equal(t, 1, testutil.CollectAndCount(m.OrdersByStatus))
	assert.InDelta(t, 4, testutil.ToFloat64(m.OrdersByStatus.WithLabelValues("shipped")), 0)
}

func TestMetrics_EchoMiddlewareAndHandler(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(m.EchoMiddleware())
	e.GET("/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusTeapot)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/7", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	assert.InDelta(t, 1,
		testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "/orders/:id", "418")), 0)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "ordering_http_requests_total"))
}
