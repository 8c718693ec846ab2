// Package metrics provides Prometheus instrumentation for the ordering service.
//
// Wire it up once in the composition root:
//
//	m := metrics.New()
//	e.Use(m.EchoMiddleware())
//	e.GET("/metrics", echo.WrapHandler(m.Handler()))
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ordering"

// Metrics owns a private registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	RequestInFlight prometheus.Gauge

	OrdersCreated      prometheus.Counter
	OrderStatusUpdates *prometheus.CounterVec
	OrdersByStatus     *prometheus.GaugeVec
}

// New registers the Go runtime, process and service collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),

		OrdersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders placed.",
		}),
		OrderStatusUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "order_status_updates_total",
				Help:      "Total number of applied order status changes by new status.",
			},
			[]string{"status"},
		),
		OrdersByStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "orders_by_status",
				Help:      "Stored orders per status, refreshed by the status report job.",
			},
			[]string{"status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.OrdersCreated,
		m.OrderStatusUpdates,
		m.OrdersByStatus,
	)

	return m
}

// Registry exposes the registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics page.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// OrderCreated counts one placed order.
func (m *Metrics) OrderCreated() {
	m.OrdersCreated.Inc()
}

// StatusUpdated counts one applied status change.
func (m *Metrics) StatusUpdated(status string) {
	m.OrderStatusUpdates.WithLabelValues(status).Inc()
}

// SetOrdersByStatus replaces the per-status gauge with counts so statuses
// that disappeared from storage stop being reported.
func (m *Metrics) SetOrdersByStatus(counts map[string]int64) {
	m.OrdersByStatus.Reset()
	for status, count := range counts {
		m.OrdersByStatus.WithLabelValues(status).Set(float64(count))
	}
}
