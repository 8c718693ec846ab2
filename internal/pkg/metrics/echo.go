package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware records duration, count and in-flight requests. Routes are
// labelled by their registered path template so ids do not explode
// cardinality; unmatched requests share the "unmatched" label.
func (m *Metrics) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			m.RequestInFlight.Inc()
			defer m.RequestInFlight.Dec()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)

			m.RequestDuration.WithLabelValues(c.Request().Method, route, status).
				Observe(time.Since(start).Seconds())
			m.RequestTotal.WithLabelValues(c.Request().Method, route, status).Inc()

			return nil
		}
	}
}
