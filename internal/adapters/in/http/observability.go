package http

import (
	"log/slog"
	"strconv"
	"time"

	"fooddelivery/internal/metrics"

	"github.com/labstack/echo/v4"
)

// Observability records request count and latency per route pattern and logs
// every request.
func Observability(m *metrics.Metrics, logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo render the error so the final status is known
				c.Error(err)
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			elapsed := time.Since(start)
			status := c.Response().Status
			statusLabel := strconv.Itoa(status)

			m.HTTPRequests.WithLabelValues(c.Request().Method, path, statusLabel).Inc()
			m.HTTPRequestDuration.WithLabelValues(c.Request().Method, path, statusLabel).Observe(elapsed.Seconds())

			logger.InfoContext(c.Request().Context(), "http request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration", elapsed,
			)
			return nil
		}
	}
}
