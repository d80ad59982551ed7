package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per finished request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports request counts and latency by route pattern.
type MetricsMiddleware struct {
	observer RequestObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle runs next and records its outcome.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusFromError(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.observer.ObserveRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}
