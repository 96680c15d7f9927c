package middleware

import (
	"strconv"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/metrics"
	"github.com/labstack/echo/v4"
)

// Metrics records request count and latency per route template. It must be
// registered outside RequestLogger so it sees the final status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			metrics.RecordHTTPRequest(c.Request().Method, route, strconv.Itoa(status), time.Since(start).Seconds())
			return err
		}
	}
}
