package middlewares

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vichaarmanthan/mock-interview/internal/metrics"
)

// Metrics counts handled requests per route and status code.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		metrics.HTTPRequests.WithLabelValues(route, status).Inc()

		return err
	}
}
