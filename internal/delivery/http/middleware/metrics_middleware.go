package middleware

import (
	"strconv"
	"time"

	"github.com/evandrarf/linguaflow-be/internal/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// MetricsMiddleware records request counts and latency per route pattern.
func (m *Middleware) MetricsMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if ctx.Path() == "/metrics" {
			return ctx.Next()
		}

		start := time.Now()
		metrics.RequestStarted()

		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		endpoint := ctx.Route().Path
		if endpoint == "" {
			endpoint = "unknown"
		}
		metrics.RequestFinished(ctx.Method(), endpoint, strconv.Itoa(status), time.Since(start))
		return err
	}
}
