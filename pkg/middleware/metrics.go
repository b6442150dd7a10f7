package middleware

import (
	"strconv"
	"time"

	"github.com/deepx/semspace/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
)

const unmatchedRoute = "unmatched"

type metricsMiddleware struct{}

func NewMetricsMiddleware() Middleware {
	return &metricsMiddleware{}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !prometheus.Config.Enabled {
			return c.Next()
		}
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := unmatchedRoute
		if prometheus.Config.EnablePerRoute {
			if r := c.Route(); r != nil && r.Path != "" {
				route = r.Path
			}
		}
		prometheus.RequestTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(c.Method(), route).Observe(float64(time.Since(start).Milliseconds()))
		return err
	}
}
