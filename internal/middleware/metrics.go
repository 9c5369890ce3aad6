package middleware

import (
	"sync"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command errors by operation type.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pulse_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// InitMetrics creates the Prometheus HTTP middleware for the given service
// name. Collectors register against the default registry, so the instance is
// created once and shared by later calls.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		prom = fiberprometheus.New(serviceName)
	})
	return prom
}

// MetricsMiddleware returns the request-instrumentation handler for the
// given Prometheus middleware instance.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
