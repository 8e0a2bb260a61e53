package middleware

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const unmatchedRoute = "unmatched"

type metricsMiddleware struct {
	logger   *logrus.Logger
	taskChan chan func()
}

// NewMetricsMiddleware records request counters off the request path through a small worker pool.
func NewMetricsMiddleware(logger *logrus.Logger, workers int) Middleware {
	if workers <= 0 {
		workers = 1
	}
	m := &metricsMiddleware{
		logger:   logger,
		taskChan: make(chan func(), 1000),
	}
	m.startWorkers(workers)
	return m
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime, ok := c.Locals(common.StartTimeKey).(time.Time)
		if !ok {
			startTime = time.Now()
		}

		err := c.Next()

		elapsed := time.Since(startTime)
		method := c.Method()
		route := unmatchedRoute
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		status := c.Response().StatusCode()

		m.enqueueTask(func() {
			m.record(method, route, status, elapsed)
		})
		return err
	}
}

func (m *metricsMiddleware) record(method, route string, status int, elapsed time.Duration) {
	prometheus.RequestTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	if prometheus.Config.EnableLatency {
		prometheus.RequestLatency.WithLabelValues(route).Observe(float64(elapsed.Milliseconds()))
	}
}

func (m *metricsMiddleware) startWorkers(n int) {
	for i := 0; i < n; i++ {
		go func() {
			for task := range m.taskChan {
				task()
			}
		}()
	}
}

func (m *metricsMiddleware) enqueueTask(task func()) {
	select {
	case m.taskChan <- task:
	default:
		m.logger.Warn("metrics queue full, dropping request metric")
	}
}
