package health

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"

	EmbeddingServiceKey = "jina_ai"
	IndexServiceKey     = "pinecone"

	DefaultProbeTimeout   = 5 * time.Second
	DefaultStartupTimeout = 10 * time.Second
)

type Report struct {
	Status      Status                 `json:"status"`
	Services    map[string]bool        `json:"services"`
	ServiceInfo map[string]interface{} `json:"service_info"`
	IndexStats  map[string]interface{} `json:"index_stats"`
	DurationMs  float64                `json:"health_check_time_ms"`
}

//go:generate mockery --name=Checker --dir=. --output=./mocks --filename=health_checker_mock.go --case=underscore --with-expecter
type Checker interface {
	Check(ctx context.Context) Report
	Startup(ctx context.Context)
	Ready() bool
}

type checker struct {
	creator        embedding.Creator
	index          vector.Index
	probeTimeout   time.Duration
	startupTimeout time.Duration
	ready          atomic.Bool
	logger         *logrus.Logger
}

func NewChecker(creator embedding.Creator, index vector.Index, logger *logrus.Logger) Checker {
	return &checker{
		creator:        creator,
		index:          index,
		probeTimeout:   DefaultProbeTimeout,
		startupTimeout: DefaultStartupTimeout,
		logger:         logger,
	}
}

// Check probes both dependencies in parallel. A probe that exceeds its timeout counts as down.
func (c *checker) Check(ctx context.Context) Report {
	start := time.Now()
	embeddingOK, indexOK := c.probeAll(ctx, c.probeTimeout)

	report := Report{
		Status: statusFor(embeddingOK, indexOK),
		Services: map[string]bool{
			EmbeddingServiceKey: embeddingOK,
			IndexServiceKey:     indexOK,
		},
		ServiceInfo: make(map[string]interface{}),
		IndexStats:  make(map[string]interface{}),
	}

	if embeddingOK {
		info := c.creator.Info()
		report.ServiceInfo[EmbeddingServiceKey] = map[string]interface{}{
			"service":        info.Service,
			"model":          info.Model,
			"dimension":      info.Dimension,
			"api_configured": info.APIConfigured,
		}
	}
	if indexOK {
		statsCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
		info := c.index.Info(statsCtx)
		cancel()
		report.ServiceInfo[IndexServiceKey] = map[string]interface{}{
			"service":        "Pinecone Vector Search",
			"index_name":     info.IndexName,
			"api_configured": info.APIConfigured,
		}
		if info.Stats != nil {
			report.IndexStats["total_vectors"] = info.Stats.TotalVectors
			report.IndexStats["dimension"] = info.Stats.Dimension
			report.IndexStats["index_fullness"] = info.Stats.IndexFullness
		} else {
			report.IndexStats["error"] = "stats_unavailable"
		}
	}

	report.DurationMs = roundTo(float64(time.Since(start).Microseconds())/1000, 2)
	return report
}

// Startup logs dependency connectivity once and marks the service ready. Failures never block startup.
func (c *checker) Startup(ctx context.Context) {
	defer c.ready.Store(true)

	embeddingOK, indexOK := c.probeAll(ctx, c.startupTimeout)
	fields := logrus.Fields{
		"embedding": embeddingOK,
		"index":     indexOK,
		"provider":  c.creator.Info().Provider,
	}
	if indexOK {
		statsCtx, cancel := context.WithTimeout(ctx, c.startupTimeout)
		if stats, err := c.index.Stats(statsCtx); err == nil {
			fields["total_vectors"] = stats.TotalVectors
		}
		cancel()
	}

	entry := c.logger.WithFields(fields)
	switch statusFor(embeddingOK, indexOK) {
	case StatusHealthy:
		entry.Info("all services connected")
	case StatusDegraded:
		entry.Warn("some services unavailable, starting degraded")
	default:
		entry.Error("no services available, starting anyway")
	}
}

func (c *checker) Ready() bool {
	return c.ready.Load()
}

func (c *checker) probeAll(ctx context.Context, timeout time.Duration) (embeddingOK, indexOK bool) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		embeddingOK = probe(gctx, timeout, c.creator.HealthCheck)
		return nil
	})
	g.Go(func() error {
		indexOK = probe(gctx, timeout, c.index.HealthCheck)
		return nil
	})
	_ = g.Wait()
	return embeddingOK, indexOK
}

func probe(ctx context.Context, timeout time.Duration, fn func(context.Context) bool) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan bool, 1)
	go func() {
		done <- fn(ctx)
	}()
	select {
	case ok := <-done:
		return ok
	case <-ctx.Done():
		return false
	}
}

func statusFor(embeddingOK, indexOK bool) Status {
	switch {
	case embeddingOK && indexOK:
		return StatusHealthy
	case embeddingOK || indexOK:
		return StatusDegraded
	default:
		return StatusUnhealthy
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
