package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Embedding providers and wide index scans dominate, so buckets reach into tens of seconds.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sneakerlens_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sneakerlens_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	EmbeddingLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sneakerlens_embedding_latency_ms",
			Help:    "Embedding provider call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider", "input"},
	)

	IndexQueries = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sneakerlens_index_queries_total",
			Help: "Vector index queries by outcome",
		},
		[]string{"outcome"},
	)

	SearchIterations = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sneakerlens_search_iterations",
			Help:    "Index queries issued per unique-model search",
			Buckets: []float64{1, 2, 3, 4, 5, 8},
		},
	)

	CacheHits = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sneakerlens_cache_hits_total",
			Help: "Cache hits by cache name",
		},
		[]string{"cache"},
	)
)

type MetricsConfig struct {
	EnableLatency bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		EnableLatency: true,
	}
}

var Config = DefaultMetricsConfig()

var initOnce sync.Once

// Initialize registers process collectors and makes the private registry the default gatherer.
// Calling it more than once is a no-op.
func Initialize(cfg MetricsConfig) {
	Config = cfg
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Gatherer() prometheus.Gatherer {
	return registry
}
