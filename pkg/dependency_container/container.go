package dependency_container

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/app/health"
	"github.com/NeuralTrust/SneakerLens/pkg/app/imaging"
	"github.com/NeuralTrust/SneakerLens/pkg/app/search"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	handlers "github.com/NeuralTrust/SneakerLens/pkg/handlers/http"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/cache"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/embedding/cached"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/embedding/factory"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/httpx"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/pinecone"
	"github.com/NeuralTrust/SneakerLens/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const metricsWorkers = 4

type Container struct {
	Cache               cache.Client
	EmbeddingCreator    embedding.Creator
	VectorIndex         *pinecone.Index
	SearchService       search.Service
	ImageValidator      imaging.Validator
	HealthChecker       health.Checker
	HandlerTransport    handlers.HandlerTransport
	MiddlewareTransport middleware.Transport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewContainer(di ContainerDI) (*Container, error) {
	cfg := di.Cfg
	timeout := cfg.RequestTimeout()

	fastClient := &fasthttp.Client{
		ReadTimeout:         timeout,
		WriteTimeout:        timeout,
		MaxConnsPerHost:     256,
		MaxIdleConnDuration: 120 * time.Second,
		MaxResponseBodySize: httpx.DefaultMaxResponseBodySize,
		ReadBufferSize:      32768,
		WriteBufferSize:     32768,
	}
	httpClient := httpx.NewFastHTTPClient(httpx.WithTimeout(timeout))

	cacheInstance := cache.NewClient(cache.Config{
		Enabled:  cfg.Redis.Enabled,
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TLS:      cfg.Redis.TLS,
	}, di.Logger)

	// embedding services
	embeddingServiceLocator := factory.NewServiceLocator(di.Logger, fastClient, httpClient, cfg.Embedding, timeout)
	provider, err := embeddingServiceLocator.GetService(cfg.Embedding.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding provider: %w", err)
	}
	embeddingCreator := cached.New(provider, cacheInstance, cfg.Embedding.CacheTTL, di.Logger)

	// vector index
	vectorIndex := pinecone.NewIndex(pinecone.Config{
		APIKey:    cfg.Pinecone.APIKey,
		IndexName: cfg.Pinecone.IndexName,
		Host:      cfg.Pinecone.Host,
		Namespace: cfg.Pinecone.Namespace,
	}, httpx.NewCircuitBreaker("pinecone", cfg.Pinecone.BreakerTimeout, cfg.Pinecone.BreakerMaxFail), di.Logger)

	// service
	searcher := search.NewUniqueModelSearcher(vectorIndex, search.SearcherConfig{
		Multiplier:      cfg.Search.Multiplier,
		BatchSize:       cfg.Search.BatchSize,
		MaxSearch:       cfg.Search.MaxSearch,
		MaxIterations:   cfg.Search.MaxIterations,
		FallbackEnabled: cfg.Search.FallbackEnabled,
	}, di.Logger)
	searchService := search.NewService(embeddingCreator, searcher, cacheInstance, cfg.Search.CacheTTL, di.Logger)
	imageValidator := imaging.NewValidator(cfg.Limits.MaxImageSize, di.Logger)
	healthChecker := health.NewChecker(embeddingCreator, vectorIndex, di.Logger)

	middlewareTransport := middleware.Transport{
		PanicRecoverMiddleware: middleware.NewPanicRecoverMiddleware(di.Logger),
		CORSMiddleware: middleware.NewCORSMiddleware(
			cfg.CORS.AllowedOrigins,
			[]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
			true,
			[]string{"X-Request-ID"},
			"600",
		),
		RequestIDMiddleware: middleware.NewRequestIDMiddleware(di.Logger),
	}
	if cfg.Metrics.Enabled {
		middlewareTransport.MetricsMiddleware = middleware.NewMetricsMiddleware(di.Logger, metricsWorkers)
	}

	handlerTransport := handlers.HandlerTransport{
		// Service
		RootHandler:    handlers.NewRootHandler(cfg),
		FaviconHandler: handlers.NewFaviconHandler(),
		VersionHandler: handlers.NewGetVersionHandler(di.Logger),
		// Health
		HealthHandler: handlers.NewHealthHandler(healthChecker, cfg, di.Logger),
		LiveHandler:   handlers.NewLiveHandler(cfg),
		ReadyHandler:  handlers.NewReadyHandler(healthChecker),
		// Search
		SearchTextHandler: handlers.NewSearchTextHandler(handlers.SearchTextHandlerDeps{
			Logger:  di.Logger,
			Service: searchService,
			Cfg:     cfg,
		}),
		ClassifyHandler: handlers.NewClassifyHandler(handlers.ClassifyHandlerDeps{
			Logger:    di.Logger,
			Service:   searchService,
			Validator: imageValidator,
			Cfg:       cfg,
		}),
		BrandsHandler: handlers.NewBrandsHandler(),
		StatsHandler:  handlers.NewStatsHandler(vectorIndex, di.Logger),
	}

	return &Container{
		Cache:               cacheInstance,
		EmbeddingCreator:    embeddingCreator,
		VectorIndex:         vectorIndex,
		SearchService:       searchService,
		ImageValidator:      imageValidator,
		HealthChecker:       healthChecker,
		HandlerTransport:    handlerTransport,
		MiddlewareTransport: middlewareTransport,
	}, nil
}

// Close releases the index connection and the cache.
func (c *Container) Close() error {
	var firstErr error
	if err := c.VectorIndex.Close(); err != nil {
		firstErr = fmt.Errorf("failed to close vector index: %w", err)
	}
	if err := c.Cache.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close cache: %w", err)
	}
	return firstErr
}
