package factory

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/embedding/huggingface"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/embedding/jina"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/embedding/voyage"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/httpx"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	JinaProvider        = jina.ProviderName
	HuggingFaceProvider = huggingface.ProviderName
	VoyageProvider      = voyage.ProviderName
)

type EmbeddingServiceLocator struct {
	logger     *logrus.Logger
	fastClient *fasthttp.Client
	httpClient httpx.Client
	cfg        config.EmbeddingConfig
	timeout    time.Duration
}

func NewServiceLocator(
	logger *logrus.Logger,
	fastClient *fasthttp.Client,
	httpClient httpx.Client,
	cfg config.EmbeddingConfig,
	timeout time.Duration,
) *EmbeddingServiceLocator {
	return &EmbeddingServiceLocator{
		logger:     logger,
		fastClient: fastClient,
		httpClient: httpClient,
		cfg:        cfg,
		timeout:    timeout,
	}
}

func (l *EmbeddingServiceLocator) GetService(provider string) (embedding.Creator, error) {
	breaker := httpx.NewCircuitBreaker(provider, l.cfg.BreakerTimeout, l.cfg.BreakerMaxFail)
	switch provider {
	case JinaProvider:
		return jina.NewEmbeddingService(l.fastClient, breaker, jina.Config{
			APIKey:         l.cfg.Jina.APIKey,
			BaseURL:        l.cfg.Jina.BaseURL,
			Model:          l.cfg.Jina.Model,
			Dimension:      l.cfg.Dimension,
			RequestTimeout: l.timeout,
		}, l.logger), nil
	case HuggingFaceProvider:
		return huggingface.NewEmbeddingService(l.httpClient, breaker, huggingface.Config{
			APIToken:  l.cfg.HuggingFace.APIToken,
			ModelURL:  l.cfg.HuggingFace.ModelURL,
			ModelName: l.cfg.HuggingFace.ModelName,
			Dimension: l.cfg.Dimension,
		}, l.logger), nil
	case VoyageProvider:
		return voyage.NewEmbeddingService(breaker, voyage.Config{
			APIKey:    l.cfg.Voyage.APIKey,
			Model:     l.cfg.Voyage.Model,
			Dimension: l.cfg.Dimension,
		}, l.logger), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}
