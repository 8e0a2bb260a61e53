package voyage

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/httpx"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/austinfhunter/voyageai"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName = "voyage"
	DefaultModel = "voyage-3.5"
	queryInput   = "query"
)

type Config struct {
	APIKey    string
	Model     string
	Dimension int
}

// embedFunc is the slice of the voyageai client this provider needs.
type embedFunc func(texts []string, model string, opts *voyageai.EmbeddingRequestOpts) ([]float32, error)

type embeddingService struct {
	embed   embedFunc
	breaker httpx.CircuitBreaker
	cfg     Config
	logger  *logrus.Logger
}

func NewEmbeddingService(breaker httpx.CircuitBreaker, cfg Config, logger *logrus.Logger) embedding.Creator {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		logger.Warn("VOYAGE_API_KEY not configured, voyage embeddings disabled")
	}
	client := voyageai.NewClient(&voyageai.VoyageClientOpts{
		Key: cfg.APIKey,
	})
	return newEmbeddingService(func(texts []string, model string, opts *voyageai.EmbeddingRequestOpts) ([]float32, error) {
		resp, err := client.Embed(texts, model, opts)
		if err != nil {
			return nil, err
		}
		if len(resp.Data) == 0 {
			return nil, embedding.ErrEmptyEmbedding
		}
		return resp.Data[0].Embedding, nil
	}, breaker, cfg, logger)
}

func newEmbeddingService(fn embedFunc, breaker httpx.CircuitBreaker, cfg Config, logger *logrus.Logger) *embeddingService {
	return &embeddingService{
		embed:   fn,
		breaker: breaker,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *embeddingService) EmbedText(ctx context.Context, text string) (*embedding.Embedding, error) {
	if s.cfg.APIKey == "" {
		return nil, embedding.ErrMissingAPIKey
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dimension := s.cfg.Dimension
	inputType := queryInput
	start := time.Now()

	var raw []float32
	err := s.breaker.Execute(func() error {
		values, err := s.embed([]string{text}, s.cfg.Model, &voyageai.EmbeddingRequestOpts{
			InputType:       &inputType,
			OutputDimension: &dimension,
		})
		if err != nil {
			return fmt.Errorf("could not get voyage embedding: %w", err)
		}
		raw = values
		return nil
	})
	if prometheus.Config.EnableLatency {
		prometheus.EmbeddingLatency.WithLabelValues(ProviderName, string(embedding.InputText)).
			Observe(float64(time.Since(start).Milliseconds()))
	}
	if err != nil {
		s.logger.WithError(err).Error("voyage embedding request failed")
		return nil, err
	}

	values, err := embedding.FitDimension(raw, s.cfg.Dimension)
	if err != nil {
		return nil, err
	}
	return &embedding.Embedding{
		Value:     values,
		Model:     s.cfg.Model,
		Input:     embedding.InputText,
		CreatedAt: time.Now(),
	}, nil
}

// EmbedImage is unsupported: voyage text models do not share the catalog's image space.
func (s *embeddingService) EmbedImage(context.Context, []byte) (*embedding.Embedding, error) {
	return nil, fmt.Errorf("%w: %s does not embed images", embedding.ErrUnsupportedInput, ProviderName)
}

func (s *embeddingService) HealthCheck(ctx context.Context) bool {
	if s.cfg.APIKey == "" {
		return false
	}
	if _, err := s.EmbedText(ctx, "test"); err != nil {
		s.logger.WithError(err).Warn("voyage health check failed")
		return false
	}
	return true
}

func (s *embeddingService) Info() embedding.Info {
	return embedding.Info{
		Service:       "Voyage AI",
		Model:         s.cfg.Model,
		Dimension:     s.cfg.Dimension,
		APIConfigured: s.cfg.APIKey != "",
		Provider:      ProviderName,
		Note:          "Text only",
	}
}
