package jina

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/embedding/warmup"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/httpx"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	ProviderName          = "jina"
	DefaultBaseURL        = "https://api.jina.ai/v1/embeddings"
	DefaultModel          = "jina-clip-v2"
	defaultRequestTimeout = 30 * time.Second
	healthProbeText       = "test"
)

type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	Dimension      int
	RequestTimeout time.Duration
	WarmupDelay    time.Duration
}

type embeddingService struct {
	client  *fasthttp.Client
	breaker httpx.CircuitBreaker
	cfg     Config
	logger  *logrus.Logger
}

type inputItem struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

type embeddingRequest struct {
	Model      string      `json:"model"`
	Dimensions int         `json:"dimensions"`
	Normalized bool        `json:"normalized"`
	Input      []inputItem `json:"input"`
}

type embeddingData struct {
	Embedding []float64 `json:"embedding"`
	Index     int       `json:"index"`
}

type embeddingResponse struct {
	Model string          `json:"model"`
	Data  []embeddingData `json:"data"`
}

func NewEmbeddingService(
	client *fasthttp.Client,
	breaker httpx.CircuitBreaker,
	cfg Config,
	logger *logrus.Logger,
) embedding.Creator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.APIKey == "" {
		logger.Warn("JINA_API_KEY not configured, jina embeddings disabled")
	}
	return &embeddingService{
		client:  client,
		breaker: breaker,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *embeddingService) EmbedText(ctx context.Context, text string) (*embedding.Embedding, error) {
	return s.embed(ctx, embedding.InputText, inputItem{Text: text})
}

func (s *embeddingService) EmbedImage(ctx context.Context, image []byte) (*embedding.Embedding, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", embedding.ErrUnsupportedInput)
	}
	return s.embed(ctx, embedding.InputImage, inputItem{Image: base64.StdEncoding.EncodeToString(image)})
}

func (s *embeddingService) HealthCheck(ctx context.Context) bool {
	if s.cfg.APIKey == "" {
		return false
	}
	if _, err := s.EmbedText(ctx, healthProbeText); err != nil {
		s.logger.WithError(err).Warn("jina health check failed")
		return false
	}
	return true
}

func (s *embeddingService) Info() embedding.Info {
	return embedding.Info{
		Service:       "Jina AI",
		Model:         s.cfg.Model,
		Dimension:     s.cfg.Dimension,
		APIConfigured: s.cfg.APIKey != "",
		Provider:      ProviderName,
		BaseURL:       s.cfg.BaseURL,
		Note:          "Multimodal text and image embeddings in a shared space",
	}
}

func (s *embeddingService) embed(ctx context.Context, input embedding.InputType, item inputItem) (*embedding.Embedding, error) {
	if s.cfg.APIKey == "" {
		return nil, embedding.ErrMissingAPIKey
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(embeddingRequest{
		Model:      s.cfg.Model,
		Dimensions: s.cfg.Dimension,
		Normalized: true,
		Input:      []inputItem{item},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	start := time.Now()
	var raw []float64
	err = s.breaker.Execute(func() error {
		return warmup.Retry(ctx, s.cfg.WarmupDelay, func(ctx context.Context) error {
			values, err := s.post(ctx, body)
			if err != nil {
				return err
			}
			raw = values
			return nil
		})
	})
	if prometheus.Config.EnableLatency {
		prometheus.EmbeddingLatency.WithLabelValues(ProviderName, string(input)).
			Observe(float64(time.Since(start).Milliseconds()))
	}
	if err != nil {
		s.logger.WithError(err).WithField("input", input).Error("jina embedding request failed")
		return nil, err
	}

	values, err := embedding.FitDimension(embedding.ToFloat32(raw), s.cfg.Dimension)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"input":     input,
		"dimension": len(values),
	}).Debug("jina embedding generated")

	return &embedding.Embedding{
		Value:     values,
		Model:     s.cfg.Model,
		Input:     input,
		CreatedAt: time.Now(),
	}, nil
}

func (s *embeddingService) post(ctx context.Context, body []byte) ([]float64, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.cfg.BaseURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.SetBodyRaw(body)

	timeout := s.cfg.RequestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	if err := s.client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("jina request failed: %w", err)
	}

	switch status := resp.StatusCode(); {
	case status == fasthttp.StatusServiceUnavailable:
		s.logger.Info("jina model loading, retrying")
		return nil, fmt.Errorf("%w: %w: %d", warmup.ErrModelLoading, embedding.ErrProviderNonOKResponse, status)
	case status < 200 || status >= 300:
		s.logger.WithFields(logrus.Fields{
			"status":   status,
			"response": string(resp.Body()),
		}).Error("non-OK response from jina embeddings API")
		return nil, fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, status)
	}

	var embResp embeddingResponse
	if err := json.Unmarshal(resp.Body(), &embResp); err != nil {
		return nil, fmt.Errorf("failed to decode jina response: %w", err)
	}
	if len(embResp.Data) == 0 || len(embResp.Data[0].Embedding) == 0 {
		return nil, embedding.ErrEmptyEmbedding
	}
	return embResp.Data[0].Embedding, nil
}
