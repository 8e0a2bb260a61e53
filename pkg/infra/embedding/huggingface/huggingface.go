package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"time"

	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/embedding/warmup"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/httpx"
	"github.com/NeuralTrust/SneakerLens/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const (
	ProviderName       = "huggingface"
	DefaultModelURL    = "https://api-inference.huggingface.co/models/openai/clip-vit-large-patch14"
	DefaultModelName   = "openai/clip-vit-large-patch14"
	healthProbeTimeout = 15 * time.Second
)

type Config struct {
	APIToken    string
	ModelURL    string
	ModelName   string
	Dimension   int
	WarmupDelay time.Duration
}

type embeddingService struct {
	client  httpx.Client
	breaker httpx.CircuitBreaker
	cfg     Config
	logger  *logrus.Logger
}

func NewEmbeddingService(
	client httpx.Client,
	breaker httpx.CircuitBreaker,
	cfg Config,
	logger *logrus.Logger,
) embedding.Creator {
	if cfg.ModelURL == "" {
		cfg.ModelURL = DefaultModelURL
	}
	if cfg.ModelName == "" {
		cfg.ModelName = DefaultModelName
	}
	if cfg.APIToken == "" {
		logger.Warn("HF_API_TOKEN not configured, huggingface embeddings disabled")
	}
	return &embeddingService{
		client:  client,
		breaker: breaker,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *embeddingService) EmbedText(ctx context.Context, text string) (*embedding.Embedding, error) {
	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}
	return s.embed(ctx, embedding.InputText, "application/json", body)
}

func (s *embeddingService) EmbedImage(ctx context.Context, image []byte) (*embedding.Embedding, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", embedding.ErrUnsupportedInput)
	}
	return s.embed(ctx, embedding.InputImage, "application/octet-stream", image)
}

// HealthCheck posts a small JPEG. A 503 means the model is cold but reachable and counts as healthy.
func (s *embeddingService) HealthCheck(ctx context.Context) bool {
	if s.cfg.APIToken == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	probe, err := probeImage()
	if err != nil {
		s.logger.WithError(err).Error("failed to build huggingface health probe")
		return false
	}
	status, _, err := s.send(ctx, "application/octet-stream", probe)
	if err != nil {
		s.logger.WithError(err).Warn("huggingface health check failed")
		return false
	}
	return status == http.StatusOK || status == http.StatusServiceUnavailable
}

func (s *embeddingService) Info() embedding.Info {
	return embedding.Info{
		Service:       "HuggingFace Inference API",
		Model:         s.cfg.ModelName,
		Dimension:     s.cfg.Dimension,
		APIConfigured: s.cfg.APIToken != "",
		Provider:      ProviderName,
		BaseURL:       s.cfg.ModelURL,
		Note:          fmt.Sprintf("CLIP ViT-L/14 zero-padded from 768 to %d dims", s.cfg.Dimension),
	}
}

func (s *embeddingService) embed(
	ctx context.Context,
	input embedding.InputType,
	contentType string,
	body []byte,
) (*embedding.Embedding, error) {
	if s.cfg.APIToken == "" {
		return nil, embedding.ErrMissingAPIKey
	}

	start := time.Now()
	var raw []float64
	err := s.breaker.Execute(func() error {
		return warmup.Retry(ctx, s.cfg.WarmupDelay, func(ctx context.Context) error {
			status, respBody, err := s.send(ctx, contentType, body)
			if err != nil {
				return err
			}
			switch {
			case status == http.StatusServiceUnavailable:
				s.logger.Info("huggingface model loading, retrying")
				return fmt.Errorf("%w: %w: %d", warmup.ErrModelLoading, embedding.ErrProviderNonOKResponse, status)
			case status < 200 || status >= 300:
				s.logger.WithFields(logrus.Fields{
					"status":   status,
					"response": string(respBody),
				}).Error("non-OK response from huggingface inference API")
				return fmt.Errorf("%w: %d", embedding.ErrProviderNonOKResponse, status)
			}
			values, err := decodeVector(respBody)
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
		s.logger.WithError(err).WithField("input", input).Error("huggingface embedding request failed")
		return nil, err
	}

	values, err := embedding.FitDimension(embedding.ToFloat32(raw), s.cfg.Dimension)
	if err != nil {
		return nil, err
	}
	if len(raw) < len(values) {
		s.logger.WithFields(logrus.Fields{
			"from": len(raw),
			"to":   len(values),
		}).Debug("embedding zero-padded")
	}

	return &embedding.Embedding{
		Value:     values,
		Model:     s.cfg.ModelName,
		Input:     input,
		CreatedAt: time.Now(),
	}, nil
}

func (s *embeddingService) send(ctx context.Context, contentType string, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.ModelURL, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build huggingface request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIToken)
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("huggingface request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read huggingface response: %w", err)
	}
	return resp.StatusCode, respBody, nil
}

// decodeVector accepts either a flat vector or a batch of one.
func decodeVector(body []byte) ([]float64, error) {
	var flat []float64
	if err := json.Unmarshal(body, &flat); err == nil {
		if len(flat) == 0 {
			return nil, embedding.ErrEmptyEmbedding
		}
		return flat, nil
	}
	var nested [][]float64
	if err := json.Unmarshal(body, &nested); err != nil {
		return nil, fmt.Errorf("unexpected huggingface response format: %w", err)
	}
	if len(nested) == 0 || len(nested[0]) == 0 {
		return nil, embedding.ErrEmptyEmbedding
	}
	return nested[0], nil
}

func probeImage() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.Set(x, y, red)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
