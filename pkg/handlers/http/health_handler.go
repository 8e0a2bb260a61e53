package http

import (
	"github.com/NeuralTrust/SneakerLens/pkg/app/health"
	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type healthHandler struct {
	checker health.Checker
	cfg     *config.Config
	logger  *logrus.Logger
}

func NewHealthHandler(checker health.Checker, cfg *config.Config, logger *logrus.Logger) Handler {
	return &healthHandler{
		checker: checker,
		cfg:     cfg,
		logger:  logger,
	}
}

// Handle @Summary Detailed health check
// @Description Probes the embedding provider and the vector index
// @Tags Health
// @Produce json
// @Success 200 {object} response.HealthOutput
// @Router /health/ [get]
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	report := h.checker.Check(c.Context())

	if report.Status != health.StatusHealthy {
		h.logger.WithFields(logrus.Fields{
			"status":   report.Status,
			"services": report.Services,
		}).Warn("health check not fully healthy")
	}

	return c.Status(fiber.StatusOK).JSON(response.HealthOutput{
		Status:      string(report.Status),
		Timestamp:   common.UnixTimestamp(),
		Services:    report.Services,
		ServiceInfo: report.ServiceInfo,
		Stats: response.HealthStats{
			Pinecone:          report.IndexStats,
			HealthCheckTimeMs: report.DurationMs,
			Config: response.HealthConfig{
				MaxImageSizeMB:     h.cfg.MaxImageSizeMB(),
				MaxTopK:            h.cfg.Search.MaxTopK,
				EmbeddingDimension: h.cfg.Embedding.Dimension,
			},
		},
		Version: common.APIVersion,
	})
}
