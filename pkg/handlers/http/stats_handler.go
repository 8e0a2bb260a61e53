package http

import (
	"math"

	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/vector"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type statsHandler struct {
	index  vector.Index
	logger *logrus.Logger
}

func NewStatsHandler(index vector.Index, logger *logrus.Logger) Handler {
	return &statsHandler{
		index:  index,
		logger: logger,
	}
}

// Handle @Summary Vector index statistics
// @Description Failures are reported in the body with success=false and HTTP 200
// @Tags Search
// @Produce json
// @Success 200 {object} response.StatsOutput
// @Router /api/v2/stats [get]
func (h *statsHandler) Handle(c *fiber.Ctx) error {
	stats, err := h.index.Stats(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to read index stats")
		return c.Status(fiber.StatusOK).JSON(response.StatsOutput{
			Success:   false,
			Error:     err.Error(),
			Timestamp: common.UnixTimestamp(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(response.StatsOutput{
		Success:       true,
		DatabaseStats: stats,
		Timestamp:     common.UnixTimestamp(),
		Summary: &response.StatsSummary{
			TotalVectors:         stats.TotalVectors,
			Dimension:            stats.Dimension,
			IndexFullnessPercent: math.Round(float64(stats.IndexFullness)*100*100) / 100,
		},
	})
}
