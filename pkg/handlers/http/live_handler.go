package http

import (
	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/config"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
)

type liveHandler struct {
	cfg *config.Config
}

func NewLiveHandler(cfg *config.Config) Handler {
	return &liveHandler{cfg: cfg}
}

// Handle @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.LiveOutput
// @Router /health/live [get]
func (h *liveHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(response.LiveOutput{
		Status:      "alive",
		Timestamp:   common.UnixTimestamp(),
		Version:     common.APIVersion,
		Environment: h.cfg.Server.Environment,
	})
}
