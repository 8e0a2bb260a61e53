package http

import (
	"github.com/NeuralTrust/SneakerLens/pkg/app/health"
	"github.com/NeuralTrust/SneakerLens/pkg/common"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
)

type readyHandler struct {
	checker health.Checker
}

func NewReadyHandler(checker health.Checker) Handler {
	return &readyHandler{checker: checker}
}

// Handle @Summary Readiness probe
// @Description Ready once the startup connectivity probe has finished
// @Tags Health
// @Produce json
// @Success 200 {object} response.ReadyOutput
// @Failure 503 {object} response.ReadyOutput
// @Router /health/ready [get]
func (h *readyHandler) Handle(c *fiber.Ctx) error {
	if !h.checker.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(response.ReadyOutput{
			Status:    "not_ready",
			Timestamp: common.UnixTimestamp(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(response.ReadyOutput{
		Status:    "ready",
		Timestamp: common.UnixTimestamp(),
	})
}
