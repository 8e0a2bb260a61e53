package http

import (
	"github.com/NeuralTrust/SneakerLens/pkg/domain/sneaker"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
)

type brandsHandler struct{}

func NewBrandsHandler() Handler {
	return &brandsHandler{}
}

// Handle @Summary List common brands
// @Tags Search
// @Produce json
// @Success 200 {object} response.BrandsOutput
// @Router /api/v2/brands [get]
func (h *brandsHandler) Handle(c *fiber.Ctx) error {
	brands := append([]string(nil), sneaker.KnownBrands...)
	return c.Status(fiber.StatusOK).JSON(response.BrandsOutput{
		Success: true,
		Brands:  brands,
		Total:   len(brands),
		Note:    "Most common brands. Use the stats endpoint for index totals.",
	})
}
