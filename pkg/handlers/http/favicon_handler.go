package http

import "github.com/gofiber/fiber/v2"

type faviconHandler struct{}

func NewFaviconHandler() Handler {
	return &faviconHandler{}
}

func (h *faviconHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "👟"})
}
