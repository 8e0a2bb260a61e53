package http

import (
	"errors"

	"github.com/NeuralTrust/SneakerLens/pkg/domain"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/embedding"
	"github.com/NeuralTrust/SneakerLens/pkg/domain/vector"
	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	ErrInvalidJsonPayload = "Invalid JSON payload"
	ErrImageRequired      = "Image file is required"
	msgValidationFailed   = "Validation error"
	msgServiceUnavailable = "Service temporarily unavailable"
)

func respondError(c *fiber.Ctx, status int, message, detail, code string) error {
	return c.Status(status).JSON(response.NewErrorOutput(message, detail, code))
}

// respondServiceError maps a failure from the search layer onto the HTTP error contract.
// Unmapped errors become a 500 with fallbackCode.
func respondServiceError(c *fiber.Ctx, logger *logrus.Logger, err error, fallbackCode, fallbackMessage string) error {
	switch {
	case domain.IsValidationError(err):
		return respondError(c, fiber.StatusBadRequest, msgValidationFailed, domain.ValidationMessage(err), response.CodeValidation)
	case isUnavailable(err):
		logger.WithError(err).Warn("dependency unavailable")
		return respondError(c, fiber.StatusServiceUnavailable, msgServiceUnavailable, err.Error(), response.CodeServiceUnavailable)
	default:
		logger.WithError(err).Error(fallbackMessage)
		return respondError(c, fiber.StatusInternalServerError, fallbackMessage, err.Error(), fallbackCode)
	}
}

func isUnavailable(err error) bool {
	return errors.Is(err, domain.ErrServiceUnavailable) ||
		errors.Is(err, vector.ErrIndexNotConfigured) ||
		errors.Is(err, embedding.ErrMissingAPIKey) ||
		errors.Is(err, embedding.ErrUnsupportedInput)
}
