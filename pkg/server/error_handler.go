package server

import (
	"errors"

	"github.com/NeuralTrust/SneakerLens/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// errorHandler renders errors that escape handlers, such as unknown routes or oversized bodies,
// in the same shape handlers use.
func errorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errorCode := response.CodeInternal

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			switch {
			case code == fiber.StatusNotFound:
				errorCode = response.CodeNotFound
			case code == fiber.StatusRequestEntityTooLarge:
				errorCode = response.CodeInvalidImage
			case code < fiber.StatusInternalServerError:
				errorCode = response.CodeValidation
			}
		}
		if code >= fiber.StatusInternalServerError {
			logger.WithError(err).WithField("path", c.Path()).Error("unhandled request error")
		}
		return c.Status(code).JSON(response.NewErrorOutput(err.Error(), "", errorCode))
	}
}
