package http

import (
	"errors"

	"github.com/deepx/semspace/pkg/app/semantic"
	"github.com/deepx/semspace/pkg/domain/embedding"
	"github.com/deepx/semspace/pkg/domain/projection"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

// statusFor maps domain errors to HTTP status codes. Anything unknown is a
// model or backend failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, embedding.ErrEmptyText),
		errors.Is(err, projection.ErrUnknownProjector):
		return fiber.StatusBadRequest
	case errors.Is(err, semantic.ErrNoIdeas):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func handleError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	status := statusFor(err)
	entry := logger.WithError(err).WithFields(logrus.Fields{
		"path":   c.Path(),
		"status": status,
	})
	if status >= fiber.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
