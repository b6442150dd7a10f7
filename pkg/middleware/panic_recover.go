package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/deepx/semspace/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const internalErrorMessage = "Internal server error"

type panicRecoverMiddleware struct {
	logger     *logrus.Logger
	printStack bool
}

// NewPanicRecoverMiddleware turns a panic in any later handler into a 500.
// The stack is attached to the log entry when the logger runs at debug level.
func NewPanicRecoverMiddleware(logger *logrus.Logger) Middleware {
	return &panicRecoverMiddleware{
		logger:     logger,
		printStack: logger.IsLevelEnabled(logrus.DebugLevel),
	}
}

func (m *panicRecoverMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			entry := m.logger.WithFields(logrus.Fields{
				"panic":      fmt.Sprint(r),
				"method":     c.Method(),
				"path":       c.Path(),
				"request_id": c.Locals(common.RequestIDKey),
			})
			if m.printStack {
				entry = entry.WithField("stack", string(debug.Stack()))
			}
			entry.Error("recovered from panic")

			err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": internalErrorMessage,
			})
		}()

		return c.Next()
	}
}
