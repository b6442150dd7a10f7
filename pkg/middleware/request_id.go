package middleware

import (
	"context"

	"github.com/deepx/semspace/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type requestIDMiddleware struct{}

// NewRequestIDMiddleware tags each request with the caller's X-Request-Id or a
// fresh uuid, and echoes it on the response.
func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(common.RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Locals(common.RequestIDKey, id)
		c.Set(common.RequestIDHeader, id)
		c.SetUserContext(context.WithValue(c.UserContext(), common.RequestIDKey, id))
		return c.Next()
	}
}
