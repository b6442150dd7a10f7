package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type corsMiddleware struct {
	handler fiber.Handler
}

// NewCORSMiddleware allows one browser origin with credentials and every
// method and header.
func NewCORSMiddleware(origin string) Middleware {
	return &corsMiddleware{
		handler: cors.New(cors.Config{
			AllowOrigins:     origin,
			AllowCredentials: true,
			AllowMethods: strings.Join([]string{
				fiber.MethodGet,
				fiber.MethodPost,
				fiber.MethodHead,
				fiber.MethodPut,
				fiber.MethodDelete,
				fiber.MethodPatch,
				fiber.MethodOptions,
			}, ","),
		}),
	}
}

func (m *corsMiddleware) Middleware() fiber.Handler {
	return m.handler
}
