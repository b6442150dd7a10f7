package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport holds the middlewares in the order they are applied.
type Transport struct {
	middlewares []Middleware
}

func NewTransport(middlewares ...Middleware) *Transport {
	return &Transport{middlewares: middlewares}
}

func (t *Transport) GetMiddlewares() []interface{} {
	if t == nil {
		return nil
	}
	handlers := make([]interface{}, 0, len(t.middlewares))
	for _, m := range t.middlewares {
		if m == nil {
			continue
		}
		handlers = append(handlers, m.Middleware())
	}
	return handlers
}
