package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Ideas
	ExpandHandler          Handler
	ExpandContinuumHandler Handler
	ExploreHandler         Handler

	// Index
	EmbedHandler  Handler
	SearchHandler Handler
	StatsHandler  Handler

	// System
	GetVersionHandler Handler
	HealthHandler     Handler
}
