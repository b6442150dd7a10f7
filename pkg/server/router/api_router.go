package router

import (
	"errors"

	_ "github.com/deepx/semspace/docs"
	handlers "github.com/deepx/semspace/pkg/handlers/http"
	"github.com/deepx/semspace/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

var ErrInvalidHandlerTransport = errors.New("invalid handler transport")

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    *handlers.HandlerTransport
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport *handlers.HandlerTransport,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	h := r.handlerTransport
	if h == nil || h.ExpandHandler == nil || h.EmbedHandler == nil {
		return ErrInvalidHandlerTransport
	}

	if mws := r.middlewareTransport.GetMiddlewares(); len(mws) > 0 {
		router.Use(mws...)
	}

	router.Get("/docs/*", swagger.HandlerDefault)

	router.Get("/health", h.HealthHandler.Handle)
	router.Get("/version", h.GetVersionHandler.Handle)
	router.Get("/stats", h.StatsHandler.Handle)

	router.Post("/expand", h.ExpandHandler.Handle)
	router.Post("/expand_continuum", h.ExpandContinuumHandler.Handle)
	router.Post("/explore", h.ExploreHandler.Handle)

	router.Post("/embed", h.EmbedHandler.Handle)
	router.Post("/search", h.SearchHandler.Handle)
	return nil
}
