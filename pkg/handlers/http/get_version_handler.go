package http

import (
	"github.com/deepx/semspace/pkg/config"
	"github.com/deepx/semspace/pkg/version"
	"github.com/gofiber/fiber/v2"
)

type getVersionHandler struct {
	info version.Info
}

func NewGetVersionHandler(cfg *config.Config) Handler {
	return &getVersionHandler{
		info: version.GetInfo().WithBackends(
			version.Backend{Provider: cfg.Generation.Provider, Model: cfg.Generation.Model},
			version.Backend{Provider: cfg.Embedding.Provider, Model: cfg.Embedding.Model},
		),
	}
}

// Handle @Summary Get SemSpace version
// @Description Returns build information and the configured model backends
// @Tags System
// @Produce json
// @Success 200 {object} version.Info "Version information"
// @Router /version [get]
func (h *getVersionHandler) Handle(c *fiber.Ctx) error {
	return c.JSON(h.info)
}
