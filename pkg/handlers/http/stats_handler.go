package http

import (
	"github.com/deepx/semspace/pkg/app/semantic"
	"github.com/deepx/semspace/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
)

type statsHandler struct {
	indexer semantic.Indexer
}

func NewStatsHandler(indexer semantic.Indexer) Handler {
	return &statsHandler{
		indexer: indexer,
	}
}

// Handle @Summary Index statistics
// @Description Returns the number of indexed sentences and the vector dimension
// @Tags Index
// @Produce json
// @Success 200 {object} response.StatsResponse
// @Router /stats [get]
func (h *statsHandler) Handle(c *fiber.Ctx) error {
	stats := h.indexer.Stats()
	return c.Status(fiber.StatusOK).JSON(response.StatsResponse{
		Size:      stats.Size,
		Dimension: stats.Dimension,
	})
}
