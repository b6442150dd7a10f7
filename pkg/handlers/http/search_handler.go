package http

import (
	"github.com/deepx/semspace/pkg/app/semantic"
	"github.com/deepx/semspace/pkg/handlers/http/request"
	"github.com/deepx/semspace/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type searchHandler struct {
	logger  *logrus.Logger
	indexer semantic.Indexer
}

func NewSearchHandler(logger *logrus.Logger, indexer semantic.Indexer) Handler {
	return &searchHandler{
		logger:  logger,
		indexer: indexer,
	}
}

// Handle @Summary Search indexed sentences
// @Description Returns the indexed sentences nearest to the query, closest first
// @Tags Index
// @Accept json
// @Produce json
// @Param request body request.SearchRequest true "Query sentence and neighbour count"
// @Success 200 {object} response.SearchResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request data"
// @Failure 500 {object} response.ErrorResponse "Embedding failure"
// @Router /search [post]
func (h *searchHandler) Handle(c *fiber.Ctx) error {
	var req request.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	hits, err := h.indexer.Search(c.UserContext(), req.Sentence, req.K())
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.SearchResponseFrom(hits))
}
