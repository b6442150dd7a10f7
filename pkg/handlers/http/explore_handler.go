package http

import (
	"github.com/deepx/semspace/pkg/app/semantic"
	"github.com/deepx/semspace/pkg/handlers/http/request"
	"github.com/deepx/semspace/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type exploreHandler struct {
	logger   *logrus.Logger
	explorer semantic.Explorer
}

func NewExploreHandler(logger *logrus.Logger, explorer semantic.Explorer) Handler {
	return &exploreHandler{
		logger:   logger,
		explorer: explorer,
	}
}

// Handle @Summary Explore the semantic neighbourhood of a sentence
// @Description Expands the sentence, embeds the ideas and projects them with the sentence into 3D
// @Tags Ideas
// @Accept json
// @Produce json
// @Param request body request.ExploreRequest true "Seed sentence and optional projector (tsne or umap)"
// @Success 200 {object} response.ExploreResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request data"
// @Failure 422 {object} response.ErrorResponse "No valid ideas generated"
// @Failure 500 {object} response.ErrorResponse "Model failure"
// @Router /explore [post]
func (h *exploreHandler) Handle(c *fiber.Ctx) error {
	var req request.ExploreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.explorer.Explore(c.UserContext(), req.Sentence, req.Projector)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	return c.Status(fiber.StatusOK).JSON(response.ExploreResponse{
		Ideas:     result.Ideas,
		Points:    result.Points,
		Projector: result.Projector,
		Warning:   result.Warning,
	})
}
