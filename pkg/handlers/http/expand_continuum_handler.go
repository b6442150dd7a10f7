package http

import (
	"github.com/deepx/semspace/pkg/app/expander"
	"github.com/deepx/semspace/pkg/handlers/http/request"
	"github.com/deepx/semspace/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type expandContinuumHandler struct {
	logger   *logrus.Logger
	expander expander.Expander
}

func NewExpandContinuumHandler(logger *logrus.Logger, expander expander.Expander) Handler {
	return &expandContinuumHandler{
		logger:   logger,
		expander: expander,
	}
}

// Handle @Summary Generate a wide continuum of ideas
// @Description Samples a longer, more varied list of ideas related to the sentence
// @Tags Ideas
// @Accept json
// @Produce json
// @Param request body request.SentenceRequest true "Seed sentence"
// @Success 200 {object} response.NodesResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request data"
// @Failure 500 {object} response.ErrorResponse "Model failure"
// @Router /expand_continuum [post]
func (h *expandContinuumHandler) Handle(c *fiber.Ctx) error {
	var req request.SentenceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	nodes, err := h.expander.ExpandContinuum(c.UserContext(), req.Sentence)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if nodes == nil {
		nodes = []string{}
	}
	return c.Status(fiber.StatusOK).JSON(response.NodesResponse{Nodes: nodes})
}
