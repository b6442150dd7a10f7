package http

import (
	"github.com/deepx/semspace/pkg/app/expander"
	"github.com/deepx/semspace/pkg/handlers/http/request"
	"github.com/deepx/semspace/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type expandHandler struct {
	logger   *logrus.Logger
	expander expander.Expander
}

func NewExpandHandler(logger *logrus.Logger, expander expander.Expander) Handler {
	return &expandHandler{
		logger:   logger,
		expander: expander,
	}
}

// Handle @Summary Expand a sentence into ideas
// @Description Asks the language model for short statements related to the sentence
// @Tags Ideas
// @Accept json
// @Produce json
// @Param request body request.SentenceRequest true "Sentence to expand"
// @Success 200 {object} response.IdeasResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request data"
// @Failure 500 {object} response.ErrorResponse "Model failure"
// @Router /expand [post]
func (h *expandHandler) Handle(c *fiber.Ctx) error {
	var req request.SentenceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	ideas, err := h.expander.Expand(c.UserContext(), req.Sentence)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	if ideas == nil {
		ideas = []string{}
	}
	return c.Status(fiber.StatusOK).JSON(response.IdeasResponse{Ideas: ideas})
}
