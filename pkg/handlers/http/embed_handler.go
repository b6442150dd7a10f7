package http

import (
	"github.com/deepx/semspace/pkg/app/semantic"
	"github.com/deepx/semspace/pkg/handlers/http/request"
	"github.com/deepx/semspace/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const embeddedMessage = "Sentence embedded and added."

type embedHandler struct {
	logger  *logrus.Logger
	indexer semantic.Indexer
}

func NewEmbedHandler(logger *logrus.Logger, indexer semantic.Indexer) Handler {
	return &embedHandler{
		logger:  logger,
		indexer: indexer,
	}
}

// Handle @Summary Add a sentence to the index
// @Description Embeds the sentence and appends it to the in-memory vector index
// @Tags Index
// @Accept json
// @Produce json
// @Param request body request.SentenceRequest true "Sentence to index"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request data"
// @Failure 500 {object} response.ErrorResponse "Embedding failure"
// @Router /embed [post]
func (h *embedHandler) Handle(c *fiber.Ctx) error {
	var req request.SentenceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, ErrInvalidJsonPayload)
	}
	if err := req.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	size, err := h.indexer.Embed(c.UserContext(), req.Sentence)
	if err != nil {
		return handleError(c, h.logger, err)
	}
	h.logger.WithField("size", size).Info("sentence embedded")
	return c.Status(fiber.StatusOK).JSON(response.MessageResponse{Message: embeddedMessage})
}
