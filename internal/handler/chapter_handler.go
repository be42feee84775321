package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/service"
	"github.com/Raghvendrath3/test-generation-app/internal/utils"
)

// ChapterHandler wires chapter HTTP routes.
type ChapterHandler struct {
	service service.ChapterService
	logger  zerolog.Logger
}

// NewChapterHandler constructs the handler.
func NewChapterHandler(service service.ChapterService, logger zerolog.Logger) *ChapterHandler {
	return &ChapterHandler{
		service: service,
		logger:  logger.With().Str("component", "chapter_handler").Logger(),
	}
}

// Register attaches chapter endpoints to the router group.
func (h *ChapterHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
}

func (h *ChapterHandler) list(c *fiber.Ctx) error {
	subjectID := c.Query("subjectId")
	if subjectID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "subjectId is required")
	}

	chapters, err := h.service.ListBySubject(c.Context(), subjectID)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "chapters retrieved", chapters)
}

func (h *ChapterHandler) create(c *fiber.Ctx) error {
	var payload dto.ChapterCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	chapter, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "chapter created", chapter)
}

func (h *ChapterHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
