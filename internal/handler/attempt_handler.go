package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/service"
	"github.com/Raghvendrath3/test-generation-app/internal/utils"
)

// AttemptHandler wires attempt HTTP routes.
type AttemptHandler struct {
	service service.AttemptService
	logger  zerolog.Logger
}

// NewAttemptHandler constructs the handler.
func NewAttemptHandler(service service.AttemptService, logger zerolog.Logger) *AttemptHandler {
	return &AttemptHandler{
		service: service,
		logger:  logger.With().Str("component", "attempt_handler").Logger(),
	}
}

// Register attaches attempt endpoints to the router group.
func (h *AttemptHandler) Register(router fiber.Router) {
	router.Post("", h.start)
	router.Put("", h.submit)
}

func (h *AttemptHandler) start(c *fiber.Ctx) error {
	var payload dto.AttemptStartRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	attempt, err := h.service.Start(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "testId and studentId required")
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "attempt started", attempt)
}

func (h *AttemptHandler) submit(c *fiber.Ctx) error {
	var payload dto.AttemptSubmitRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Submit(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAttemptNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "attempt not found")
		case errors.Is(err, service.ErrAttemptAlreadyGraded):
			return utils.SendError(c, fiber.StatusConflict, "attempt already graded")
		case errors.Is(err, service.ErrAttemptExpired):
			return utils.SendError(c, fiber.StatusConflict, "attempt duration expired")
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "attemptId and answers required")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccess(c, "attempt graded", result)
}

func (h *AttemptHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
