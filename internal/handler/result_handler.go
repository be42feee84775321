package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/service"
	"github.com/Raghvendrath3/test-generation-app/internal/utils"
)

// ResultHandler wires the results HTTP route.
type ResultHandler struct {
	service service.ResultService
	logger  zerolog.Logger
}

// NewResultHandler constructs the handler.
func NewResultHandler(service service.ResultService, logger zerolog.Logger) *ResultHandler {
	return &ResultHandler{
		service: service,
		logger:  logger.With().Str("component", "result_handler").Logger(),
	}
}

// Register attaches the results endpoint to the router group.
func (h *ResultHandler) Register(router fiber.Router) {
	router.Get("", h.get)
}

func (h *ResultHandler) get(c *fiber.Ctx) error {
	attemptID := c.Query("attemptId")
	if attemptID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "attemptId is required")
	}

	result, err := h.service.Get(c.Context(), attemptID)
	if err != nil {
		if errors.Is(err, service.ErrAttemptNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "attempt not found")
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "results retrieved", result)
}

func (h *ResultHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
