package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/service"
	"github.com/Raghvendrath3/test-generation-app/internal/utils"
)

// TestHandler wires test HTTP routes.
type TestHandler struct {
	service service.TestService
	logger  zerolog.Logger
}

// NewTestHandler constructs the handler.
func NewTestHandler(service service.TestService, logger zerolog.Logger) *TestHandler {
	return &TestHandler{
		service: service,
		logger:  logger.With().Str("component", "test_handler").Logger(),
	}
}

// Register attaches test endpoints to the router group.
func (h *TestHandler) Register(router fiber.Router) {
	router.Get("", h.get)
	router.Post("", h.create)
}

// get serves both forms of the endpoint: ?testId= returns the full snapshot
// with questions, ?teacherId= returns the teacher's test summaries.
func (h *TestHandler) get(c *fiber.Ctx) error {
	if testID := c.Query("testId"); testID != "" {
		test, err := h.service.Get(c.Context(), testID)
		if err != nil {
			if errors.Is(err, service.ErrTestNotFound) {
				return utils.SendError(c, fiber.StatusNotFound, "test not found")
			}
			return h.internalError(c, err)
		}

		return utils.SendSuccess(c, "test retrieved", test)
	}

	teacherID := c.Query("teacherId")
	if teacherID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "teacherId or testId is required")
	}

	tests, err := h.service.ListByTeacher(c.Context(), teacherID)
	if err != nil {
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "tests retrieved", tests)
}

func (h *TestHandler) create(c *fiber.Ctx) error {
	var payload dto.TestCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	test, err := h.service.Create(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		return h.internalError(c, err)
	}

	return utils.SendSuccess(c, "test created", test)
}

func (h *TestHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
