package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/service"
	"github.com/Raghvendrath3/test-generation-app/internal/utils"
)

// TeacherDashboardHandler wires the dashboard HTTP route.
type TeacherDashboardHandler struct {
	service service.TeacherDashboardService
	logger  zerolog.Logger
}

// NewTeacherDashboardHandler constructs the handler.
func NewTeacherDashboardHandler(service service.TeacherDashboardService, logger zerolog.Logger) *TeacherDashboardHandler {
	return &TeacherDashboardHandler{
		service: service,
		logger:  logger.With().Str("component", "teacher_dashboard_handler").Logger(),
	}
}

// Register attaches the dashboard endpoint to the router group.
func (h *TeacherDashboardHandler) Register(router fiber.Router) {
	router.Get("/dashboard", h.dashboard)
}

func (h *TeacherDashboardHandler) dashboard(c *fiber.Ctx) error {
	teacherID := c.Query("teacherId")
	if teacherID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "teacherId is required")
	}

	dashboard, err := h.service.GetDashboard(c.Context(), teacherID)
	if err != nil {
		h.logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendSuccess(c, "dashboard retrieved", dashboard)
}
