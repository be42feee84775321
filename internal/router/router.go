package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Raghvendrath3/test-generation-app/internal/config"
	"github.com/Raghvendrath3/test-generation-app/internal/handler"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler             *handler.AuthHandler
	SubjectHandler          *handler.SubjectHandler
	ChapterHandler          *handler.ChapterHandler
	QuestionHandler         *handler.QuestionHandler
	TestHandler             *handler.TestHandler
	AttemptHandler          *handler.AttemptHandler
	ResultHandler           *handler.ResultHandler
	TeacherDashboardHandler *handler.TeacherDashboardHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"))
	}

	if deps.SubjectHandler != nil {
		deps.SubjectHandler.Register(api.Group("/subjects"))
	}

	if deps.ChapterHandler != nil {
		deps.ChapterHandler.Register(api.Group("/chapters"))
	}

	if deps.QuestionHandler != nil {
		deps.QuestionHandler.Register(api.Group("/questions"))
	}

	if deps.TestHandler != nil {
		deps.TestHandler.Register(api.Group("/tests"))
	}

	if deps.AttemptHandler != nil {
		deps.AttemptHandler.Register(api.Group("/attempts"))
	}

	if deps.ResultHandler != nil {
		deps.ResultHandler.Register(api.Group("/results"))
	}

	if deps.TeacherDashboardHandler != nil {
		deps.TeacherDashboardHandler.Register(api.Group("/teacher"))
	}
}
