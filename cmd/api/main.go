package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/config"
	"github.com/Raghvendrath3/test-generation-app/internal/database"
	"github.com/Raghvendrath3/test-generation-app/internal/handler"
	"github.com/Raghvendrath3/test-generation-app/internal/middleware"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
	"github.com/Raghvendrath3/test-generation-app/internal/router"
	"github.com/Raghvendrath3/test-generation-app/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Chapter{},
		&models.Question{},
		&models.Option{},
		&models.Test{},
		&models.TestQuestion{},
		&models.StudentAttempt{},
		&models.StudentAnswer{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	chapterRepo := repository.NewChapterRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	testRepo := repository.NewTestRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	authService := service.NewAuthService(userRepo, validate, logger)
	subjectService := service.NewSubjectService(subjectRepo, validate, logger)
	chapterService := service.NewChapterService(chapterRepo, validate, logger)
	questionService := service.NewQuestionService(questionRepo, validate, logger)
	testService := service.NewTestService(testRepo, questionRepo, validate, logger)
	attemptService := service.NewAttemptService(attemptRepo, testRepo, validate, cfg.EnforceDuration, cfg.DurationGrace, logger)
	resultService := service.NewResultService(attemptRepo, logger)
	dashboardService := service.NewTeacherDashboardService(dashboardRepo, redisClient, cfg.DashboardCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:             handler.NewAuthHandler(authService, logger),
		SubjectHandler:          handler.NewSubjectHandler(subjectService, logger),
		ChapterHandler:          handler.NewChapterHandler(chapterService, logger),
		QuestionHandler:         handler.NewQuestionHandler(questionService, logger),
		TestHandler:             handler.NewTestHandler(testService, logger),
		AttemptHandler:          handler.NewAttemptHandler(attemptService, logger),
		ResultHandler:           handler.NewResultHandler(resultService, logger),
		TeacherDashboardHandler: handler.NewTeacherDashboardHandler(dashboardService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func openDatabase(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return database.ConnectPostgres(cfg.DatabaseURL)
	}

	return database.ConnectSQLite(cfg.SQLitePath)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
