package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// ErrTestNotFound indicates the requested test does not exist.
var ErrTestNotFound = errors.New("test not found")

// TestService exposes test assembly use cases.
type TestService interface {
	Create(ctx context.Context, payload dto.TestCreateRequest) (dto.TestResponse, error)
	Get(ctx context.Context, id string) (dto.TestDetailResponse, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]dto.TestResponse, error)
}

type testService struct {
	repo      repository.TestRepository
	questions repository.QuestionRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewTestService builds a new test service.
func NewTestService(repo repository.TestRepository, questions repository.QuestionRepository, validate *validator.Validate, logger zerolog.Logger) TestService {
	return &testService{
		repo:      repo,
		questions: questions,
		validator: validate,
		logger:    logger.With().Str("component", "test_service").Logger(),
	}
}

// Create snapshots the selected questions into a new test. Duplicate
// question ids are collapsed to their first occurrence before total marks
// are summed and links written, so a question appears at most once per test.
func (s *testService) Create(ctx context.Context, payload dto.TestCreateRequest) (dto.TestResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TestResponse{}, err
	}

	questionIDs := dedupePreservingOrder(payload.QuestionIDs)

	totalMarks, err := s.questions.SumMarks(ctx, questionIDs)
	if err != nil {
		return dto.TestResponse{}, err
	}

	test := models.Test{
		ID:              models.NewID(models.PrefixTest),
		TeacherID:       payload.TeacherID,
		Title:           payload.Title,
		Description:     payload.Description,
		DurationMinutes: payload.DurationMinutes,
		TotalMarks:      totalMarks,
	}

	links := make([]models.TestQuestion, 0, len(questionIDs))
	for index, questionID := range questionIDs {
		links = append(links, models.TestQuestion{
			ID:         models.NewID(models.PrefixTestQuestion),
			TestID:     test.ID,
			QuestionID: questionID,
			OrderIndex: index,
		})
	}

	if err := s.repo.CreateWithQuestions(ctx, &test, links); err != nil {
		return dto.TestResponse{}, err
	}

	s.logger.Info().
		Str("test_id", test.ID).
		Int("questions", len(links)).
		Int("total_marks", test.TotalMarks).
		Msg("test created")

	return dto.NewTestResponse(test), nil
}

func (s *testService) Get(ctx context.Context, id string) (dto.TestDetailResponse, error) {
	test, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TestDetailResponse{}, ErrTestNotFound
		}

		return dto.TestDetailResponse{}, err
	}

	links, err := s.repo.LinksForTest(ctx, test.ID)
	if err != nil {
		return dto.TestDetailResponse{}, err
	}

	return dto.NewTestDetailResponse(test, links), nil
}

func (s *testService) ListByTeacher(ctx context.Context, teacherID string) ([]dto.TestResponse, error) {
	tests, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return dto.NewTestResponseSlice(tests), nil
}

func dedupePreservingOrder(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
