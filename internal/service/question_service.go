package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// QuestionService exposes question domain use cases.
type QuestionService interface {
	Create(ctx context.Context, payload dto.QuestionCreateRequest) (dto.QuestionResponse, error)
	ListByChapter(ctx context.Context, chapterID string) ([]dto.QuestionResponse, error)
}

type questionService struct {
	repo      repository.QuestionRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewQuestionService builds a new question service. Teacher-authored rich
// text (question text, explanation) passes through the UGC sanitizer;
// correct answers do not, since grading compares them byte-for-byte.
func NewQuestionService(repo repository.QuestionRepository, validate *validator.Validate, logger zerolog.Logger) QuestionService {
	return &questionService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.UGCPolicy(),
		logger:    logger.With().Str("component", "question_service").Logger(),
	}
}

func (s *questionService) Create(ctx context.Context, payload dto.QuestionCreateRequest) (dto.QuestionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.QuestionResponse{}, err
	}

	marks := payload.Marks
	if marks <= 0 {
		marks = 1
	}

	question := models.Question{
		ID:            models.NewID(models.PrefixQuestion),
		ChapterID:     payload.ChapterID,
		QuestionText:  s.sanitizer.Sanitize(payload.QuestionText),
		QuestionType:  payload.QuestionType,
		Marks:         marks,
		CorrectAnswer: payload.CorrectAnswer,
		Explanation:   s.sanitizer.Sanitize(payload.Explanation),
	}

	for index, text := range payload.Options {
		question.Options = append(question.Options, models.Option{
			ID:         models.NewID(models.PrefixOption),
			QuestionID: question.ID,
			OptionText: text,
			OrderIndex: index,
		})
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		return dto.QuestionResponse{}, err
	}

	s.logger.Info().
		Str("question_id", question.ID).
		Str("chapter_id", question.ChapterID).
		Str("type", question.QuestionType).
		Int("options", len(question.Options)).
		Msg("question created")

	return dto.NewQuestionResponse(question), nil
}

func (s *questionService) ListByChapter(ctx context.Context, chapterID string) ([]dto.QuestionResponse, error) {
	questions, err := s.repo.ListByChapter(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	return dto.NewQuestionResponseSlice(questions), nil
}
