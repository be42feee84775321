package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// ResultService reads the scored view of an attempt. Pure read, no mutation.
type ResultService interface {
	Get(ctx context.Context, attemptID string) (dto.ResultResponse, error)
}

type resultService struct {
	repo   repository.AttemptRepository
	logger zerolog.Logger
}

// NewResultService builds a new result service.
func NewResultService(repo repository.AttemptRepository, logger zerolog.Logger) ResultService {
	return &resultService{
		repo:   repo,
		logger: logger.With().Str("component", "result_service").Logger(),
	}
}

func (s *resultService) Get(ctx context.Context, attemptID string) (dto.ResultResponse, error) {
	attempt, err := s.repo.GetByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ResultResponse{}, ErrAttemptNotFound
		}

		return dto.ResultResponse{}, err
	}

	answers, err := s.repo.AnswersForAttempt(ctx, attempt.ID)
	if err != nil {
		return dto.ResultResponse{}, err
	}

	questionIDs := make([]string, 0, len(answers))
	for _, answer := range answers {
		questionIDs = append(questionIDs, answer.QuestionID)
	}

	questions, err := s.repo.QuestionsByIDs(ctx, questionIDs)
	if err != nil {
		return dto.ResultResponse{}, err
	}

	byID := make(map[string]models.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	return dto.NewResultResponse(attempt, answers, byID), nil
}
