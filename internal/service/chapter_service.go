package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// ChapterService exposes chapter domain use cases.
type ChapterService interface {
	Create(ctx context.Context, payload dto.ChapterCreateRequest) (dto.ChapterResponse, error)
	ListBySubject(ctx context.Context, subjectID string) ([]dto.ChapterResponse, error)
}

type chapterService struct {
	repo      repository.ChapterRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewChapterService builds a new chapter service.
func NewChapterService(repo repository.ChapterRepository, validate *validator.Validate, logger zerolog.Logger) ChapterService {
	return &chapterService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "chapter_service").Logger(),
	}
}

func (s *chapterService) Create(ctx context.Context, payload dto.ChapterCreateRequest) (dto.ChapterResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ChapterResponse{}, err
	}

	maxOrder, err := s.repo.MaxOrderIndex(ctx, payload.SubjectID)
	if err != nil {
		return dto.ChapterResponse{}, err
	}

	// Order indexes are monotonic per subject: max(existing)+1, never reused.
	chapter := models.Chapter{
		ID:          models.NewID(models.PrefixChapter),
		SubjectID:   payload.SubjectID,
		Name:        payload.Name,
		Description: payload.Description,
		OrderIndex:  maxOrder + 1,
	}

	if err := s.repo.Create(ctx, &chapter); err != nil {
		return dto.ChapterResponse{}, err
	}

	s.logger.Info().Str("chapter_id", chapter.ID).Int("order_index", chapter.OrderIndex).Msg("chapter created")

	return dto.NewChapterResponse(chapter), nil
}

func (s *chapterService) ListBySubject(ctx context.Context, subjectID string) ([]dto.ChapterResponse, error) {
	chapters, err := s.repo.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	return dto.NewChapterResponseSlice(chapters), nil
}
