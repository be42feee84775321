package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// SubjectService exposes subject domain use cases.
type SubjectService interface {
	Create(ctx context.Context, payload dto.SubjectCreateRequest) (dto.SubjectResponse, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]dto.SubjectResponse, error)
}

type subjectService struct {
	repo      repository.SubjectRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewSubjectService builds a new subject service.
func NewSubjectService(repo repository.SubjectRepository, validate *validator.Validate, logger zerolog.Logger) SubjectService {
	return &subjectService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "subject_service").Logger(),
	}
}

func (s *subjectService) Create(ctx context.Context, payload dto.SubjectCreateRequest) (dto.SubjectResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubjectResponse{}, err
	}

	subject := models.Subject{
		ID:          models.NewID(models.PrefixSubject),
		Name:        payload.Name,
		Description: payload.Description,
		TeacherID:   payload.TeacherID,
	}

	if err := s.repo.Create(ctx, &subject); err != nil {
		return dto.SubjectResponse{}, err
	}

	s.logger.Info().Str("subject_id", subject.ID).Str("teacher_id", subject.TeacherID).Msg("subject created")

	return dto.NewSubjectResponse(subject), nil
}

func (s *subjectService) ListByTeacher(ctx context.Context, teacherID string) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	return dto.NewSubjectResponseSlice(subjects), nil
}
