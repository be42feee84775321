package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/observability"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// ErrAttemptNotFound indicates the requested attempt does not exist.
var ErrAttemptNotFound = errors.New("attempt not found")

// ErrAttemptAlreadyGraded indicates a re-submission of a graded attempt.
var ErrAttemptAlreadyGraded = errors.New("attempt already graded")

// ErrAttemptExpired indicates a submission past the exam window.
var ErrAttemptExpired = errors.New("attempt duration expired")

// AttemptService drives the attempt lifecycle: opening an attempt and
// grading its submission.
type AttemptService interface {
	Start(ctx context.Context, payload dto.AttemptStartRequest) (dto.AttemptStartResponse, error)
	Submit(ctx context.Context, payload dto.AttemptSubmitRequest) (dto.AttemptSubmitResponse, error)
}

type attemptService struct {
	repo            repository.AttemptRepository
	tests           repository.TestRepository
	validator       *validator.Validate
	logger          zerolog.Logger
	enforceDuration bool
	durationGrace   time.Duration
	now             func() time.Time
}

// NewAttemptService builds a new attempt service. When enforceDuration is
// set, submissions arriving later than started_at + test duration + grace
// are rejected; otherwise timing stays a client concern, matching the
// original behavior.
func NewAttemptService(repo repository.AttemptRepository, tests repository.TestRepository, validate *validator.Validate, enforceDuration bool, durationGrace time.Duration, logger zerolog.Logger) AttemptService {
	return &attemptService{
		repo:            repo,
		tests:           tests,
		validator:       validate,
		logger:          logger.With().Str("component", "attempt_service").Logger(),
		enforceDuration: enforceDuration,
		durationGrace:   durationGrace,
		now:             time.Now,
	}
}

// Start opens a new in-progress attempt. The test is deliberately not
// checked for existence and repeat attempts on the same test are allowed;
// each call opens a fresh attempt.
func (s *attemptService) Start(ctx context.Context, payload dto.AttemptStartRequest) (dto.AttemptStartResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AttemptStartResponse{}, err
	}

	attempt := models.StudentAttempt{
		ID:        models.NewID(models.PrefixAttempt),
		TestID:    payload.TestID,
		StudentID: payload.StudentID,
		StartedAt: s.now(),
		Status:    models.AttemptStatusInProgress,
	}

	if err := s.repo.Create(ctx, &attempt); err != nil {
		return dto.AttemptStartResponse{}, err
	}

	observability.AttemptsStarted().Inc()
	s.logger.Info().Str("attempt_id", attempt.ID).Str("test_id", attempt.TestID).Msg("attempt started")

	return dto.AttemptStartResponse{AttemptID: attempt.ID}, nil
}

// Submit records the answers and grades the attempt in one transaction: the
// attempt is observable either fully in progress or fully graded, never in
// between. A question is correct iff the stored answer text equals the
// correct answer byte-for-byte; no trimming, no case folding, no partial
// credit. Unanswered questions score zero. Duplicate answers for the same
// question within one payload collapse to the last entry.
func (s *attemptService) Submit(ctx context.Context, payload dto.AttemptSubmitRequest) (dto.AttemptSubmitResponse, error) {
	tracer := otel.Tracer("github.com/Raghvendrath3/test-generation-app/internal/service/attempt")
	ctx, span := tracer.Start(ctx, "attempt.submit")
	span.SetAttributes(attribute.String("attempt.id", payload.AttemptID))
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.AttemptSubmitResponse{}, err
	}

	started := s.now()
	var response dto.AttemptSubmitResponse

	err := s.repo.InTransaction(ctx, func(tx repository.AttemptRepository) error {
		attempt, err := tx.GetByID(ctx, payload.AttemptID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAttemptNotFound
			}
			return err
		}

		if attempt.Graded() {
			return ErrAttemptAlreadyGraded
		}

		if err := s.checkDuration(ctx, attempt); err != nil {
			return err
		}

		answerByQuestion := collapseAnswers(payload.Answers)

		rows := make([]models.StudentAnswer, 0, len(answerByQuestion))
		for _, submitted := range payload.Answers {
			answer, ok := answerByQuestion[submitted.QuestionID]
			if !ok || answer.ID != "" {
				continue
			}
			answer.ID = models.NewID(models.PrefixAnswer)
			answer.AttemptID = attempt.ID
			answerByQuestion[submitted.QuestionID] = answer
			rows = append(rows, answer)
		}

		if err := tx.InsertAnswers(ctx, rows); err != nil {
			return err
		}

		questions, err := tx.QuestionsForTest(ctx, attempt.TestID)
		if err != nil {
			return err
		}

		obtained := 0
		total := 0
		for _, question := range questions {
			total += question.Marks

			answer, answered := answerByQuestion[question.ID]
			correct := answered && answer.StudentAnswer == question.CorrectAnswer

			marks := 0
			if correct {
				marks = question.Marks
			}
			obtained += marks

			if answered {
				if err := tx.GradeAnswer(ctx, attempt.ID, question.ID, correct, marks); err != nil {
					return err
				}
			}
		}

		submittedAt := s.now()
		attempt.SubmittedAt = &submittedAt
		attempt.TotalMarks = total
		attempt.ObtainedMarks = obtained
		attempt.Status = models.AttemptStatusGraded

		if err := tx.Update(ctx, &attempt); err != nil {
			return err
		}

		response = dto.AttemptSubmitResponse{
			AttemptID:     attempt.ID,
			ObtainedMarks: obtained,
		}
		span.SetAttributes(
			attribute.String("attempt.test_id", attempt.TestID),
			attribute.Int("attempt.obtained_marks", obtained),
		)

		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "submit_failed")
		return dto.AttemptSubmitResponse{}, err
	}

	observability.AttemptsGraded().Inc()
	observability.GradingLatency().Observe(s.now().Sub(started).Seconds())
	s.logger.Info().
		Str("attempt_id", response.AttemptID).
		Int("obtained_marks", response.ObtainedMarks).
		Msg("attempt graded")

	return response, nil
}

func (s *attemptService) checkDuration(ctx context.Context, attempt models.StudentAttempt) error {
	if !s.enforceDuration {
		return nil
	}

	test, err := s.tests.GetByID(ctx, attempt.TestID)
	if err != nil {
		// Starting an attempt never verified the test; an orphan attempt
		// keeps the legacy behavior of being gradeable at any time.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	window := time.Duration(test.DurationMinutes)*time.Minute + s.durationGrace
	if s.now().After(attempt.ExpiresAt(window)) {
		return ErrAttemptExpired
	}

	return nil
}

// collapseAnswers keeps the last submitted answer per question so grading is
// deterministic even when a payload repeats a question.
func collapseAnswers(answers []dto.SubmittedAnswer) map[string]models.StudentAnswer {
	collapsed := make(map[string]models.StudentAnswer, len(answers))
	for _, answer := range answers {
		collapsed[answer.QuestionID] = models.StudentAnswer{
			QuestionID:    answer.QuestionID,
			StudentAnswer: answer.Answer,
		}
	}

	return collapsed
}
