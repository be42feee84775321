package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// AttemptRepository defines persistence operations for attempts and their
// answers. InTransaction scopes the multi-step submission sequence to one
// database transaction.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.StudentAttempt) error
	GetByID(ctx context.Context, id string) (models.StudentAttempt, error)
	Update(ctx context.Context, attempt *models.StudentAttempt) error
	QuestionsForTest(ctx context.Context, testID string) ([]models.Question, error)
	InsertAnswers(ctx context.Context, answers []models.StudentAnswer) error
	GradeAnswer(ctx context.Context, attemptID, questionID string, correct bool, marks int) error
	AnswersForAttempt(ctx context.Context, attemptID string) ([]models.StudentAnswer, error)
	QuestionsByIDs(ctx context.Context, ids []string) ([]models.Question, error)
	InTransaction(ctx context.Context, fn func(AttemptRepository) error) error
}

type attemptRepository struct {
	db *gorm.DB
}

// NewAttemptRepository instantiates a GORM-backed repository.
func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *models.StudentAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) GetByID(ctx context.Context, id string) (models.StudentAttempt, error) {
	var attempt models.StudentAttempt
	if err := r.db.WithContext(ctx).First(&attempt, "id = ?", id).Error; err != nil {
		return models.StudentAttempt{}, err
	}

	return attempt, nil
}

func (r *attemptRepository) Update(ctx context.Context, attempt *models.StudentAttempt) error {
	return r.db.WithContext(ctx).Save(attempt).Error
}

// QuestionsForTest loads the full set of questions linked into a test,
// ordered by their position in the snapshot.
func (r *attemptRepository) QuestionsForTest(ctx context.Context, testID string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Joins("JOIN test_questions ON test_questions.question_id = questions.id").
		Where("test_questions.test_id = ?", testID).
		Order("test_questions.order_index ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	return questions, nil
}

func (r *attemptRepository) InsertAnswers(ctx context.Context, answers []models.StudentAnswer) error {
	if len(answers) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&answers).Error
}

func (r *attemptRepository) GradeAnswer(ctx context.Context, attemptID, questionID string, correct bool, marks int) error {
	return r.db.WithContext(ctx).
		Model(&models.StudentAnswer{}).
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		Updates(map[string]any{
			"is_correct":     correct,
			"marks_obtained": marks,
		}).Error
}

func (r *attemptRepository) AnswersForAttempt(ctx context.Context, attemptID string) ([]models.StudentAnswer, error) {
	var answers []models.StudentAnswer
	err := r.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("created_at ASC").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}

	return answers, nil
}

func (r *attemptRepository) QuestionsByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var questions []models.Question
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}

	return questions, nil
}

// InTransaction runs fn against a repository bound to a single transaction,
// committing on nil and rolling back on error.
func (r *attemptRepository) InTransaction(ctx context.Context, fn func(AttemptRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&attemptRepository{db: tx})
	})
}
