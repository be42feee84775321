package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// QuestionRepository defines persistence operations for questions and their
// options.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	ListByChapter(ctx context.Context, chapterID string) ([]models.Question, error)
	SumMarks(ctx context.Context, ids []string) (int, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository instantiates a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// Create persists the question and any attached options in one transaction.
func (r *questionRepository) Create(ctx context.Context, question *models.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) ListByChapter(ctx context.Context, chapterID string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Where("chapter_id = ?", chapterID).
		Order("created_at DESC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	return questions, nil
}

// SumMarks totals the marks of the identified questions. Unknown ids simply
// do not contribute.
func (r *questionRepository) SumMarks(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var total int
	err := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id IN ?", ids).
		Select("COALESCE(SUM(marks), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
