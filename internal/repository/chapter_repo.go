package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// ChapterRepository defines persistence operations for chapters.
type ChapterRepository interface {
	Create(ctx context.Context, chapter *models.Chapter) error
	ListBySubject(ctx context.Context, subjectID string) ([]models.Chapter, error)
	MaxOrderIndex(ctx context.Context, subjectID string) (int, error)
}

type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository instantiates a GORM-backed repository.
func NewChapterRepository(db *gorm.DB) ChapterRepository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	return r.db.WithContext(ctx).Create(chapter).Error
}

func (r *chapterRepository) ListBySubject(ctx context.Context, subjectID string) ([]models.Chapter, error) {
	var chapters []models.Chapter
	err := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("order_index ASC").
		Find(&chapters).Error
	if err != nil {
		return nil, err
	}

	return chapters, nil
}

// MaxOrderIndex returns the highest order index among the subject's
// chapters, or zero when it has none.
func (r *chapterRepository) MaxOrderIndex(ctx context.Context, subjectID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&models.Chapter{}).
		Where("subject_id = ?", subjectID).
		Select("COALESCE(MAX(order_index), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}

	return max, nil
}
