package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// TestRepository defines persistence operations for test snapshots.
type TestRepository interface {
	CreateWithQuestions(ctx context.Context, test *models.Test, links []models.TestQuestion) error
	GetByID(ctx context.Context, id string) (models.Test, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Test, error)
	LinksForTest(ctx context.Context, testID string) ([]models.TestQuestion, error)
}

type testRepository struct {
	db *gorm.DB
}

// NewTestRepository instantiates a GORM-backed repository.
func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

// CreateWithQuestions persists the test and its question links atomically:
// either the full snapshot exists or nothing does.
func (r *testRepository) CreateWithQuestions(ctx context.Context, test *models.Test, links []models.TestQuestion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}

		if len(links) == 0 {
			return nil
		}

		return tx.Create(&links).Error
	})
}

func (r *testRepository) GetByID(ctx context.Context, id string) (models.Test, error) {
	var test models.Test
	if err := r.db.WithContext(ctx).First(&test, "id = ?", id).Error; err != nil {
		return models.Test{}, err
	}

	return test, nil
}

func (r *testRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Test, error) {
	var tests []models.Test
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}

	return tests, nil
}

// LinksForTest loads the test's question links ordered by their position,
// each with its question and the question's ordered options.
func (r *testRepository) LinksForTest(ctx context.Context, testID string) ([]models.TestQuestion, error) {
	var links []models.TestQuestion
	err := r.db.WithContext(ctx).
		Preload("Question.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("Question").
		Where("test_id = ?", testID).
		Order("order_index ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	return links, nil
}
