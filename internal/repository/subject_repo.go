package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// SubjectRepository defines persistence operations for subjects.
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Subject, error)
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository instantiates a GORM-backed repository.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}

	return subjects, nil
}
