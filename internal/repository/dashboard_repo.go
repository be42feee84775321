package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// TeacherStats carries the raw counters behind the dashboard aggregate.
type TeacherStats struct {
	Subjects       int64
	Chapters       int64
	Questions      int64
	Tests          int64
	AttemptsTaken  int64
	GradedAttempts int64
	MarksObtained  int64
	MarksPossible  int64
}

// DashboardRepository aggregates a teacher's content and attempt activity.
type DashboardRepository interface {
	TeacherStats(ctx context.Context, teacherID string) (TeacherStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository instantiates a GORM-backed repository.
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) TeacherStats(ctx context.Context, teacherID string) (TeacherStats, error) {
	var stats TeacherStats
	db := r.db.WithContext(ctx)

	err := db.Model(&models.Subject{}).
		Where("teacher_id = ?", teacherID).
		Count(&stats.Subjects).Error
	if err != nil {
		return TeacherStats{}, err
	}

	err = db.Model(&models.Chapter{}).
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Where("subjects.teacher_id = ?", teacherID).
		Count(&stats.Chapters).Error
	if err != nil {
		return TeacherStats{}, err
	}

	err = db.Model(&models.Question{}).
		Joins("JOIN chapters ON chapters.id = questions.chapter_id").
		Joins("JOIN subjects ON subjects.id = chapters.subject_id").
		Where("subjects.teacher_id = ?", teacherID).
		Count(&stats.Questions).Error
	if err != nil {
		return TeacherStats{}, err
	}

	err = db.Model(&models.Test{}).
		Where("teacher_id = ?", teacherID).
		Count(&stats.Tests).Error
	if err != nil {
		return TeacherStats{}, err
	}

	attempts := db.Model(&models.StudentAttempt{}).
		Joins("JOIN tests ON tests.id = student_attempts.test_id").
		Where("tests.teacher_id = ?", teacherID)

	if err := attempts.Count(&stats.AttemptsTaken).Error; err != nil {
		return TeacherStats{}, err
	}

	type scoreRow struct {
		Graded   int64
		Obtained int64
		Possible int64
	}

	var row scoreRow
	err = db.Model(&models.StudentAttempt{}).
		Joins("JOIN tests ON tests.id = student_attempts.test_id").
		Where("tests.teacher_id = ? AND student_attempts.status = ?", teacherID, models.AttemptStatusGraded).
		Select("COUNT(*) AS graded, COALESCE(SUM(student_attempts.obtained_marks), 0) AS obtained, COALESCE(SUM(tests.total_marks), 0) AS possible").
		Scan(&row).Error
	if err != nil {
		return TeacherStats{}, err
	}

	stats.GradedAttempts = row.Graded
	stats.MarksObtained = row.Obtained
	stats.MarksPossible = row.Possible

	return stats, nil
}
