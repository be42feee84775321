package models

import "time"

// Test is an immutable snapshot of questions assembled by a teacher.
// TotalMarks is computed once at creation and never recomputed, even if a
// referenced question's marks change later.
type Test struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	TeacherID       string    `gorm:"size:64;not null;index" json:"teacher_id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	TotalMarks      int       `gorm:"not null;default:0" json:"total_marks"`
	CreatedAt       time.Time `json:"created_at"`

	Questions []TestQuestion `gorm:"foreignKey:TestID" json:"questions,omitempty"`
}

// TestQuestion links a question into a test. A question appears at most once
// per test; OrderIndex fixes display and grading order.
type TestQuestion struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	TestID     string    `gorm:"size:64;not null;uniqueIndex:idx_test_question" json:"test_id"`
	QuestionID string    `gorm:"size:64;not null;uniqueIndex:idx_test_question" json:"question_id"`
	OrderIndex int       `gorm:"not null" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`

	Question Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
