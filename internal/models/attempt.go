package models

import "time"

// Attempt statuses. An attempt moves from in_progress to graded in a single
// transition when the submission is graded; there is no intermediate state.
const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusGraded     = "graded"
)

// StudentAttempt is one student's run through a test.
type StudentAttempt struct {
	ID            string     `gorm:"primaryKey;size:64" json:"id"`
	TestID        string     `gorm:"size:64;not null;index" json:"test_id"`
	StudentID     string     `gorm:"size:64;not null;index" json:"student_id"`
	StartedAt     time.Time  `gorm:"not null" json:"started_at"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	TotalMarks    int        `gorm:"not null;default:0" json:"total_marks"`
	ObtainedMarks int        `gorm:"not null;default:0" json:"obtained_marks"`
	Status        string     `gorm:"size:16;not null" json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Graded reports whether the attempt has been graded.
func (a StudentAttempt) Graded() bool {
	return a.Status == AttemptStatusGraded
}

// ExpiresAt returns the moment the attempt's exam window closes for the
// given duration.
func (a StudentAttempt) ExpiresAt(duration time.Duration) time.Time {
	return a.StartedAt.Add(duration)
}

// StudentAnswer records one answer of an attempt. StudentAnswer text is
// stored exactly as submitted; IsCorrect and MarksObtained are filled in by
// grading within the same transaction as the insert.
type StudentAnswer struct {
	ID            string    `gorm:"primaryKey;size:64" json:"id"`
	AttemptID     string    `gorm:"size:64;not null;uniqueIndex:idx_attempt_question" json:"attempt_id"`
	QuestionID    string    `gorm:"size:64;not null;uniqueIndex:idx_attempt_question" json:"question_id"`
	StudentAnswer string    `gorm:"type:text;not null" json:"student_answer"`
	IsCorrect     *bool     `json:"is_correct,omitempty"`
	MarksObtained int       `gorm:"not null;default:0" json:"marks_obtained"`
	CreatedAt     time.Time `json:"created_at"`
}
