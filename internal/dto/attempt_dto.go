package dto

import (
	"time"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// AttemptStartRequest opens a new attempt on a test.
type AttemptStartRequest struct {
	TestID    string `json:"testId" validate:"required"`
	StudentID string `json:"studentId" validate:"required"`
}

// AttemptStartResponse carries the identifier of the opened attempt.
type AttemptStartResponse struct {
	AttemptID string `json:"attemptId"`
}

// SubmittedAnswer is one answer of a submission. Answer may be the empty
// string for questions the student left blank.
type SubmittedAnswer struct {
	QuestionID string `json:"questionId" validate:"required"`
	Answer     string `json:"answer"`
}

// AttemptSubmitRequest submits all answers of an attempt for grading.
type AttemptSubmitRequest struct {
	AttemptID string            `json:"attemptId" validate:"required"`
	Answers   []SubmittedAnswer `json:"answers" validate:"required,dive"`
}

// AttemptSubmitResponse reports the graded score.
type AttemptSubmitResponse struct {
	AttemptID     string `json:"attemptId"`
	ObtainedMarks int    `json:"obtainedMarks"`
}

// AttemptResponse is the serialized attempt state.
type AttemptResponse struct {
	ID            string     `json:"id"`
	TestID        string     `json:"test_id"`
	StudentID     string     `json:"student_id"`
	StartedAt     time.Time  `json:"started_at"`
	SubmittedAt   *time.Time `json:"submitted_at,omitempty"`
	TotalMarks    int        `json:"total_marks"`
	ObtainedMarks int        `json:"obtained_marks"`
	Status        string     `json:"status"`
}

// NewAttemptResponse converts a model into a DTO.
func NewAttemptResponse(model models.StudentAttempt) AttemptResponse {
	return AttemptResponse{
		ID:            model.ID,
		TestID:        model.TestID,
		StudentID:     model.StudentID,
		StartedAt:     model.StartedAt,
		SubmittedAt:   model.SubmittedAt,
		TotalMarks:    model.TotalMarks,
		ObtainedMarks: model.ObtainedMarks,
		Status:        model.Status,
	}
}
