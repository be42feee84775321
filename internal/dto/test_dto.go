package dto

import (
	"time"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// TestCreateRequest describes the payload for assembling a test. Question
// order in QuestionIDs becomes the display order of the snapshot.
type TestCreateRequest struct {
	TeacherID       string   `json:"teacherId" validate:"required"`
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description"`
	DurationMinutes int      `json:"durationMinutes" validate:"required,min=1"`
	QuestionIDs     []string `json:"questionIds" validate:"required,min=1"`
}

// TestResponse is the test summary without its question join.
type TestResponse struct {
	ID              string    `json:"id"`
	TeacherID       string    `json:"teacher_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	TotalMarks      int       `json:"total_marks"`
	CreatedAt       time.Time `json:"created_at"`
}

// TestQuestionResponse is a question inside a test detail, carrying its
// position within the test.
type TestQuestionResponse struct {
	QuestionResponse
	OrderIndex int `json:"order_index"`
}

// TestDetailResponse is the full snapshot: the test plus its ordered
// questions and their options.
type TestDetailResponse struct {
	TestResponse
	Questions []TestQuestionResponse `json:"questions"`
}

// NewTestResponse converts a model into a DTO.
func NewTestResponse(model models.Test) TestResponse {
	return TestResponse{
		ID:              model.ID,
		TeacherID:       model.TeacherID,
		Title:           model.Title,
		Description:     model.Description,
		DurationMinutes: model.DurationMinutes,
		TotalMarks:      model.TotalMarks,
		CreatedAt:       model.CreatedAt,
	}
}

// NewTestResponseSlice converts a slice of models into DTOs.
func NewTestResponseSlice(tests []models.Test) []TestResponse {
	responses := make([]TestResponse, 0, len(tests))
	for _, test := range tests {
		responses = append(responses, NewTestResponse(test))
	}

	return responses
}

// NewTestDetailResponse builds the detail DTO from a test and its links,
// which must already be ordered by their order index.
func NewTestDetailResponse(test models.Test, links []models.TestQuestion) TestDetailResponse {
	questions := make([]TestQuestionResponse, 0, len(links))
	for _, link := range links {
		questions = append(questions, TestQuestionResponse{
			QuestionResponse: NewQuestionResponse(link.Question),
			OrderIndex:       link.OrderIndex,
		})
	}

	return TestDetailResponse{
		TestResponse: NewTestResponse(test),
		Questions:    questions,
	}
}
