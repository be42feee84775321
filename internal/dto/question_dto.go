package dto

import (
	"time"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// QuestionCreateRequest describes the payload for creating a question.
// Options are persisted in array order; whether CorrectAnswer matches one of
// them is left to the author.
type QuestionCreateRequest struct {
	ChapterID     string   `json:"chapterId" validate:"required"`
	QuestionText  string   `json:"questionText" validate:"required"`
	QuestionType  string   `json:"questionType" validate:"required,oneof=mcq short_answer essay"`
	Marks         int      `json:"marks" validate:"omitempty,min=1"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
}

// OptionResponse is one mcq choice in a question payload.
type OptionResponse struct {
	ID         string `json:"id"`
	OptionText string `json:"option_text"`
	OrderIndex int    `json:"order_index"`
}

// QuestionResponse is the serialized question with its options.
type QuestionResponse struct {
	ID            string           `json:"id"`
	ChapterID     string           `json:"chapter_id"`
	QuestionText  string           `json:"question_text"`
	QuestionType  string           `json:"question_type"`
	Marks         int              `json:"marks"`
	CorrectAnswer string           `json:"correct_answer"`
	Explanation   string           `json:"explanation"`
	CreatedAt     time.Time        `json:"created_at"`
	Options       []OptionResponse `json:"options"`
}

// NewOptionResponseSlice converts option models ordered by order index.
func NewOptionResponseSlice(options []models.Option) []OptionResponse {
	responses := make([]OptionResponse, 0, len(options))
	for _, option := range options {
		responses = append(responses, OptionResponse{
			ID:         option.ID,
			OptionText: option.OptionText,
			OrderIndex: option.OrderIndex,
		})
	}

	return responses
}

// NewQuestionResponse converts a model into a DTO.
func NewQuestionResponse(model models.Question) QuestionResponse {
	return QuestionResponse{
		ID:            model.ID,
		ChapterID:     model.ChapterID,
		QuestionText:  model.QuestionText,
		QuestionType:  model.QuestionType,
		Marks:         model.Marks,
		CorrectAnswer: model.CorrectAnswer,
		Explanation:   model.Explanation,
		CreatedAt:     model.CreatedAt,
		Options:       NewOptionResponseSlice(model.Options),
	}
}

// NewQuestionResponseSlice converts a slice of models into DTOs.
func NewQuestionResponseSlice(questions []models.Question) []QuestionResponse {
	responses := make([]QuestionResponse, 0, len(questions))
	for _, question := range questions {
		responses = append(responses, NewQuestionResponse(question))
	}

	return responses
}
