package dto

import (
	"time"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// ChapterCreateRequest describes the payload for creating a chapter.
type ChapterCreateRequest struct {
	SubjectID   string `json:"subjectId" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ChapterResponse is the serialized chapter returned to API clients.
type ChapterResponse struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewChapterResponse converts a model into a DTO.
func NewChapterResponse(model models.Chapter) ChapterResponse {
	return ChapterResponse{
		ID:          model.ID,
		SubjectID:   model.SubjectID,
		Name:        model.Name,
		Description: model.Description,
		OrderIndex:  model.OrderIndex,
		CreatedAt:   model.CreatedAt,
	}
}

// NewChapterResponseSlice converts a slice of models into DTOs.
func NewChapterResponseSlice(chapters []models.Chapter) []ChapterResponse {
	responses := make([]ChapterResponse, 0, len(chapters))
	for _, chapter := range chapters {
		responses = append(responses, NewChapterResponse(chapter))
	}

	return responses
}
