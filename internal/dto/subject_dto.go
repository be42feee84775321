package dto

import (
	"time"

	"github.com/Raghvendrath3/test-generation-app/internal/models"
)

// SubjectCreateRequest describes the payload for creating a subject.
type SubjectCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	TeacherID   string `json:"teacherId" validate:"required"`
}

// SubjectResponse is the serialized subject returned to API clients.
type SubjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeacherID   string    `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewSubjectResponse converts a model into a DTO.
func NewSubjectResponse(model models.Subject) SubjectResponse {
	return SubjectResponse{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		TeacherID:   model.TeacherID,
		CreatedAt:   model.CreatedAt,
	}
}

// NewSubjectResponseSlice converts a slice of models into DTOs.
func NewSubjectResponseSlice(subjects []models.Subject) []SubjectResponse {
	responses := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, NewSubjectResponse(subject))
	}

	return responses
}
