package dto

import "github.com/Raghvendrath3/test-generation-app/internal/models"

// ResultAnswer joins a graded answer with its question for display.
type ResultAnswer struct {
	ID            string `json:"id"`
	QuestionID    string `json:"question_id"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     *bool  `json:"is_correct"`
	MarksObtained int    `json:"marks_obtained"`
	QuestionText  string `json:"question_text"`
	CorrectAnswer string `json:"correct_answer"`
	Marks         int    `json:"marks"`
}

// ResultResponse is the full scored view of one attempt.
type ResultResponse struct {
	Attempt AttemptResponse `json:"attempt"`
	Answers []ResultAnswer  `json:"answers"`
}

// NewResultResponse builds the result DTO from an attempt and its answers
// joined with their questions.
func NewResultResponse(attempt models.StudentAttempt, answers []models.StudentAnswer, questions map[string]models.Question) ResultResponse {
	items := make([]ResultAnswer, 0, len(answers))
	for _, answer := range answers {
		question := questions[answer.QuestionID]
		items = append(items, ResultAnswer{
			ID:            answer.ID,
			QuestionID:    answer.QuestionID,
			StudentAnswer: answer.StudentAnswer,
			IsCorrect:     answer.IsCorrect,
			MarksObtained: answer.MarksObtained,
			QuestionText:  question.QuestionText,
			CorrectAnswer: question.CorrectAnswer,
			Marks:         question.Marks,
		})
	}

	return ResultResponse{
		Attempt: NewAttemptResponse(attempt),
		Answers: items,
	}
}
