package contract_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/handler"
)

type stubResultService struct {
	response dto.ResultResponse
}

func (s stubResultService) Get(context.Context, string) (dto.ResultResponse, error) {
	return s.response, nil
}

func TestResultsContract(t *testing.T) {
	schemaPath, err := filepath.Abs(filepath.Join("..", "contracts", "results.schema.json"))
	require.NoError(t, err)

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile("file://" + schemaPath)
	require.NoError(t, err)

	now := time.Now().UTC()
	submitted := now.Add(-time.Minute)
	correct := true
	wrong := false
	response := dto.ResultResponse{
		Attempt: dto.AttemptResponse{
			ID:            "att_9f4c",
			TestID:        "test_a1b2",
			StudentID:     "stud_c3d4",
			StartedAt:     now.Add(-30 * time.Minute),
			SubmittedAt:   &submitted,
			TotalMarks:    10,
			ObtainedMarks: 7,
			Status:        "graded",
		},
		Answers: []dto.ResultAnswer{
			{
				ID:            "ans_1",
				QuestionID:    "ques_1",
				StudentAnswer: "4",
				IsCorrect:     &correct,
				MarksObtained: 7,
				QuestionText:  "What is 2+2?",
				CorrectAnswer: "4",
				Marks:         7,
			},
			{
				ID:            "ans_2",
				QuestionID:    "ques_2",
				StudentAnswer: "Lyon",
				IsCorrect:     &wrong,
				MarksObtained: 0,
				QuestionText:  "Capital of France?",
				CorrectAnswer: "Paris",
				Marks:         3,
			},
		},
	}

	svc := stubResultService{response: response}
	resultHandler := handler.NewResultHandler(svc, zerolog.Nop())

	app := fiber.New()
	resultHandler.Register(app.Group("/api/results"))

	req := httptest.NewRequest(http.MethodGet, "/api/results?attemptId=att_9f4c", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var payload interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NoError(t, schema.Validate(payload))
}
