package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/handler"
	"github.com/Raghvendrath3/test-generation-app/internal/service"
)

type mockAttemptService struct {
	startResp  dto.AttemptStartResponse
	submitResp dto.AttemptSubmitResponse
	err        error
}

func (m *mockAttemptService) Start(_ context.Context, _ dto.AttemptStartRequest) (dto.AttemptStartResponse, error) {
	if m.err != nil {
		return dto.AttemptStartResponse{}, m.err
	}
	return m.startResp, nil
}

func (m *mockAttemptService) Submit(_ context.Context, _ dto.AttemptSubmitRequest) (dto.AttemptSubmitResponse, error) {
	if m.err != nil {
		return dto.AttemptSubmitResponse{}, m.err
	}
	return m.submitResp, nil
}

func newAttemptApp(svc service.AttemptService) *fiber.App {
	app := fiber.New()
	handler.NewAttemptHandler(svc, zerolog.New(io.Discard)).Register(app.Group("/api/attempts"))
	return app
}

func TestAttemptHandler_StartSuccess(t *testing.T) {
	svc := &mockAttemptService{startResp: dto.AttemptStartResponse{AttemptID: "att_1"}}
	app := newAttemptApp(svc)

	body, err := json.Marshal(dto.AttemptStartRequest{TestID: "test_1", StudentID: "stud_1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                     `json:"success"`
		Data    dto.AttemptStartResponse `json:"data"`
		Message string                   `json:"message"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Success)
	require.Equal(t, "att_1", response.Data.AttemptID)
}

func TestAttemptHandler_SubmitSuccess(t *testing.T) {
	svc := &mockAttemptService{submitResp: dto.AttemptSubmitResponse{AttemptID: "att_1", ObtainedMarks: 7}}
	app := newAttemptApp(svc)

	body, err := json.Marshal(dto.AttemptSubmitRequest{
		AttemptID: "att_1",
		Answers:   []dto.SubmittedAnswer{{QuestionID: "ques_1", Answer: "4"}},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/attempts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Data dto.AttemptSubmitResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Equal(t, 7, response.Data.ObtainedMarks)
}

func TestAttemptHandler_SubmitServiceErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		statusCode int
	}{
		{name: "not found", err: service.ErrAttemptNotFound, statusCode: fiber.StatusNotFound},
		{name: "already graded", err: service.ErrAttemptAlreadyGraded, statusCode: fiber.StatusConflict},
		{name: "expired", err: service.ErrAttemptExpired, statusCode: fiber.StatusConflict},
		{name: "generic", err: errors.New("boom"), statusCode: fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newAttemptApp(&mockAttemptService{err: tc.err})

			body, err := json.Marshal(dto.AttemptSubmitRequest{
				AttemptID: "att_1",
				Answers:   []dto.SubmittedAnswer{{QuestionID: "ques_1", Answer: "4"}},
			})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPut, "/api/attempts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.statusCode, resp.StatusCode)
		})
	}
}

func TestAttemptHandler_SubmitInvalidBody(t *testing.T) {
	app := newAttemptApp(&mockAttemptService{})

	req := httptest.NewRequest(http.MethodPut, "/api/attempts", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}
