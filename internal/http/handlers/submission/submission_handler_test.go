package submission_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/api/option"

	"landing-leads/internal/http/api"
	"landing-leads/internal/http/handlers"
	"landing-leads/internal/http/handlers/mocks"
	"landing-leads/internal/http/handlers/submission"
	"landing-leads/internal/lib/config"
	"landing-leads/internal/models"
	repo "landing-leads/internal/repository"
	"landing-leads/internal/service"
	submissionsvc "landing-leads/internal/service/submission"
	svcmocks "landing-leads/internal/service/submission/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/submit-form", bytes.NewReader(b))
}

func validBody() map[string]string {
	return map[string]string{
		"fullName":      "A",
		"email":         "a@b.com",
		"contactNumber": "9999999999",
		"location":      "City",
	}
}

func TestSubmissionHandler_Submit_Success(t *testing.T) {
	mockService := mocks.NewMockSubmissionService(t)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

	body := validBody()
	body["businessName"] = "Rao Academy"
	body["teamSize"] = "4-10"

	expected := models.Submission{
		FullName:      "A",
		Email:         "a@b.com",
		ContactNumber: "9999999999",
		Location:      "City",
		BusinessName:  "Rao Academy",
		TeamSize:      "4-10",
	}
	mockService.On("Submit", mock.Anything, expected).Return(nil).Once()

	w := httptest.NewRecorder()
	h.Submit(w, newRequest(t, body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.SubmitResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Form submitted successfully!", resp.Message)
}

func TestSubmissionHandler_Submit_BadJSON(t *testing.T) {
	mockService := mocks.NewMockSubmissionService(t)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.MsgBadRequest, resp.Error)
	mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmissionHandler_Submit_MissingFields(t *testing.T) {
	for _, field := range []string{"fullName", "email", "contactNumber", "location"} {
		t.Run(field, func(t *testing.T) {
			mockService := mocks.NewMockSubmissionService(t)
			h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

			body := validBody()
			delete(body, field)

			w := httptest.NewRecorder()
			h.Submit(w, newRequest(t, body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := handlers.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, "Missing required fields: "+field, resp.Error)
			assert.Empty(t, resp.Details)
			mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmissionHandler_Submit_EmptyFields(t *testing.T) {
	mockService := mocks.NewMockSubmissionService(t)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

	body := map[string]string{
		"fullName":      "",
		"email":         "",
		"contactNumber": "",
		"location":      "",
		"businessName":  "Biz",
	}

	w := httptest.NewRecorder()
	h.Submit(w, newRequest(t, body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, "Missing required fields: fullName, email, contactNumber, location", resp.Error)
}

func TestSubmissionHandler_Submit_NullBody(t *testing.T) {
	mockService := mocks.NewMockSubmissionService(t)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/submit-form", bytes.NewReader([]byte("null")))
	w := httptest.NewRecorder()

	h.Submit(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Contains(t, resp.Error, api.MsgMissingFields)
}

func TestSubmissionHandler_Submit_UpstreamError(t *testing.T) {
	mockService := mocks.NewMockSubmissionService(t)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

	cause := errors.New("lead_repo.AppendRow: googleapi: Error 403: The caller does not have permission")
	mockService.On("Submit", mock.Anything, mock.Anything).
		Return(&service.UpstreamError{Op: "service.submission.Submit", Err: cause}).
		Once()

	w := httptest.NewRecorder()
	h.Submit(w, newRequest(t, validBody()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, "Failed to submit form", resp.Error)
	assert.Equal(t, cause.Error(), resp.Details)
}

func TestSubmissionHandler_Submit_UnexpectedError(t *testing.T) {
	mockService := mocks.NewMockSubmissionService(t)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

	mockService.On("Submit", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

	w := httptest.NewRecorder()
	h.Submit(w, newRequest(t, validBody()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.MsgSubmitFailed, resp.Error)
	assert.Equal(t, "boom", resp.Details)
}

func TestSubmissionHandler_Submit_ServiceValidationError(t *testing.T) {
	mockService := mocks.NewMockSubmissionService(t)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), mockService)

	mockService.On("Submit", mock.Anything, mock.Anything).
		Return(&service.ValidationError{Fields: []string{"location"}}).
		Once()

	w := httptest.NewRecorder()
	h.Submit(w, newRequest(t, validBody()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, "Missing required fields: location", resp.Error)
}

// No idempotency key exists, so a double submit appends twice.
func TestSubmissionHandler_Submit_Twice(t *testing.T) {
	mockAppender := svcmocks.NewRowAppender(t)
	mockAppender.On("AppendRow", mock.Anything, mock.Anything).Return(nil).Twice()

	svc := submissionsvc.NewSubmissionService(mockAppender, time.UTC)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), svc)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.Submit(w, newRequest(t, validBody()))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSubmissionHandler_Submit_EndToEnd(t *testing.T) {
	var appended [][]string

	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Values [][]string `json:"values"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		appended = append(appended, body.Values...)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"spreadsheetId":"sheet-123"}`))
	}))
	defer fake.Close()

	client, err := repo.NewLeadRepo(context.Background(), config.Sheets{
		SpreadsheetID: "sheet-123",
		SheetName:     "Sheet1",
	}, option.WithEndpoint(fake.URL+"/"), option.WithHTTPClient(fake.Client()))
	require.NoError(t, err)

	svc := submissionsvc.NewSubmissionService(client, time.UTC)
	h := submission.NewSubmissionHandler(handlers.NewLogger(), svc)

	w := httptest.NewRecorder()
	h.Submit(w, newRequest(t, validBody()))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, appended, 1)

	row := appended[0]
	require.Len(t, row, 7)
	_, err = time.Parse(models.TimestampLayout, row[0])
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "a@b.com", "9999999999", "City", "N/A", "N/A"}, row[1:])
}

func TestSubmissionHandler_Submit_EndToEnd_UpstreamFailure(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`))
	}))
	defer fake.Close()

	client, err := repo.NewLeadRepo(context.Background(), config.Sheets{SpreadsheetID: "missing"},
		option.WithEndpoint(fake.URL+"/"), option.WithHTTPClient(fake.Client()))
	require.NoError(t, err)

	h := submission.NewSubmissionHandler(handlers.NewLogger(), submissionsvc.NewSubmissionService(client, time.UTC))

	w := httptest.NewRecorder()
	h.Submit(w, newRequest(t, validBody()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.MsgSubmitFailed, resp.Error)
	assert.Contains(t, resp.Details, "Requested entity was not found.")
}
