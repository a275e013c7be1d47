package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mergexml/internal/errors"
	"mergexml/internal/merge"
)

// fakeMergeService returns a canned result or error
type fakeMergeService struct {
	result     *merge.Result
	err        error
	lastSource string
}

func (f *fakeMergeService) Merge(ctx context.Context, source string) (*merge.Result, error) {
	f.lastSource = source
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMergeHandlerSuccess(t *testing.T) {
	svc := &fakeMergeService{result: &merge.Result{
		TargetFile:  "/data/target/total_20260829_120000.xml",
		FilesMerged: 10,
		Schema:      "/data/source/total.xsd",
	}}
	handler := NewMergeHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/merge", strings.NewReader(`{"source":"/data/source"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Merge(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/data/source", svc.lastSource)

	var resp MergeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 10, resp.Result.FilesMerged)
}

func TestMergeHandlerEmptyBodyUsesConfiguredSource(t *testing.T) {
	svc := &fakeMergeService{result: &merge.Result{FilesMerged: 1}}
	handler := NewMergeHandler(svc, testLogger())

	rec := httptest.NewRecorder()
	handler.Merge(rec, httptest.NewRequest(http.MethodPost, "/api/merge", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.lastSource)
}

func TestMergeHandlerMalformedBody(t *testing.T) {
	svc := &fakeMergeService{}
	handler := NewMergeHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/merge", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.Merge(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REQUEST")
}

func TestMergeHandlerDomainErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "wrong file count",
			err:            &apperrors.WrongFileCountError{Max: 10},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "WRONG_FILE_COUNT",
		},
		{
			name:           "wrong xsd count",
			err:            &apperrors.WrongXsdCountError{Actual: 0},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "WRONG_XSD_COUNT",
		},
		{
			name:           "invalid currency code",
			err:            &apperrors.InvalidCurrencyCodeError{Expected: "643"},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "INVALID_CURRENCY_CODE",
		},
		{
			name:           "file not found",
			err:            &apperrors.FileNotFoundError{Path: "a.xml"},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "FILE_NOT_FOUND",
		},
		{
			name:           "io failure",
			err:            os.ErrPermission,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewMergeHandler(&fakeMergeService{err: tt.err}, testLogger())

			rec := httptest.NewRecorder()
			handler.Merge(rec, httptest.NewRequest(http.MethodPost, "/api/merge", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedCode)
		})
	}
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler("v1.2.3")

	rec := httptest.NewRecorder()
	handler.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "v1.2.3", body["version"])

	rec = httptest.NewRecorder()
	handler.Version(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.Contains(t, rec.Body.String(), "v1.2.3")
}
