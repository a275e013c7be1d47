package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
)

// APIError represents a structured API error response
type APIError struct {
	StatusCode int         `json:"status_code"`
	ErrorCode  string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Render implements the render.Renderer interface for chi/render
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// New creates a new APIError with the given parameters
func New(statusCode int, errorCode, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

// NewWithDetails creates a new APIError with additional details
func NewWithDetails(statusCode int, errorCode, message string, details interface{}) *APIError {
	return &APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Details:    details,
	}
}

// Predefined error types for common scenarios
var (
	// 400 Bad Request
	ErrInvalidRequest   = New(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format")
	ErrMissingParameter = New(http.StatusBadRequest, "MISSING_PARAMETER", "Required parameter is missing")

	// 404 Not Found
	ErrNotFound = New(http.StatusNotFound, "NOT_FOUND", "Resource not found")

	// 429 Too Many Requests
	ErrRateLimitExceeded = New(http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded")

	// 500 Internal Server Error
	ErrInternalServer = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error")
	ErrFileSystem     = New(http.StatusInternalServerError, "FILESYSTEM_ERROR", "File system error")
)

// FromDomain translates a domain error into the APIError the HTTP layer
// renders. Bound violations and validation failures are unprocessable
// entities, a missing delete target is a 404, everything else is a 500.
func FromDomain(err error) *APIError {
	var (
		wrongCount  *WrongFileCountError
		wrongXsd    *WrongXsdCountError
		notFound    *FileNotFoundError
		deleteFail  *FileDeleteFailedError
		badCurrency *InvalidCurrencyCodeError
		missingTag  *MissingCurrencyCodeTagError
		badSchema   *InvalidSchemaError
	)

	switch {
	case errors.As(err, &wrongCount):
		return NewWithDetails(http.StatusUnprocessableEntity, "WRONG_FILE_COUNT", wrongCount.Error(), wrongCount.Max)
	case errors.As(err, &wrongXsd):
		return NewWithDetails(http.StatusUnprocessableEntity, "WRONG_XSD_COUNT", wrongXsd.Error(), wrongXsd.Actual)
	case errors.As(err, &notFound):
		return NewWithDetails(http.StatusNotFound, "FILE_NOT_FOUND", notFound.Error(), notFound.Path)
	case errors.As(err, &deleteFail):
		return NewWithDetails(http.StatusInternalServerError, "FILE_DELETE_FAILED", deleteFail.Error(), deleteFail.Path)
	case errors.As(err, &badCurrency):
		return NewWithDetails(http.StatusUnprocessableEntity, "INVALID_CURRENCY_CODE", badCurrency.Error(), badCurrency.Expected)
	case errors.As(err, &missingTag):
		return NewWithDetails(http.StatusUnprocessableEntity, "MISSING_CURRENCY_CODE_TAG", missingTag.Error(), missingTag.Tag)
	case errors.As(err, &badSchema):
		return NewWithDetails(http.StatusUnprocessableEntity, "INVALID_SCHEMA", badSchema.Error(), badSchema.Findings)
	default:
		return NewWithDetails(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal server error", err.Error())
	}
}

// FileSystemError creates a filesystem error with operation context
func FileSystemError(operation string, err error) *APIError {
	return NewWithDetails(http.StatusInternalServerError, "FILESYSTEM_ERROR", fmt.Sprintf("File system error during %s", operation), err.Error())
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *APIError) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Error:   err,
	}
}

// Render implements the render.Renderer interface
func (e *ErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.Error.Render(w, r)
}

// WriteError writes an error response to the HTTP response writer
func WriteError(w http.ResponseWriter, err *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	json.NewEncoder(w).Encode(NewErrorResponse(err))
}
