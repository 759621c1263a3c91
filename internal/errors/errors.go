package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotInitialized is returned when the store is used before Connect.
	ErrNotInitialized = errors.New("database not initialized: call Connect first")
	// ErrInvalidObjectID is returned when an identity fails to parse.
	ErrInvalidObjectID = errors.New("invalid object id")
	// ErrInvalidAmount is returned when a payment amount is not numeric.
	ErrInvalidAmount = errors.New("invalid amount")
)

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Malformed input is the
// caller's fault; everything else surfaces as a 500 with the store's message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidObjectID), errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
