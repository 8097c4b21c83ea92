package utils

import (
	"fmt"
	"net/http"
)

// ServiceError represents a service-level error with context
type ServiceError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
	Cause      error  `json:"-"` // Original error, not exposed in JSON
}

func (e ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e ServiceError) Unwrap() error {
	return e.Cause
}

// NewServiceError creates a new service error
func NewServiceError(code, message string) error {
	return ServiceError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// NewServiceErrorWithCause creates a service error that wraps another error
func NewServiceErrorWithCause(code, message string, cause error) error {
	return ServiceError{
		Code:       code,
		Message:    message,
		Cause:      cause,
		StatusCode: http.StatusInternalServerError,
	}
}

// GetServiceError extracts a ServiceError from an error
func GetServiceError(err error) (ServiceError, bool) {
	if serviceErr, ok := err.(ServiceError); ok {
		return serviceErr, true
	}
	return ServiceError{}, false
}

func NewNotFoundError(resource string) error {
	return ServiceError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func NewBadRequestError(message string) error {
	return ServiceError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewUpstreamError wraps a fleet backend failure. The status code of the
// upstream response is preserved so controllers can relay it.
func NewUpstreamError(message string, statusCode int, cause error) error {
	if statusCode < 400 {
		statusCode = http.StatusBadGateway
	}
	return ServiceError{
		Code:       "UPSTREAM_ERROR",
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// Error code constants
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeUpstream   = "UPSTREAM_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"
)
