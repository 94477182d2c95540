package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument      = "invalid_argument"
	categoryPayloadTooLarge      = "payload_too_large"
	categoryUnsupportedMediaType = "unsupported_media_type"
	categoryInternal             = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusBadRequest,
	}
}

// NewPayloadTooLargeError creates a new ServiceError with category payload_too_large.
func NewPayloadTooLargeError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryPayloadTooLarge,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusRequestEntityTooLarge,
	}
}

// NewUnsupportedMediaTypeError creates a new ServiceError with category unsupported_media_type.
func NewUnsupportedMediaTypeError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryUnsupportedMediaType,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: http.StatusUnsupportedMediaType,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: http.StatusInternalServerError,
	}
}

// NewInternalErrorUndefined wraps an error that carries no ServiceError (SYS_9001).
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string   // invalid_argument, payload_too_large, unsupported_media_type or internal
	Code           string   // service-owned stable code (e.g. ANA_1000)
	Message        string   // client-safe, human-readable
	Details        []string // optional client-safe hints, e.g. failing filter values
	Cause          error    // wrapped underlying error
	HttpStatusCode int
}

// WithDetails returns the error with details attached.
func (e *ServiceError) WithDetails(details ...string) *ServiceError {
	e.Details = append(e.Details, details...)
	return e
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
