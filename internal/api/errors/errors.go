package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	apperrors "s3-audio-translate/internal/app/errors"
)

// ErrorKind represents different types of API errors
type ErrorKind string

const (
	KindValidation         ErrorKind = "validation"
	KindNotFound           ErrorKind = "not_found"
	KindUnauthorized       ErrorKind = "unauthorized"
	KindForbidden          ErrorKind = "forbidden"
	KindConflict           ErrorKind = "conflict"
	KindInternal           ErrorKind = "internal"
	KindServiceUnavailable ErrorKind = "service_unavailable"
	KindBadRequest         ErrorKind = "bad_request"
)

// APIError represents a structured API error response
type APIError struct {
	Kind      ErrorKind         `json:"kind"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Code      string            `json:"code,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error kind
func (e *APIError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, fields map[string]string) *APIError {
	return &APIError{Kind: KindValidation, Message: message, Details: fields}
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *APIError {
	return &APIError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *APIError {
	return &APIError{Kind: KindUnauthorized, Message: message}
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}

// NewBadRequestError creates a bad request error
func NewBadRequestError(message string) *APIError {
	return &APIError{Kind: KindBadRequest, Message: message}
}

// FromDomain maps a domain error to the API error a JSON client receives.
// message is the user-facing text already chosen for the page.
func FromDomain(err error, message string) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}

	kind := KindInternal
	code := ""
	switch {
	case stderrors.Is(err, apperrors.ErrInvalidCredentials):
		kind, code = KindUnauthorized, "invalid_credentials"
	case stderrors.Is(err, apperrors.ErrNotAuthenticated):
		kind, code = KindUnauthorized, "not_authenticated"
	case stderrors.Is(err, apperrors.ErrAlreadyAuthenticated):
		kind, code = KindConflict, "already_authenticated"
	case stderrors.Is(err, apperrors.ErrPasswordMismatch):
		kind, code = KindValidation, "password_mismatch"
	case stderrors.Is(err, apperrors.ErrPasswordTooShort):
		kind, code = KindValidation, "password_too_short"
	case stderrors.Is(err, apperrors.ErrServiceUnavailable):
		kind, code = KindServiceUnavailable, "service_unavailable"
	case stderrors.Is(err, apperrors.ErrRegistrationFailed):
		kind, code = KindConflict, "registration_failed"
	case stderrors.Is(err, apperrors.ErrFileNotListed):
		kind, code = KindBadRequest, "file_not_listed"
	case stderrors.Is(err, apperrors.ErrWorkflowFailed):
		kind, code = KindServiceUnavailable, "workflow_failed"
	case stderrors.Is(err, apperrors.ErrEmptyFileKey), stderrors.Is(err, apperrors.ErrUnsupportedLanguage):
		kind = KindBadRequest
	case stderrors.Is(err, apperrors.ErrUnknownArtifact):
		kind = KindNotFound
	}

	if message == "" {
		message = err.Error()
	}
	return &APIError{Kind: kind, Message: message, Code: code}
}
