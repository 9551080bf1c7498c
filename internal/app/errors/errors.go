package errors

import (
	"errors"
	"fmt"
)

// Session and workflow errors surfaced to the user
var (
	ErrInvalidCredentials   = New("invalid credentials")
	ErrPasswordMismatch     = New("passwords do not match")
	ErrPasswordTooShort     = New("password must be at least 6 characters long")
	ErrRegistrationFailed   = New("registration failed")
	ErrWorkflowFailed       = New("workflow failed")
	ErrAlreadyAuthenticated = New("session is already authenticated")
	ErrNotAuthenticated     = New("session is not authenticated")
	ErrServiceUnavailable   = New("credential service unavailable")

	// Input errors
	ErrEmptyFileKey        = New("file key is required")
	ErrFileNotListed       = New("file is not in the audio listing")
	ErrUnsupportedLanguage = New("unsupported language")
	ErrUnknownArtifact     = New("artifact not found")

	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidConfig = New("invalid configuration")

	// Storage errors
	ErrAccountExists   = New("account already exists")
	ErrAccountNotFound = New("account not found")
	ErrQueryFailed     = New("query failed")
	ErrInsertFailed    = New("insert failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// Message returns the error text without the cause chain.
func (e *Error) Message() string {
	return e.message
}

// RegistrationFailed carries the credential service's message verbatim.
func RegistrationFailed(message string) error {
	return &Error{message: ErrRegistrationFailed.message, cause: New(message)}
}

// ServiceUnavailable hides a credential store failure behind a generic
// message. The cause stays reachable for logging.
func ServiceUnavailable(cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{message: ErrServiceUnavailable.message, cause: cause}
}

// WorkflowFailed wraps a download, transcription or translation failure.
// The underlying message is kept so it can be shown to the user.
func WorkflowFailed(cause error) error {
	if cause == nil {
		return nil
	}
	if errors.Is(cause, ErrWorkflowFailed) {
		return cause
	}
	return &Error{message: ErrWorkflowFailed.message, cause: cause}
}

// Cause returns the innermost message of a wrapped domain error, which is the
// text users see for RegistrationFailed and WorkflowFailed.
func Cause(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.cause != nil {
		return e.cause.Error()
	}
	return err.Error()
}

// IsWarning reports whether err is a recoverable same-view validation problem.
func IsWarning(err error) bool {
	return errors.Is(err, ErrPasswordMismatch) || errors.Is(err, ErrPasswordTooShort)
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf("%s is invalid: %s", field, reason)
}
