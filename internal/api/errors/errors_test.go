package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "s3-audio-translate/internal/app/errors"
)

func TestFromDomain(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   ErrorKind
		status int
		code   string
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, KindUnauthorized, http.StatusUnauthorized, "invalid_credentials"},
		{"not authenticated", apperrors.ErrNotAuthenticated, KindUnauthorized, http.StatusUnauthorized, "not_authenticated"},
		{"password mismatch", apperrors.ErrPasswordMismatch, KindValidation, http.StatusUnprocessableEntity, "password_mismatch"},
		{"password too short", apperrors.ErrPasswordTooShort, KindValidation, http.StatusUnprocessableEntity, "password_too_short"},
		{"registration", apperrors.RegistrationFailed("Email already registered."), KindConflict, http.StatusConflict, "registration_failed"},
		{"workflow", apperrors.WorkflowFailed(fmt.Errorf("quota exceeded")), KindServiceUnavailable, http.StatusServiceUnavailable, "workflow_failed"},
		{"unlisted key", apperrors.WorkflowFailed(apperrors.ErrFileNotListed), KindBadRequest, http.StatusBadRequest, "file_not_listed"},
		{"credential store down", apperrors.ServiceUnavailable(fmt.Errorf("query failed")), KindServiceUnavailable, http.StatusServiceUnavailable, "service_unavailable"},
		{"empty key", apperrors.ErrEmptyFileKey, KindBadRequest, http.StatusBadRequest, ""},
		{"unknown artifact", apperrors.ErrUnknownArtifact, KindNotFound, http.StatusNotFound, ""},
		{"anything else", fmt.Errorf("boom"), KindInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromDomain(tt.err, "")
			assert.Equal(t, tt.kind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.HTTPStatus())
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.err.Error(), apiErr.Message)
		})
	}
}

func TestFromDomain_KeepsMessageAndAPIErrors(t *testing.T) {
	assert.Nil(t, FromDomain(nil, "ignored"))

	apiErr := FromDomain(apperrors.ErrInvalidCredentials, "Invalid credentials")
	assert.Equal(t, "Invalid credentials", apiErr.Message)

	original := NewNotFoundError("artifact")
	assert.Same(t, original, FromDomain(original, "other"))
	assert.Equal(t, "artifact not found", original.Error())
}
