package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"s3-audio-translate/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest binds a form or JSON body and validates both struct tags
// and domain rules.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		validationErrors := make(map[string]string)

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			for _, fieldError := range validationErrs {
				field := strings.ToLower(fieldError.Field())

				switch fieldError.Tag() {
				case "required":
					validationErrors[field] = "is required"
				case "email":
					validationErrors[field] = "must be a valid email"
				case "max":
					validationErrors[field] = "is too long"
				case "oneof":
					validationErrors[field] = "must be one of the allowed values"
				default:
					validationErrors[field] = "is invalid"
				}
			}
		} else {
			validationErrors["request"] = "malformed request body"
		}

		return errors.NewValidationError("Validation failed", validationErrors)
	}

	if validator, ok := req.(Validator); ok {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// FirstDetail returns one field message of a validation error, for display
// in a page notice.
func FirstDetail(err error) string {
	var apiErr *errors.APIError
	if !stderrors.As(err, &apiErr) {
		return err.Error()
	}
	for _, field := range []string{"email", "password", "confirm", "file_key", "language", "view"} {
		if msg, ok := apiErr.Details[field]; ok {
			return strings.ReplaceAll(field, "_", " ") + " " + msg
		}
	}
	return apiErr.Message
}
