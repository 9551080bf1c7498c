package dto

import (
	"strings"

	"s3-audio-translate/internal/api/errors"
	"s3-audio-translate/internal/app/session"
)

// LoginForm is posted by the login view
type LoginForm struct {
	Email    string `form:"email" json:"email" binding:"max=320"`
	Password string `form:"password" json:"password" binding:"max=1024"`
}

// RegisterForm is posted by the register view. Password rules are applied by
// the session state machine so that the mismatch check always comes first.
type RegisterForm struct {
	Email    string `form:"email" json:"email" binding:"max=320"`
	Password string `form:"password" json:"password" binding:"max=1024"`
	Confirm  string `form:"confirm" json:"confirm" binding:"max=1024"`
}

// ViewForm switches between the login and register views
type ViewForm struct {
	View string `form:"view" json:"view" binding:"required,oneof=login register"`
}

// Target returns the requested view
func (f *ViewForm) Target() session.View {
	return session.View(f.View)
}

// TranscribeForm starts the workflow for one object key
type TranscribeForm struct {
	FileKey  string `form:"file_key" json:"file_key" binding:"required,max=1024"`
	Language string `form:"language" json:"language"`
}

// Validate performs domain-specific validation
func (f *TranscribeForm) Validate() error {
	if strings.HasSuffix(f.FileKey, "/") {
		return errors.NewValidationError("Invalid transcription request", map[string]string{
			"file_key": "must name an object, not a prefix",
		})
	}
	return nil
}
