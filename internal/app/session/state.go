// Package session holds the per-interaction view state and the transitions
// between the login, register and authenticated views.
//
// Sessions are plain values: every transition takes the current Session and
// returns an Outcome carrying the next one. Nothing here renders; callers pass
// the Outcome to an Observer at the presentation boundary.
package session

import (
	"context"
	"errors"
	"unicode/utf8"

	"go.uber.org/zap"

	"s3-audio-translate/internal/app/auth"
	apperrors "s3-audio-translate/internal/app/errors"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 6

// ServiceUnavailableNotice replaces credential store errors on the page.
const ServiceUnavailableNotice = "Service is temporarily unavailable. Please try again later."

// View is a sub-screen shown while unauthenticated.
type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
)

// Valid reports whether v names a known view.
func (v View) Valid() bool {
	return v == ViewLogin || v == ViewRegister
}

// Session is the state of one user interaction.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	View          View   `json:"view"`
	Email         string `json:"email,omitempty"`
}

// New returns the initial state: unauthenticated on the register view.
func New() Session {
	return Session{View: ViewRegister}
}

// NoticeLevel controls how a notice is presented.
type NoticeLevel string

const (
	LevelSuccess NoticeLevel = "success"
	LevelInfo    NoticeLevel = "info"
	LevelWarning NoticeLevel = "warning"
	LevelError   NoticeLevel = "error"
)

// Notice is a user-visible message produced by a transition.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// Outcome is the result of one transition.
type Outcome struct {
	Session Session
	Notices []Notice
	// Err is the domain error behind a failed transition, nil on success.
	Err error
	// OfferLogin is set after a successful registration.
	OfferLogin bool
}

// Observer redraws the presentation after a transition.
type Observer interface {
	Redraw(out Outcome)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(out Outcome)

func (f ObserverFunc) Redraw(out Outcome) { f(out) }

// Machine applies transitions using an Authenticator.
type Machine struct {
	auth   auth.Authenticator
	logger *zap.Logger
}

// NewMachine creates a state machine. logger may be nil.
func NewMachine(authenticator auth.Authenticator, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{auth: authenticator, logger: logger}
}

// SwitchView moves an unauthenticated session to target.
func (m *Machine) SwitchView(s Session, target View) Outcome {
	if s.Authenticated {
		return failed(s, apperrors.ErrAlreadyAuthenticated, LevelError)
	}
	if !target.Valid() {
		return failed(s, apperrors.InvalidField("view", string(target)), LevelError)
	}
	s.View = target
	return Outcome{Session: s}
}

// SubmitLogin authenticates the session. On failure the session lands on the
// login view with ErrInvalidCredentials.
func (m *Machine) SubmitLogin(ctx context.Context, s Session, email, password string) Outcome {
	if s.Authenticated {
		return failed(s, apperrors.ErrAlreadyAuthenticated, LevelError)
	}

	next := s
	next.View = ViewLogin

	ok, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		m.logger.Error("authentication failed", zap.Error(err))
		return failed(next, apperrors.ServiceUnavailable(err), LevelError)
	}
	if !ok {
		return failed(next, apperrors.ErrInvalidCredentials, LevelError)
	}

	next.Authenticated = true
	next.Email = auth.NormalizeEmail(email)
	m.logger.Info("session authenticated", zap.String("email", next.Email))
	return Outcome{
		Session: next,
		Notices: []Notice{{Level: LevelSuccess, Message: "Login successful!"}},
	}
}

// SubmitRegister validates the password locally, then registers the account.
// Validation failures leave the session untouched.
func (m *Machine) SubmitRegister(ctx context.Context, s Session, email, password, confirm string) Outcome {
	if s.Authenticated {
		return failed(s, apperrors.ErrAlreadyAuthenticated, LevelError)
	}
	if err := ValidatePassword(password, confirm); err != nil {
		return failed(s, err, LevelWarning)
	}

	next := s
	next.View = ViewRegister

	ok, msg, err := m.auth.Register(ctx, email, password)
	if err != nil {
		m.logger.Error("registration failed", zap.Error(err))
		return failed(next, apperrors.RegistrationFailed(ServiceUnavailableNotice), LevelError)
	}
	if !ok {
		return failed(next, apperrors.RegistrationFailed(msg), LevelError)
	}

	return Outcome{
		Session:    next,
		Notices:    []Notice{{Level: LevelSuccess, Message: msg}},
		OfferLogin: true,
	}
}

// ValidatePassword checks confirmation first, then length in characters.
func ValidatePassword(password, confirm string) error {
	if password != confirm {
		return apperrors.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperrors.ErrPasswordTooShort
	}
	return nil
}

// RequireAuthenticated guards every workflow action.
func RequireAuthenticated(s Session) error {
	if !s.Authenticated {
		return apperrors.ErrNotAuthenticated
	}
	return nil
}

func failed(s Session, err error, level NoticeLevel) Outcome {
	return Outcome{
		Session: s,
		Notices: []Notice{{Level: level, Message: NoticeText(err)}},
		Err:     err,
	}
}

// NoticeText is the user-facing text for a domain error.
func NoticeText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, apperrors.ErrRegistrationFailed), errors.Is(err, apperrors.ErrWorkflowFailed):
		return apperrors.Cause(err)
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(err, apperrors.ErrPasswordTooShort):
		return "Password must be at least 6 characters long."
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, apperrors.ErrServiceUnavailable):
		return ServiceUnavailableNotice
	default:
		return err.Error()
	}
}
