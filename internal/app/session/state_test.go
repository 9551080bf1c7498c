package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "s3-audio-translate/internal/app/errors"
	"s3-audio-translate/internal/app/testutil"
)

func newMachine(t *testing.T) (*Machine, *testutil.MockAuthenticator) {
	authenticator := testutil.NewMockAuthenticator(t)
	return NewMachine(authenticator, nil), authenticator
}

func TestNew_DefaultsToRegister(t *testing.T) {
	s := New()
	assert.False(t, s.Authenticated)
	assert.Equal(t, ViewRegister, s.View)
	assert.ErrorIs(t, RequireAuthenticated(s), apperrors.ErrNotAuthenticated)
}

func TestMachine_SwitchView(t *testing.T) {
	m, _ := newMachine(t)

	out := m.SwitchView(New(), ViewLogin)
	assert.NoError(t, out.Err)
	assert.Equal(t, ViewLogin, out.Session.View)
	assert.Empty(t, out.Notices)

	out = m.SwitchView(out.Session, ViewRegister)
	assert.Equal(t, ViewRegister, out.Session.View)

	out = m.SwitchView(New(), View("admin"))
	assert.Error(t, out.Err)
	assert.Equal(t, ViewRegister, out.Session.View)

	authed := Session{Authenticated: true, View: ViewLogin}
	out = m.SwitchView(authed, ViewRegister)
	assert.ErrorIs(t, out.Err, apperrors.ErrAlreadyAuthenticated)
	assert.Equal(t, authed, out.Session)
}

func TestMachine_SubmitLogin(t *testing.T) {
	t.Run("valid credentials authenticate", func(t *testing.T) {
		m, authenticator := newMachine(t)
		authenticator.On("Authenticate", mock.Anything, "User@x.com", "abcdef").Return(true, nil)

		out := m.SubmitLogin(context.Background(), Session{View: ViewLogin}, "User@x.com", "abcdef")

		assert.NoError(t, out.Err)
		assert.True(t, out.Session.Authenticated)
		assert.Equal(t, "user@x.com", out.Session.Email)
		assert.NoError(t, RequireAuthenticated(out.Session))
		assert.Equal(t, []Notice{{Level: LevelSuccess, Message: "Login successful!"}}, out.Notices)
		authenticator.AssertExpectations(t)
	})

	t.Run("wrong password stays on login", func(t *testing.T) {
		m, authenticator := newMachine(t)
		authenticator.On("Authenticate", mock.Anything, "user@x.com", "wrongpw").Return(false, nil)

		out := m.SubmitLogin(context.Background(), Session{View: ViewLogin}, "user@x.com", "wrongpw")

		assert.ErrorIs(t, out.Err, apperrors.ErrInvalidCredentials)
		assert.Equal(t, Session{View: ViewLogin}, out.Session)
		assert.Equal(t, LevelError, out.Notices[0].Level)
		assert.Equal(t, "Invalid credentials", out.Notices[0].Message)
	})

	t.Run("credential service failure is an error notice", func(t *testing.T) {
		m, authenticator := newMachine(t)
		authenticator.On("Authenticate", mock.Anything, "user@x.com", "abcdef").
			Return(false, errors.New("database is locked"))

		out := m.SubmitLogin(context.Background(), New(), "user@x.com", "abcdef")

		assert.ErrorIs(t, out.Err, apperrors.ErrServiceUnavailable)
		assert.Equal(t, "database is locked", apperrors.Cause(out.Err))
		assert.False(t, out.Session.Authenticated)
		assert.Equal(t, ViewLogin, out.Session.View)
		assert.Equal(t, ServiceUnavailableNotice, out.Notices[0].Message)
		assert.NotContains(t, out.Notices[0].Message, "database")
	})

	t.Run("already authenticated", func(t *testing.T) {
		m, authenticator := newMachine(t)
		authed := Session{Authenticated: true, View: ViewLogin, Email: "user@x.com"}

		out := m.SubmitLogin(context.Background(), authed, "other@x.com", "abcdef")

		assert.ErrorIs(t, out.Err, apperrors.ErrAlreadyAuthenticated)
		assert.Equal(t, authed, out.Session)
		authenticator.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMachine_SubmitRegister_LocalValidation(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		confirm     string
		expectedErr error
	}{
		{"mismatch", "secret1", "secret2", apperrors.ErrPasswordMismatch},
		{"mismatch checked before length", "abc", "abd", apperrors.ErrPasswordMismatch},
		{"five characters too short", "abcde", "abcde", apperrors.ErrPasswordTooShort},
		{"empty password too short", "", "", apperrors.ErrPasswordTooShort},
		{"multibyte counted as characters", "pässw", "pässw", apperrors.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, authenticator := newMachine(t)
			start := Session{View: ViewRegister}

			out := m.SubmitRegister(context.Background(), start, "user@x.com", tt.password, tt.confirm)

			assert.ErrorIs(t, out.Err, tt.expectedErr)
			assert.Equal(t, start, out.Session)
			assert.Equal(t, LevelWarning, out.Notices[0].Level)
			assert.True(t, apperrors.IsWarning(out.Err))
			assert.False(t, out.OfferLogin)
			authenticator.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestValidatePassword_Boundary(t *testing.T) {
	assert.NoError(t, ValidatePassword("abcdef", "abcdef"))
	assert.NoError(t, ValidatePassword("abc123", "abc123"))
	assert.ErrorIs(t, ValidatePassword("abcde", "abcde"), apperrors.ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePassword("secret1", "secret2"), apperrors.ErrPasswordMismatch)
}

func TestMachine_SubmitRegister_Delegates(t *testing.T) {
	t.Run("success offers login", func(t *testing.T) {
		m, authenticator := newMachine(t)
		authenticator.On("Register", mock.Anything, "new@x.com", "abcdef").
			Return(true, "Registration successful! Please log in.", nil)

		out := m.SubmitRegister(context.Background(), New(), "new@x.com", "abcdef", "abcdef")

		assert.NoError(t, out.Err)
		assert.True(t, out.OfferLogin)
		assert.Equal(t, New(), out.Session)
		assert.Equal(t, "Registration successful! Please log in.", out.Notices[0].Message)

		next := m.SwitchView(out.Session, ViewLogin)
		assert.Equal(t, ViewLogin, next.Session.View)
	})

	t.Run("rejection surfaces message", func(t *testing.T) {
		m, authenticator := newMachine(t)
		authenticator.On("Register", mock.Anything, "user@x.com", "abcdef").
			Return(false, "Email already registered.", nil)

		out := m.SubmitRegister(context.Background(), New(), "user@x.com", "abcdef", "abcdef")

		assert.ErrorIs(t, out.Err, apperrors.ErrRegistrationFailed)
		assert.False(t, out.OfferLogin)
		assert.Equal(t, ViewRegister, out.Session.View)
		assert.Equal(t, Notice{Level: LevelError, Message: "Email already registered."}, out.Notices[0])
	})

	t.Run("store failure is a registration failure with a generic notice", func(t *testing.T) {
		m, authenticator := newMachine(t)
		authenticator.On("Register", mock.Anything, "user@x.com", "abcdef").
			Return(false, "", errors.New("disk full"))

		out := m.SubmitRegister(context.Background(), New(), "user@x.com", "abcdef", "abcdef")

		assert.ErrorIs(t, out.Err, apperrors.ErrRegistrationFailed)
		assert.Equal(t, ServiceUnavailableNotice, out.Notices[0].Message)
	})
}

func TestObserverFunc(t *testing.T) {
	var seen []Outcome
	var obs Observer = ObserverFunc(func(out Outcome) { seen = append(seen, out) })

	m, _ := newMachine(t)
	obs.Redraw(m.SwitchView(New(), ViewLogin))

	assert.Len(t, seen, 1)
	assert.Equal(t, ViewLogin, seen[0].Session.View)
}
