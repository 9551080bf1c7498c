// Package auth verifies logins and registers accounts against the credential store.
package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "s3-audio-translate/internal/app/errors"
	"s3-audio-translate/internal/app/repository"
)

// Authenticator is the credential service contract used by the session state machine.
type Authenticator interface {
	// Authenticate reports whether email and password match a stored account.
	// Unknown accounts and wrong passwords both yield false with a nil error.
	Authenticate(ctx context.Context, email, password string) (bool, error)

	// Register creates an account. The message is user facing in both the
	// success and the rejection case; error is reserved for store failures.
	Register(ctx context.Context, email, password string) (bool, string, error)
}

const (
	MsgRegistered      = "Registration successful! Please log in."
	MsgEmailTaken      = "Email already registered."
	MsgEmailRequired   = "Email is required."
	MsgPasswordTooLong = "Password is too long."
)

// Service implements Authenticator with bcrypt hashes in an AccountDAO.
type Service struct {
	accounts repository.AccountDAO
	cost     int
	logger   *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithCost sets the bcrypt cost. Tests use bcrypt.MinCost.
func WithCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService creates an authenticator backed by accounts.
func NewService(accounts repository.AccountDAO, opts ...Option) *Service {
	s := &Service{
		accounts: accounts,
		cost:     bcrypt.DefaultCost,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate implements Authenticator
func (s *Service) Authenticate(ctx context.Context, email, password string) (bool, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return false, nil
	}

	account, err := s.accounts.GetAccountByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		s.logger.Debug("login for unknown account", zap.String("email", email))
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(err, "failed to look up account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug("password mismatch", zap.String("email", email))
		return false, nil
	}
	return true, nil
}

// Register implements Authenticator
func (s *Service) Register(ctx context.Context, email, password string) (bool, string, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return false, MsgEmailRequired, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return false, MsgPasswordTooLong, nil
	}
	if err != nil {
		return false, "", apperrors.Wrap(err, "failed to hash password")
	}

	if _, err := s.accounts.CreateAccount(ctx, email, string(hash)); err != nil {
		if errors.Is(err, apperrors.ErrAccountExists) {
			return false, MsgEmailTaken, nil
		}
		return false, "", apperrors.Wrap(err, "failed to create account")
	}

	s.logger.Info("account registered", zap.String("email", email))
	return true, MsgRegistered, nil
}
