package repository

import (
	"context"

	"s3-audio-translate/internal/app/model"
)

// AccountDAO is the credential store consulted by the authenticator.
// Accounts are created once and only read afterwards.
type AccountDAO interface {
	Close() error

	// CreateAccount returns errors.ErrAccountExists when the email is taken.
	CreateAccount(ctx context.Context, email, passwordHash string) (*model.Account, error)

	// GetAccountByEmail returns errors.ErrAccountNotFound for unknown emails.
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
}
