package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "s3-audio-translate/internal/app/errors"
	"s3-audio-translate/internal/app/model"
)

// CommonDB provides shared database functionality
type CommonDB struct {
	db                *sql.DB
	driverName        string
	placeholders      PlaceholderFunc
	isUniqueViolation func(error) bool
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

// NewCommonDB creates a new CommonDB instance. isUniqueViolation recognises
// the driver's duplicate key error; nil means duplicates are never detected.
func NewCommonDB(db *sql.DB, driverName string, isUniqueViolation func(error) bool) *CommonDB {
	var placeholders PlaceholderFunc

	switch driverName {
	case "postgres":
		placeholders = func(n int) string { return fmt.Sprintf("$%d", n) }
	default:
		placeholders = func(n int) string { return "?" }
	}

	if isUniqueViolation == nil {
		isUniqueViolation = func(error) bool { return false }
	}

	return &CommonDB{
		db:                db,
		driverName:        driverName,
		placeholders:      placeholders,
		isUniqueViolation: isUniqueViolation,
	}
}

// DriverName returns the database/sql driver this store was opened with.
func (c *CommonDB) DriverName() string {
	return c.driverName
}

// Migrate executes the schema statements in order.
func (c *CommonDB) Migrate(ctx context.Context, statements ...string) error {
	for _, stmt := range statements {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// CreateAccount inserts a new account row
func (c *CommonDB) CreateAccount(ctx context.Context, email, passwordHash string) (*model.Account, error) {
	createdAt := time.Now().UTC()
	query := fmt.Sprintf(
		"INSERT INTO accounts (email, password_hash, created_at) VALUES (%s, %s, %s)",
		c.placeholders(1), c.placeholders(2), c.placeholders(3),
	)

	var id int64
	if c.driverName == "postgres" {
		err := c.db.QueryRowContext(ctx, query+" RETURNING id", email, passwordHash, createdAt).Scan(&id)
		if err != nil {
			return nil, c.insertError(err)
		}
	} else {
		res, err := c.db.ExecContext(ctx, query, email, passwordHash, createdAt)
		if err != nil {
			return nil, c.insertError(err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInsertFailed.Message())
		}
	}

	return &model.Account{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
	}, nil
}

// GetAccountByEmail looks up a single account
func (c *CommonDB) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := fmt.Sprintf(
		"SELECT id, email, password_hash, created_at FROM accounts WHERE email = %s",
		c.placeholders(1),
	)

	var a model.Account
	err := c.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrQueryFailed.Message())
	}
	return &a, nil
}

// Close closes the database connection
func (c *CommonDB) Close() error {
	return c.db.Close()
}

func (c *CommonDB) insertError(err error) error {
	if c.isUniqueViolation(err) {
		return apperrors.ErrAccountExists
	}
	return apperrors.Wrap(err, apperrors.ErrInsertFailed.Message())
}
