package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"s3-audio-translate/internal/app/repository"
)

const createAccountsTable = `CREATE TABLE IF NOT EXISTS accounts (
	id            BIGSERIAL PRIMARY KEY,
	email         TEXT        NOT NULL UNIQUE,
	password_hash TEXT        NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);`

// uniqueViolation is the SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

// NewAccountStore connects to PostgreSQL with dsn and ensures the accounts
// table exists.
func NewAccountStore(ctx context.Context, dsn string) (*repository.CommonDB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL database: %w", err)
	}

	return newAccountStore(ctx, db)
}

func newAccountStore(ctx context.Context, db *sql.DB) (*repository.CommonDB, error) {
	store := repository.NewCommonDB(db, "postgres", IsUniqueViolation)
	if err := store.Migrate(ctx, createAccountsTable); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// IsUniqueViolation reports whether err is a PostgreSQL unique_violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
