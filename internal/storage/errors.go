// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrExclusionViolation  = errors.New("exclusion constraint violation")
	ErrCheckViolation      = errors.New("check constraint violation")
	// ErrAlreadyActive is returned by UpsertAssociation when every requested
	// role is already held on an active association.
	ErrAlreadyActive = errors.New("association already active with the requested roles")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeCheckViolation      = "23514"
	pgErrCodeExclusionViolation  = "23P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgErrorCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeForeignKeyViolation
}

// IsExclusionViolation checks if the error is a PostgreSQL exclusion constraint violation.
func IsExclusionViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeExclusionViolation
}

// IsCheckViolation checks if the error is a PostgreSQL check constraint violation.
func IsCheckViolation(err error) bool {
	return pgErrorCode(err) == pgErrCodeCheckViolation
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// classify maps driver errors to the storage sentinels, keeping the operation
// name as context.
func classify(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case isNoRows(err):
		return ErrNotFound
	case IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, ErrDuplicateKey)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, ErrForeignKeyViolation)
	case IsExclusionViolation(err):
		return fmt.Errorf("%s: %w", op, ErrExclusionViolation)
	case IsCheckViolation(err):
		return fmt.Errorf("%s: %w", op, ErrCheckViolation)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
