// Package pgerrors translates low-level Postgres errors into the domain
// error taxonomy. Repository packages share it so every adapter reports
// conflicts and storage failures the same way.
package pgerrors

import (
	"errors"

	"fleetcore/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// IsRetryableConflict reports whether the error is a transient conflict the
// caller may retry: a serialization failure, a deadlock, or a unique
// violation caused by a concurrent insert of the same key. GORM connects
// through pgx while raw connections use lib/pq, so both error shapes are
// handled.
func IsRetryableConflict(err error) bool {
	var code string

	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code = pgxErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	default:
		return false
	}

	switch code {
	case codeUniqueViolation, codeSerializationFailure, codeDeadlockDetected:
		return true
	default:
		return false
	}
}

// MapWriteError converts an insert or update error to the domain taxonomy.
// Transient conflicts map to ErrConcurrencyConflict, everything else to
// ErrStorageFailure.
func MapWriteError(operation, paramName string, id any, err error) error {
	if IsRetryableConflict(err) {
		return errs.NewConcurrencyConflictErrorWithCause(paramName, id, err)
	}
	return errs.NewStorageFailureError(operation, err)
}

// MapReadError converts a read error to the domain taxonomy.
// A missing row maps to ErrObjectNotFound, everything else to
// ErrStorageFailure.
func MapReadError(operation, paramName string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return errs.NewStorageFailureError(operation, err)
}
