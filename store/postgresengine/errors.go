package postgresengine

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/library-circulation-go/store"
)

// SQLSTATE codes of the constraint violations the store classifies.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

// joinDatabaseError joins kind, a constraint sentinel when the cause is a constraint violation, and the cause.
func joinDatabaseError(kind error, cause error) error {
	if constraintErr := constraintViolation(cause); constraintErr != nil {
		return errors.Join(kind, constraintErr, cause)
	}

	return errors.Join(kind, cause)
}

// constraintViolation maps the SQLSTATE of a pgx or lib/pq error to a store sentinel, or nil.
func constraintViolation(err error) error {
	switch sqlState(err) {
	case pgCodeUniqueViolation:
		return store.ErrUniqueViolation
	case pgCodeForeignKeyViolation:
		return store.ErrForeignKeyViolation
	default:
		return nil
	}
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// classifyErrorType returns the error_type label used in metrics and spans.
func classifyErrorType(err error) string {
	switch {
	case errors.Is(err, store.ErrUniqueViolation):
		return errorTypeUniqueViolation
	case errors.Is(err, store.ErrForeignKeyViolation):
		return errorTypeForeignKeyViolation
	case errors.Is(err, context.Canceled):
		return errorTypeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return errorTypeTimeout
	default:
		return errorTypeDatabase
	}
}
