package store

import (
	"errors"
)

var (
	// ErrNilDatabaseConnection is returned when a store is constructed without a database handle.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrNoRows is returned when scanning a Row of a query that produced no result.
	ErrNoRows = errors.New("no rows in result set")

	// ErrQueryFailed wraps failures of QueryRow and Query.
	ErrQueryFailed = errors.New("query execution failed")

	// ErrExecFailed wraps failures of Exec.
	ErrExecFailed = errors.New("statement execution failed")

	// ErrScanFailed wraps failures while scanning rows into destinations.
	ErrScanFailed = errors.New("scanning database row failed")

	// ErrBeginTxFailed wraps failures while opening a transaction.
	ErrBeginTxFailed = errors.New("beginning transaction failed")

	// ErrCommitFailed wraps failures while committing a transaction.
	ErrCommitFailed = errors.New("committing transaction failed")

	// ErrRollbackFailed wraps failures while rolling back a transaction.
	ErrRollbackFailed = errors.New("rolling back transaction failed")

	// ErrTxClosed is returned when a transaction is used after Commit or Rollback.
	ErrTxClosed = errors.New("transaction already closed")

	// ErrUniqueViolation is joined into errors caused by a unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violated")

	// ErrForeignKeyViolation is joined into errors caused by a foreign key constraint.
	ErrForeignKeyViolation = errors.New("foreign key constraint violated")
)

// IsConstraintViolation reports whether err was caused by a unique or foreign key constraint.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation)
}
