package adapters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/store"
)

// stdQuerier is the statement surface shared by *sql.DB, *sql.Tx, *sqlx.DB, and *sqlx.Tx.
type stdQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// stdSession implements DBSession on top of any database/sql compatible querier.
type stdSession struct {
	q stdQuerier
}

// Exec executes a statement and returns a wrapped result.
func (s stdSession) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	result, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &stdResult{result: result}, nil
}

// QueryRow executes a single-row query.
func (s stdSession) QueryRow(ctx context.Context, query string, args ...any) DBRow {
	return &stdRow{row: s.q.QueryRowContext(ctx, query, args...)}
}

// Query executes a query and returns wrapped rows.
func (s stdSession) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &stdRows{rows: rows}, nil
}

// stdTx implements DBTx for *sql.Tx and *sqlx.Tx.
type stdTx struct {
	stdSession
	tx interface {
		Commit() error
		Rollback() error
	}
}

// Commit commits the transaction.
func (t *stdTx) Commit(_ context.Context) error {
	return normalizeStdErr(t.tx.Commit())
}

// Rollback aborts the transaction.
func (t *stdTx) Rollback(_ context.Context) error {
	return normalizeStdErr(t.tx.Rollback())
}

// stdRow wraps *sql.Row to implement DBRow.
type stdRow struct {
	row *sql.Row
}

// Scan copies the row values into the provided destinations.
func (s *stdRow) Scan(dest ...any) error {
	return normalizeStdErr(s.row.Scan(dest...))
}

// stdRows wraps standard library sql.Rows to implement DBRows interface.
type stdRows struct {
	rows *sql.Rows
}

// Next advances to the next row.
func (s *stdRows) Next() bool {
	return s.rows.Next()
}

// Scan copies row values into provided destinations.
func (s *stdRows) Scan(dest ...any) error {
	return s.rows.Scan(dest...)
}

// Err returns the error, if any, that was encountered during iteration.
func (s *stdRows) Err() error {
	return s.rows.Err()
}

// Close closes the rows iterator.
func (s *stdRows) Close() error {
	return s.rows.Close()
}

// stdResult wraps standard library sql.Result to implement DBResult interface.
type stdResult struct {
	result sql.Result
}

// RowsAffected returns the number of rows affected by the command.
func (s *stdResult) RowsAffected() (int64, error) {
	return s.result.RowsAffected()
}

// normalizeStdErr maps database/sql sentinels to the store sentinels.
func normalizeStdErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNoRows
	case errors.Is(err, sql.ErrTxDone):
		return store.ErrTxClosed
	default:
		return err
	}
}
