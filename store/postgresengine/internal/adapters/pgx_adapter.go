package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AntonStoeckl/library-circulation-go/store"
)

// pgxQuerier is the statement surface shared by *pgxpool.Pool and pgx.Tx.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PGXAdapter implements DBAdapter for pgxpool.Pool.
type PGXAdapter struct {
	pgxSession
	pool *pgxpool.Pool
}

// NewPGXAdapter creates a new PGX adapter.
func NewPGXAdapter(pool *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{pgxSession: pgxSession{q: pool}, pool: pool}
}

// Begin opens a transaction on a pooled connection.
func (p *PGXAdapter) Begin(ctx context.Context) (DBTx, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	return &pgxTx{pgxSession: pgxSession{q: tx}, tx: tx}, nil
}

// Ping verifies the database connection.
func (p *PGXAdapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// pgxSession implements DBSession for pools and transactions.
type pgxSession struct {
	q pgxQuerier
}

// Exec executes a statement and returns wrapped result.
func (p pgxSession) Exec(ctx context.Context, query string, args ...any) (DBResult, error) {
	tag, err := p.q.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &pgxResult{tag: tag}, nil
}

// QueryRow executes a single-row query.
func (p pgxSession) QueryRow(ctx context.Context, query string, args ...any) DBRow {
	return &pgxRow{row: p.q.QueryRow(ctx, query, args...)}
}

// Query executes a query and returns wrapped rows.
func (p pgxSession) Query(ctx context.Context, query string, args ...any) (DBRows, error) {
	rows, err := p.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return &pgxRows{rows: rows}, nil
}

// pgxTx wraps pgx.Tx to implement DBTx.
type pgxTx struct {
	pgxSession
	tx pgx.Tx
}

// Commit commits the transaction.
func (p *pgxTx) Commit(ctx context.Context) error {
	return normalizePGXErr(p.tx.Commit(ctx))
}

// Rollback aborts the transaction.
func (p *pgxTx) Rollback(ctx context.Context) error {
	return normalizePGXErr(p.tx.Rollback(ctx))
}

// pgxRow wraps pgx.Row to implement DBRow.
type pgxRow struct {
	row pgx.Row
}

// Scan copies the row values into the provided destinations.
func (p *pgxRow) Scan(dest ...any) error {
	return normalizePGXErr(p.row.Scan(dest...))
}

// pgxRows wraps pgx.Rows to implement the DBRows interface.
type pgxRows struct {
	rows pgx.Rows
}

// Next advances to the next row.
func (p *pgxRows) Next() bool {
	return p.rows.Next()
}

// Scan copies row values into provided destinations.
func (p *pgxRows) Scan(dest ...any) error {
	return p.rows.Scan(dest...)
}

// Err returns the error, if any, that was encountered during iteration.
func (p *pgxRows) Err() error {
	return p.rows.Err()
}

// Close closes the rows iterator.
func (p *pgxRows) Close() error {
	p.rows.Close()
	return nil
}

// pgxResult wraps pgconn.CommandTag to implement the DBResult interface.
type pgxResult struct {
	tag pgconn.CommandTag
}

// RowsAffected returns the number of rows affected by the command.
func (p *pgxResult) RowsAffected() (int64, error) {
	return p.tag.RowsAffected(), nil
}

// normalizePGXErr maps pgx sentinels to the store sentinels.
func normalizePGXErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return store.ErrNoRows
	case errors.Is(err, pgx.ErrTxClosed):
		return store.ErrTxClosed
	default:
		return err
	}
}
