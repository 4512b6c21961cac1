package store

import (
	"context"
)

// Session executes statements either directly on a connection pool or inside a transaction.
type Session interface {
	// Exec runs a parameterized statement that returns no rows.
	Exec(ctx context.Context, query string, args ...any) (Result, error)

	// QueryRow runs a query that is expected to return at most one row.
	// Scanning a Row for a query without results fails with ErrNoRows.
	QueryRow(ctx context.Context, query string, args ...any) Row

	// Query runs a query and returns a cursor over its rows. Callers must close the Rows.
	Query(ctx context.Context, query string, args ...any) (Rows, error)
}

// Row is the result of QueryRow.
type Row interface {
	Scan(dest ...any) error
}

// Rows is a cursor over the result of Query.
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Result is the outcome of Exec.
type Result interface {
	RowsAffected() (int64, error)
}

// Tx is a Session bound to one database transaction.
type Tx interface {
	Session
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Beginner opens transactions.
type Beginner interface {
	Begin(ctx context.Context) (Tx, error)
}

// DB is a pool-level Session that can also open transactions.
type DB interface {
	Session
	Beginner
}
