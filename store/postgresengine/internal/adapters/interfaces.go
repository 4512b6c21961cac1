package adapters

import (
	"context"
)

// DBSession defines the statement execution operations shared by pools and transactions.
type DBSession interface {
	Exec(ctx context.Context, query string, args ...any) (DBResult, error)
	QueryRow(ctx context.Context, query string, args ...any) DBRow
	Query(ctx context.Context, query string, args ...any) (DBRows, error)
}

// DBAdapter defines the interface for database operations needed by the store.
type DBAdapter interface {
	DBSession
	Begin(ctx context.Context) (DBTx, error)
	Ping(ctx context.Context) error
}

// DBTx defines the interface for an open transaction.
type DBTx interface {
	DBSession
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DBRow defines the interface for a single-row query result.
type DBRow interface {
	Scan(dest ...any) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// DBResult defines the interface for execution results.
type DBResult interface {
	RowsAffected() (int64, error)
}
