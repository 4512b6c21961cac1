// Package adapters provide database adapter implementations for the PostgreSQL store.
//
// This package implements the adapter pattern to support multiple PostgreSQL database libraries:
// pgx.Pool, sql.DB, and sqlx.DB. All adapters provide equivalent functionality through
// a common DBAdapter interface, including transactions, so the store works with any
// supported database connection type.
//
// The adapters normalize library-specific sentinel errors (no rows, transaction closed)
// to the ones defined in package store.
package adapters
