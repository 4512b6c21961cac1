package postgresengine

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration

	"github.com/AntonStoeckl/library-circulation-go/store"
)

const (
	logMsgSchemaEnsured     = "schema ensured"
	logMsgTablesTruncated   = "tables truncated"
	logMsgBuildTruncateFail = "failed to build truncate statement"
	dialectPostgres         = "postgres"
)

// ErrBuildingTruncateStatementFailed is returned when the truncate statement cannot be rendered.
var ErrBuildingTruncateStatementFailed = errors.New("building truncate statement failed")

// schemaStatements create the library circulation tables and indexes. They are idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS udk (
		id          BIGSERIAL PRIMARY KEY,
		code        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS books (
		identifier  BIGINT PRIMARY KEY CHECK (identifier > 0),
		title       TEXT NOT NULL,
		year        INTEGER NOT NULL,
		udk_id      BIGINT REFERENCES udk (id),
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS authors (
		id        BIGSERIAL PRIMARY KEY,
		full_name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS book_authors (
		book_id   BIGINT NOT NULL REFERENCES books (identifier),
		author_id BIGINT NOT NULL REFERENCES authors (id),
		PRIMARY KEY (book_id, author_id)
	)`,
	`CREATE TABLE IF NOT EXISTS book_instances (
		id               BIGSERIAL PRIMARY KEY,
		book_id          BIGINT NOT NULL REFERENCES books (identifier),
		inventory_number TEXT NOT NULL UNIQUE,
		status           TEXT NOT NULL CHECK (status IN ('OnShelf', 'Issued')),
		acquisition_date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS readers (
		id                BIGSERIAL PRIMARY KEY,
		full_name         TEXT NOT NULL,
		phone             TEXT NOT NULL,
		address           TEXT NOT NULL DEFAULT '',
		birth_date        DATE NOT NULL,
		registration_date DATE NOT NULL,
		CHECK (registration_date >= birth_date)
	)`,
	`CREATE TABLE IF NOT EXISTS issued_books (
		id                  BIGSERIAL PRIMARY KEY,
		instance_id         BIGINT NOT NULL REFERENCES book_instances (id),
		reader_id           BIGINT NOT NULL REFERENCES readers (id),
		issue_date          DATE NOT NULL,
		planned_return_date DATE NOT NULL,
		actual_return_date  DATE,
		status              TEXT NOT NULL CHECK (status IN ('Issued', 'Returned')),
		on_time             BOOLEAN,
		CHECK (planned_return_date >= issue_date)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS issued_books_one_active_loan_per_instance
		ON issued_books (instance_id) WHERE status = 'Issued'`,
	`CREATE INDEX IF NOT EXISTS book_instances_book_id_status ON book_instances (book_id, status)`,
	`CREATE INDEX IF NOT EXISTS issued_books_reader_id ON issued_books (reader_id)`,
	`CREATE INDEX IF NOT EXISTS book_authors_author_id ON book_authors (author_id)`,
}

// schemaTables lists all tables, dependents first.
var schemaTables = []any{
	"issued_books",
	"book_instances",
	"book_authors",
	"readers",
	"books",
	"authors",
	"udk",
}

// EnsureSchema creates all tables and indexes that do not exist yet, in one transaction.
func (s Store) EnsureSchema(ctx context.Context) error {
	err := store.WithinTx(ctx, s, func(ctx context.Context, tx store.Session) error {
		for _, statement := range schemaStatements {
			if _, err := tx.Exec(ctx, statement); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logOperation(ctx, logMsgSchemaEnsured)

	return nil
}

// TruncateAll removes all rows from all tables and restarts their id sequences.
func (s Store) TruncateAll(ctx context.Context) error {
	sqlQuery, _, buildErr := goqu.Dialect(dialectPostgres).
		Truncate(schemaTables...).
		Identity("RESTART").
		Cascade().
		ToSQL()

	if buildErr != nil {
		s.logError(ctx, logMsgBuildTruncateFail, buildErr)

		return errors.Join(ErrBuildingTruncateStatementFailed, buildErr)
	}

	if _, err := s.Exec(ctx, sqlQuery); err != nil {
		return err
	}

	s.logOperation(ctx, logMsgTablesTruncated)

	return nil
}
