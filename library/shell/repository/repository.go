package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

const (
	dialectPostgres = "postgres"

	tableBooks         = "books"
	tableAuthors       = "authors"
	tableBookAuthors   = "book_authors"
	tableUDK           = "udk"
	tableBookInstances = "book_instances"
	tableReaders       = "readers"
	tableIssuedBooks   = "issued_books"

	colID                = "id"
	colIdentifier        = "identifier"
	colTitle             = "title"
	colYear              = "year"
	colUDKID             = "udk_id"
	colDescription       = "description"
	colFullName          = "full_name"
	colBookID            = "book_id"
	colAuthorID          = "author_id"
	colCode              = "code"
	colInventoryNumber   = "inventory_number"
	colStatus            = "status"
	colAcquisitionDate   = "acquisition_date"
	colPhone             = "phone"
	colAddress           = "address"
	colBirthDate         = "birth_date"
	colRegistrationDate  = "registration_date"
	colInstanceID        = "instance_id"
	colReaderID          = "reader_id"
	colIssueDate         = "issue_date"
	colPlannedReturnDate = "planned_return_date"
	colActualReturnDate  = "actual_return_date"
	colOnTime            = "on_time"
)

// ErrBuildingStatementFailed is returned, joined with core.ErrStorage, when goqu cannot render a statement.
var ErrBuildingStatementFailed = errors.New("building SQL statement failed")

// Repository provides table access for all library features. The zero value is not usable, use New.
type Repository struct {
	dialect goqu.DialectWrapper
}

// New creates a Repository that renders PostgreSQL statements.
func New() Repository {
	return Repository{dialect: goqu.Dialect(dialectPostgres)}
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

// queryRow runs a single-row query and hands the row to scan. It reports false when there is no row.
func (r Repository) queryRow(ctx context.Context, s store.Session, ds sqlBuilder, scan func(row store.Row) error) (bool, error) {
	query, args, buildErr := ds.ToSQL()
	if buildErr != nil {
		return false, errors.Join(core.ErrStorage, ErrBuildingStatementFailed, buildErr)
	}

	scanErr := scan(s.QueryRow(ctx, query, args...))
	if errors.Is(scanErr, store.ErrNoRows) {
		return false, nil
	}

	if scanErr != nil {
		return false, storageError(scanErr)
	}

	return true, nil
}

// query runs a query and calls scan for each row.
func (r Repository) query(ctx context.Context, s store.Session, ds sqlBuilder, scan func(rows store.Rows) error) error {
	query, args, buildErr := ds.ToSQL()
	if buildErr != nil {
		return errors.Join(core.ErrStorage, ErrBuildingStatementFailed, buildErr)
	}

	rows, queryErr := s.Query(ctx, query, args...)
	if queryErr != nil {
		return storageError(queryErr)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return storageError(err)
		}
	}

	if err := rows.Err(); err != nil {
		return storageError(err)
	}

	return nil
}

// exec runs a statement and returns the number of affected rows.
func (r Repository) exec(ctx context.Context, s store.Session, ds sqlBuilder) (int64, error) {
	query, args, buildErr := ds.ToSQL()
	if buildErr != nil {
		return 0, errors.Join(core.ErrStorage, ErrBuildingStatementFailed, buildErr)
	}

	result, execErr := s.Exec(ctx, query, args...)
	if execErr != nil {
		return 0, storageError(execErr)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, storageError(err)
	}

	return rowsAffected, nil
}

// count runs a COUNT query.
func (r Repository) count(ctx context.Context, s store.Session, ds sqlBuilder) (int, error) {
	var n int64

	scan := func(row store.Row) error { return row.Scan(&n) }

	if _, err := r.queryRow(ctx, s, ds, scan); err != nil {
		return 0, err
	}

	return int(n), nil
}

func storageError(err error) error {
	if store.IsConstraintViolation(err) {
		return errors.Join(core.ErrConflict, err)
	}

	return errors.Join(core.ErrStorage, err)
}

func nullableID(id *int64) any {
	if id == nil {
		return nil
	}

	return *id
}

func idFromNull(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}

	id := v.Int64

	return &id
}

func dateFromNull(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}

	date := core.ToDate(v.Time)

	return &date
}

func boolFromNull(v sql.NullBool) *bool {
	if !v.Valid {
		return nil
	}

	b := v.Bool

	return &b
}
