package repository_test

import (
	"context"
	"errors"
	"reflect"

	"github.com/AntonStoeckl/library-circulation-go/store"
)

// sessionFake records every statement and answers with canned results in call order.
type sessionFake struct {
	statements []recordedStatement
	rows       [][][]any
	rowErrs    []error
	affected   []int64
	execErr    error
}

type recordedStatement struct {
	query string
	args  []any
}

func (f *sessionFake) withRows(rows ...[]any) *sessionFake {
	f.rows = append(f.rows, rows)
	f.rowErrs = append(f.rowErrs, nil)

	return f
}

func (f *sessionFake) withRowError(err error) *sessionFake {
	f.rows = append(f.rows, nil)
	f.rowErrs = append(f.rowErrs, err)

	return f
}

func (f *sessionFake) withAffected(n int64) *sessionFake {
	f.affected = append(f.affected, n)

	return f
}

func (f *sessionFake) Exec(_ context.Context, query string, args ...any) (store.Result, error) {
	f.statements = append(f.statements, recordedStatement{query: query, args: args})

	if f.execErr != nil {
		return nil, f.execErr
	}

	var n int64
	if len(f.affected) > 0 {
		n, f.affected = f.affected[0], f.affected[1:]
	}

	return resultFake(n), nil
}

func (f *sessionFake) QueryRow(_ context.Context, query string, args ...any) store.Row {
	f.statements = append(f.statements, recordedStatement{query: query, args: args})

	rows, err := f.next()
	if err != nil {
		return &rowsFake{err: err}
	}

	if len(rows) == 0 {
		return &rowsFake{err: store.ErrNoRows}
	}

	return &rowsFake{values: rows, pos: 0}
}

func (f *sessionFake) Query(_ context.Context, query string, args ...any) (store.Rows, error) {
	f.statements = append(f.statements, recordedStatement{query: query, args: args})

	rows, err := f.next()
	if err != nil {
		return nil, err
	}

	return &rowsFake{values: rows, pos: -1}, nil
}

func (f *sessionFake) next() ([][]any, error) {
	if len(f.rows) == 0 {
		return nil, nil
	}

	rows, err := f.rows[0], f.rowErrs[0]
	f.rows, f.rowErrs = f.rows[1:], f.rowErrs[1:]

	return rows, err
}

func (f *sessionFake) lastStatement() recordedStatement {
	if len(f.statements) == 0 {
		return recordedStatement{}
	}

	return f.statements[len(f.statements)-1]
}

type resultFake int64

func (r resultFake) RowsAffected() (int64, error) {
	return int64(r), nil
}

// rowsFake assigns canned values to scan destinations. Each value must have the destination's element type.
type rowsFake struct {
	values [][]any
	pos    int
	err    error
}

func (r *rowsFake) Next() bool {
	r.pos++

	return r.pos < len(r.values)
}

func (r *rowsFake) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	if r.pos < 0 || r.pos >= len(r.values) {
		return errors.New("scan called without a current row")
	}

	row := r.values[r.pos]
	if len(row) != len(dest) {
		return errors.New("column count mismatch")
	}

	for i, value := range row {
		target := reflect.ValueOf(dest[i]).Elem()
		target.Set(reflect.ValueOf(value).Convert(target.Type()))
	}

	return nil
}

func (r *rowsFake) Err() error {
	return nil
}

func (r *rowsFake) Close() error {
	return nil
}
