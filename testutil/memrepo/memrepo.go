package memrepo

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// ErrRawStatementsNotSupported is returned by Exec, Query and QueryRow.
var ErrRawStatementsNotSupported = errors.New("memrepo does not execute SQL")

type data struct {
	books       map[core.BookID]core.Book
	bookAuthors map[core.BookID][]core.AuthorID
	authors     map[core.AuthorID]core.Author
	udkCodes    map[core.UDKID]core.UDKCode
	instances   map[core.InstanceID]core.BookInstance
	readers     map[core.ReaderID]core.Reader
	loans       map[core.LoanID]core.Loan

	lastAuthorID   core.AuthorID
	lastUDKID      core.UDKID
	lastInstanceID core.InstanceID
	lastReaderID   core.ReaderID
	lastLoanID     core.LoanID
}

func newData() data {
	return data{
		books:       make(map[core.BookID]core.Book),
		bookAuthors: make(map[core.BookID][]core.AuthorID),
		authors:     make(map[core.AuthorID]core.Author),
		udkCodes:    make(map[core.UDKID]core.UDKCode),
		instances:   make(map[core.InstanceID]core.BookInstance),
		readers:     make(map[core.ReaderID]core.Reader),
		loans:       make(map[core.LoanID]core.Loan),
	}
}

func (d data) clone() data {
	c := d
	c.books = maps.Clone(d.books)
	c.authors = maps.Clone(d.authors)
	c.udkCodes = maps.Clone(d.udkCodes)
	c.instances = maps.Clone(d.instances)
	c.readers = maps.Clone(d.readers)
	c.loans = maps.Clone(d.loans)
	c.bookAuthors = make(map[core.BookID][]core.AuthorID, len(d.bookAuthors))

	for bookID, authorIDs := range d.bookAuthors {
		c.bookAuthors[bookID] = slices.Clone(authorIDs)
	}

	return c
}

// Repository is an in-memory store.DB with the table access methods of repository.Repository.
type Repository struct {
	txMu   sync.Mutex
	dataMu sync.Mutex
	data   data
	faults map[string]error

	commits   int
	rollbacks int
}

// New creates an empty Repository.
func New() *Repository {
	return &Repository{
		data:   newData(),
		faults: make(map[string]error),
	}
}

// FailOn makes every later call of the named method, e.g. "InsertLoan", return err.
func (r *Repository) FailOn(method string, err error) *Repository {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()

	r.faults[method] = err

	return r
}

// ClearFaults removes all injected errors.
func (r *Repository) ClearFaults() {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()

	r.faults = make(map[string]error)
}

// Commits returns how many transactions were committed.
func (r *Repository) Commits() int {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()

	return r.commits
}

// Rollbacks returns how many transactions were rolled back.
func (r *Repository) Rollbacks() int {
	r.dataMu.Lock()
	defer r.dataMu.Unlock()

	return r.rollbacks
}

// enter locks the data and returns the injected fault for method or the context error, if any.
// The caller must unlock dataMu when enter returns nil.
func (r *Repository) enter(ctx context.Context, method string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.dataMu.Lock()

	if err, ok := r.faults[method]; ok {
		r.dataMu.Unlock()

		return err
	}

	return nil
}

// Exec is not supported.
func (r *Repository) Exec(context.Context, string, ...any) (store.Result, error) {
	return nil, ErrRawStatementsNotSupported
}

// QueryRow is not supported.
func (r *Repository) QueryRow(context.Context, string, ...any) store.Row {
	return errRow{}
}

// Query is not supported.
func (r *Repository) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, ErrRawStatementsNotSupported
}

// Begin waits until no other transaction is open and snapshots the data.
func (r *Repository) Begin(ctx context.Context) (store.Tx, error) {
	if err := r.enter(ctx, "Begin"); err != nil {
		return nil, err
	}
	r.dataMu.Unlock()

	r.txMu.Lock()

	r.dataMu.Lock()
	snapshot := r.data.clone()
	r.dataMu.Unlock()

	return &tx{repo: r, snapshot: snapshot}, nil
}

type tx struct {
	repo     *Repository
	snapshot data
	finished bool
}

func (t *tx) Exec(ctx context.Context, query string, args ...any) (store.Result, error) {
	return t.repo.Exec(ctx, query, args...)
}

func (t *tx) QueryRow(ctx context.Context, query string, args ...any) store.Row {
	return t.repo.QueryRow(ctx, query, args...)
}

func (t *tx) Query(ctx context.Context, query string, args ...any) (store.Rows, error) {
	return t.repo.Query(ctx, query, args...)
}

func (t *tx) Commit(ctx context.Context) error {
	if t.finished {
		return store.ErrTxClosed
	}

	if err := t.repo.enter(ctx, "Commit"); err != nil {
		t.repo.dataMu.Lock()
		t.repo.data = t.snapshot
		t.finish()

		return errors.Join(store.ErrCommitFailed, err)
	}

	t.repo.commits++
	t.finish()

	return nil
}

func (t *tx) Rollback(context.Context) error {
	if t.finished {
		return store.ErrTxClosed
	}

	t.repo.dataMu.Lock()
	t.repo.data = t.snapshot
	t.repo.rollbacks++
	t.finish()

	return nil
}

// finish must be called with dataMu held.
func (t *tx) finish() {
	t.finished = true
	t.repo.dataMu.Unlock()
	t.repo.txMu.Unlock()
}

type errRow struct{}

func (errRow) Scan(...any) error {
	return ErrRawStatementsNotSupported
}

func uniqueViolation(what string) error {
	return errors.Join(core.ErrConflict, store.ErrUniqueViolation, errors.New(what))
}

func foreignKeyViolation(what string) error {
	return errors.Join(core.ErrConflict, store.ErrForeignKeyViolation, errors.New(what))
}

var (
	_ store.DB = (*Repository)(nil)
	_ store.Tx = (*tx)(nil)
)
