package readerloans

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	FindReader(ctx context.Context, s store.Session, id core.ReaderID) (core.Reader, bool, error)
	ListLoansOfReader(ctx context.Context, s store.Session, readerID core.ReaderID) ([]repository.LoanRow, error)
}

// QueryHandler reads the loans of a reader and delegates to the pure Project function.
type QueryHandler struct {
	db    store.Session
	repo  Repository
	clock func() time.Time
}

// Option configures a QueryHandler.
type Option func(*QueryHandler)

// WithClock sets the clock used when the query carries no reference time.
func WithClock(clock func() time.Time) Option {
	return func(h *QueryHandler) {
		h.clock = clock
	}
}

// NewQueryHandler creates a new QueryHandler with optional configuration.
func NewQueryHandler(db store.Session, repo Repository, opts ...Option) QueryHandler {
	handler := QueryHandler{
		db:    db,
		repo:  repo,
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle executes the query workflow: Read -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (ReaderLoans, error) {
	if err := core.Validate(query); err != nil {
		return ReaderLoans{}, err
	}

	now := query.Now
	if now.IsZero() {
		now = h.clock()
	}

	var current *core.Reader

	reader, found, err := h.repo.FindReader(ctx, h.db, query.ReaderID)
	if err != nil {
		return ReaderLoans{}, err
	}

	if found {
		current = &reader
	}

	rows, err := h.repo.ListLoansOfReader(ctx, h.db, query.ReaderID)
	if err != nil {
		return ReaderLoans{}, err
	}

	result := Project(current, rows, now)
	if err = result.HasError(); err != nil {
		return ReaderLoans{}, err
	}

	return result.Value, nil
}
