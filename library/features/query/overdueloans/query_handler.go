package overdueloans

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	ListActiveLoans(ctx context.Context, s store.Session) ([]repository.LoanRow, error)
}

// QueryHandler reads the active loans and delegates to the pure Project function.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (OverdueLoans, error) {
	now := query.Now
	if now.IsZero() {
		now = h.clock()
	}

	rows, err := h.repo.ListActiveLoans(ctx, h.db)
	if err != nil {
		return OverdueLoans{}, err
	}

	return Project(rows, now), nil
}
