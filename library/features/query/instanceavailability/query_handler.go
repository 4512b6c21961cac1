package instanceavailability

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error)
	CountInstances(ctx context.Context, s store.Session, bookID core.BookID) (repository.InstanceCounts, error)
}

// QueryHandler reads the counts and delegates to the pure Project function.
type QueryHandler struct {
	db   store.Session
	repo Repository
}

// NewQueryHandler creates a new QueryHandler.
func NewQueryHandler(db store.Session, repo Repository) QueryHandler {
	return QueryHandler{
		db:   db,
		repo: repo,
	}
}

// Handle executes the query workflow: Read -> Project.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Availability, error) {
	if err := core.Validate(query); err != nil {
		return Availability{}, err
	}

	var current *core.Book

	book, found, err := h.repo.FindBook(ctx, h.db, query.BookID)
	if err != nil {
		return Availability{}, err
	}

	if found {
		current = &book
	}

	counts, err := h.repo.CountInstances(ctx, h.db, query.BookID)
	if err != nil {
		return Availability{}, err
	}

	result := Project(current, counts)
	if err = result.HasError(); err != nil {
		return Availability{}, err
	}

	return result.Value, nil
}
