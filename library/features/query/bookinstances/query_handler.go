package bookinstances

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error)
	ListInstances(ctx context.Context, s store.Session, bookID core.BookID) ([]core.BookInstance, error)
}

// QueryHandler reads the book with its copies and delegates to the pure Project function.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (BookInstances, error) {
	if err := core.Validate(query); err != nil {
		return BookInstances{}, err
	}

	var current *core.Book

	book, found, err := h.repo.FindBook(ctx, h.db, query.BookID)
	if err != nil {
		return BookInstances{}, err
	}

	if found {
		current = &book
	}

	instances, err := h.repo.ListInstances(ctx, h.db, query.BookID)
	if err != nil {
		return BookInstances{}, err
	}

	result := Project(current, instances)
	if err = result.HasError(); err != nil {
		return BookInstances{}, err
	}

	return result.Value, nil
}
