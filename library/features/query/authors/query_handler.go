package authors

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	ListAuthors(ctx context.Context, s store.Session) ([]core.Author, error)
}

// QueryHandler lists the authors in storage order.
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

// Handle returns all authors ordered by full name.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (Authors, error) {
	list, err := h.repo.ListAuthors(ctx, h.db)
	if err != nil {
		return Authors{}, err
	}

	return Authors{
		Authors: list,
		Count:   len(list),
	}, nil
}
