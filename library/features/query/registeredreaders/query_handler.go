package registeredreaders

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	ListReaders(ctx context.Context, s store.Session) ([]core.Reader, error)
}

// QueryHandler lists the readers in storage order.
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

// Handle returns all readers ordered by full name, then id.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (RegisteredReaders, error) {
	readers, err := h.repo.ListReaders(ctx, h.db)
	if err != nil {
		return RegisteredReaders{}, err
	}

	return RegisteredReaders{
		Readers: readers,
		Count:   len(readers),
	}, nil
}
