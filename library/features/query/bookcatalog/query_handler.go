package bookcatalog

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	ListCatalog(ctx context.Context, s store.Session) ([]repository.CatalogRow, error)
}

// QueryHandler reads the catalog rows and delegates to the pure Project function.
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
func (h QueryHandler) Handle(ctx context.Context, query Query) (Catalog, error) {
	rows, err := h.repo.ListCatalog(ctx, h.db)
	if err != nil {
		return Catalog{}, err
	}

	return Project(rows, query), nil
}
