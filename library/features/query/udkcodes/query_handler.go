package udkcodes

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the QueryHandler.
type Repository interface {
	ListUDKCodes(ctx context.Context, s store.Session) ([]core.UDKCode, error)
}

// QueryHandler lists the UDK codes in storage order.
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

// Handle returns all UDK codes ordered by code.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (UDKCodes, error) {
	codes, err := h.repo.ListUDKCodes(ctx, h.db)
	if err != nil {
		return UDKCodes{}, err
	}

	return UDKCodes{
		Codes: codes,
		Count: len(codes),
	}, nil
}
