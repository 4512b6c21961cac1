package editreader

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindReader(ctx context.Context, s store.Session, id core.ReaderID) (core.Reader, bool, error)
	FindReaderByNameAndPhone(ctx context.Context, s store.Session, fullName string, phone string) (core.Reader, bool, error)
	UpdateReader(ctx context.Context, s store.Session, reader core.Reader) (bool, error)
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
type CommandHandler struct {
	db    store.Beginner
	repo  Repository
	clock func() time.Time
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithClock sets the clock used for the date checks.
func WithClock(clock func() time.Time) Option {
	return func(h *CommandHandler) {
		h.clock = clock
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(db store.Beginner, repo Repository, opts ...Option) CommandHandler {
	handler := CommandHandler{
		db:    db,
		repo:  repo,
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle overwrites the reader and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Reader, error) {
	if err := command.Validate(h.clock()); err != nil {
		return core.Reader{}, err
	}

	var reader core.Reader

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current Current

		stored, found, err := h.repo.FindReader(ctx, tx, command.ReaderID)
		if err != nil {
			return err
		}

		if found {
			current.Reader = &stored
		}

		duplicate, found, err := h.repo.FindReaderByNameAndPhone(ctx, tx, command.FullName, command.Phone)
		if err != nil {
			return err
		}

		if found {
			current.Duplicate = &duplicate
		}

		decision := Decide(current, command)
		if err = decision.HasError(); err != nil {
			return err
		}

		updated, err := h.repo.UpdateReader(ctx, tx, decision.Value)
		if err != nil {
			return err
		}

		if !updated {
			return core.ErrReaderNotFound
		}

		reader = decision.Value

		return nil
	})

	if err != nil {
		return core.Reader{}, err
	}

	return reader, nil
}
