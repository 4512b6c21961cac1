package addbookinstance

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error)
	InsertInstances(ctx context.Context, s store.Session, instances []core.BookInstance) ([]core.InstanceID, error)
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
type CommandHandler struct {
	db    store.Beginner
	repo  Repository
	clock func() time.Time
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithClock sets the clock used when the command carries no acquisition date.
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

// Handle stores a new OnShelf instance and returns it with its assigned id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.BookInstance, error) {
	if err := core.Validate(command); err != nil {
		return core.BookInstance{}, err
	}

	acquiredAt := command.AcquisitionDate
	if acquiredAt.IsZero() {
		acquiredAt = h.clock()
	}

	var instance core.BookInstance

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current *core.Book

		book, found, err := h.repo.FindBook(ctx, tx, command.BookID)
		if err != nil {
			return err
		}

		if found {
			current = &book
		}

		decision := Decide(current, acquiredAt)
		if err = decision.HasError(); err != nil {
			return err
		}

		ids, err := h.repo.InsertInstances(ctx, tx, []core.BookInstance{decision.Value})
		if err != nil {
			if errors.Is(err, store.ErrForeignKeyViolation) {
				return errors.Join(core.ErrBookNotFound, err)
			}

			return err
		}

		instance = decision.Value
		instance.ID = ids[0]

		return nil
	})

	if err != nil {
		return core.BookInstance{}, err
	}

	return instance, nil
}
