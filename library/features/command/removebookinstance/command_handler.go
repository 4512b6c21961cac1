package removebookinstance

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error)
	LockInstance(ctx context.Context, s store.Session, id core.InstanceID) (core.BookInstance, bool, error)
	FirstOnShelfInstance(ctx context.Context, s store.Session, bookID core.BookID) (core.BookInstance, bool, error)
	DeleteReturnedLoansOfInstance(ctx context.Context, s store.Session, instanceID core.InstanceID) error
	DeleteInstance(ctx context.Context, s store.Session, id core.InstanceID) (bool, error)
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
type CommandHandler struct {
	db   store.Beginner
	repo Repository
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(db store.Beginner, repo Repository) CommandHandler {
	return CommandHandler{
		db:   db,
		repo: repo,
	}
}

// Handle deletes the chosen copy and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.BookInstance, error) {
	if err := core.Validate(command); err != nil {
		return core.BookInstance{}, err
	}

	var removed core.BookInstance

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		current, err := h.read(ctx, tx, command)
		if err != nil {
			return err
		}

		decision := Decide(current, command)
		if err = decision.HasError(); err != nil {
			return err
		}

		instanceID := decision.Value.ID

		if err = h.repo.DeleteReturnedLoansOfInstance(ctx, tx, instanceID); err != nil {
			return err
		}

		deleted, err := h.repo.DeleteInstance(ctx, tx, instanceID)
		if err != nil {
			return err
		}

		if !deleted {
			return core.ErrInstanceNotOnShelf
		}

		removed = decision.Value

		return nil
	})

	if err != nil {
		return core.BookInstance{}, err
	}

	return removed, nil
}

func (h CommandHandler) read(ctx context.Context, tx store.Session, command Command) (Current, error) {
	var current Current

	book, found, err := h.repo.FindBook(ctx, tx, command.BookID)
	if err != nil {
		return Current{}, err
	}

	if !found {
		return current, nil
	}

	current.Book = &book

	var instance core.BookInstance

	if command.picksAnyInstance() {
		instance, found, err = h.repo.FirstOnShelfInstance(ctx, tx, command.BookID)
	} else {
		instance, found, err = h.repo.LockInstance(ctx, tx, command.InstanceID)
	}

	if err != nil {
		return Current{}, err
	}

	if found {
		current.Instance = &instance
	}

	return current, nil
}
