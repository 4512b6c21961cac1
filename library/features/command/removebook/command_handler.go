package removebook

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shell/repository"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error)
	CountInstances(ctx context.Context, s store.Session, bookID core.BookID) (repository.InstanceCounts, error)
	DeleteReturnedLoansOfBook(ctx context.Context, s store.Session, bookID core.BookID) error
	DeleteInstancesOfBook(ctx context.Context, s store.Session, bookID core.BookID) error
	DeleteBookAuthors(ctx context.Context, s store.Session, bookID core.BookID) error
	DeleteBook(ctx context.Context, s store.Session, id core.BookID) error
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

// Handle deletes the book and everything that depends on it. It returns the removed book.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Book, error) {
	if err := core.Validate(command); err != nil {
		return core.Book{}, err
	}

	var removed core.Book

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current Current

		book, found, err := h.repo.FindBook(ctx, tx, command.BookID)
		if err != nil {
			return err
		}

		if found {
			current.Book = &book
		}

		if current.Instances, err = h.repo.CountInstances(ctx, tx, command.BookID); err != nil {
			return err
		}

		result := Decide(current)
		if err = result.HasError(); err != nil {
			return err
		}

		if err = h.repo.DeleteReturnedLoansOfBook(ctx, tx, command.BookID); err != nil {
			return err
		}

		// an instance issued in the meantime still has its active loan, which blocks the delete
		if err = h.repo.DeleteInstancesOfBook(ctx, tx, command.BookID); err != nil {
			if errors.Is(err, store.ErrForeignKeyViolation) {
				return errors.Join(core.ErrBookHasIssuedInstances, err)
			}

			return err
		}

		if err = h.repo.DeleteBookAuthors(ctx, tx, command.BookID); err != nil {
			return err
		}

		if err = h.repo.DeleteBook(ctx, tx, command.BookID); err != nil {
			return err
		}

		removed = result.Value

		return nil
	})

	if err != nil {
		return core.Book{}, err
	}

	return removed, nil
}
