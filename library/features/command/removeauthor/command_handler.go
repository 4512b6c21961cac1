package removeauthor

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindAuthor(ctx context.Context, s store.Session, id core.AuthorID) (core.Author, bool, error)
	CountBooksOfAuthor(ctx context.Context, s store.Session, id core.AuthorID) (int, error)
	DeleteAuthor(ctx context.Context, s store.Session, id core.AuthorID) error
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

// Handle deletes the author and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Author, error) {
	if err := core.Validate(command); err != nil {
		return core.Author{}, err
	}

	var removed core.Author

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current Current

		author, found, err := h.repo.FindAuthor(ctx, tx, command.AuthorID)
		if err != nil {
			return err
		}

		if found {
			current.Author = &author
		}

		if current.Books, err = h.repo.CountBooksOfAuthor(ctx, tx, command.AuthorID); err != nil {
			return err
		}

		decision := Decide(current)
		if err = decision.HasError(); err != nil {
			return err
		}

		if err = h.repo.DeleteAuthor(ctx, tx, command.AuthorID); err != nil {
			if errors.Is(err, store.ErrForeignKeyViolation) {
				return errors.Join(core.ErrAuthorInUse, err)
			}

			return err
		}

		removed = decision.Value

		return nil
	})

	if err != nil {
		return core.Author{}, err
	}

	return removed, nil
}
