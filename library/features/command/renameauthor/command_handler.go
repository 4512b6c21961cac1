package renameauthor

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindAuthor(ctx context.Context, s store.Session, id core.AuthorID) (core.Author, bool, error)
	FindAuthorByName(ctx context.Context, s store.Session, fullName string) (core.Author, bool, error)
	RenameAuthor(ctx context.Context, s store.Session, id core.AuthorID, fullName string) (bool, error)
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

// Handle renames the author and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Author, error) {
	if err := core.Validate(command); err != nil {
		return core.Author{}, err
	}

	var author core.Author

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current Current

		stored, found, err := h.repo.FindAuthor(ctx, tx, command.AuthorID)
		if err != nil {
			return err
		}

		if found {
			current.Author = &stored
		}

		holder, found, err := h.repo.FindAuthorByName(ctx, tx, command.FullName)
		if err != nil {
			return err
		}

		if found {
			current.Holder = &holder
		}

		decision := Decide(current, command)
		if err = decision.HasError(); err != nil {
			return err
		}

		renamed, err := h.repo.RenameAuthor(ctx, tx, command.AuthorID, command.FullName)
		if err != nil {
			if errors.Is(err, store.ErrUniqueViolation) {
				return errors.Join(core.ErrAuthorAlreadyExists, err)
			}

			return err
		}

		if !renamed {
			return core.ErrAuthorNotFound
		}

		author = decision.Value

		return nil
	})

	if err != nil {
		return core.Author{}, err
	}

	return author, nil
}
