package addauthor

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindAuthorByName(ctx context.Context, s store.Session, fullName string) (core.Author, bool, error)
	InsertAuthor(ctx context.Context, s store.Session, fullName string) (core.AuthorID, error)
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

// Handle stores the author and returns it with its assigned id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Author, error) {
	if err := core.Validate(command); err != nil {
		return core.Author{}, err
	}

	var author core.Author

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var existing *core.Author

		found, ok, err := h.repo.FindAuthorByName(ctx, tx, command.FullName)
		if err != nil {
			return err
		}

		if ok {
			existing = &found
		}

		decision := Decide(existing, command)
		if err = decision.HasError(); err != nil {
			return err
		}

		author = decision.Value

		// the unique index decides between concurrent registrations
		if author.ID, err = h.repo.InsertAuthor(ctx, tx, author.FullName); err != nil {
			if errors.Is(err, store.ErrUniqueViolation) {
				return errors.Join(core.ErrAuthorAlreadyExists, err)
			}

			return err
		}

		return nil
	})

	if err != nil {
		return core.Author{}, err
	}

	return author, nil
}
