package removeudkcode

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindUDKCode(ctx context.Context, s store.Session, id core.UDKID) (core.UDKCode, bool, error)
	CountBooksWithUDK(ctx context.Context, s store.Session, udkID core.UDKID) (int, error)
	DeleteUDKCode(ctx context.Context, s store.Session, id core.UDKID) error
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

// Handle deletes the UDK code and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.UDKCode, error) {
	if err := core.Validate(command); err != nil {
		return core.UDKCode{}, err
	}

	var removed core.UDKCode

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current Current

		udk, found, err := h.repo.FindUDKCode(ctx, tx, command.UDKID)
		if err != nil {
			return err
		}

		if found {
			current.UDK = &udk
		}

		if current.Books, err = h.repo.CountBooksWithUDK(ctx, tx, command.UDKID); err != nil {
			return err
		}

		decision := Decide(current)
		if err = decision.HasError(); err != nil {
			return err
		}

		if err = h.repo.DeleteUDKCode(ctx, tx, command.UDKID); err != nil {
			if errors.Is(err, store.ErrForeignKeyViolation) {
				return errors.Join(core.ErrUDKCodeInUse, err)
			}

			return err
		}

		removed = decision.Value

		return nil
	})

	if err != nil {
		return core.UDKCode{}, err
	}

	return removed, nil
}
