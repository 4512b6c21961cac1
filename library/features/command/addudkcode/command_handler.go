package addudkcode

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindUDKCodeByCode(ctx context.Context, s store.Session, code string) (core.UDKCode, bool, error)
	InsertUDKCode(ctx context.Context, s store.Session, code core.UDKCode) (core.UDKID, error)
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

// Handle stores the UDK code and returns it with its assigned id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.UDKCode, error) {
	if err := core.Validate(command); err != nil {
		return core.UDKCode{}, err
	}

	var udk core.UDKCode

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var existing *core.UDKCode

		found, ok, err := h.repo.FindUDKCodeByCode(ctx, tx, command.Code)
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

		udk = decision.Value

		if udk.ID, err = h.repo.InsertUDKCode(ctx, tx, udk); err != nil {
			if errors.Is(err, store.ErrUniqueViolation) {
				return errors.Join(core.ErrUDKCodeAlreadyExists, err)
			}

			return err
		}

		return nil
	})

	if err != nil {
		return core.UDKCode{}, err
	}

	return udk, nil
}
