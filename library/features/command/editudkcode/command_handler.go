package editudkcode

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindUDKCode(ctx context.Context, s store.Session, id core.UDKID) (core.UDKCode, bool, error)
	FindUDKCodeByCode(ctx context.Context, s store.Session, code string) (core.UDKCode, bool, error)
	UpdateUDKCode(ctx context.Context, s store.Session, code core.UDKCode) (bool, error)
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

// Handle overwrites the UDK code and returns it.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.UDKCode, error) {
	if err := core.Validate(command); err != nil {
		return core.UDKCode{}, err
	}

	var udk core.UDKCode

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current Current

		stored, found, err := h.repo.FindUDKCode(ctx, tx, command.UDKID)
		if err != nil {
			return err
		}

		if found {
			current.UDK = &stored
		}

		holder, found, err := h.repo.FindUDKCodeByCode(ctx, tx, command.Code)
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

		updated, err := h.repo.UpdateUDKCode(ctx, tx, decision.Value)
		if err != nil {
			if errors.Is(err, store.ErrUniqueViolation) {
				return errors.Join(core.ErrUDKCodeAlreadyExists, err)
			}

			return err
		}

		if !updated {
			return core.ErrUDKCodeNotFound
		}

		udk = decision.Value

		return nil
	})

	if err != nil {
		return core.UDKCode{}, err
	}

	return udk, nil
}
