package removereader

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindReader(ctx context.Context, s store.Session, id core.ReaderID) (core.Reader, bool, error)
	CountActiveLoansOfReader(ctx context.Context, s store.Session, readerID core.ReaderID) (int, error)
	DeleteReturnedLoansOfReader(ctx context.Context, s store.Session, readerID core.ReaderID) error
	DeleteReader(ctx context.Context, s store.Session, id core.ReaderID) error
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

// Handle deletes the reader with their loan history and returns the removed reader.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Reader, error) {
	if err := core.Validate(command); err != nil {
		return core.Reader{}, err
	}

	var removed core.Reader

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current Current

		reader, found, err := h.repo.FindReader(ctx, tx, command.ReaderID)
		if err != nil {
			return err
		}

		if found {
			current.Reader = &reader
		}

		if current.ActiveLoans, err = h.repo.CountActiveLoansOfReader(ctx, tx, command.ReaderID); err != nil {
			return err
		}

		decision := Decide(current)
		if err = decision.HasError(); err != nil {
			return err
		}

		if err = h.repo.DeleteReturnedLoansOfReader(ctx, tx, command.ReaderID); err != nil {
			return err
		}

		// a loan issued in the meantime is still active and blocks the delete
		if err = h.repo.DeleteReader(ctx, tx, command.ReaderID); err != nil {
			if errors.Is(err, store.ErrForeignKeyViolation) {
				return errors.Join(core.ErrReaderHasActiveLoans, err)
			}

			return err
		}

		removed = decision.Value

		return nil
	})

	if err != nil {
		return core.Reader{}, err
	}

	return removed, nil
}
