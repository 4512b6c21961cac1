package issueinstance

import (
	"context"
	"errors"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	LockInstance(ctx context.Context, s store.Session, id core.InstanceID) (core.BookInstance, bool, error)
	FindReader(ctx context.Context, s store.Session, id core.ReaderID) (core.Reader, bool, error)
	SetInstanceStatus(
		ctx context.Context,
		s store.Session,
		id core.InstanceID,
		from core.InstanceStatus,
		to core.InstanceStatus,
	) (bool, error)
	InsertLoan(ctx context.Context, s store.Session, loan core.Loan) (core.LoanID, error)
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
// External wrappers handle all observability concerns.
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

// Handle lends the instance and returns the created loan record.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Loan, error) {
	if err := command.Validate(); err != nil {
		return core.Loan{}, err
	}

	var loan core.Loan

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		current, err := h.read(ctx, tx, command)
		if err != nil {
			return err
		}

		result := Decide(current, command)
		if err = result.HasError(); err != nil {
			return err
		}

		// conditional update: the instance must still be on the shelf
		changed, err := h.repo.SetInstanceStatus(ctx, tx, command.InstanceID, core.InstanceOnShelf, core.InstanceIssued)
		if err != nil {
			return err
		}

		if !changed {
			return core.ErrInstanceUnavailable
		}

		loan = result.Value

		loan.ID, err = h.repo.InsertLoan(ctx, tx, loan)
		if errors.Is(err, store.ErrUniqueViolation) {
			return errors.Join(core.ErrInstanceUnavailable, err)
		}

		return err
	})

	if err != nil {
		return core.Loan{}, err
	}

	return loan, nil
}

func (h CommandHandler) read(ctx context.Context, tx store.Session, command Command) (Current, error) {
	var current Current

	instance, found, err := h.repo.LockInstance(ctx, tx, command.InstanceID)
	if err != nil {
		return Current{}, err
	}

	if found {
		current.Instance = &instance
	}

	reader, found, err := h.repo.FindReader(ctx, tx, command.ReaderID)
	if err != nil {
		return Current{}, err
	}

	if found {
		current.Reader = &reader
	}

	return current, nil
}
