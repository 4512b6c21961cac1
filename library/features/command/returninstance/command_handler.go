package returninstance

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	LockLoan(ctx context.Context, s store.Session, id core.LoanID) (core.Loan, bool, error)
	CompleteLoan(ctx context.Context, s store.Session, id core.LoanID, returnDate time.Time, onTime bool) (bool, error)
	SetInstanceStatus(
		ctx context.Context,
		s store.Session,
		id core.InstanceID,
		from core.InstanceStatus,
		to core.InstanceStatus,
	) (bool, error)
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
// External wrappers handle all observability concerns.
type CommandHandler struct {
	db    store.Beginner
	repo  Repository
	clock func() time.Time
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithClock sets the clock used when a command carries no return date.
func WithClock(clock func() time.Time) Option {
	return func(h *CommandHandler) {
		h.clock = clock
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(db store.Beginner, repo Repository, opts ...Option) CommandHandler {
	handler := CommandHandler{
		db:    db,
		repo:  repo,
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle completes the loan and puts its instance back on the shelf.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Outcome, error) {
	if err := core.Validate(command); err != nil {
		return Outcome{}, err
	}

	returnDate := command.ReturnDate
	if returnDate.IsZero() {
		returnDate = h.clock()
	}

	var outcome Outcome

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var current *core.Loan

		loan, found, err := h.repo.LockLoan(ctx, tx, command.LoanID)
		if err != nil {
			return err
		}

		if found {
			current = &loan
		}

		result := Decide(current, returnDate)
		if err = result.HasError(); err != nil {
			return err
		}

		outcome = result.Value

		completed, err := h.repo.CompleteLoan(ctx, tx, command.LoanID, *outcome.Loan.ActualReturnDate, *outcome.Loan.OnTime)
		if err != nil {
			return err
		}

		if !completed {
			return core.ErrLoanAlreadyReturned
		}

		changed, err := h.repo.SetInstanceStatus(ctx, tx, loan.InstanceID, core.InstanceIssued, core.InstanceOnShelf)
		if err != nil {
			return err
		}

		if !changed {
			return core.ErrLentInstanceNotIssued
		}

		return nil
	})

	if err != nil {
		return Outcome{}, err
	}

	return outcome, nil
}
