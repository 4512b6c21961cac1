package registerreader

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindReaderByNameAndPhone(ctx context.Context, s store.Session, fullName string, phone string) (core.Reader, bool, error)
	InsertReader(ctx context.Context, s store.Session, reader core.Reader) (core.ReaderID, error)
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
type CommandHandler struct {
	db    store.Beginner
	repo  Repository
	clock func() time.Time
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithClock sets the clock used for the registration date default and the date checks.
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

// Handle stores the reader and returns it with its assigned id.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Reader, error) {
	now := h.clock()
	if command.RegistrationDate.IsZero() {
		command.RegistrationDate = core.ToDate(now)
	}

	if err := command.Validate(now); err != nil {
		return core.Reader{}, err
	}

	var reader core.Reader

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		var duplicate *core.Reader

		found, ok, err := h.repo.FindReaderByNameAndPhone(ctx, tx, command.FullName, command.Phone)
		if err != nil {
			return err
		}

		if ok {
			duplicate = &found
		}

		decision := Decide(duplicate, command)
		if err = decision.HasError(); err != nil {
			return err
		}

		reader = decision.Value

		if reader.ID, err = h.repo.InsertReader(ctx, tx, reader); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return core.Reader{}, err
	}

	return reader, nil
}
