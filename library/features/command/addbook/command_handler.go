package addbook

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error)
	FindAuthorsByNames(ctx context.Context, s store.Session, names []string) ([]core.Author, error)
	FindUDKCode(ctx context.Context, s store.Session, id core.UDKID) (core.UDKCode, bool, error)
	InsertBook(ctx context.Context, s store.Session, book core.Book) error
	ReplaceBookAuthors(ctx context.Context, s store.Session, bookID core.BookID, authorIDs []core.AuthorID) error
	InsertInstances(ctx context.Context, s store.Session, instances []core.BookInstance) ([]core.InstanceID, error)
}

// Result is the cataloged book with its new instances.
type Result struct {
	Book      core.Book
	Instances []core.BookInstance
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
type CommandHandler struct {
	db    store.Beginner
	repo  Repository
	clock func() time.Time
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithClock sets the clock used for the year check and a missing acquisition date.
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

// Handle catalogs the book, links its authors and creates its instances.
func (h CommandHandler) Handle(ctx context.Context, command Command) (Result, error) {
	now := h.clock()

	if err := command.Validate(now); err != nil {
		return Result{}, err
	}

	acquiredAt := command.AcquisitionDate
	if acquiredAt.IsZero() {
		acquiredAt = now
	}

	var result Result

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		current, err := h.read(ctx, tx, command)
		if err != nil {
			return err
		}

		decision := Decide(current, command)
		if err = decision.HasError(); err != nil {
			return err
		}

		if err = h.repo.InsertBook(ctx, tx, decision.Value.Book); err != nil {
			if errors.Is(err, store.ErrUniqueViolation) {
				return errors.Join(core.ErrBookAlreadyExists, err)
			}

			return err
		}

		if err = h.repo.ReplaceBookAuthors(ctx, tx, command.BookID, decision.Value.AuthorIDs); err != nil {
			return err
		}

		instances := core.NewInstances(command.BookID, command.Quantity, acquiredAt)

		ids, err := h.repo.InsertInstances(ctx, tx, instances)
		if err != nil {
			return err
		}

		for i := range instances {
			instances[i].ID = ids[i]
		}

		result = Result{Book: decision.Value.Book, Instances: instances}

		return nil
	})

	if err != nil {
		return Result{}, err
	}

	return result, nil
}

func (h CommandHandler) read(ctx context.Context, tx store.Session, command Command) (Current, error) {
	var current Current

	_, exists, err := h.repo.FindBook(ctx, tx, command.BookID)
	if err != nil {
		return Current{}, err
	}

	current.BookExists = exists

	if current.Authors, err = h.repo.FindAuthorsByNames(ctx, tx, command.AuthorNames); err != nil {
		return Current{}, err
	}

	if command.UDKID != nil {
		udk, found, err := h.repo.FindUDKCode(ctx, tx, *command.UDKID)
		if err != nil {
			return Current{}, err
		}

		if found {
			current.UDK = &udk
		}
	}

	return current, nil
}
