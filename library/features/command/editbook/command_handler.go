package editbook

import (
	"context"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/core"
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Repository defines the storage operations needed by the CommandHandler.
type Repository interface {
	FindBook(ctx context.Context, s store.Session, id core.BookID) (core.Book, bool, error)
	FindAuthorsByNames(ctx context.Context, s store.Session, names []string) ([]core.Author, error)
	FindUDKCode(ctx context.Context, s store.Session, id core.UDKID) (core.UDKCode, bool, error)
	UpdateBook(ctx context.Context, s store.Session, book core.Book) (bool, error)
	ReplaceBookAuthors(ctx context.Context, s store.Session, bookID core.BookID, authorIDs []core.AuthorID) error
}

// CommandHandler runs the Read -> Decide -> Write workflow in one transaction.
type CommandHandler struct {
	db    store.Beginner
	repo  Repository
	clock func() time.Time
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithClock sets the clock used for the year check.
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

// Handle overwrites the book and replaces its author links.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.Book, error) {
	if err := command.Validate(h.clock()); err != nil {
		return core.Book{}, err
	}

	var book core.Book

	err := store.WithinTx(ctx, h.db, func(ctx context.Context, tx store.Session) error {
		current, err := h.read(ctx, tx, command)
		if err != nil {
			return err
		}

		decision := Decide(current, command)
		if err = decision.HasError(); err != nil {
			return err
		}

		updated, err := h.repo.UpdateBook(ctx, tx, decision.Value.Book)
		if err != nil {
			return err
		}

		if !updated {
			return core.ErrBookNotFound
		}

		if err = h.repo.ReplaceBookAuthors(ctx, tx, command.BookID, decision.Value.AuthorIDs); err != nil {
			return err
		}

		book = decision.Value.Book

		return nil
	})

	if err != nil {
		return core.Book{}, err
	}

	return book, nil
}

func (h CommandHandler) read(ctx context.Context, tx store.Session, command Command) (Current, error) {
	var current Current

	book, found, err := h.repo.FindBook(ctx, tx, command.BookID)
	if err != nil {
		return Current{}, err
	}

	if found {
		current.Book = &book
	}

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
