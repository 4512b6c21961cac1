package store

import (
	"context"
	"errors"
)

// WithinTx runs fn inside a new transaction opened on db and passes the transaction to fn as its Session.
//
// The transaction is committed when fn returns nil and rolled back when fn returns an error or panics.
// A failed rollback is joined into the returned error. The rollback runs on a context that is not canceled
// together with ctx, so a canceled operation still releases its transaction.
func WithinTx(ctx context.Context, db Beginner, fn func(ctx context.Context, tx Session) error) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}

	finished := false

	defer func() {
		if finished {
			return
		}

		rollbackErr := tx.Rollback(context.WithoutCancel(ctx))

		if p := recover(); p != nil {
			panic(p)
		}

		if rollbackErr != nil && !errors.Is(rollbackErr, ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	finished = true

	return tx.Commit(ctx)
}
