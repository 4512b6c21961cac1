// Package store provides the storage abstractions used by the library circulation system.
//
// It defines the generic relational storage collaborator that all repositories talk to:
// a Session executes parameterized statements, scalar queries, and reader queries,
// and a Beginner opens transactions that are themselves Sessions.
//
// Sessions are passed explicitly into every repository call. There is no global connection:
// WithinTx scopes a transaction to one call and guarantees it is either committed or rolled back
// on every exit path, including panics.
//
// Key types:
//   - Session: Exec, QueryRow, Query
//   - Tx: a Session with Commit and Rollback
//   - Beginner: opens a Tx
//   - DB: a Session that can also open transactions (the pool-level store)
//
// Common usage pattern:
//
//	err := store.WithinTx(ctx, db, func(ctx context.Context, tx store.Session) error {
//		if _, err := tx.Exec(ctx, "UPDATE book_instances SET status = $1 WHERE id = $2", "Issued", id); err != nil {
//			return err
//		}
//
//		_, err := tx.Exec(ctx, "INSERT INTO issued_books ...", args...)
//		return err
//	})
//
// The package also defines the dependency-free observability interfaces (Logger, ContextualLogger,
// MetricsCollector, TracingCollector) shared by the storage engine and the application shell.
package store
