// Package postgresengine provides a PostgreSQL implementation of the store interfaces.
//
// The Store supports multiple database adapters (pgx, sql.DB, sqlx) behind one type and adds
// transactions, constraint-violation classification, and optional observability
// (logging, contextual logging, metrics, tracing) to every statement.
//
// Key features:
//   - Multiple database adapter support (PGX, SQL, SQLX)
//   - Transactions as first-class store.Tx sessions
//   - Unique and foreign key violations joined with store.ErrUniqueViolation / store.ErrForeignKeyViolation
//   - Schema bootstrap for the library circulation tables
//
// Usage examples:
//
//	// Basic usage
//	db, _ := pgxpool.New(context.Background(), dsn)
//	s, _ := postgresengine.NewStoreFromPGXPool(db)
//
//	// With SQL debug logging and metrics
//	s, _ := postgresengine.NewStoreFromPGXPool(
//		db,
//		postgresengine.WithLogger(slog.Default()),
//		postgresengine.WithMetrics(collector),
//	)
//
//	err := store.WithinTx(ctx, s, func(ctx context.Context, tx store.Session) error {
//		_, err := tx.Exec(ctx, sqlQuery, args...)
//		return err
//	})
package postgresengine
