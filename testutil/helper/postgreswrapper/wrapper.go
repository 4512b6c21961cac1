package postgreswrapper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/shell/config"
	"github.com/AntonStoeckl/library-circulation-go/store/postgresengine"
)

const (
	// EnvTestDSN names the env variable holding the DSN of the integration test database.
	EnvTestDSN = "LIBRARY_TEST_DSN"

	// EnvAdapterType selects the database adapter: pgx.pool (default), sql.db or sqlx.db.
	EnvAdapterType = "ADAPTER_TYPE"
)

// Wrapper abstracts over the different database handle types backing a postgresengine.Store.
type Wrapper interface {
	GetStore() postgresengine.Store
	Close()
}

// PGXPoolWrapper wraps pgxpool-based testing.
type PGXPoolWrapper struct {
	pool *pgxpool.Pool
	s    postgresengine.Store
}

// GetStore returns the store.
func (w *PGXPoolWrapper) GetStore() postgresengine.Store {
	return w.s
}

// Close closes the pool.
func (w *PGXPoolWrapper) Close() {
	w.pool.Close()
}

// SQLDBWrapper wraps sql.DB-based testing.
type SQLDBWrapper struct {
	db *sql.DB
	s  postgresengine.Store
}

// GetStore returns the store.
func (w *SQLDBWrapper) GetStore() postgresengine.Store {
	return w.s
}

// Close closes the database handle.
func (w *SQLDBWrapper) Close() {
	_ = w.db.Close()
}

// SQLXWrapper wraps sqlx.DB-based testing.
type SQLXWrapper struct {
	db *sqlx.DB
	s  postgresengine.Store
}

// GetStore returns the store.
func (w *SQLXWrapper) GetStore() postgresengine.Store {
	return w.s
}

// Close closes the database handle.
func (w *SQLXWrapper) Close() {
	_ = w.db.Close()
}

// CreateWrapperWithTestConfig connects to the integration test database with the adapter chosen by ADAPTER_TYPE,
// ensures the schema and empties all tables. It skips the test when LIBRARY_TEST_DSN is not set.
// The wrapper is closed when the test finishes.
func CreateWrapperWithTestConfig(t testing.TB, options ...postgresengine.Option) Wrapper {
	t.Helper()

	dsn := os.Getenv(EnvTestDSN)
	if dsn == "" {
		t.Skipf("%s is not set, skipping postgres integration test", EnvTestDSN)
	}

	ctx := context.Background()
	var wrapper Wrapper

	switch adapterType := strings.ToLower(os.Getenv(EnvAdapterType)); adapterType {
	case config.AdapterPGXPool, "":
		pool, err := config.PostgresPGXPool(ctx, dsn)
		require.NoError(t, err, "error connecting to DB pool in test setup")

		s, err := postgresengine.NewStoreFromPGXPool(pool, options...)
		require.NoError(t, err)

		wrapper = &PGXPoolWrapper{pool: pool, s: s}

	case config.AdapterSQLDB:
		db, err := config.PostgresSQLDB(ctx, dsn)
		require.NoError(t, err, "error connecting to DB in test setup")

		s, err := postgresengine.NewStoreFromSQLDB(db, options...)
		require.NoError(t, err)

		wrapper = &SQLDBWrapper{db: db, s: s}

	case config.AdapterSQLXDB:
		db, err := config.PostgresSQLX(ctx, dsn)
		require.NoError(t, err, "error connecting to DB in test setup")

		s, err := postgresengine.NewStoreFromSQLX(db, options...)
		require.NoError(t, err)

		wrapper = &SQLXWrapper{db: db, s: s}

	default:
		panic(fmt.Sprintf("unsupported wrapper type from env: %s", adapterType))
	}

	t.Cleanup(wrapper.Close)

	require.NoError(t, wrapper.GetStore().EnsureSchema(ctx), "error ensuring the schema")
	CleanUp(t, wrapper)

	return wrapper
}

// CleanUp empties all tables and restarts their id sequences.
func CleanUp(t testing.TB, wrapper Wrapper) {
	t.Helper()

	require.NoError(t, wrapper.GetStore().TruncateAll(context.Background()), "error cleaning up the tables")
}
