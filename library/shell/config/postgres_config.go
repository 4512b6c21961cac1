package config

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
)

const (
	driverName = "postgres"

	defaultPGXMaxConnections    = int32(8)
	defaultPGXMinConnections    = int32(1)
	defaultMaxOpenConnections   = 8
	defaultMaxIdleConnections   = 2
	defaultMaxConnLifetime      = time.Hour
	defaultMaxConnIdleTime      = time.Minute * 5
	defaultHealthCheckPeriod    = time.Minute
	defaultConnectTimeout       = time.Second * 5
	defaultConnectionPingWindow = time.Second * 5
)

var (
	// ErrInvalidDSN is returned when a DSN cannot be parsed.
	ErrInvalidDSN = errors.New("invalid postgres dsn")

	// ErrDatabaseUnreachable is returned when a freshly opened handle cannot ping the database.
	ErrDatabaseUnreachable = errors.New("postgres database unreachable")
)

// PostgresPGXPoolConfig creates a pgxpool.Config for dsn.
func PostgresPGXPoolConfig(dsn string) (*pgxpool.Config, error) {
	dbConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Join(ErrInvalidDSN, err)
	}

	dbConfig.MaxConns = defaultPGXMaxConnections
	dbConfig.MinConns = defaultPGXMinConnections
	dbConfig.MaxConnLifetime = defaultMaxConnLifetime
	dbConfig.MaxConnIdleTime = defaultMaxConnIdleTime
	dbConfig.HealthCheckPeriod = defaultHealthCheckPeriod
	dbConfig.ConnConfig.ConnectTimeout = defaultConnectTimeout

	return dbConfig, nil
}

// PostgresPGXPool creates a pgx pool for dsn and verifies the connection.
func PostgresPGXPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	dbConfig, err := PostgresPGXPoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbConfig)
	if err != nil {
		return nil, errors.Join(ErrDatabaseUnreachable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectionPingWindow)
	defer cancel()

	if pingErr := pool.Ping(pingCtx); pingErr != nil {
		pool.Close()
		return nil, errors.Join(ErrDatabaseUnreachable, pingErr)
	}

	return pool, nil
}

// PostgresSQLDB creates a configured *sql.DB for dsn and verifies the connection.
func PostgresSQLDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrInvalidDSN, err)
	}

	configurePool(db)

	if pingErr := ping(ctx, db); pingErr != nil {
		_ = db.Close()
		return nil, pingErr
	}

	return db, nil
}

// PostgresSQLX creates a configured *sqlx.DB for dsn and verifies the connection.
func PostgresSQLX(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Join(ErrInvalidDSN, err)
	}

	configurePool(db.DB)

	if pingErr := ping(ctx, db.DB); pingErr != nil {
		_ = db.Close()
		return nil, pingErr
	}

	return db, nil
}

func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)
}

func ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectionPingWindow)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return errors.Join(ErrDatabaseUnreachable, err)
	}

	return nil
}
