package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/library-circulation-go/store"
	"github.com/AntonStoeckl/library-circulation-go/store/postgresengine/internal/adapters"
)

const (
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database statement execution failed"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgBeginTxFailed       = "failed to begin transaction"
	logMsgCommitTxFailed      = "failed to commit transaction"
	logMsgRollbackTxFailed    = "failed to roll back transaction"
	logMsgRowsAffectedFailed  = "failed to get rows affected count"
	logMsgTransactionCommited = "transaction committed"
	logMsgTransactionRolledBk = "transaction rolled back"
	logMsgSQLExecuted         = "executed sql for: "
	logMsgOperation           = "store operation: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrDurationMS         = "duration_ms"
	logAttrRowsAffected       = "rows_affected"
	logActionQuery            = "query"
	logActionQueryRow         = "query_row"
	logActionExec             = "exec"
)

// Store executes SQL statements against PostgreSQL through one of the supported database adapters.
// It implements store.DB, so it can be used directly as a Session or to open transactions.
type Store struct {
	db               adapters.DBAdapter
	logger           store.Logger
	contextualLogger store.ContextualLogger
	metricsCollector store.MetricsCollector
	tracingCollector store.TracingCollector
}

// NewStoreFromPGXPool creates a new Store using a pgx Pool with optional configuration.
func NewStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, store.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewPGXAdapter(db), options)
}

// NewStoreFromSQLDB creates a new Store using a sql.DB with optional configuration.
func NewStoreFromSQLDB(db *sql.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, store.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLAdapter(db), options)
}

// NewStoreFromSQLX creates a new Store using a sqlx.DB with optional configuration.
func NewStoreFromSQLX(db *sqlx.DB, options ...Option) (Store, error) {
	if db == nil {
		return Store{}, store.ErrNilDatabaseConnection
	}

	return newStore(adapters.NewSQLXAdapter(db), options)
}

func newStore(db adapters.DBAdapter, options []Option) (Store, error) {
	s := Store{db: db}

	for _, option := range options {
		if err := option(&s); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}

// Exec runs a statement outside an explicit transaction.
func (s Store) Exec(ctx context.Context, query string, args ...any) (store.Result, error) {
	return s.exec(ctx, s.db, query, args)
}

// QueryRow runs a single-row query outside an explicit transaction.
func (s Store) QueryRow(ctx context.Context, query string, args ...any) store.Row {
	return s.queryRow(ctx, s.db, query, args)
}

// Query runs a query outside an explicit transaction.
func (s Store) Query(ctx context.Context, query string, args ...any) (store.Rows, error) {
	return s.query(ctx, s.db, query, args)
}

// Ping verifies that the database is reachable.
func (s Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Begin opens a new transaction. The returned store.Tx must be committed or rolled back.
func (s Store) Begin(ctx context.Context) (store.Tx, error) {
	spanCtx, span := s.startTransactionSpan(ctx)

	start := time.Now()
	tx, beginErr := s.db.Begin(spanCtx)
	if beginErr != nil {
		joined := errors.Join(store.ErrBeginTxFailed, beginErr)
		errorType := classifyErrorType(joined)
		s.logError(ctx, logMsgBeginTxFailed, beginErr)
		s.recordErrorMetrics(ctx, operationBegin, errorType)
		s.finishSpanError(span, errorType, time.Since(start))

		return nil, joined
	}

	return &transaction{
		store: s,
		tx:    tx,
		span:  span,
		start: start,
	}, nil
}

func (s Store) exec(ctx context.Context, session adapters.DBSession, query string, args []any) (store.Result, error) {
	ctx, span := s.startStatementSpan(ctx, spanNameExec, operationExec)

	start := time.Now()
	result, execErr := session.Exec(ctx, query, args...)
	duration := time.Since(start)
	s.logQueryWithDuration(ctx, query, logActionExec, duration)

	if execErr != nil {
		joined := joinDatabaseError(store.ErrExecFailed, execErr)
		s.failStatement(ctx, span, logMsgDBExecFailed, execErr, joined, query, operationExec, duration)

		return nil, joined
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		s.logWarn(ctx, logMsgRowsAffectedFailed, logAttrError, rowsAffectedErr.Error())
	} else {
		s.recordValueMetrics(ctx, metricRowsAffected, float64(rowsAffected), operationExec, statusSuccess)
	}

	s.recordDurationMetrics(ctx, metricStatementDuration, duration, operationExec, statusSuccess)
	s.finishSpanSuccess(span, duration, spanAttrRowsAffected, rowsAffected)

	return result, nil
}

func (s Store) query(ctx context.Context, session adapters.DBSession, query string, args []any) (store.Rows, error) {
	ctx, span := s.startStatementSpan(ctx, spanNameQuery, operationQuery)

	start := time.Now()
	rows, queryErr := session.Query(ctx, query, args...)
	duration := time.Since(start)
	s.logQueryWithDuration(ctx, query, logActionQuery, duration)

	if queryErr != nil {
		joined := joinDatabaseError(store.ErrQueryFailed, queryErr)
		s.failStatement(ctx, span, logMsgDBQueryFailed, queryErr, joined, query, operationQuery, duration)

		return nil, joined
	}

	s.recordDurationMetrics(ctx, metricStatementDuration, duration, operationQuery, statusSuccess)
	s.finishSpanSuccess(span, duration, "", 0)

	return &observedRows{rows: rows, store: s, ctx: ctx}, nil
}

func (s Store) queryRow(ctx context.Context, session adapters.DBSession, query string, args []any) store.Row {
	ctx, span := s.startStatementSpan(ctx, spanNameQuery, operationQueryRow)

	return &observedRow{
		row:   session.QueryRow(ctx, query, args...),
		store: s,
		ctx:   ctx,
		span:  span,
		query: query,
		start: time.Now(),
	}
}

// failStatement logs and records a failed statement.
func (s Store) failStatement(
	ctx context.Context,
	span store.SpanContext,
	message string,
	cause error,
	joined error,
	query string,
	operation string,
	duration time.Duration,
) {
	errorType := classifyErrorType(joined)

	if store.IsConstraintViolation(joined) {
		s.logOperation(ctx, message, logAttrError, cause.Error(), logAttrQuery, query)
	} else {
		s.logError(ctx, message, cause, logAttrQuery, query)
	}

	s.recordErrorMetrics(ctx, operation, errorType)
	s.recordDurationMetrics(ctx, metricStatementDuration, duration, operation, statusError)
	s.finishSpanError(span, errorType, duration)
}

// observedRow defers instrumentation of QueryRow until Scan, where the error surfaces.
type observedRow struct {
	row   adapters.DBRow
	store Store
	ctx   context.Context
	span  store.SpanContext
	query string
	start time.Time
}

func (r *observedRow) Scan(dest ...any) error {
	scanErr := r.row.Scan(dest...)
	duration := time.Since(r.start)
	r.store.logQueryWithDuration(r.ctx, r.query, logActionQueryRow, duration)

	if scanErr == nil {
		r.store.recordDurationMetrics(r.ctx, metricStatementDuration, duration, operationQueryRow, statusSuccess)
		r.store.finishSpanSuccess(r.span, duration, "", 0)

		return nil
	}

	if errors.Is(scanErr, store.ErrNoRows) {
		r.store.recordDurationMetrics(r.ctx, metricStatementDuration, duration, operationQueryRow, statusSuccess)
		r.store.finishSpanSuccess(r.span, duration, "", 0)

		return store.ErrNoRows
	}

	joined := joinDatabaseError(store.ErrQueryFailed, scanErr)
	r.store.failStatement(r.ctx, r.span, logMsgDBQueryFailed, scanErr, joined, r.query, operationQueryRow, duration)

	return joined
}

// observedRows wraps scan failures with store.ErrScanFailed.
type observedRows struct {
	rows  adapters.DBRows
	store Store
	ctx   context.Context
}

func (r *observedRows) Next() bool {
	return r.rows.Next()
}

func (r *observedRows) Scan(dest ...any) error {
	if scanErr := r.rows.Scan(dest...); scanErr != nil {
		r.store.logError(r.ctx, logMsgScanRowFailed, scanErr)

		return errors.Join(store.ErrScanFailed, scanErr)
	}

	return nil
}

func (r *observedRows) Err() error {
	if err := r.rows.Err(); err != nil {
		return joinDatabaseError(store.ErrQueryFailed, err)
	}

	return nil
}

func (r *observedRows) Close() error {
	return r.rows.Close()
}

// transaction is the store.Tx returned by Store.Begin.
type transaction struct {
	store    Store
	tx       adapters.DBTx
	span     store.SpanContext
	start    time.Time
	finished bool
}

func (t *transaction) Exec(ctx context.Context, query string, args ...any) (store.Result, error) {
	return t.store.exec(ctx, t.tx, query, args)
}

func (t *transaction) QueryRow(ctx context.Context, query string, args ...any) store.Row {
	return t.store.queryRow(ctx, t.tx, query, args)
}

func (t *transaction) Query(ctx context.Context, query string, args ...any) (store.Rows, error) {
	return t.store.query(ctx, t.tx, query, args)
}

func (t *transaction) Commit(ctx context.Context) error {
	if t.finished {
		return store.ErrTxClosed
	}

	t.finished = true
	commitErr := t.tx.Commit(ctx)
	duration := time.Since(t.start)

	if commitErr != nil {
		if errors.Is(commitErr, store.ErrTxClosed) {
			return commitErr
		}

		joined := joinDatabaseError(store.ErrCommitFailed, commitErr)
		errorType := classifyErrorType(joined)
		t.store.logError(ctx, logMsgCommitTxFailed, commitErr)
		t.store.recordErrorMetrics(ctx, operationCommit, errorType)
		t.store.recordTransactionMetrics(ctx, duration, statusError)
		t.store.finishSpanError(t.span, errorType, duration)

		return joined
	}

	t.store.logOperation(ctx, logMsgTransactionCommited, logAttrDurationMS, toMilliseconds(duration))
	t.store.recordTransactionMetrics(ctx, duration, statusCommitted)
	t.store.finishSpanSuccess(t.span, duration, "", 0)

	return nil
}

func (t *transaction) Rollback(ctx context.Context) error {
	if t.finished {
		return store.ErrTxClosed
	}

	t.finished = true
	rollbackErr := t.tx.Rollback(ctx)
	duration := time.Since(t.start)

	if rollbackErr != nil {
		if errors.Is(rollbackErr, store.ErrTxClosed) {
			return rollbackErr
		}

		t.store.logWarn(ctx, logMsgRollbackTxFailed, logAttrError, rollbackErr.Error())
		t.store.recordErrorMetrics(ctx, operationRollback, classifyErrorType(rollbackErr))
		t.store.recordTransactionMetrics(ctx, duration, statusError)
		t.store.finishSpanError(t.span, errorTypeDatabase, duration)

		return errors.Join(store.ErrRollbackFailed, rollbackErr)
	}

	t.store.logOperation(ctx, logMsgTransactionRolledBk, logAttrDurationMS, toMilliseconds(duration))
	t.store.recordTransactionMetrics(ctx, duration, statusRolledBack)
	t.store.finishSpan(t.span, statusRolledBack, duration)

	return nil
}
