package postgresengine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/library-circulation-go/store"
)

const (
	metricStatementDuration   = "store_statement_duration_seconds"
	metricTransactionDuration = "store_transaction_duration_seconds"
	metricTransactionsTotal   = "store_transactions_total"
	metricRowsAffected        = "store_rows_affected"
	metricDatabaseErrors      = "store_database_errors_total"

	spanNameQuery       = "store.query"
	spanNameExec        = "store.exec"
	spanNameTransaction = "store.transaction"

	spanAttrOperation    = "operation"
	spanAttrErrorType    = "error_type"
	spanAttrDurationMS   = "duration_ms"
	spanAttrRowsAffected = "rows_affected"

	statusSuccess    = "success"
	statusError      = "error"
	statusCommitted  = "committed"
	statusRolledBack = "rolled_back"

	operationQuery    = "query"
	operationQueryRow = "query_row"
	operationExec     = "exec"
	operationBegin    = "begin"
	operationCommit   = "commit"
	operationRollback = "rollback"
	operationTx       = "transaction"

	errorTypeUniqueViolation     = "unique_violation"
	errorTypeForeignKeyViolation = "foreign_key_violation"
	errorTypeCanceled            = "canceled"
	errorTypeTimeout             = "timeout"
	errorTypeDatabase            = "database_error"
)

// logQueryWithDuration logs SQL statements with execution time at debug level if a logger is configured.
func (s Store) logQueryWithDuration(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Debug(logMsgSQLExecuted+action, args...)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (s Store) logOperation(ctx context.Context, action string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if s.logger != nil {
		s.logger.Info(logMsgOperation+action, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (s Store) logWarn(ctx context.Context, message string, args ...any) {
	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, message, args...)
		return
	}

	if s.logger != nil {
		s.logger.Warn(message, args...)
	}
}

// logError logs error information at the error level if a logger is configured.
func (s Store) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if s.logger != nil {
		s.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordErrorMetrics counts a database error, with context if the collector supports it.
func (s Store) recordErrorMetrics(ctx context.Context, operation, errorType string) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := s.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricDatabaseErrors, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metricDatabaseErrors, labels)
}

// recordDurationMetrics records a duration, with context if the collector supports it.
func (s Store) recordDurationMetrics(
	ctx context.Context,
	metricName string,
	duration time.Duration,
	operation, status string,
) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := s.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricName, duration, labels)
		return
	}

	s.metricsCollector.RecordDuration(metricName, duration, labels)
}

// recordValueMetrics records a value, with context if the collector supports it.
func (s Store) recordValueMetrics(
	ctx context.Context,
	metricName string,
	value float64,
	operation, status string,
) {
	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operation,
		"status":          status,
	}

	if contextualCollector, ok := s.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
		return
	}

	s.metricsCollector.RecordValue(metricName, value, labels)
}

// recordTransactionMetrics records the duration and outcome of a finished transaction.
func (s Store) recordTransactionMetrics(ctx context.Context, duration time.Duration, status string) {
	s.recordDurationMetrics(ctx, metricTransactionDuration, duration, operationTx, status)

	if s.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: operationTx,
		"status":          status,
	}

	if contextualCollector, ok := s.metricsCollector.(store.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricTransactionsTotal, labels)
		return
	}

	s.metricsCollector.IncrementCounter(metricTransactionsTotal, labels)
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (s Store) startTraceSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, store.SpanContext) {
	if s.tracingCollector != nil {
		return s.tracingCollector.StartSpan(ctx, name, attrs)
	}

	return ctx, nil
}

// startStatementSpan starts a tracing span for a single statement.
func (s Store) startStatementSpan(ctx context.Context, name, operation string) (context.Context, store.SpanContext) {
	return s.startTraceSpan(ctx, name, map[string]string{spanAttrOperation: operation})
}

// startTransactionSpan starts a tracing span that lasts until Commit or Rollback.
func (s Store) startTransactionSpan(ctx context.Context) (context.Context, store.SpanContext) {
	return s.startTraceSpan(ctx, spanNameTransaction, map[string]string{spanAttrOperation: operationTx})
}

// finishSpan finishes a tracing span with the given status.
func (s Store) finishSpan(span store.SpanContext, status string, duration time.Duration) {
	if s.tracingCollector == nil || span == nil {
		return
	}

	s.tracingCollector.FinishSpan(span, status, map[string]string{
		spanAttrDurationMS: fmt.Sprintf("%.2f", toMilliseconds(duration)),
	})
}

// finishSpanSuccess finishes a successful span, optionally with one numeric attribute.
func (s Store) finishSpanSuccess(span store.SpanContext, duration time.Duration, attrKey string, attrValue int64) {
	if span != nil && attrKey != "" {
		span.AddAttribute(attrKey, fmt.Sprintf("%d", attrValue))
	}

	s.finishSpan(span, statusSuccess, duration)
}

// finishSpanError finishes a span with error details.
func (s Store) finishSpanError(span store.SpanContext, errorType string, duration time.Duration) {
	if span != nil {
		span.AddAttribute(spanAttrErrorType, errorType)
	}

	s.finishSpan(span, statusError, duration)
}
