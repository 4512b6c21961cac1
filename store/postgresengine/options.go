package postgresengine

import (
	"github.com/AntonStoeckl/library-circulation-go/store"
)

// Option defines a functional option for configuring Store.
type Option func(*Store) error

// WithLogger sets the logger for the Store.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: Transaction outcomes with durations (production-safe)
// Warn level: Non-critical issues like failed rollbacks
// Error level: Critical failures that cause operation failures.
func WithLogger(logger store.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Store.
// The collector receives statement and transaction durations, rows affected, and database error counts.
func WithMetrics(collector store.MetricsCollector) Option {
	return func(s *Store) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Store.
// Spans are created for statements and transactions.
func WithTracing(collector store.TracingCollector) Option {
	return func(s *Store) error {
		s.tracingCollector = collector
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Store.
// When set, it is preferred over the plain logger so log records carry trace correlation.
func WithContextualLogger(logger store.ContextualLogger) Option {
	return func(s *Store) error {
		s.contextualLogger = logger
		return nil
	}
}
