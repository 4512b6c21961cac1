package helper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler that captures log records for testing.
type LogHandlerSpy struct {
	records     []slog.Record
	mu          sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switchable to log to stdout, which can be useful for debugging tests by seeing the actual log output.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{logToStdout: logToStdout}
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record.Clone())

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler.
func (s *LogHandlerSpy) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup implements slog.Handler.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecords returns a copy of all captured log records.
func (s *LogHandlerSpy) GetRecords() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]slog.Record, len(s.records))
	copy(records, s.records)

	return records
}

// GetRecordCount returns the number of captured log records.
func (s *LogHandlerSpy) GetRecordCount() int {
	return len(s.GetRecords())
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
}

// LogRecordMatcher provides a fluent interface for checking log records.
// The chain holds when at least one record with the level and message satisfies every condition.
type LogRecordMatcher struct {
	candidates []slog.Record
}

// HasLogWithMessage starts a fluent chain to check a log record with the given level and message.
func (s *LogHandlerSpy) HasLogWithMessage(level slog.Level, message string) *LogRecordMatcher {
	var candidates []slog.Record

	for _, record := range s.GetRecords() {
		if record.Level == level && record.Message == message {
			candidates = append(candidates, record)
		}
	}

	return &LogRecordMatcher{candidates: candidates}
}

// HasDebugLogWithMessage starts a fluent chain to check a debug-level log record.
func (s *LogHandlerSpy) HasDebugLogWithMessage(message string) *LogRecordMatcher {
	return s.HasLogWithMessage(slog.LevelDebug, message)
}

// HasInfoLogWithMessage starts a fluent chain to check an info-level log record.
func (s *LogHandlerSpy) HasInfoLogWithMessage(message string) *LogRecordMatcher {
	return s.HasLogWithMessage(slog.LevelInfo, message)
}

// HasWarnLogWithMessage starts a fluent chain to check a warn-level log record.
func (s *LogHandlerSpy) HasWarnLogWithMessage(message string) *LogRecordMatcher {
	return s.HasLogWithMessage(slog.LevelWarn, message)
}

// HasErrorLogWithMessage starts a fluent chain to check an error-level log record.
func (s *LogHandlerSpy) HasErrorLogWithMessage(message string) *LogRecordMatcher {
	return s.HasLogWithMessage(slog.LevelError, message)
}

func (m *LogRecordMatcher) keep(predicate func(attr slog.Attr) bool) *LogRecordMatcher {
	kept := m.candidates[:0:0]

	for _, record := range m.candidates {
		matched := false

		record.Attrs(func(attr slog.Attr) bool {
			if predicate(attr) {
				matched = true
				return false
			}

			return true
		})

		if matched {
			kept = append(kept, record)
		}
	}

	m.candidates = kept

	return m
}

// WithDurationMS keeps only records with a non-negative duration_ms attribute.
func (m *LogRecordMatcher) WithDurationMS() *LogRecordMatcher {
	return m.keep(func(attr slog.Attr) bool {
		if attr.Key != "duration_ms" {
			return false
		}

		switch attr.Value.Kind() {
		case slog.KindFloat64:
			return attr.Value.Float64() >= 0
		case slog.KindInt64:
			return attr.Value.Int64() >= 0
		default:
			return false
		}
	})
}

// WithAttr keeps only records that carry the attribute with the given value, compared in its string form.
func (m *LogRecordMatcher) WithAttr(key string, value any) *LogRecordMatcher {
	want := fmt.Sprint(value)

	return m.keep(func(attr slog.Attr) bool {
		return attr.Key == key && attr.Value.String() == want
	})
}

// WithAttrKey keeps only records that carry the attribute, regardless of its value.
func (m *LogRecordMatcher) WithAttrKey(key string) *LogRecordMatcher {
	return m.keep(func(attr slog.Attr) bool {
		return attr.Key == key
	})
}

// Assert returns true if all conditions in the fluent chain were met.
func (m *LogRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
