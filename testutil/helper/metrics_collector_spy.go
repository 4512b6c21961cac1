package helper

import (
	"context"
	"maps"
	"sync"
	"time"
)

// MetricsCollectorSpy captures metrics calls for inspection in tests.
// It implements store.MetricsCollector and store.ContextualMetricsCollector.
type MetricsCollectorSpy struct {
	durationRecords []SpyMetricRecord
	counterRecords  []SpyMetricRecord
	valueRecords    []SpyMetricRecord
	mu              sync.Mutex
	recordCalls     bool
}

// SpyMetricRecord represents one recorded metric call.
type SpyMetricRecord struct {
	Metric      string
	Duration    time.Duration
	Value       float64
	Labels      map[string]string
	WithContext bool
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
// Set recordCalls to true to capture all metrics calls for inspection in tests.
func NewMetricsCollectorSpy(recordCalls bool) *MetricsCollectorSpy {
	return &MetricsCollectorSpy{recordCalls: recordCalls}
}

// RecordDuration records a duration metric call.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(&s.durationRecords, SpyMetricRecord{Metric: metric, Duration: duration, Labels: labels})
}

// IncrementCounter records a counter increment call.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(&s.counterRecords, SpyMetricRecord{Metric: metric, Labels: labels})
}

// RecordValue records a value metric call.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(&s.valueRecords, SpyMetricRecord{Metric: metric, Value: value, Labels: labels})
}

// RecordDurationContext records a duration metric call made with a context.
func (s *MetricsCollectorSpy) RecordDurationContext(
	_ context.Context,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {
	s.record(&s.durationRecords, SpyMetricRecord{Metric: metric, Duration: duration, Labels: labels, WithContext: true})
}

// IncrementCounterContext records a counter increment call made with a context.
func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.record(&s.counterRecords, SpyMetricRecord{Metric: metric, Labels: labels, WithContext: true})
}

// RecordValueContext records a value metric call made with a context.
func (s *MetricsCollectorSpy) RecordValueContext(
	_ context.Context,
	metric string,
	value float64,
	labels map[string]string,
) {
	s.record(&s.valueRecords, SpyMetricRecord{Metric: metric, Value: value, Labels: labels, WithContext: true})
}

func (s *MetricsCollectorSpy) record(records *[]SpyMetricRecord, record SpyMetricRecord) {
	if !s.recordCalls {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// copy, so later changes by the caller don't leak into the record
	record.Labels = maps.Clone(record.Labels)
	*records = append(*records, record)
}

// GetDurationRecords returns a copy of all captured duration records.
func (s *MetricsCollectorSpy) GetDurationRecords() []SpyMetricRecord {
	return s.snapshot(s.durationRecords)
}

// GetCounterRecords returns a copy of all captured counter records.
func (s *MetricsCollectorSpy) GetCounterRecords() []SpyMetricRecord {
	return s.snapshot(s.counterRecords)
}

// GetValueRecords returns a copy of all captured value records.
func (s *MetricsCollectorSpy) GetValueRecords() []SpyMetricRecord {
	return s.snapshot(s.valueRecords)
}

func (s *MetricsCollectorSpy) snapshot(records []SpyMetricRecord) []SpyMetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SpyMetricRecord, len(records))
	copy(out, records)

	return out
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = nil
	s.counterRecords = nil
	s.valueRecords = nil
}

// CountCounterRecordsForMetric counts how many counter records exist for a specific metric.
func (s *MetricsCollectorSpy) CountCounterRecordsForMetric(metric string) int {
	return len(filterByMetric(s.GetCounterRecords(), metric))
}

// CountDurationRecordsForMetric counts how many duration records exist for a specific metric.
func (s *MetricsCollectorSpy) CountDurationRecordsForMetric(metric string) int {
	return len(filterByMetric(s.GetDurationRecords(), metric))
}

// MetricRecordMatcher provides a fluent interface for checking metric records.
// The chain holds when at least one record of the metric satisfies every condition.
type MetricRecordMatcher struct {
	candidates []SpyMetricRecord
}

// HasDurationRecordForMetric starts a fluent chain to check a duration record.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	return &MetricRecordMatcher{candidates: filterByMetric(s.GetDurationRecords(), metric)}
}

// HasCounterRecordForMetric starts a fluent chain to check a counter record.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	return &MetricRecordMatcher{candidates: filterByMetric(s.GetCounterRecords(), metric)}
}

// HasValueRecordForMetric starts a fluent chain to check a value record.
func (s *MetricsCollectorSpy) HasValueRecordForMetric(metric string) *MetricRecordMatcher {
	return &MetricRecordMatcher{candidates: filterByMetric(s.GetValueRecords(), metric)}
}

// WithLabel keeps only records that have the label with the given value.
func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	kept := m.candidates[:0:0]

	for _, record := range m.candidates {
		if labelValue, exists := record.Labels[key]; exists && labelValue == value {
			kept = append(kept, record)
		}
	}

	m.candidates = kept

	return m
}

// WithOperation keeps only records with the specified operation label.
func (m *MetricRecordMatcher) WithOperation(operation string) *MetricRecordMatcher {
	return m.WithLabel("operation", operation)
}

// WithStatus keeps only records with the specified status label.
func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel("status", status)
}

// WithErrorType keeps only records with the specified error_type label.
func (m *MetricRecordMatcher) WithErrorType(errorType string) *MetricRecordMatcher {
	return m.WithLabel("error_type", errorType)
}

// WithValue keeps only records with the specified value.
func (m *MetricRecordMatcher) WithValue(value float64) *MetricRecordMatcher {
	kept := m.candidates[:0:0]

	for _, record := range m.candidates {
		if record.Value == value {
			kept = append(kept, record)
		}
	}

	m.candidates = kept

	return m
}

// Assert returns true if all conditions in the fluent chain were met.
func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}

func filterByMetric(records []SpyMetricRecord, metric string) []SpyMetricRecord {
	var matching []SpyMetricRecord

	for _, record := range records {
		if record.Metric == metric {
			matching = append(matching, record)
		}
	}

	return matching
}
