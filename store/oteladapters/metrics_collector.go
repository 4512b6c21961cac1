package oteladapters

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/library-circulation-go/store"
)

// MetricsCollector implements store.ContextualMetricsCollector using the OpenTelemetry metrics API:
//   - RecordDuration -> Float64Histogram in seconds
//   - IncrementCounter -> Int64Counter
//   - RecordValue -> Float64Gauge
//
// Instruments are created on first use and cached per metric name. It is safe for concurrent use.
type MetricsCollector struct {
	meter      metric.Meter
	histograms *xsync.MapOf[string, metric.Float64Histogram]
	counters   *xsync.MapOf[string, metric.Int64Counter]
	gauges     *xsync.MapOf[string, metric.Float64Gauge]
}

// NewMetricsCollector creates a metrics collector. The meter should come from your MeterProvider.
func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: xsync.NewMapOf[string, metric.Float64Histogram](),
		counters:   xsync.NewMapOf[string, metric.Int64Counter](),
		gauges:     xsync.NewMapOf[string, metric.Float64Gauge](),
	}
}

// RecordDuration records a duration in seconds.
func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), metricName, duration, labels)
}

// RecordDurationContext records a duration in seconds with context for exemplar correlation.
func (m *MetricsCollector) RecordDurationContext(ctx context.Context, metricName string, duration time.Duration, labels map[string]string) {
	histogram := m.histogram(metricName)
	if histogram == nil {
		return
	}

	histogram.Record(ctx, duration.Seconds(), metric.WithAttributes(toAttributes(labels)...))
}

// IncrementCounter adds one to a counter.
func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), metricName, labels)
}

// IncrementCounterContext adds one to a counter with context.
func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, metricName string, labels map[string]string) {
	counter := m.counter(metricName)
	if counter == nil {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(toAttributes(labels)...))
}

// RecordValue sets a gauge to value.
func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), metricName, value, labels)
}

// RecordValueContext sets a gauge to value with context.
func (m *MetricsCollector) RecordValueContext(ctx context.Context, metricName string, value float64, labels map[string]string) {
	gauge := m.gauge(metricName)
	if gauge == nil {
		return
	}

	gauge.Record(ctx, value, metric.WithAttributes(toAttributes(labels)...))
}

// histogram returns the cached histogram or nil if the meter refused to create it.
func (m *MetricsCollector) histogram(name string) metric.Float64Histogram {
	if histogram, ok := m.histograms.Load(name); ok {
		return histogram
	}

	histogram, err := m.meter.Float64Histogram(
		name,
		metric.WithDescription("library circulation operation duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil
	}

	actual, _ := m.histograms.LoadOrStore(name, histogram)

	return actual
}

func (m *MetricsCollector) counter(name string) metric.Int64Counter {
	if counter, ok := m.counters.Load(name); ok {
		return counter
	}

	counter, err := m.meter.Int64Counter(name, metric.WithDescription("library circulation operation counter"))
	if err != nil {
		return nil
	}

	actual, _ := m.counters.LoadOrStore(name, counter)

	return actual
}

func (m *MetricsCollector) gauge(name string) metric.Float64Gauge {
	if gauge, ok := m.gauges.Load(name); ok {
		return gauge
	}

	gauge, err := m.meter.Float64Gauge(name, metric.WithDescription("library circulation current value"))
	if err != nil {
		return nil
	}

	actual, _ := m.gauges.LoadOrStore(name, gauge)

	return actual
}

var _ store.MetricsCollector = (*MetricsCollector)(nil)

var _ store.ContextualMetricsCollector = (*MetricsCollector)(nil)
