package oteladapters_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/AntonStoeckl/library-circulation-go/store/oteladapters"
)

func givenMetricsCollector(t *testing.T) (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return oteladapters.NewMetricsCollector(provider.Meter("test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var resourceMetrics metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &resourceMetrics))

	return resourceMetrics
}

func Test_MetricsCollector_RecordDuration(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector(t)
	labels := map[string]string{"operation": "exec", "status": "success"}

	// act
	collector.RecordDuration("store_statement_duration_seconds", 150*time.Millisecond, labels)

	// assert
	histogram := findHistogramMetric(t, collect(t, reader), "store_statement_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)

	dataPoint := histogram.DataPoints[0]
	assert.Equal(t, uint64(1), dataPoint.Count)
	assert.InDelta(t, 0.15, dataPoint.Sum, 0.001)

	expectedAttrs := attribute.NewSet(
		attribute.String("operation", "exec"),
		attribute.String("status", "success"),
	)
	assert.True(t, dataPoint.Attributes.Equals(&expectedAttrs))
}

func Test_MetricsCollector_IncrementCounter(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector(t)
	labels := map[string]string{"command_type": "IssueInstance", "status": "success"}

	// act
	collector.IncrementCounter("commandhandler_handle_calls_total", labels)
	collector.IncrementCounterContext(context.Background(), "commandhandler_handle_calls_total", labels)
	collector.IncrementCounter("commandhandler_handle_calls_total", labels)

	// assert
	counter := findCounterMetric(t, collect(t, reader), "commandhandler_handle_calls_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(3), counter.DataPoints[0].Value)
}

func Test_MetricsCollector_CounterLabelsSplitDataPoints(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector(t)

	// act
	collector.IncrementCounter("commandhandler_handle_calls_total", map[string]string{"status": "success"})
	collector.IncrementCounter("commandhandler_handle_calls_total", map[string]string{"status": "rejected"})

	// assert
	counter := findCounterMetric(t, collect(t, reader), "commandhandler_handle_calls_total")
	assert.Len(t, counter.DataPoints, 2)
}

func Test_MetricsCollector_RecordValue(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector(t)
	labels := map[string]string{"query_type": "BookCatalog"}

	// act
	collector.RecordValue("queryhandler_result_size", 12, labels)
	collector.RecordValueContext(context.Background(), "queryhandler_result_size", 7, labels)

	// assert
	gauge := findGaugeMetric(t, collect(t, reader), "queryhandler_result_size")
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 7.0, gauge.DataPoints[0].Value, 0.0001)
}

func Test_MetricsCollector_ConcurrentUse(t *testing.T) {
	// arrange
	collector, reader := givenMetricsCollector(t)
	workers := 20
	wg := sync.WaitGroup{}

	// act
	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			collector.IncrementCounter("store_transactions_total", map[string]string{"status": "committed"})
			collector.RecordDuration("store_transaction_duration_seconds", time.Millisecond, nil)
		}()
	}

	wg.Wait()

	// assert
	resourceMetrics := collect(t, reader)
	counter := findCounterMetric(t, resourceMetrics, "store_transactions_total")
	require.Len(t, counter.DataPoints, 1)
	assert.Equal(t, int64(workers), counter.DataPoints[0].Value)

	histogram := findHistogramMetric(t, resourceMetrics, "store_transaction_duration_seconds")
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(workers), histogram.DataPoints[0].Count)
}

func findHistogramMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Histogram[float64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if h, ok := m.Data.(metricdata.Histogram[float64]); ok && m.Name == name {
				return h
			}
		}
	}

	require.FailNow(t, "histogram metric not found", name)

	return metricdata.Histogram[float64]{}
}

func findCounterMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if c, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == name {
				return c
			}
		}
	}

	require.FailNow(t, "counter metric not found", name)

	return metricdata.Sum[int64]{}
}

func findGaugeMetric(t *testing.T, resourceMetrics metricdata.ResourceMetrics, name string) metricdata.Gauge[float64] {
	t.Helper()

	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			if g, ok := m.Data.(metricdata.Gauge[float64]); ok && m.Name == name {
				return g
			}
		}
	}

	require.FailNow(t, "gauge metric not found", name)

	return metricdata.Gauge[float64]{}
}
