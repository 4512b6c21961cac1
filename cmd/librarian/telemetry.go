package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/AntonStoeckl/library-circulation-go/library/shell/config"
	"github.com/AntonStoeckl/library-circulation-go/store"
	"github.com/AntonStoeckl/library-circulation-go/store/oteladapters"
	"github.com/AntonStoeckl/library-circulation-go/store/vmadapters"
)

const instrumentationName = "github.com/AntonStoeckl/library-circulation-go/cmd/librarian"

// Telemetry holds the observability adapters shared by the store and the handler wrappers.
// Unused adapters stay nil.
type Telemetry struct {
	MetricsCollector store.MetricsCollector
	TracingCollector store.TracingCollector
	ContextualLogger store.ContextualLogger

	flush func(ctx context.Context, w io.Writer) error
}

// Flush writes the collected metrics to w and releases the providers.
func (t Telemetry) Flush(ctx context.Context, w io.Writer) error {
	if t.flush == nil {
		return nil
	}

	return t.flush(ctx, w)
}

// NewTelemetry builds the adapters for the given metrics mode.
// The otel mode installs SDK providers globally and logs through the slog bridge so that spans reach the log calls.
func NewTelemetry(mode string, handler slog.Handler) (Telemetry, error) {
	switch mode {
	case config.MetricsNone:
		return Telemetry{}, nil

	case config.MetricsPrometheus:
		collector := vmadapters.NewMetricsCollector()

		return Telemetry{
			MetricsCollector: collector,
			flush: func(_ context.Context, w io.Writer) error {
				collector.WritePrometheus(w)
				return nil
			},
		}, nil

	case config.MetricsOTel:
		reader := sdkmetric.NewManualReader()
		meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		tracerProvider := sdktrace.NewTracerProvider()

		otel.SetMeterProvider(meterProvider)
		otel.SetTracerProvider(tracerProvider)

		return Telemetry{
			MetricsCollector: oteladapters.NewMetricsCollector(meterProvider.Meter(instrumentationName)),
			TracingCollector: oteladapters.NewTracingCollector(tracerProvider.Tracer(instrumentationName)),
			ContextualLogger: oteladapters.NewSlogBridgeLoggerWithHandler(handler),
			flush: func(ctx context.Context, w io.Writer) error {
				var collected metricdata.ResourceMetrics
				collectErr := reader.Collect(ctx, &collected)
				if collectErr == nil {
					writeOTelMetrics(w, collected)
				}

				return errors.Join(
					collectErr,
					meterProvider.Shutdown(ctx),
					tracerProvider.Shutdown(ctx),
				)
			},
		}, nil

	default:
		return Telemetry{}, fmt.Errorf("unsupported metrics mode %q", mode)
	}
}

// writeOTelMetrics prints one line per data point, sorted by series.
func writeOTelMetrics(w io.Writer, collected metricdata.ResourceMetrics) {
	var lines []string

	for _, scope := range collected.ScopeMetrics {
		for _, m := range scope.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s count=%d sum=%g", series(m.Name, dp.Attributes), dp.Count, dp.Sum))
				}
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s %d", series(m.Name, dp.Attributes), dp.Value))
				}
			case metricdata.Gauge[float64]:
				for _, dp := range data.DataPoints {
					lines = append(lines, fmt.Sprintf("%s %g", series(m.Name, dp.Attributes), dp.Value))
				}
			}
		}
	}

	sort.Strings(lines)

	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}

func series(name string, attrs attribute.Set) string {
	if attrs.Len() == 0 {
		return name
	}

	return name + "{" + attrs.Encoded(attribute.DefaultEncoder()) + "}"
}
