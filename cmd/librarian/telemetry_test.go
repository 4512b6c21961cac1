package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/shell/config"
)

func discardHandler() slog.Handler {
	return slog.NewTextHandler(io.Discard, nil)
}

func Test_NewTelemetry_None(t *testing.T) {
	// act
	telemetry, err := NewTelemetry(config.MetricsNone, discardHandler())

	// assert
	require.NoError(t, err)
	assert.Nil(t, telemetry.MetricsCollector)
	assert.Nil(t, telemetry.TracingCollector)
	assert.Nil(t, telemetry.ContextualLogger)
	assert.NoError(t, telemetry.Flush(context.Background(), io.Discard))
}

func Test_NewTelemetry_Prometheus_FlushWritesExposition(t *testing.T) {
	// arrange
	telemetry, err := NewTelemetry(config.MetricsPrometheus, discardHandler())
	require.NoError(t, err)

	telemetry.MetricsCollector.IncrementCounter("queryhandler_handle_calls_total", map[string]string{"status": "success"})

	// act
	var buf bytes.Buffer
	err = telemetry.Flush(context.Background(), &buf)

	// assert
	require.NoError(t, err)
	assert.Nil(t, telemetry.TracingCollector)
	assert.Contains(t, buf.String(), `queryhandler_handle_calls_total{status="success"} 1`)
}

func Test_NewTelemetry_OTel_FlushWritesDataPoints(t *testing.T) {
	// arrange
	telemetry, err := NewTelemetry(config.MetricsOTel, discardHandler())
	require.NoError(t, err)
	require.NotNil(t, telemetry.TracingCollector)
	require.NotNil(t, telemetry.ContextualLogger)

	labels := map[string]string{"command_type": "IssueInstance"}
	telemetry.MetricsCollector.IncrementCounter("commandhandler_handle_calls_total", labels)
	telemetry.MetricsCollector.IncrementCounter("commandhandler_handle_calls_total", labels)
	telemetry.MetricsCollector.RecordDuration("commandhandler_handle_duration_seconds", 500*time.Millisecond, labels)

	// act
	var buf bytes.Buffer
	err = telemetry.Flush(context.Background(), &buf)

	// assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "commandhandler_handle_calls_total{command_type=IssueInstance} 2")
	assert.Contains(t, output, "commandhandler_handle_duration_seconds{command_type=IssueInstance} count=1 sum=0.5")
}

func Test_NewTelemetry_UnsupportedMode(t *testing.T) {
	// act
	_, err := NewTelemetry("statsd", discardHandler())

	// assert
	assert.Error(t, err)
}
