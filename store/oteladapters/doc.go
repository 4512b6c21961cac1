// Package oteladapters provides OpenTelemetry implementations of the store observability interfaces.
//
// The same adapters serve the storage engine and the observable command/query wrappers, so one set of
// providers collects SQL statement spans, handler spans, metrics and logs of a library operation:
//
//	tracer := otel.Tracer("library-circulation")
//	meter := otel.Meter("library-circulation")
//
//	s, _ := postgresengine.NewStoreFromPGXPool(
//		pool,
//		postgresengine.WithTracing(oteladapters.NewTracingCollector(tracer)),
//		postgresengine.WithMetrics(oteladapters.NewMetricsCollector(meter)),
//		postgresengine.WithContextualLogger(oteladapters.NewSlogBridgeLogger("library-circulation")),
//	)
package oteladapters
