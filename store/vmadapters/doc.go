// Package vmadapters provides a VictoriaMetrics implementation of store.MetricsCollector.
//
// Metrics are kept in a private metrics.Set and can be written in Prometheus text exposition format,
// which the librarian CLI prints after a command when run with --metrics=prometheus.
package vmadapters
