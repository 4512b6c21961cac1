// Package helper provides test doubles and arrange helpers shared by the tests of this module.
//
// The spies record observability calls (metrics, tracing spans, log records) so tests can assert
// on instrumentation with fluent matchers, for example:
//
//	assert.True(t, metricsSpy.HasCounterRecordForMetric("commands_total").WithStatus("success").Assert())
package helper
