package vmadapters

import (
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/AntonStoeckl/library-circulation-go/store"
)

// MetricsCollector implements store.MetricsCollector with VictoriaMetrics instruments:
//   - RecordDuration -> Histogram in seconds
//   - IncrementCounter -> Counter
//   - RecordValue -> Gauge holding the last recorded value
//
// Each distinct label set becomes its own series. It is safe for concurrent use.
type MetricsCollector struct {
	set    *metrics.Set
	values *xsync.MapOf[string, float64]
}

// NewMetricsCollector creates a collector with an empty metrics set.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		set:    metrics.NewSet(),
		values: xsync.NewMapOf[string, float64](),
	}
}

// RecordDuration records a duration in seconds.
func (m *MetricsCollector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	m.set.GetOrCreateHistogram(seriesName(metric, labels)).Update(duration.Seconds())
}

// IncrementCounter adds one to a counter.
func (m *MetricsCollector) IncrementCounter(metric string, labels map[string]string) {
	m.set.GetOrCreateCounter(seriesName(metric, labels)).Inc()
}

// RecordValue sets a gauge to value.
func (m *MetricsCollector) RecordValue(metric string, value float64, labels map[string]string) {
	series := seriesName(metric, labels)
	m.values.Store(series, value)

	m.set.GetOrCreateGauge(series, func() float64 {
		current, _ := m.values.Load(series)
		return current
	})
}

// WritePrometheus writes all series in Prometheus text exposition format.
func (m *MetricsCollector) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}

// seriesName renders metric{k1="v1",k2="v2"} with label keys sorted, as VictoriaMetrics identifies series by name.
func seriesName(metric string, labels map[string]string) string {
	if len(labels) == 0 {
		return metric
	}

	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(metric)
	b.WriteByte('{')

	for i, key := range keys {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(labels[key]))
	}

	b.WriteByte('}')

	return b.String()
}

var _ store.MetricsCollector = (*MetricsCollector)(nil)
