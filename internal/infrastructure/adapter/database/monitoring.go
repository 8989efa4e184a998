package database

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// QueryMetrics records SQL statement latency and failures per statement
// type and table
type QueryMetrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewQueryMetrics creates query metrics and registers them with reg. A nil
// registerer leaves the metrics unregistered, which tests rely on.
func NewQueryMetrics(reg prometheus.Registerer) *QueryMetrics {
	m := &QueryMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "linkledger",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "SQL statement latency.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"type", "table"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "linkledger",
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "SQL statements that returned an error other than not found.",
		}, []string{"type", "table"}),
	}
	if reg != nil {
		reg.MustRegister(m.duration, m.failures)
	}
	return m
}

// Observe records one statement
func (m *QueryMetrics) Observe(queryType, table string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if queryType == "" {
		queryType = "OTHER"
	}
	if table == "" {
		table = "unknown"
	}
	m.duration.WithLabelValues(queryType, table).Observe(elapsed.Seconds())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		m.failures.WithLabelValues(queryType, table).Inc()
	}
}
