package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	StorageOperations *prometheus.CounterVec
	StorageLatency    *prometheus.HistogramVec
}

// Default is the process-wide registry-backed instance. Declared at package
// level so repeated repository construction (tests included) never
// re-registers collectors.
var Default = New("clinic_calendar")

// New creates and registers all application metrics
func New(namespace string) *Metrics {
	return &Metrics{
		StorageOperations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_operations_total",
			Help:      "Total number of appointment storage operations",
		}, []string{"backend", "operation", "status"}),
		StorageLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "storage_operation_duration_seconds",
			Help:      "Duration of appointment storage operations",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"backend", "operation"}),
	}
}

// RecordStorage observes one storage operation.
func (m *Metrics) RecordStorage(backend, operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.StorageOperations.WithLabelValues(backend, operation, status).Inc()
	m.StorageLatency.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
}
