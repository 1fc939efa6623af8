package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all registry metrics.
type Metrics struct {
	Operations *prometheus.CounterVec

	PatientsRegistered    prometheus.Gauge
	DoctorsRegistered     prometheus.Gauge
	AppointmentsScheduled prometheus.Counter
	PrescriptionsIssued   prometheus.Counter

	HistoryCacheHits   prometheus.Counter
	HistoryCacheMisses prometheus.Counter
}

// NewMetrics creates and registers all registry metrics with reg.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registry_operations_total",
			Help:      "Total registry operations by operation and status",
		}, []string{"operation", "status"}),

		PatientsRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "patients_registered",
			Help:      "Number of registered patients",
		}),
		DoctorsRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "doctors_registered",
			Help:      "Number of registered doctors",
		}),
		AppointmentsScheduled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "appointments_scheduled_total",
			Help:      "Total appointments successfully scheduled",
		}),
		PrescriptionsIssued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prescriptions_issued_total",
			Help:      "Total prescriptions successfully issued",
		}),

		HistoryCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_cache_hits_total",
			Help:      "History lookups served from cache",
		}),
		HistoryCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_cache_misses_total",
			Help:      "History lookups that went to the repositories",
		}),
	}
}

// RecordOperation increments the operation counter with a success/error status.
func (m *Metrics) RecordOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.Operations.WithLabelValues(operation, status).Inc()
}
