package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters for entity lifecycle events.
type Metrics struct {
	created *prometheus.CounterVec
	voided  *prometheus.CounterVec
	retired *prometheus.CounterVec
}

// New creates and registers all lifecycle metrics.
func New() *Metrics {
	return &Metrics{
		created: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cvs_entities_created_total",
			Help: "Total number of entities created, by entity kind",
		}, []string{"entity"}),
		voided: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cvs_entities_voided_total",
			Help: "Total number of entities voided, by entity kind",
		}, []string{"entity"}),
		retired: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cvs_entities_retired_total",
			Help: "Total number of entities retired, by entity kind",
		}, []string{"entity"}),
	}
}

// All increment methods are nil-safe so that tests can wire services without
// touching the default registry.

func (m *Metrics) Created(entity string) {
	if m == nil {
		return
	}
	m.created.WithLabelValues(entity).Inc()
}

func (m *Metrics) Voided(entity string) {
	if m == nil {
		return
	}
	m.voided.WithLabelValues(entity).Inc()
}

func (m *Metrics) Retired(entity string) {
	if m == nil {
		return
	}
	m.retired.WithLabelValues(entity).Inc()
}
