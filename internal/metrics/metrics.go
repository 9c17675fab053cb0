// Package metrics tracks in-process counters for calculations and storage
// failures. There is no network exposition: the registry is private and only
// gathered for local display.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counter set on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Calculations counts successful BMI calculations by category label.
	Calculations *prometheus.CounterVec

	// StoreErrors counts failed history writes.
	StoreErrors prometheus.Counter
}

// New creates a Metrics with a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bmitrack_calculations_total",
			Help: "Number of successful BMI calculations by category.",
		}, []string{"category"}),
		StoreErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "bmitrack_store_errors_total",
			Help: "Number of failed history writes.",
		}),
	}
}

// Gatherer exposes the private registry for local inspection.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
