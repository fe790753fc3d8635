package scenario

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "gridpath"
	metricsSubsystem = "scenarios"
)

// Scan kinds used as the "kind" label.
const (
	KindPrefix  = "prefix"
	KindRemoval = "removal"
)

// Metrics holds the Prometheus collectors of the scenario scans.
//
// Thread Safety: Safe for concurrent use.
type Metrics struct {
	// EvaluatedTotal counts completed scenarios by kind.
	EvaluatedTotal *prometheus.CounterVec
	// BlockedTotal counts scenarios whose goal could not be reached, by kind.
	BlockedTotal *prometheus.CounterVec
	// Expansions observes the cells expanded per search.
	Expansions prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// Registering twice on the same registry panics, as with promauto.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		EvaluatedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "evaluated_total",
				Help:      "Total number of evaluated scenarios by scan kind",
			},
			[]string{"kind"},
		),
		BlockedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "blocked_total",
				Help:      "Total number of scenarios with an unreachable goal by scan kind",
			},
			[]string{"kind"},
		),
		Expansions: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "search",
				Name:      "expansions",
				Help:      "Cells expanded by a single search",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
			},
		),
	}
}

// observe records one scenario. A nil receiver is a no-op.
func (m *Metrics) observe(kind string, expanded int, found bool) {
	if m == nil {
		return
	}
	m.EvaluatedTotal.WithLabelValues(kind).Inc()
	if !found {
		m.BlockedTotal.WithLabelValues(kind).Inc()
	}
	m.Expansions.Observe(float64(expanded))
}
