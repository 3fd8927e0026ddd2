package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the contact module. Search is the only
// operation with interesting latency (two storage round-trips), so it gets a
// histogram.
type Metrics struct {
	Created        prometheus.Counter
	SearchDuration prometheus.Histogram
}

// New creates a Metrics instance with all contact module metrics registered.
func New() *Metrics {
	return &Metrics{
		Created: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rolodex_contacts_created_total",
			Help: "Total number of contacts created",
		}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rolodex_contact_search_duration_seconds",
			Help:    "Duration of contact search operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncCreated records a contact creation. Safe on a nil receiver.
func (m *Metrics) IncCreated() {
	if m == nil {
		return
	}
	m.Created.Inc()
}

// ObserveSearch records the duration of a search. Call with time.Now() taken
// at the start of the operation.
func (m *Metrics) ObserveSearch(start time.Time) {
	if m == nil {
		return
	}
	m.SearchDuration.Observe(time.Since(start).Seconds())
}
