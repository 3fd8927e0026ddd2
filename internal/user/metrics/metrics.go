package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the user module.
type Metrics struct {
	Registered prometheus.Counter
	Logins     prometheus.Counter
}

// New creates a Metrics instance with all user module metrics registered.
func New() *Metrics {
	return &Metrics{
		Registered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rolodex_users_registered_total",
			Help: "Total number of user accounts created",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "rolodex_logins_total",
			Help: "Total number of successful logins",
		}),
	}
}

// IncRegistered records a successful registration. Safe on a nil receiver so
// services constructed without metrics stay quiet.
func (m *Metrics) IncRegistered() {
	if m == nil {
		return
	}
	m.Registered.Inc()
}

// IncLogins records a successful login.
func (m *Metrics) IncLogins() {
	if m == nil {
		return
	}
	m.Logins.Inc()
}
