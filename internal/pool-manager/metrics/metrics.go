package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pool_manager"

// Metrics holds every collector of the pool manager. A nil *Metrics is valid and records nothing.
type Metrics struct {
	OperationsTotal     *prometheus.CounterVec
	OperationDuration   *prometheus.HistogramVec
	DispatchAttempts    *prometheus.CounterVec
	InFlight            *prometheus.GaugeVec
	AdmissionQueueDepth prometheus.Gauge

	// Health
	HealthScore  *prometheus.GaugeVec
	ServerStatus *prometheus.GaugeVec
	ProbesTotal  *prometheus.CounterVec
	ProbeLatency *prometheus.HistogramVec

	// Circuit breaker
	CircuitState       *prometheus.GaugeVec
	CircuitTransitions *prometheus.CounterVec

	// Pools
	PoolActiveServers *prometheus.GaugeVec
	PoolLoad          *prometheus.GaugeVec

	AlertsFired   *prometheus.CounterVec
	EventsDropped *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		OperationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total number of executed operations by pool and final status",
		}, []string{"pool", "status"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "End to end operation duration including retries",
			Buckets:   prometheus.DefBuckets,
		}, []string{"pool"}),
		DispatchAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_attempts_total",
			Help:      "Dispatch attempts by server and outcome",
		}, []string{"server_id", "outcome"}),
		InFlight: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "in_flight_operations",
			Help:      "Operations currently dispatched to a server",
		}, []string{"server_id"}),
		AdmissionQueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "admission_queue_depth",
			Help:      "Operations waiting for an admission slot",
		}),
		HealthScore: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "server_health_score",
			Help:      "Latest 0-100 health score of a server",
		}, []string{"server_id"}),
		ServerStatus: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "server_status",
			Help:      "1 for the current status of a server, 0 otherwise",
		}, []string{"server_id", "status"}),
		ProbesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "health_probes_total",
			Help:      "Health probes by server and result",
		}, []string{"server_id", "result"}),
		ProbeLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "health_probe_duration_seconds",
			Help:      "Health probe duration by protocol",
			Buckets:   prometheus.DefBuckets,
		}, []string{"protocol"}),
		CircuitState: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_state",
			Help:      "Circuit breaker state (0 closed, 1 half open, 2 open)",
		}, []string{"server_id"}),
		CircuitTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_transitions_total",
			Help:      "Circuit breaker transitions by target state",
		}, []string{"server_id", "to"}),
		PoolActiveServers: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_active_servers",
			Help:      "Active members of a pool",
		}, []string{"pool"}),
		PoolLoad: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pool_load",
			Help:      "Sum of in-flight operations across pool members",
		}, []string{"pool"}),
		AlertsFired: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_fired_total",
			Help:      "Alerts fired by severity",
		}, []string{"severity"}),
		EventsDropped: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events dropped because a queue was full",
		}, []string{"queue"}),
	}
}

func (m *Metrics) ObserveOperation(pool string, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(pool, status).Inc()
	m.OperationDuration.WithLabelValues(pool).Observe(d.Seconds())
}

func (m *Metrics) ObserveDispatch(serverID string, outcome string) {
	if m == nil {
		return
	}
	m.DispatchAttempts.WithLabelValues(serverID, outcome).Inc()
}

func (m *Metrics) SetInFlight(serverID string, n int64) {
	if m == nil {
		return
	}
	m.InFlight.WithLabelValues(serverID).Set(float64(n))
}

func (m *Metrics) SetAdmissionQueueDepth(n int) {
	if m == nil {
		return
	}
	m.AdmissionQueueDepth.Set(float64(n))
}

func (m *Metrics) ObserveProbe(serverID string, protocol string, success bool, d time.Duration) {
	if m == nil {
		return
	}
	result := "failure"
	if success {
		result = "success"
	}
	m.ProbesTotal.WithLabelValues(serverID, result).Inc()
	m.ProbeLatency.WithLabelValues(protocol).Observe(d.Seconds())
}

// SetHealth records the score and flips the status gauge so exactly one status reads 1.
func (m *Metrics) SetHealth(serverID string, score float64, status string, statuses []string) {
	if m == nil {
		return
	}
	m.HealthScore.WithLabelValues(serverID).Set(score)
	for _, s := range statuses {
		v := 0.0
		if s == status {
			v = 1
		}
		m.ServerStatus.WithLabelValues(serverID, s).Set(v)
	}
}

func (m *Metrics) SetCircuitState(serverID string, state string) {
	if m == nil {
		return
	}
	var v float64
	switch state {
	case "half_open":
		v = 1
	case "open":
		v = 2
	}
	m.CircuitState.WithLabelValues(serverID).Set(v)
	m.CircuitTransitions.WithLabelValues(serverID, state).Inc()
}

func (m *Metrics) AlertFired(severity string) {
	if m == nil {
		return
	}
	m.AlertsFired.WithLabelValues(severity).Inc()
}

func (m *Metrics) EventDropped(queue string) {
	if m == nil {
		return
	}
	m.EventsDropped.WithLabelValues(queue).Inc()
}

// ForgetServer removes the per-server series of a deregistered server.
func (m *Metrics) ForgetServer(serverID string) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"server_id": serverID}
	m.InFlight.DeletePartialMatch(labels)
	m.HealthScore.DeletePartialMatch(labels)
	m.ServerStatus.DeletePartialMatch(labels)
	m.ProbesTotal.DeletePartialMatch(labels)
	m.DispatchAttempts.DeletePartialMatch(labels)
	m.CircuitState.DeletePartialMatch(labels)
	m.CircuitTransitions.DeletePartialMatch(labels)
}

// Handler exposes the collectors of g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
