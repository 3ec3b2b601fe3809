package breaker

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

type State string

const (
	StateClosed   State = "closed"
	StateOpen     State = "open"
	StateHalfOpen State = "half_open"
)

// Settings are supplied per call because a server may be reached through pools with different thresholds.
type Settings struct {
	Threshold int
	Window    time.Duration
	Cooldown  time.Duration
}

// Permit is handed out by Allow and must be passed back with the outcome.
type Permit struct {
	Probe bool
}

// StateChangeFunc is invoked outside the breaker lock after every transition.
type StateChangeFunc func(serverID string, from, to State)

type CircuitBreaker struct {
	serverID      string
	mu            sync.Mutex
	state         State
	failures      []time.Time
	openedAt      time.Time
	probeInFlight bool
	now           func() time.Time
	onChange      StateChangeFunc
	logger        *zap.Logger
}

func NewCircuitBreaker(serverID string, logger *zap.Logger, onChange StateChangeFunc) *CircuitBreaker {
	return &CircuitBreaker{
		serverID: serverID,
		state:    StateClosed,
		now:      time.Now,
		onChange: onChange,
		logger:   logger,
	}
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Allow reports whether a dispatch may go through. In half-open state only one probe is admitted at a time.
func (cb *CircuitBreaker) Allow(s Settings) (Permit, bool) {
	cb.mu.Lock()
	var from State
	permit, ok := Permit{}, false
	switch cb.state {
	case StateClosed:
		ok = true
	case StateOpen:
		if cb.now().Sub(cb.openedAt) >= s.Cooldown {
			from = cb.state
			cb.state = StateHalfOpen
			cb.probeInFlight = true
			permit, ok = Permit{Probe: true}, true
		}
	case StateHalfOpen:
		if !cb.probeInFlight {
			cb.probeInFlight = true
			permit, ok = Permit{Probe: true}, true
		}
	}
	cb.mu.Unlock()
	if from != "" {
		cb.notify(from, StateHalfOpen)
	}
	return permit, ok
}

func (cb *CircuitBreaker) RecordSuccess(p Permit) {
	cb.mu.Lock()
	from := cb.state
	if cb.state == StateHalfOpen && p.Probe {
		cb.state = StateClosed
		cb.failures = cb.failures[:0]
		cb.probeInFlight = false
	}
	to := cb.state
	cb.mu.Unlock()
	if from != to {
		cb.notify(from, to)
	}
}

func (cb *CircuitBreaker) RecordFailure(p Permit, s Settings) {
	cb.mu.Lock()
	from := cb.state
	now := cb.now()
	switch cb.state {
	case StateClosed:
		cb.failures = append(cb.failures, now)
		cb.prune(now, s.Window)
		if len(cb.failures) >= s.Threshold {
			cb.state = StateOpen
			cb.openedAt = now
		}
	case StateHalfOpen:
		if p.Probe {
			cb.state = StateOpen
			cb.openedAt = now
			cb.probeInFlight = false
		}
	}
	to := cb.state
	cb.mu.Unlock()
	if from != to {
		cb.notify(from, to)
	}
}

// Release gives back a probe permit that never produced an outcome.
func (cb *CircuitBreaker) Release(p Permit) {
	if !p.Probe {
		return
	}
	cb.mu.Lock()
	if cb.state == StateHalfOpen {
		cb.probeInFlight = false
	}
	cb.mu.Unlock()
}

func (cb *CircuitBreaker) prune(now time.Time, window time.Duration) {
	if window <= 0 {
		return
	}
	cutoff := now.Add(-window)
	i := 0
	for i < len(cb.failures) && cb.failures[i].Before(cutoff) {
		i++
	}
	cb.failures = cb.failures[i:]
}

func (cb *CircuitBreaker) notify(from, to State) {
	cb.logger.Info("circuit state changed",
		zap.String("server_id", cb.serverID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	if cb.onChange != nil {
		cb.onChange(cb.serverID, from, to)
	}
}
