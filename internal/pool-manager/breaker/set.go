package breaker

import (
	"sync"

	"go.uber.org/zap"
)

// Set holds one breaker per server, created lazily.
type Set struct {
	mu       sync.RWMutex
	breakers map[string]*CircuitBreaker
	logger   *zap.Logger
	onChange StateChangeFunc
}

func NewSet(logger *zap.Logger, onChange StateChangeFunc) *Set {
	return &Set{
		breakers: make(map[string]*CircuitBreaker),
		logger:   logger,
		onChange: onChange,
	}
}

func (s *Set) Get(serverID string) *CircuitBreaker {
	s.mu.RLock()
	cb, ok := s.breakers[serverID]
	s.mu.RUnlock()
	if ok {
		return cb
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if cb, ok = s.breakers[serverID]; ok {
		return cb
	}
	cb = NewCircuitBreaker(serverID, s.logger, s.onChange)
	s.breakers[serverID] = cb
	return cb
}

// State returns closed for servers that never had a breaker.
func (s *Set) State(serverID string) State {
	s.mu.RLock()
	cb, ok := s.breakers[serverID]
	s.mu.RUnlock()
	if !ok {
		return StateClosed
	}
	return cb.State()
}

func (s *Set) Remove(serverID string) {
	s.mu.Lock()
	delete(s.breakers, serverID)
	s.mu.Unlock()
}
