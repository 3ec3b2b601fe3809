package router

import (
	"Integration_Pool_Manager/internal/pool-manager/breaker"
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/metrics"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ServerSource is the read side of the registry used for candidate resolution.
type ServerSource interface {
	Get(id string) (model.ServerConfig, error)
	GetPool(name string) (model.Pool, error)
	FindPoolForCapability(capability string, operation string) (model.Pool, bool)
}

type HealthRecorder interface {
	GetHealthScore(serverID string) (model.HealthScore, error)
	RecordDispatch(serverID string, latency time.Duration, success bool)
}

type UsagePublisher interface {
	PublishOperation(event model.UsageEvent)
}

// OperationDeduplicator remembers operation ids. ReserveOperationID returns false for an id already seen.
type OperationDeduplicator interface {
	ReserveOperationID(ctx context.Context, operationID string) (bool, error)
	ReleaseOperationID(ctx context.Context, operationID string) error
}

type Config struct {
	MaxInFlight    int
	DefaultTimeout time.Duration
	TimeoutFactor  float64
	DefaultRetry   model.RetryConfig
	Breaker        breaker.Settings
}

type Router interface {
	// Execute returns an error only when the operation was never dispatched.
	// Dispatch failures are reported through the response status.
	Execute(ctx context.Context, req model.OperationRequest) (model.OperationResponse, error)
	InFlight(serverID string) int64
	CircuitState(serverID string) breaker.State

	OnServerRegistered(server model.ServerConfig)
	OnServerUpdated(server model.ServerConfig)
	OnServerRemoved(serverID string)
}

type router struct {
	servers    ServerSource
	health     HealthRecorder
	breakers   *breaker.Set
	dispatcher Dispatcher
	dedup      OperationDeduplicator
	publisher  UsagePublisher
	admission  *admission
	metrics    *metrics.Metrics
	cfg        Config
	logger     *zap.Logger

	mu       sync.RWMutex
	inFlight map[string]*atomic.Int64
	cursors  map[string]*atomic.Uint64
}

type dispatchOutcome struct {
	result model.DispatchResult
	err    error
}

func (r *router) Execute(ctx context.Context, req model.OperationRequest) (model.OperationResponse, error) {
	start := time.Now()
	if err := validateRequest(req); err != nil {
		return model.OperationResponse{}, fmt.Errorf("Router.Execute: %w", err)
	}
	req = r.withDefaults(req)

	if err := r.admission.Acquire(ctx, req.Priority); err != nil {
		return model.OperationResponse{}, fmt.Errorf("Router.Execute: %w", err)
	}
	defer r.admission.Release()

	servers, pool, err := r.resolve(req)
	if err != nil {
		return model.OperationResponse{}, fmt.Errorf("Router.Execute: %w", err)
	}
	reserved, err := r.reserve(ctx, &req)
	if err != nil {
		return model.OperationResponse{}, fmt.Errorf("Router.Execute: %w", err)
	}

	resp, err := r.run(ctx, req, pool, r.rank(pool, servers), r.settingsFor(pool))
	if err != nil {
		// nothing was dispatched, so the id stays usable for a retry
		if reserved {
			r.release(ctx, req.OperationID)
		}
		return model.OperationResponse{}, fmt.Errorf("Router.Execute: %w", err)
	}
	resp.TotalTimeMs = time.Since(start).Milliseconds()
	r.finish(req, resp, time.Since(start))
	return resp, nil
}

func (r *router) withDefaults(req model.OperationRequest) model.OperationRequest {
	if req.Priority == "" {
		req.Priority = model.RequestPriorityNormal
	}
	if req.Consistency == "" {
		req.Consistency = model.ConsistencyEventual
	}
	retry := r.cfg.DefaultRetry
	if req.RetryConfig != nil {
		retry = *req.RetryConfig
	}
	if retry.BackoffStrategy == "" {
		retry.BackoffStrategy = model.BackoffExponential
	}
	req.RetryConfig = &retry
	return req
}

// reserve assigns an operation id when missing and reports whether a reservation is now held.
func (r *router) reserve(ctx context.Context, req *model.OperationRequest) (bool, error) {
	if req.OperationID == "" {
		req.OperationID = uuid.NewString()
	}
	if r.dedup == nil {
		return false, nil
	}
	ok, err := r.dedup.ReserveOperationID(ctx, req.OperationID)
	if err != nil {
		r.logger.Warn("failed to reserve operation id, continuing without deduplication",
			zap.String("operation_id", req.OperationID), zap.Error(err))
		return false, nil
	}
	if !ok {
		return false, apperrors.NewConflictError(apperrors.ErrDuplicateOperation, req.OperationID)
	}
	return true, nil
}

func (r *router) release(ctx context.Context, operationID string) {
	if err := r.dedup.ReleaseOperationID(context.WithoutCancel(ctx), operationID); err != nil {
		r.logger.Warn("failed to release operation id", zap.String("operation_id", operationID), zap.Error(err))
	}
}

// resolve returns the eligible servers in pool order. Pool is nil for a pinned server.
func (r *router) resolve(req model.OperationRequest) ([]model.ServerConfig, *model.Pool, error) {
	if req.ServerID != "" {
		server, err := r.servers.Get(req.ServerID)
		if err != nil {
			return nil, nil, err
		}
		if !req.Consistency.Accepts(server.Status) {
			return nil, nil, fmt.Errorf("%w: server %s is %s", apperrors.ErrNoAvailableServers, server.ID, server.Status)
		}
		return []model.ServerConfig{server}, nil, nil
	}

	var pool model.Pool
	if req.PoolID != "" {
		p, err := r.servers.GetPool(req.PoolID)
		if err != nil {
			return nil, nil, err
		}
		pool = p
	} else {
		p, ok := r.servers.FindPoolForCapability(req.Capability, req.Operation)
		if !ok {
			return nil, nil, fmt.Errorf("%w: no pool serves operation %q", apperrors.ErrNoAvailableServers, req.Operation)
		}
		pool = p
	}

	eligible := make([]model.ServerConfig, 0, len(pool.ServerIDs))
	for _, id := range pool.ServerIDs {
		server, err := r.servers.Get(id)
		if err != nil || !req.Consistency.Accepts(server.Status) {
			continue
		}
		eligible = append(eligible, server)
	}
	if len(eligible) == 0 {
		return nil, &pool, fmt.Errorf("%w: pool %s has no %s candidates", apperrors.ErrNoAvailableServers, pool.Name, req.Consistency)
	}
	return eligible, &pool, nil
}

func (r *router) rank(pool *model.Pool, servers []model.ServerConfig) []candidate {
	candidates := make([]candidate, 0, len(servers))
	for _, s := range servers {
		c := candidate{server: s, inFlight: r.InFlight(s.ID)}
		if score, err := r.health.GetHealthScore(s.ID); err == nil {
			c.score = score.Score
		}
		candidates = append(candidates, c)
	}
	if pool == nil {
		return candidates
	}
	ranked := rankCandidates(pool.LoadBalancingStrategy, candidates, r.cursor(pool.Name))
	if limit := pool.Configuration.MaxActiveServers; limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func (r *router) settingsFor(pool *model.Pool) breaker.Settings {
	s := r.cfg.Breaker
	if pool == nil {
		return s
	}
	if pool.Configuration.CircuitBreakerThreshold > 0 {
		s.Threshold = pool.Configuration.CircuitBreakerThreshold
	}
	if pool.Configuration.FailoverTimeoutMs > 0 {
		s.Cooldown = time.Duration(pool.Configuration.FailoverTimeoutMs) * time.Millisecond
	}
	return s
}

func (r *router) run(ctx context.Context, req model.OperationRequest, pool *model.Pool, ranked []candidate, settings breaker.Settings) (model.OperationResponse, error) {
	retry := *req.RetryConfig
	total := 1 + retry.MaxRetries
	resp := model.OperationResponse{OperationID: req.OperationID}
	if pool != nil {
		resp.Metadata.PoolID = pool.Name
	}

	next := 0
	var lastErr error
	for resp.Metadata.Attempts < total {
		server, permit, err := r.admit(req, ranked, &next, settings)
		if err != nil {
			if resp.Metadata.Attempts == 0 {
				return model.OperationResponse{}, err
			}
			break
		}
		resp.Metadata.Attempts++
		resp.Metadata.ServersTried = append(resp.Metadata.ServersTried, server.ID)
		resp.ServerID = server.ID

		result, err := r.attempt(ctx, server, req, permit, settings)
		if err == nil {
			resp.Status = model.OperationStatusSuccess
			resp.Data = result.Data
			resp.ExecutionTimeMs = result.ExecutionTime.Milliseconds()
			resp.NetworkTimeMs = result.NetworkTime.Milliseconds()
			return resp, nil
		}
		lastErr = err
		if resp.Metadata.Attempts >= total || !shouldRetry(ctx, req, err) {
			break
		}

		delay := backoffDelay(retry, resp.Metadata.Attempts)
		r.logger.Warn("dispatch failed, failing over",
			zap.String("operation_id", req.OperationID),
			zap.String("server_id", server.ID),
			zap.Int("attempt", resp.Metadata.Attempts),
			zap.Duration("delay", delay),
			zap.Error(err))
		if !sleepContext(ctx, delay) {
			lastErr = ctx.Err()
			break
		}
	}
	return failureResponse(resp, lastErr), nil
}

// admit walks the ranked list cyclically from *next and returns the first server that still passes the
// consistency filter and whose circuit admits a call.
func (r *router) admit(req model.OperationRequest, ranked []candidate, next *int, settings breaker.Settings) (model.ServerConfig, breaker.Permit, error) {
	circuitOpen := false
	for i := 0; i < len(ranked); i++ {
		idx := (*next + i) % len(ranked)
		server, err := r.servers.Get(ranked[idx].server.ID)
		if err != nil || !req.Consistency.Accepts(server.Status) {
			continue
		}
		permit, ok := r.breakers.Get(server.ID).Allow(settings)
		if !ok {
			circuitOpen = true
			continue
		}
		*next = (idx + 1) % len(ranked)
		return server, permit, nil
	}
	if circuitOpen {
		return model.ServerConfig{}, breaker.Permit{}, apperrors.ErrCircuitOpen
	}
	return model.ServerConfig{}, breaker.Permit{}, apperrors.ErrNoAvailableServers
}

func (r *router) timeoutFor(req model.OperationRequest, server model.ServerConfig) time.Duration {
	if req.TimeoutMs > 0 {
		return time.Duration(req.TimeoutMs) * time.Millisecond
	}
	if avg := server.Performance.AverageResponseTimeMs; avg > 0 && r.cfg.TimeoutFactor > 0 {
		return time.Duration(float64(avg)*r.cfg.TimeoutFactor) * time.Millisecond
	}
	return r.cfg.DefaultTimeout
}

// attempt dispatches once and records the outcome. A transport that outlives the timeout is abandoned.
func (r *router) attempt(ctx context.Context, server model.ServerConfig, req model.OperationRequest, permit breaker.Permit, settings breaker.Settings) (model.DispatchResult, error) {
	cb := r.breakers.Get(server.ID)
	timeout := r.timeoutFor(req, server)
	counter := r.counter(server.ID)
	r.metrics.SetInFlight(server.ID, counter.Add(1))
	defer func() {
		r.metrics.SetInFlight(server.ID, counter.Add(-1))
	}()

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan dispatchOutcome, 1)
	start := time.Now()
	go func() {
		res, err := r.dispatcher.Dispatch(attemptCtx, server, req)
		done <- dispatchOutcome{result: res, err: err}
	}()

	var out dispatchOutcome
	select {
	case out = <-done:
	case <-attemptCtx.Done():
		out.err = attemptCtx.Err()
	}
	latency := time.Since(start)

	switch {
	case out.err == nil:
		cb.RecordSuccess(permit)
		r.health.RecordDispatch(server.ID, latency, true)
		r.metrics.ObserveDispatch(server.ID, "success")
		return out.result, nil
	case ctx.Err() != nil:
		cb.Release(permit)
		r.metrics.ObserveDispatch(server.ID, "cancelled")
		return model.DispatchResult{}, ctx.Err()
	case errors.Is(out.err, context.DeadlineExceeded) || errors.Is(attemptCtx.Err(), context.DeadlineExceeded):
		cb.RecordFailure(permit, settings)
		r.health.RecordDispatch(server.ID, latency, false)
		r.metrics.ObserveDispatch(server.ID, "timeout")
		return model.DispatchResult{}, &apperrors.DispatchTimeoutError{ServerID: server.ID, Timeout: timeout.String()}
	case !isServerFault(out.err):
		// The server answered; the request itself was refused.
		cb.RecordSuccess(permit)
		r.health.RecordDispatch(server.ID, latency, true)
		r.metrics.ObserveDispatch(server.ID, "rejected")
		return model.DispatchResult{}, out.err
	}
	cb.RecordFailure(permit, settings)
	r.health.RecordDispatch(server.ID, latency, false)
	r.metrics.ObserveDispatch(server.ID, "failure")
	return model.DispatchResult{}, out.err
}

func isServerFault(err error) bool {
	var authErr *apperrors.AuthenticationError
	if errors.As(err, &authErr) {
		return false
	}
	var dispatchErr *apperrors.DispatchError
	if errors.As(err, &dispatchErr) {
		return dispatchErr.Retryable
	}
	return true
}

func shouldRetry(ctx context.Context, req model.OperationRequest, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var timeoutErr *apperrors.DispatchTimeoutError
	if errors.As(err, &timeoutErr) {
		return req.RetriesTimeouts()
	}
	return isServerFault(err)
}

func failureResponse(resp model.OperationResponse, err error) model.OperationResponse {
	resp.Status = model.OperationStatusError
	code := "DISPATCH_FAILED"

	var timeoutErr *apperrors.DispatchTimeoutError
	var authErr *apperrors.AuthenticationError
	var dispatchErr *apperrors.DispatchError
	switch {
	case errors.As(err, &timeoutErr):
		resp.Status = model.OperationStatusTimeout
		code = "TIMEOUT"
	case errors.As(err, &authErr):
		code = "AUTHENTICATION_FAILED"
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		code = "CANCELLED"
	case errors.As(err, &dispatchErr) && !dispatchErr.Retryable && dispatchErr.StatusCode >= 400 && dispatchErr.StatusCode < 500:
		code = "CLIENT_ERROR"
	}
	resp.Error = &model.OperationError{Code: code, Message: err.Error()}
	return resp
}

func (r *router) finish(req model.OperationRequest, resp model.OperationResponse, elapsed time.Duration) {
	poolLabel := resp.Metadata.PoolID
	if poolLabel == "" {
		poolLabel = "pinned"
	}
	r.metrics.ObserveOperation(poolLabel, string(resp.Status), elapsed)

	if r.publisher != nil {
		r.publisher.PublishOperation(model.UsageEvent{
			OperationID: resp.OperationID,
			ServerID:    resp.ServerID,
			PoolID:      resp.Metadata.PoolID,
			Operation:   req.Operation,
			Status:      resp.Status,
			LatencyMs:   resp.TotalTimeMs,
			Success:     resp.Status == model.OperationStatusSuccess,
			Attempts:    resp.Metadata.Attempts,
			UserID:      req.UserID,
			TraceID:     req.TraceID,
			Timestamp:   time.Now(),
		})
	}

	if resp.Status != model.OperationStatusSuccess {
		r.logger.Error("operation failed",
			zap.String("operation_id", resp.OperationID),
			zap.String("operation", req.Operation),
			zap.String("status", string(resp.Status)),
			zap.Strings("servers_tried", resp.Metadata.ServersTried),
			zap.String("trace_id", req.TraceID))
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (r *router) counter(serverID string) *atomic.Int64 {
	r.mu.RLock()
	c, ok := r.inFlight[serverID]
	r.mu.RUnlock()
	if ok {
		return c
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.inFlight[serverID]; ok {
		return c
	}
	c = &atomic.Int64{}
	r.inFlight[serverID] = c
	return c
}

func (r *router) cursor(pool string) *atomic.Uint64 {
	r.mu.RLock()
	c, ok := r.cursors[pool]
	r.mu.RUnlock()
	if ok {
		return c
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok = r.cursors[pool]; ok {
		return c
	}
	c = &atomic.Uint64{}
	r.cursors[pool] = c
	return c
}

func (r *router) InFlight(serverID string) int64 {
	r.mu.RLock()
	c, ok := r.inFlight[serverID]
	r.mu.RUnlock()
	if !ok {
		return 0
	}
	return c.Load()
}

func (r *router) CircuitState(serverID string) breaker.State {
	return r.breakers.State(serverID)
}

func (r *router) OnServerRegistered(server model.ServerConfig) {
	r.counter(server.ID)
}

func (r *router) OnServerUpdated(server model.ServerConfig) {}

func (r *router) OnServerRemoved(serverID string) {
	r.mu.Lock()
	delete(r.inFlight, serverID)
	r.mu.Unlock()
	r.breakers.Remove(serverID)
}

func NewRouter(servers ServerSource, health HealthRecorder, breakers *breaker.Set, dispatcher Dispatcher, dedup OperationDeduplicator, publisher UsagePublisher, m *metrics.Metrics, cfg Config, logger *zap.Logger) Router {
	return &router{
		servers:    servers,
		health:     health,
		breakers:   breakers,
		dispatcher: dispatcher,
		dedup:      dedup,
		publisher:  publisher,
		admission:  newAdmission(cfg.MaxInFlight, m),
		metrics:    m,
		cfg:        cfg,
		logger:     logger,
		inFlight:   make(map[string]*atomic.Int64),
		cursors:    make(map[string]*atomic.Uint64),
	}
}
