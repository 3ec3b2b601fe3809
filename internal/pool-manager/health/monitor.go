package health

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/metrics"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ServerStore is the part of the registry the monitor reads from and pushes transitions to.
type ServerStore interface {
	Get(id string) (model.ServerConfig, error)
	PoolsForServer(serverID string) []model.Pool
	SetHealthStatus(ctx context.Context, id string, status model.ServerStatus, reliability model.Reliability) error
}

// Observer receives every recomputed snapshot.
type Observer interface {
	Observe(score model.HealthScore)
}

type EventPublisher interface {
	PublishHealthCheck(check model.HealthCheck)
}

type Config struct {
	DefaultInterval    time.Duration
	Score              ScoreConfig
	UnhealthyThreshold int
	AutoTransitions    bool
}

type Monitor interface {
	Start()
	Stop()
	OnServerRegistered(server model.ServerConfig)
	OnServerUpdated(server model.ServerConfig)
	OnServerRemoved(serverID string)
	RecordDispatch(serverID string, latency time.Duration, success bool)
	GetHealthScore(serverID string) (model.HealthScore, error)
	GetAllHealthScores() []model.HealthScore
	// ProbeNow runs a probe without recording it.
	ProbeNow(ctx context.Context, server model.ServerConfig) model.ProbeResult
}

type tracker struct {
	mu                  sync.Mutex
	window              *window
	consecutiveFailures int
	everSucceeded       bool
	lastProbe           time.Time
	snapshot            model.HealthScore
	cancel              context.CancelFunc
}

type monitor struct {
	mu       sync.RWMutex
	trackers map[string]*tracker
	ctx      context.Context
	cancel   context.CancelFunc
	running  bool
	wg       sync.WaitGroup

	store     ServerStore
	prober    Prober
	observers []Observer
	publisher EventPublisher
	metrics   *metrics.Metrics
	cfg       Config
	logger    *zap.Logger
}

var allStatuses = []string{
	string(model.ServerStatusInactive),
	string(model.ServerStatusActive),
	string(model.ServerStatusDegraded),
	string(model.ServerStatusUnhealthy),
	string(model.ServerStatusMaintenance),
}

func (m *monitor) Start() {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.running = true
	ids := make([]string, 0, len(m.trackers))
	for id := range m.trackers {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	for _, id := range ids {
		server, err := m.store.Get(id)
		if err != nil {
			continue
		}
		interval := m.intervalFor(server)
		m.mu.Lock()
		if t, ok := m.trackers[id]; ok && m.running {
			m.startLoopLocked(server, t, interval)
		}
		m.mu.Unlock()
	}
	m.logger.Info("health monitor started", zap.Int("servers", len(ids)))
}

func (m *monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.cancel()
	m.mu.Unlock()
	m.wg.Wait()
	m.logger.Info("health monitor stopped")
}

func (m *monitor) OnServerRegistered(server model.ServerConfig) {
	interval := m.intervalFor(server)
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trackers[server.ID]
	if !ok {
		t = &tracker{
			window: newWindow(m.cfg.Score.WindowSize),
			snapshot: model.HealthScore{
				ServerID:       server.ID,
				Status:         server.Status,
				Recommendation: recommendation(server.Status),
			},
		}
		m.trackers[server.ID] = t
	}
	if m.running {
		m.startLoopLocked(server, t, interval)
	}
}

// OnServerUpdated re-arms the probe loop so interval or endpoint changes take effect.
func (m *monitor) OnServerUpdated(server model.ServerConfig) {
	m.OnServerRegistered(server)
}

func (m *monitor) OnServerRemoved(serverID string) {
	m.mu.Lock()
	t, ok := m.trackers[serverID]
	delete(m.trackers, serverID)
	m.mu.Unlock()
	if !ok {
		return
	}
	t.mu.Lock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.mu.Unlock()
	m.metrics.ForgetServer(serverID)
}

func (m *monitor) startLoopLocked(server model.ServerConfig, t *tracker, interval time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if !server.HealthCheck.Enabled {
		return
	}
	ctx, cancel := context.WithCancel(m.ctx)
	t.cancel = cancel
	m.wg.Add(1)
	go m.run(ctx, server.ID, t, interval)
}

func (m *monitor) intervalFor(server model.ServerConfig) time.Duration {
	if server.HealthCheck.IntervalMs > 0 {
		return time.Duration(server.HealthCheck.IntervalMs) * time.Millisecond
	}
	var interval time.Duration
	for _, p := range m.store.PoolsForServer(server.ID) {
		poolInterval := time.Duration(p.Configuration.HealthCheckIntervalMs) * time.Millisecond
		if poolInterval > 0 && (interval == 0 || poolInterval < interval) {
			interval = poolInterval
		}
	}
	if interval > 0 {
		return interval
	}
	return m.cfg.DefaultInterval
}

func (m *monitor) run(ctx context.Context, serverID string, t *tracker, interval time.Duration) {
	defer m.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.probe(ctx, serverID, t, interval)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx, serverID, t, interval)
		}
	}
}

func (m *monitor) probe(ctx context.Context, serverID string, t *tracker, interval time.Duration) {
	server, err := m.store.Get(serverID)
	if err != nil {
		return
	}
	res := m.prober.Probe(ctx, server)
	if ctx.Err() != nil {
		return
	}
	m.metrics.ObserveProbe(serverID, string(server.Protocol), res.Success, res.Latency)

	t.mu.Lock()
	sinceLast := interval
	if !t.lastProbe.IsZero() {
		sinceLast = res.Timestamp.Sub(t.lastProbe)
	}
	t.lastProbe = res.Timestamp
	t.window.add(sample{success: res.Success, latency: res.Latency, probe: true, at: res.Timestamp})
	if res.Success {
		t.consecutiveFailures = 0
		t.everSucceeded = true
	} else {
		t.consecutiveFailures++
	}
	snapshot := m.recomputeLocked(server, t)
	t.mu.Unlock()

	if !res.Success {
		m.logger.Warn("health probe failed",
			zap.String("server_id", serverID),
			zap.Int("attempts", res.Attempts),
			zap.Int("consecutive_failures", snapshot.ConsecutiveFailures),
			zap.String("error", res.Error))
	}

	if m.publisher != nil {
		check := model.HealthCheck{
			ServerID:                       serverID,
			Status:                         string(snapshot.Status),
			Timestamp:                      res.Timestamp,
			LatencyMs:                      res.LatencyMs,
			Attempts:                       res.Attempts,
			IntervalSinceLastHealthCheckMs: sinceLast.Milliseconds(),
		}
		if res.Success {
			check.StatusNumeric = 1
		}
		m.publisher.PublishHealthCheck(check)
	}
	m.publish(ctx, server, snapshot)
}

// recomputeLocked rebuilds the snapshot from the window. t.mu must be held.
func (m *monitor) recomputeLocked(server model.ServerConfig, t *tracker) model.HealthScore {
	sig := computeSignals(t.window.samples, m.cfg.Score)
	status := m.deriveStatus(server, t, sig.score)
	t.snapshot = model.HealthScore{
		ServerID:            server.ID,
		Score:               sig.score,
		AverageLatencyMs:    sig.averageLatencyMs,
		LatencyP95Ms:        sig.latencyP95Ms,
		ErrorRate:           sig.errorRate,
		Uptime:              sig.uptime,
		ConsecutiveFailures: t.consecutiveFailures,
		SampleCount:         len(t.window.samples),
		Status:              status,
		Recommendation:      recommendation(status),
		LastUpdated:         time.Now(),
	}
	return t.snapshot
}

// deriveStatus applies the score bands. Maintenance and unmonitored servers keep their status.
func (m *monitor) deriveStatus(server model.ServerConfig, t *tracker, score float64) model.ServerStatus {
	if server.Status == model.ServerStatusMaintenance || !server.HealthCheck.Enabled {
		return server.Status
	}
	if m.cfg.UnhealthyThreshold > 0 && t.consecutiveFailures >= m.cfg.UnhealthyThreshold {
		return model.ServerStatusUnhealthy
	}
	if !t.everSucceeded {
		return model.ServerStatusInactive
	}
	return statusForScore(score, m.cfg.Score)
}

func (m *monitor) publish(ctx context.Context, server model.ServerConfig, snapshot model.HealthScore) {
	if m.cfg.AutoTransitions && snapshot.Status != server.Status {
		reliability := model.Reliability{Uptime: snapshot.Uptime, ErrorRate: snapshot.ErrorRate}
		if err := m.store.SetHealthStatus(ctx, server.ID, snapshot.Status, reliability); err != nil {
			m.logger.Error("failed to push status transition", zap.String("server_id", server.ID), zap.Error(err))
		}
	}
	m.metrics.SetHealth(server.ID, snapshot.Score, string(snapshot.Status), allStatuses)
	for _, o := range m.observers {
		o.Observe(snapshot)
	}
}

func (m *monitor) RecordDispatch(serverID string, latency time.Duration, success bool) {
	m.mu.RLock()
	t, ok := m.trackers[serverID]
	m.mu.RUnlock()
	if !ok {
		return
	}
	server, err := m.store.Get(serverID)
	if err != nil {
		return
	}
	t.mu.Lock()
	t.window.add(sample{success: success, latency: latency, at: time.Now()})
	snapshot := m.recomputeLocked(server, t)
	t.mu.Unlock()
	m.publish(context.Background(), server, snapshot)
}

func (m *monitor) GetHealthScore(serverID string) (model.HealthScore, error) {
	m.mu.RLock()
	t, ok := m.trackers[serverID]
	m.mu.RUnlock()
	if !ok {
		return model.HealthScore{}, apperrors.NewNotFoundError(apperrors.ErrServerNotFound, serverID)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot, nil
}

func (m *monitor) GetAllHealthScores() []model.HealthScore {
	m.mu.RLock()
	trackers := make([]*tracker, 0, len(m.trackers))
	for _, t := range m.trackers {
		trackers = append(trackers, t)
	}
	m.mu.RUnlock()

	scores := make([]model.HealthScore, 0, len(trackers))
	for _, t := range trackers {
		t.mu.Lock()
		scores = append(scores, t.snapshot)
		t.mu.Unlock()
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].ServerID < scores[j].ServerID })
	return scores
}

func (m *monitor) ProbeNow(ctx context.Context, server model.ServerConfig) model.ProbeResult {
	return m.prober.Probe(ctx, server)
}

func NewMonitor(store ServerStore, prober Prober, publisher EventPublisher, metrics *metrics.Metrics, cfg Config, logger *zap.Logger, observers ...Observer) Monitor {
	return &monitor{
		trackers:  make(map[string]*tracker),
		store:     store,
		prober:    prober,
		observers: observers,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
		logger:    logger,
	}
}
