package registry

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/repository"
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listener is notified after a server membership change has been persisted.
type Listener interface {
	OnServerRegistered(server model.ServerConfig)
	OnServerUpdated(server model.ServerConfig)
	OnServerRemoved(serverID string)
}

// RemovalListener adapts a removal callback to a Listener.
type RemovalListener func(serverID string)

func (f RemovalListener) OnServerRegistered(model.ServerConfig) {}

func (f RemovalListener) OnServerUpdated(model.ServerConfig) {}

func (f RemovalListener) OnServerRemoved(serverID string) {
	f(serverID)
}

type Registry interface {
	Load(ctx context.Context) error
	AddListener(l Listener)

	Register(ctx context.Context, server model.ServerConfig) (model.ServerConfig, error)
	Update(ctx context.Context, id string, patch model.ServerPatch) (model.ServerConfig, error)
	Remove(ctx context.Context, id string) error
	Get(id string) (model.ServerConfig, error)
	List(filter model.ServerFilter) []model.ServerConfig
	SetHealthStatus(ctx context.Context, id string, status model.ServerStatus, reliability model.Reliability) error

	CreatePool(ctx context.Context, pool model.Pool) (model.Pool, error)
	UpdatePool(ctx context.Context, name string, patch model.PoolPatch) (model.Pool, error)
	DeletePool(ctx context.Context, name string) error
	GetPool(name string) (model.Pool, error)
	ListPools() []model.Pool
	PoolsForServer(serverID string) []model.Pool
	FindPoolForCapability(capability string, operation string) (model.Pool, bool)
}

type serverRecord struct {
	// write serializes Update and Remove for one server.
	write  sync.Mutex
	mu     sync.RWMutex
	config model.ServerConfig
}

func (s *serverRecord) snapshot() model.ServerConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

type poolRecord struct {
	write sync.Mutex
	mu    sync.RWMutex
	pool  model.Pool
}

func (p *poolRecord) snapshot() model.Pool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pool := p.pool
	pool.ServerIDs = slices.Clone(p.pool.ServerIDs)
	return pool
}

type registry struct {
	// mu guards the maps and reservations and is never held across repository calls.
	mu            sync.RWMutex
	servers       map[string]*serverRecord
	pools         map[string]*poolRecord
	reservedIDs   map[string]struct{}
	reservedNames map[string]struct{}
	reservedPools map[string]struct{}
	listeners     []Listener

	// membership is held exclusively by Remove and shared by pool writers.
	membership sync.RWMutex

	serverRepo repository.ServerRepository
	poolRepo   repository.PoolRepository
	logger     *zap.Logger
}

func (r *registry) AddListener(l Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

func (r *registry) currentListeners() []Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.listeners)
}

func (r *registry) serverRecord(id string) (*serverRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.servers[id]
	return rec, ok
}

func (r *registry) poolRecord(name string) (*poolRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.pools[name]
	return rec, ok
}

func (r *registry) poolRecords() []*poolRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recs := make([]*poolRecord, 0, len(r.pools))
	for _, p := range r.pools {
		recs = append(recs, p)
	}
	return recs
}

func (r *registry) Load(ctx context.Context) error {
	servers, err := r.serverRepo.GetServers(ctx)
	if err != nil {
		return fmt.Errorf("Registry.Load: %w", err)
	}
	pools, err := r.poolRepo.GetPools(ctx)
	if err != nil {
		return fmt.Errorf("Registry.Load: %w", err)
	}

	r.mu.Lock()
	for _, s := range servers {
		r.servers[s.ID] = &serverRecord{config: s}
	}
	for _, p := range pools {
		members := p.ServerIDs[:0:0]
		for _, id := range p.ServerIDs {
			if _, ok := r.servers[id]; ok {
				members = append(members, id)
			} else {
				r.logger.Warn("pool references unknown server", zap.String("pool", p.Name), zap.String("server_id", id))
			}
		}
		p.ServerIDs = members
		r.pools[p.Name] = &poolRecord{pool: p}
	}
	r.mu.Unlock()

	for _, l := range r.currentListeners() {
		for _, s := range servers {
			l.OnServerRegistered(s)
		}
	}
	r.logger.Info("registry loaded", zap.Int("servers", len(servers)), zap.Int("pools", len(pools)))
	return nil
}

func (r *registry) Register(ctx context.Context, server model.ServerConfig) (model.ServerConfig, error) {
	server = ApplyServerDefaults(server)
	if err := ValidateServer(server); err != nil {
		return model.ServerConfig{}, fmt.Errorf("Registry.Register: %w", err)
	}
	if server.ID == "" {
		server.ID = uuid.NewString()
	}
	// A server without health checks is never probed, so it starts routable.
	if server.HealthCheck.Enabled {
		server.Status = model.ServerStatusInactive
	} else {
		server.Status = model.ServerStatusActive
	}
	nameKey := strings.ToLower(server.Name)

	r.mu.Lock()
	_, exists := r.servers[server.ID]
	_, reserved := r.reservedIDs[server.ID]
	if exists || reserved {
		r.mu.Unlock()
		return model.ServerConfig{}, fmt.Errorf("Registry.Register: %w", apperrors.NewValidationError("id", "already registered"))
	}
	if r.nameTakenLocked(server.Name, "") {
		r.mu.Unlock()
		return model.ServerConfig{}, fmt.Errorf("Registry.Register: %w", apperrors.NewConflictError(apperrors.ErrServerNameExists, server.Name))
	}
	r.reservedIDs[server.ID] = struct{}{}
	r.reservedNames[nameKey] = struct{}{}
	r.mu.Unlock()

	created, err := r.serverRepo.CreateServer(ctx, server)

	r.mu.Lock()
	delete(r.reservedIDs, server.ID)
	delete(r.reservedNames, nameKey)
	if err == nil {
		r.servers[created.ID] = &serverRecord{config: created}
	}
	listeners := slices.Clone(r.listeners)
	r.mu.Unlock()
	if err != nil {
		return model.ServerConfig{}, fmt.Errorf("Registry.Register: %w", err)
	}

	for _, l := range listeners {
		l.OnServerRegistered(created)
	}
	r.logger.Info("server registered", zap.String("server_id", created.ID), zap.String("name", created.Name))
	return created, nil
}

func (r *registry) nameTakenLocked(name string, exceptID string) bool {
	if _, ok := r.reservedNames[strings.ToLower(name)]; ok {
		return true
	}
	for id, rec := range r.servers {
		if id != exceptID && strings.EqualFold(rec.snapshot().Name, name) {
			return true
		}
	}
	return false
}

func (r *registry) Update(ctx context.Context, id string, patch model.ServerPatch) (model.ServerConfig, error) {
	rec, ok := r.serverRecord(id)
	if !ok {
		return model.ServerConfig{}, fmt.Errorf("Registry.Update: %w", apperrors.NewNotFoundError(apperrors.ErrServerNotFound, id))
	}
	rec.write.Lock()
	defer rec.write.Unlock()
	if current, ok := r.serverRecord(id); !ok || current != rec {
		return model.ServerConfig{}, fmt.Errorf("Registry.Update: %w", apperrors.NewNotFoundError(apperrors.ErrServerNotFound, id))
	}

	previous := rec.snapshot()
	updated := patch.Apply(previous)
	updated.ID = id
	if err := ValidateServer(updated); err != nil {
		return model.ServerConfig{}, fmt.Errorf("Registry.Update: %w", err)
	}
	renamed := !strings.EqualFold(previous.Name, updated.Name)
	nameKey := strings.ToLower(updated.Name)
	if renamed {
		r.mu.Lock()
		if r.nameTakenLocked(updated.Name, id) {
			r.mu.Unlock()
			return model.ServerConfig{}, fmt.Errorf("Registry.Update: %w", apperrors.NewConflictError(apperrors.ErrServerNameExists, updated.Name))
		}
		r.reservedNames[nameKey] = struct{}{}
		r.mu.Unlock()
	}
	updated.UpdatedAt = time.Now()

	err := r.serverRepo.UpdateServer(ctx, updated)

	r.mu.Lock()
	if renamed {
		delete(r.reservedNames, nameKey)
	}
	if err == nil {
		rec.mu.Lock()
		// status and reliability may have moved under the monitor meanwhile
		if patch.Status == nil {
			updated.Status = rec.config.Status
		}
		updated.Performance.Reliability = rec.config.Performance.Reliability
		rec.config = updated
		rec.mu.Unlock()
	}
	listeners := slices.Clone(r.listeners)
	r.mu.Unlock()
	if err != nil {
		return model.ServerConfig{}, fmt.Errorf("Registry.Update: %w", err)
	}

	for _, l := range listeners {
		l.OnServerUpdated(updated)
	}
	return updated, nil
}

type poolChange struct {
	rec  *poolRecord
	pool model.Pool
}

func (r *registry) Remove(ctx context.Context, id string) error {
	rec, ok := r.serverRecord(id)
	if !ok {
		return fmt.Errorf("Registry.Remove: %w", apperrors.NewNotFoundError(apperrors.ErrServerNotFound, id))
	}
	rec.write.Lock()
	defer rec.write.Unlock()
	r.membership.Lock()
	defer r.membership.Unlock()
	if current, ok := r.serverRecord(id); !ok || current != rec {
		return fmt.Errorf("Registry.Remove: %w", apperrors.NewNotFoundError(apperrors.ErrServerNotFound, id))
	}
	server := rec.snapshot()

	var changes []poolChange
	for _, p := range r.poolRecords() {
		pool := p.snapshot()
		if !pool.HasServer(id) {
			continue
		}
		cfg := pool.Configuration
		if server.Status == model.ServerStatusActive {
			active := r.countActive(pool) - 1
			if active < cfg.MinActiveServers {
				return fmt.Errorf("Registry.Remove: %w", apperrors.NewConstraintViolationError(pool.Name,
					fmt.Sprintf("removing server would leave %d active servers, minimum is %d", active, cfg.MinActiveServers)))
			}
		}
		pool.ServerIDs = slices.DeleteFunc(pool.ServerIDs, func(s string) bool { return s == id })
		if members := len(pool.ServerIDs); cfg.MaxActiveServers > members {
			if cfg.MinActiveServers > members {
				return fmt.Errorf("Registry.Remove: %w", apperrors.NewConstraintViolationError(pool.Name,
					fmt.Sprintf("removing server would leave %d members, minimum is %d", members, cfg.MinActiveServers)))
			}
			pool.Configuration.MaxActiveServers = members
		}
		pool.UpdatedAt = time.Now()
		changes = append(changes, poolChange{rec: p, pool: pool})
	}

	for _, c := range changes {
		if err := r.poolRepo.UpdatePool(ctx, c.pool); err != nil {
			return fmt.Errorf("Registry.Remove: %w", err)
		}
		c.rec.mu.Lock()
		c.rec.pool = c.pool
		c.rec.mu.Unlock()
	}
	if err := r.serverRepo.DeleteServerById(ctx, id); err != nil {
		return fmt.Errorf("Registry.Remove: %w", err)
	}

	r.mu.Lock()
	delete(r.servers, id)
	listeners := slices.Clone(r.listeners)
	r.mu.Unlock()
	rec.mu.Lock()
	rec.config.Status = model.ServerStatusInactive
	rec.mu.Unlock()

	for _, l := range listeners {
		l.OnServerRemoved(id)
	}
	r.logger.Info("server removed", zap.String("server_id", id), zap.Int("pools_updated", len(changes)))
	return nil
}

func (r *registry) countActive(pool model.Pool) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, id := range pool.ServerIDs {
		if rec, ok := r.servers[id]; ok && rec.snapshot().Status == model.ServerStatusActive {
			n++
		}
	}
	return n
}

func (r *registry) Get(id string) (model.ServerConfig, error) {
	r.mu.RLock()
	rec, ok := r.servers[id]
	r.mu.RUnlock()
	if !ok {
		return model.ServerConfig{}, apperrors.NewNotFoundError(apperrors.ErrServerNotFound, id)
	}
	return rec.snapshot(), nil
}

func matchesFilter(s model.ServerConfig, f model.ServerFilter) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Priority != "" && s.Priority.Rank() != f.Priority.Rank() {
		return false
	}
	if f.Region != "" && s.Region != f.Region {
		return false
	}
	if f.Tag != "" && !slices.Contains(s.Tags, f.Tag) {
		return false
	}
	if f.Capability != "" && !s.HasCapability(f.Capability) {
		return false
	}
	if f.NamePrefix != "" && !strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(f.NamePrefix)) {
		return false
	}
	return true
}

func (r *registry) List(filter model.ServerFilter) []model.ServerConfig {
	r.mu.RLock()
	servers := make([]model.ServerConfig, 0, len(r.servers))
	for _, rec := range r.servers {
		s := rec.snapshot()
		if matchesFilter(s, filter) {
			servers = append(servers, s)
		}
	}
	r.mu.RUnlock()

	sort.Slice(servers, func(i, j int) bool {
		if !servers[i].CreatedAt.Equal(servers[j].CreatedAt) {
			return servers[i].CreatedAt.Before(servers[j].CreatedAt)
		}
		return servers[i].ID < servers[j].ID
	})
	return servers
}

func (r *registry) SetHealthStatus(ctx context.Context, id string, status model.ServerStatus, reliability model.Reliability) error {
	r.mu.RLock()
	rec, ok := r.servers[id]
	r.mu.RUnlock()
	if !ok {
		return apperrors.NewNotFoundError(apperrors.ErrServerNotFound, id)
	}

	rec.mu.Lock()
	rec.config.Performance.Reliability = reliability
	if rec.config.Status == model.ServerStatusMaintenance || rec.config.Status == status {
		rec.mu.Unlock()
		return nil
	}
	previous := rec.config.Status
	rec.config.Status = status
	rec.mu.Unlock()

	r.logger.Info("server status changed",
		zap.String("server_id", id),
		zap.String("from", string(previous)),
		zap.String("to", string(status)))
	if err := r.serverRepo.UpdateServerStatus(ctx, id, status); err != nil {
		r.logger.Error("failed to persist server status", zap.String("server_id", id), zap.Error(err))
	}
	return nil
}

func (r *registry) validatePoolLocked(pool model.Pool) (string, string) {
	if !pool.LoadBalancingStrategy.Valid() {
		return "loadBalancingStrategy", fmt.Sprintf("unknown strategy %q", pool.LoadBalancingStrategy)
	}
	seen := make(map[string]struct{}, len(pool.ServerIDs))
	for _, id := range pool.ServerIDs {
		if _, ok := r.servers[id]; !ok {
			return "serverIds", fmt.Sprintf("unknown server %s", id)
		}
		if _, dup := seen[id]; dup {
			return "serverIds", fmt.Sprintf("server %s listed twice", id)
		}
		seen[id] = struct{}{}
	}
	if reason := checkPoolInvariant(pool); reason != "" {
		return "configuration", reason
	}
	return "", ""
}

func (r *registry) CreatePool(ctx context.Context, pool model.Pool) (model.Pool, error) {
	if strings.TrimSpace(pool.Name) == "" {
		return model.Pool{}, fmt.Errorf("Registry.CreatePool: %w", apperrors.NewValidationError("name", "is required"))
	}
	if pool.LoadBalancingStrategy == "" {
		pool.LoadBalancingStrategy = model.StrategyRoundRobin
	}
	if pool.Configuration.MaxActiveServers == 0 {
		pool.Configuration.MaxActiveServers = len(pool.ServerIDs)
	}

	r.membership.RLock()
	defer r.membership.RUnlock()

	r.mu.Lock()
	_, exists := r.pools[pool.Name]
	_, reserved := r.reservedPools[pool.Name]
	if exists || reserved {
		r.mu.Unlock()
		return model.Pool{}, fmt.Errorf("Registry.CreatePool: %w", apperrors.NewConflictError(apperrors.ErrPoolNameExists, pool.Name))
	}
	if field, reason := r.validatePoolLocked(pool); reason != "" {
		r.mu.Unlock()
		return model.Pool{}, fmt.Errorf("Registry.CreatePool: %w", apperrors.NewValidationError(field, reason))
	}
	r.reservedPools[pool.Name] = struct{}{}
	r.mu.Unlock()

	created, err := r.poolRepo.CreatePool(ctx, pool)

	r.mu.Lock()
	delete(r.reservedPools, pool.Name)
	if err == nil {
		r.pools[created.Name] = &poolRecord{pool: created}
	}
	r.mu.Unlock()
	if err != nil {
		return model.Pool{}, fmt.Errorf("Registry.CreatePool: %w", err)
	}
	r.logger.Info("pool created", zap.String("pool", created.Name), zap.Int("members", len(created.ServerIDs)))
	return created, nil
}

func (r *registry) UpdatePool(ctx context.Context, name string, patch model.PoolPatch) (model.Pool, error) {
	rec, ok := r.poolRecord(name)
	if !ok {
		return model.Pool{}, fmt.Errorf("Registry.UpdatePool: %w", apperrors.NewNotFoundError(apperrors.ErrPoolNotFound, name))
	}
	r.membership.RLock()
	defer r.membership.RUnlock()
	rec.write.Lock()
	defer rec.write.Unlock()
	if current, ok := r.poolRecord(name); !ok || current != rec {
		return model.Pool{}, fmt.Errorf("Registry.UpdatePool: %w", apperrors.NewNotFoundError(apperrors.ErrPoolNotFound, name))
	}

	updated := patch.Apply(rec.snapshot())
	updated.Name = name
	r.mu.RLock()
	_, reason := r.validatePoolLocked(updated)
	r.mu.RUnlock()
	if reason != "" {
		return model.Pool{}, fmt.Errorf("Registry.UpdatePool: %w", apperrors.NewConstraintViolationError(name, reason))
	}
	updated.UpdatedAt = time.Now()
	if err := r.poolRepo.UpdatePool(ctx, updated); err != nil {
		return model.Pool{}, fmt.Errorf("Registry.UpdatePool: %w", err)
	}
	rec.mu.Lock()
	rec.pool = updated
	rec.mu.Unlock()
	return updated, nil
}

func (r *registry) DeletePool(ctx context.Context, name string) error {
	rec, ok := r.poolRecord(name)
	if !ok {
		return fmt.Errorf("Registry.DeletePool: %w", apperrors.NewNotFoundError(apperrors.ErrPoolNotFound, name))
	}
	r.membership.RLock()
	defer r.membership.RUnlock()
	rec.write.Lock()
	defer rec.write.Unlock()
	if current, ok := r.poolRecord(name); !ok || current != rec {
		return fmt.Errorf("Registry.DeletePool: %w", apperrors.NewNotFoundError(apperrors.ErrPoolNotFound, name))
	}
	if err := r.poolRepo.DeletePool(ctx, name); err != nil {
		return fmt.Errorf("Registry.DeletePool: %w", err)
	}
	r.mu.Lock()
	delete(r.pools, name)
	r.mu.Unlock()
	return nil
}

func (r *registry) GetPool(name string) (model.Pool, error) {
	r.mu.RLock()
	rec, ok := r.pools[name]
	r.mu.RUnlock()
	if !ok {
		return model.Pool{}, apperrors.NewNotFoundError(apperrors.ErrPoolNotFound, name)
	}
	return rec.snapshot(), nil
}

func (r *registry) ListPools() []model.Pool {
	r.mu.RLock()
	pools := make([]model.Pool, 0, len(r.pools))
	for _, rec := range r.pools {
		pools = append(pools, rec.snapshot())
	}
	r.mu.RUnlock()
	sort.Slice(pools, func(i, j int) bool {
		if !pools[i].CreatedAt.Equal(pools[j].CreatedAt) {
			return pools[i].CreatedAt.Before(pools[j].CreatedAt)
		}
		return pools[i].Name < pools[j].Name
	})
	return pools
}

func (r *registry) PoolsForServer(serverID string) []model.Pool {
	var pools []model.Pool
	for _, p := range r.ListPools() {
		if p.HasServer(serverID) {
			pools = append(pools, p)
		}
	}
	return pools
}

// FindPoolForCapability prefers a pool declaring the capability, then one whose members implement the operation.
func (r *registry) FindPoolForCapability(capability string, operation string) (model.Pool, bool) {
	pools := r.ListPools()
	if capability != "" {
		for _, p := range pools {
			if p.Capability == capability {
				return p, true
			}
		}
	}
	if operation == "" {
		return model.Pool{}, false
	}
	for _, p := range pools {
		for _, id := range p.ServerIDs {
			s, err := r.Get(id)
			if err == nil && s.SupportsOperation(operation) {
				return p, true
			}
		}
	}
	return model.Pool{}, false
}

func NewRegistry(serverRepo repository.ServerRepository, poolRepo repository.PoolRepository, logger *zap.Logger) Registry {
	return &registry{
		servers:       make(map[string]*serverRecord),
		pools:         make(map[string]*poolRecord),
		reservedIDs:   make(map[string]struct{}),
		reservedNames: make(map[string]struct{}),
		reservedPools: make(map[string]struct{}),
		serverRepo:    serverRepo,
		poolRepo:      poolRepo,
		logger:        logger,
	}
}
