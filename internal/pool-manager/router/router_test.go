package router

import (
	"Integration_Pool_Manager/internal/pool-manager/breaker"
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	mockrouter "Integration_Pool_Manager/internal/pool-manager/mocks/router"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type memorySource struct {
	mu      sync.Mutex
	servers map[string]model.ServerConfig
	pools   map[string]model.Pool
}

func newMemorySource() *memorySource {
	return &memorySource{servers: make(map[string]model.ServerConfig), pools: make(map[string]model.Pool)}
}

func (s *memorySource) addServer(id string, status model.ServerStatus, priority model.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.servers[id] = model.ServerConfig{
		ID:       id,
		Name:     id,
		Endpoint: "http://" + id + ".local",
		Protocol: model.ProtocolHTTP,
		Status:   status,
		Priority: priority,
	}
}

func (s *memorySource) addPool(pool model.Pool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[pool.Name] = pool
}

func (s *memorySource) setStatus(id string, status model.ServerStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	server := s.servers[id]
	server.Status = status
	s.servers[id] = server
}

func (s *memorySource) Get(id string) (model.ServerConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	server, ok := s.servers[id]
	if !ok {
		return model.ServerConfig{}, apperrors.NewNotFoundError(apperrors.ErrServerNotFound, id)
	}
	return server, nil
}

func (s *memorySource) GetPool(name string) (model.Pool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pool, ok := s.pools[name]
	if !ok {
		return model.Pool{}, apperrors.NewNotFoundError(apperrors.ErrPoolNotFound, name)
	}
	return pool, nil
}

func (s *memorySource) FindPoolForCapability(capability string, operation string) (model.Pool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.pools))
	for name := range s.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if s.pools[name].Capability == capability {
			return s.pools[name], true
		}
	}
	return model.Pool{}, false
}

type dispatchRecord struct {
	serverID string
	success  bool
}

type fakeHealth struct {
	mu         sync.Mutex
	scores     map[string]float64
	dispatches []dispatchRecord
}

func (h *fakeHealth) GetHealthScore(serverID string) (model.HealthScore, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	score, ok := h.scores[serverID]
	if !ok {
		return model.HealthScore{}, apperrors.NewNotFoundError(apperrors.ErrServerNotFound, serverID)
	}
	return model.HealthScore{ServerID: serverID, Score: score}, nil
}

func (h *fakeHealth) RecordDispatch(serverID string, latency time.Duration, success bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dispatches = append(h.dispatches, dispatchRecord{serverID: serverID, success: success})
}

func (h *fakeHealth) recorded() []dispatchRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]dispatchRecord(nil), h.dispatches...)
}

// serverIs matches the ServerConfig argument of Dispatch by id.
type serverIs string

func (m serverIs) Matches(x any) bool {
	s, ok := x.(model.ServerConfig)
	return ok && s.ID == string(m)
}

func (m serverIs) String() string {
	return fmt.Sprintf("server %s", string(m))
}

type routerFixture struct {
	source     *memorySource
	health     *fakeHealth
	breakers   *breaker.Set
	dispatcher *mockrouter.MockDispatcher
	dedup      OperationDeduplicator
	publisher  UsagePublisher
	cfg        Config
}

func newRouterFixture(t *testing.T) (*routerFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	return &routerFixture{
		source:     newMemorySource(),
		health:     &fakeHealth{scores: map[string]float64{}},
		breakers:   breaker.NewSet(zap.NewNop(), nil),
		dispatcher: mockrouter.NewMockDispatcher(ctrl),
		cfg: Config{
			DefaultTimeout: time.Second,
			TimeoutFactor:  3,
			DefaultRetry: model.RetryConfig{
				MaxRetries:      0,
				BackoffStrategy: model.BackoffExponential,
				InitialDelayMs:  1,
				MaxDelayMs:      5,
			},
			Breaker: breaker.Settings{Threshold: 5, Window: time.Minute, Cooldown: time.Minute},
		},
	}, ctrl
}

func (f *routerFixture) router() Router {
	return NewRouter(f.source, f.health, f.breakers, f.dispatcher, f.dedup, f.publisher, nil, f.cfg, zap.NewNop())
}

func retries(n int) *model.RetryConfig {
	return &model.RetryConfig{MaxRetries: n, BackoffStrategy: model.BackoffExponential, InitialDelayMs: 1, MaxDelayMs: 5}
}

func boolPtr(b bool) *bool {
	return &b
}

func succeed(data interface{}) (model.DispatchResult, error) {
	return model.DispatchResult{Data: data, ExecutionTime: 5 * time.Millisecond, NetworkTime: time.Millisecond}, nil
}

func waitForTimeout(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
	<-ctx.Done()
	return model.DispatchResult{}, ctx.Err()
}

func TestRouter_ExecuteRejectedBeforeDispatch(t *testing.T) {
	tests := []struct {
		name        string
		req         model.OperationRequest
		setupMocks  func(f *routerFixture, ctrl *gomock.Controller)
		expectedErr error
		expectedAs  interface{}
	}{
		{
			name:       "Missing operation",
			req:        model.OperationRequest{PoolID: "p"},
			expectedAs: new(*apperrors.ValidationError),
		},
		{
			name:       "Unknown priority",
			req:        model.OperationRequest{PoolID: "p", Operation: "sync", Priority: "urgent"},
			expectedAs: new(*apperrors.ValidationError),
		},
		{
			name:       "Invalid retry config",
			req:        model.OperationRequest{PoolID: "p", Operation: "sync", RetryConfig: &model.RetryConfig{MaxRetries: -1}},
			expectedAs: new(*apperrors.ValidationError),
		},
		{
			name:        "Unknown pinned server",
			req:         model.OperationRequest{ServerID: "ghost", Operation: "sync"},
			expectedErr: apperrors.ErrServerNotFound,
		},
		{
			name:        "Unknown pool",
			req:         model.OperationRequest{PoolID: "ghost", Operation: "sync"},
			expectedErr: apperrors.ErrPoolNotFound,
		},
		{
			name:        "No pool serves the capability",
			req:         model.OperationRequest{Capability: "billing", Operation: "charge"},
			expectedErr: apperrors.ErrNoAvailableServers,
		},
		{
			name: "Strong consistency with only degraded members",
			req:  model.OperationRequest{PoolID: "p", Operation: "sync", Consistency: model.ConsistencyStrong},
			setupMocks: func(f *routerFixture, ctrl *gomock.Controller) {
				f.source.addServer("A", model.ServerStatusDegraded, model.PriorityNormal)
				f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A"}})
			},
			expectedErr: apperrors.ErrNoAvailableServers,
		},
		{
			name: "Unhealthy and maintenance are never eligible",
			req:  model.OperationRequest{PoolID: "p", Operation: "sync", Consistency: model.ConsistencyWeak},
			setupMocks: func(f *routerFixture, ctrl *gomock.Controller) {
				f.source.addServer("A", model.ServerStatusUnhealthy, model.PriorityNormal)
				f.source.addServer("B", model.ServerStatusMaintenance, model.PriorityNormal)
				f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A", "B"}})
			},
			expectedErr: apperrors.ErrNoAvailableServers,
		},
		{
			name: "Duplicate operation id",
			req:  model.OperationRequest{OperationID: "op-1", PoolID: "p", Operation: "sync"},
			setupMocks: func(f *routerFixture, ctrl *gomock.Controller) {
				f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
				f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A"}})
				dedup := mockrouter.NewMockOperationDeduplicator(ctrl)
				dedup.EXPECT().ReserveOperationID(gomock.Any(), "op-1").Return(false, nil)
				f.dedup = dedup
			},
			expectedErr: apperrors.ErrDuplicateOperation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, ctrl := newRouterFixture(t)
			if tc.setupMocks != nil {
				tc.setupMocks(f, ctrl)
			}

			resp, err := f.router().Execute(context.Background(), tc.req)

			require.Error(t, err)
			assert.Empty(t, resp.OperationID)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
			if tc.expectedAs != nil {
				assert.ErrorAs(t, err, tc.expectedAs)
			}
		})
	}
}

func TestRouter_ExecuteSuccess(t *testing.T) {
	f, ctrl := newRouterFixture(t)
	f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
	f.source.addPool(model.Pool{Name: "p", Capability: "crm", ServerIDs: []string{"A"}})

	dedup := mockrouter.NewMockOperationDeduplicator(ctrl)
	dedup.EXPECT().ReserveOperationID(gomock.Any(), gomock.Any()).Return(true, nil)
	f.dedup = dedup
	publisher := mockrouter.NewMockUsagePublisher(ctrl)
	publisher.EXPECT().PublishOperation(gomock.Any()).Do(func(event model.UsageEvent) {
		assert.Equal(t, "A", event.ServerID)
		assert.Equal(t, "p", event.PoolID)
		assert.Equal(t, "listContacts", event.Operation)
		assert.True(t, event.Success)
		assert.Equal(t, 1, event.Attempts)
		assert.Equal(t, "trace-1", event.TraceID)
	})
	f.publisher = publisher

	var r Router
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).
		DoAndReturn(func(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
			assert.Equal(t, int64(1), r.InFlight("A"))
			assert.NotEmpty(t, req.OperationID)
			return succeed(map[string]interface{}{"contacts": 3})
		})
	r = f.router()

	resp, err := r.Execute(context.Background(), model.OperationRequest{Capability: "crm", Operation: "listContacts", TraceID: "trace-1"})

	require.NoError(t, err)
	assert.Equal(t, model.OperationStatusSuccess, resp.Status)
	assert.Equal(t, "A", resp.ServerID)
	assert.Equal(t, map[string]interface{}{"contacts": 3}, resp.Data)
	assert.Equal(t, int64(5), resp.ExecutionTimeMs)
	assert.Equal(t, int64(1), resp.NetworkTimeMs)
	assert.Equal(t, 1, resp.Metadata.Attempts)
	assert.Equal(t, []string{"A"}, resp.Metadata.ServersTried)
	assert.Equal(t, "p", resp.Metadata.PoolID)
	assert.Nil(t, resp.Error)
	assert.Equal(t, int64(0), r.InFlight("A"))
	assert.Equal(t, []dispatchRecord{{serverID: "A", success: true}}, f.health.recorded())
}

func TestRouter_PriorityFailoverAfterTimeout(t *testing.T) {
	f, _ := newRouterFixture(t)
	f.source.addServer("A", model.ServerStatusActive, model.PriorityHigh)
	f.source.addServer("B", model.ServerStatusDegraded, model.PriorityLow)
	f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"B", "A"}, LoadBalancingStrategy: model.StrategyPriority})

	gomock.InOrder(
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).DoAndReturn(waitForTimeout),
		f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("B"), gomock.Any()).Return(succeed("from B")),
	)

	resp, err := f.router().Execute(context.Background(), model.OperationRequest{
		PoolID:      "p",
		Operation:   "sync",
		Consistency: model.ConsistencyEventual,
		TimeoutMs:   30,
		RetryConfig: retries(1),
	})

	require.NoError(t, err)
	assert.Equal(t, model.OperationStatusSuccess, resp.Status)
	assert.Equal(t, "B", resp.ServerID)
	assert.Equal(t, "from B", resp.Data)
	assert.Equal(t, 2, resp.Metadata.Attempts)
	assert.Equal(t, []string{"A", "B"}, resp.Metadata.ServersTried)
	assert.Equal(t, []dispatchRecord{{serverID: "A", success: false}, {serverID: "B", success: true}}, f.health.recorded())
}

func TestRouter_ExecuteFailures(t *testing.T) {
	tests := []struct {
		name             string
		req              model.OperationRequest
		setupMocks       func(f *routerFixture)
		expectedStatus   model.OperationStatus
		expectedCode     string
		expectedAttempts int
		expectedTried    []string
	}{
		{
			name: "Timeout on non-idempotent operation is terminal",
			req:  model.OperationRequest{PoolID: "p", Operation: "charge", TimeoutMs: 20, RetryConfig: retries(3), Idempotent: boolPtr(false)},
			setupMocks: func(f *routerFixture) {
				f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).DoAndReturn(waitForTimeout)
			},
			expectedStatus:   model.OperationStatusTimeout,
			expectedCode:     "TIMEOUT",
			expectedAttempts: 1,
			expectedTried:    []string{"A"},
		},
		{
			name: "Authentication errors stop the chain",
			req:  model.OperationRequest{PoolID: "p", Operation: "sync", RetryConfig: retries(3)},
			setupMocks: func(f *routerFixture) {
				f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).
					Return(model.DispatchResult{}, &apperrors.AuthenticationError{ServerID: "A", StatusCode: http.StatusUnauthorized})
			},
			expectedStatus:   model.OperationStatusError,
			expectedCode:     "AUTHENTICATION_FAILED",
			expectedAttempts: 1,
			expectedTried:    []string{"A"},
		},
		{
			name: "Client errors are not retried",
			req:  model.OperationRequest{PoolID: "p", Operation: "sync", RetryConfig: retries(3)},
			setupMocks: func(f *routerFixture) {
				f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).
					Return(model.DispatchResult{}, &apperrors.DispatchError{ServerID: "A", StatusCode: http.StatusBadRequest, Err: errors.New("bad input")})
			},
			expectedStatus:   model.OperationStatusError,
			expectedCode:     "CLIENT_ERROR",
			expectedAttempts: 1,
			expectedTried:    []string{"A"},
		},
		{
			name: "Server errors fail over until attempts run out",
			req:  model.OperationRequest{PoolID: "p", Operation: "sync", RetryConfig: retries(2)},
			setupMocks: func(f *routerFixture) {
				f.source.addServer("B", model.ServerStatusActive, model.PriorityNormal)
				f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A", "B"}})
				unavailable := &apperrors.DispatchError{StatusCode: http.StatusServiceUnavailable, Retryable: true, Err: errors.New("down")}
				gomock.InOrder(
					f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).Return(model.DispatchResult{}, unavailable),
					f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("B"), gomock.Any()).Return(model.DispatchResult{}, unavailable),
					f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).Return(model.DispatchResult{}, unavailable),
				)
			},
			expectedStatus:   model.OperationStatusError,
			expectedCode:     "DISPATCH_FAILED",
			expectedAttempts: 3,
			expectedTried:    []string{"A", "B", "A"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, _ := newRouterFixture(t)
			f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
			f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A"}})
			tc.setupMocks(f)

			resp, err := f.router().Execute(context.Background(), tc.req)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.expectedCode, resp.Error.Code)
			assert.Equal(t, tc.expectedAttempts, resp.Metadata.Attempts)
			assert.Equal(t, tc.expectedTried, resp.Metadata.ServersTried)
		})
	}
}

func TestRouter_OpenCircuitBlocksDispatch(t *testing.T) {
	f, _ := newRouterFixture(t)
	f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
	f.source.addPool(model.Pool{
		Name:      "p",
		ServerIDs: []string{"A"},
		Configuration: model.PoolConfiguration{
			MaxActiveServers:        1,
			CircuitBreakerThreshold: 2,
			FailoverTimeoutMs:       60000,
		},
	})
	failure := &apperrors.DispatchError{StatusCode: http.StatusBadGateway, Retryable: true, Err: errors.New("bad gateway")}
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).Return(model.DispatchResult{}, failure).Times(2)
	r := f.router()

	for i := 0; i < 2; i++ {
		resp, err := r.Execute(context.Background(), model.OperationRequest{PoolID: "p", Operation: "sync"})
		require.NoError(t, err)
		assert.Equal(t, model.OperationStatusError, resp.Status)
	}
	assert.Equal(t, breaker.StateOpen, r.CircuitState("A"))

	_, err := r.Execute(context.Background(), model.OperationRequest{PoolID: "p", Operation: "sync"})
	assert.ErrorIs(t, err, apperrors.ErrCircuitOpen)
}

func TestRouter_OpenCircuitIsSkipped(t *testing.T) {
	f, _ := newRouterFixture(t)
	f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
	f.source.addServer("B", model.ServerStatusActive, model.PriorityNormal)
	f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A", "B"}})

	cb := f.breakers.Get("A")
	for i := 0; i < f.cfg.Breaker.Threshold; i++ {
		p, _ := cb.Allow(f.cfg.Breaker)
		cb.RecordFailure(p, f.cfg.Breaker)
	}
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("B"), gomock.Any()).Return(succeed("b"))

	resp, err := f.router().Execute(context.Background(), model.OperationRequest{PoolID: "p", Operation: "sync"})

	require.NoError(t, err)
	assert.Equal(t, "B", resp.ServerID)
}

func TestRouter_RetryKeepsConsistencyFilter(t *testing.T) {
	f, _ := newRouterFixture(t)
	f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
	f.source.addServer("B", model.ServerStatusActive, model.PriorityNormal)
	f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A", "B"}})

	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).
		DoAndReturn(func(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
			// B degrades while A is being tried.
			f.source.setStatus("B", model.ServerStatusDegraded)
			return model.DispatchResult{}, &apperrors.DispatchError{ServerID: "A", Retryable: true, Err: errors.New("reset")}
		}).Times(2)

	resp, err := f.router().Execute(context.Background(), model.OperationRequest{
		PoolID:      "p",
		Operation:   "sync",
		Consistency: model.ConsistencyStrong,
		RetryConfig: retries(1),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, resp.Metadata.ServersTried)
}

func TestRouter_PinnedServerBypassesPools(t *testing.T) {
	f, _ := newRouterFixture(t)
	f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
	f.source.addServer("B", model.ServerStatusActive, model.PriorityNormal)
	f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A", "B"}})

	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("B"), gomock.Any()).Return(succeed(nil)).Times(3)
	r := f.router()

	for i := 0; i < 3; i++ {
		resp, err := r.Execute(context.Background(), model.OperationRequest{ServerID: "B", PoolID: "p", Operation: "sync"})
		require.NoError(t, err)
		assert.Equal(t, "B", resp.ServerID)
		assert.Empty(t, resp.Metadata.PoolID)
	}
}

func TestRouter_MaxActiveServersCapsCandidates(t *testing.T) {
	f, _ := newRouterFixture(t)
	for _, id := range []string{"A", "B", "C"} {
		f.source.addServer(id, model.ServerStatusActive, model.PriorityNormal)
	}
	f.source.addPool(model.Pool{
		Name:                  "p",
		ServerIDs:             []string{"A", "B", "C"},
		LoadBalancingStrategy: model.StrategyRoundRobin,
		Configuration:         model.PoolConfiguration{MaxActiveServers: 2},
	})

	var mu sync.Mutex
	seen := map[string]int{}
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
			mu.Lock()
			seen[server.ID]++
			mu.Unlock()
			return succeed(nil)
		}).Times(6)
	r := f.router()

	for i := 0; i < 6; i++ {
		_, err := r.Execute(context.Background(), model.OperationRequest{PoolID: "p", Operation: "sync"})
		require.NoError(t, err)
	}

	// rotation covers every eligible member, the cap only shortens the failover list
	assert.Equal(t, map[string]int{"A": 2, "B": 2, "C": 2}, seen)
}

func TestRouter_MaxActiveServersAppliedAfterRanking(t *testing.T) {
	f, _ := newRouterFixture(t)
	f.source.addServer("B", model.ServerStatusActive, model.PriorityLow)
	f.source.addServer("A", model.ServerStatusActive, model.PriorityCritical)
	f.source.addPool(model.Pool{
		Name:                  "p",
		ServerIDs:             []string{"B", "A"},
		LoadBalancingStrategy: model.StrategyPriority,
		Configuration:         model.PoolConfiguration{MaxActiveServers: 1},
	})
	failure := &apperrors.DispatchError{ServerID: "A", Retryable: true, Err: errors.New("reset")}
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).Return(model.DispatchResult{}, failure).Times(2)

	resp, err := f.router().Execute(context.Background(), model.OperationRequest{PoolID: "p", Operation: "sync", RetryConfig: retries(1)})

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, resp.Metadata.ServersTried)
}

func TestRouter_ConcurrentExecuteTracksInFlight(t *testing.T) {
	const n = 8
	f, _ := newRouterFixture(t)
	f.cfg.DefaultTimeout = 10 * time.Second
	f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
	f.source.addServer("B", model.ServerStatusActive, model.PriorityNormal)
	f.source.addPool(model.Pool{Name: "busy", ServerIDs: []string{"A"}})
	f.source.addPool(model.Pool{Name: "lc", ServerIDs: []string{"A", "B"}, LoadBalancingStrategy: model.StrategyLeastConnections})

	started := make(chan struct{}, n)
	release := make(chan struct{})
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("A"), gomock.Any()).
		DoAndReturn(func(ctx context.Context, server model.ServerConfig, req model.OperationRequest) (model.DispatchResult, error) {
			started <- struct{}{}
			select {
			case <-release:
			case <-ctx.Done():
				return model.DispatchResult{}, ctx.Err()
			}
			return succeed("a")
		}).Times(n)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), serverIs("B"), gomock.Any()).Return(succeed("b"))
	r := f.router()

	var wg sync.WaitGroup
	statuses := make(chan model.OperationStatus, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := r.Execute(context.Background(), model.OperationRequest{PoolID: "busy", Operation: "sync"})
			assert.NoError(t, err)
			statuses <- resp.Status
		}()
	}
	for i := 0; i < n; i++ {
		select {
		case <-started:
		case <-time.After(5 * time.Second):
			close(release)
			t.Fatalf("only %d of %d dispatches started", i, n)
		}
	}

	assert.Equal(t, int64(n), r.InFlight("A"))
	resp, err := r.Execute(context.Background(), model.OperationRequest{PoolID: "lc", Operation: "sync"})
	require.NoError(t, err)
	assert.Equal(t, "B", resp.ServerID)
	assert.Equal(t, int64(0), r.InFlight("B"))

	close(release)
	wg.Wait()
	close(statuses)
	for status := range statuses {
		assert.Equal(t, model.OperationStatusSuccess, status)
	}
	assert.Equal(t, int64(0), r.InFlight("A"))
}

func TestRouter_OperationIDReleasedWhenNothingDispatched(t *testing.T) {
	t.Run("Open circuits release the reservation", func(t *testing.T) {
		f, ctrl := newRouterFixture(t)
		f.source.addServer("A", model.ServerStatusActive, model.PriorityNormal)
		f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A"}})
		cb := f.breakers.Get("A")
		for i := 0; i < f.cfg.Breaker.Threshold; i++ {
			p, _ := cb.Allow(f.cfg.Breaker)
			cb.RecordFailure(p, f.cfg.Breaker)
		}
		dedup := mockrouter.NewMockOperationDeduplicator(ctrl)
		gomock.InOrder(
			dedup.EXPECT().ReserveOperationID(gomock.Any(), "op-1").Return(true, nil),
			dedup.EXPECT().ReleaseOperationID(gomock.Any(), "op-1").Return(nil),
		)
		f.dedup = dedup

		_, err := f.router().Execute(context.Background(), model.OperationRequest{OperationID: "op-1", PoolID: "p", Operation: "sync"})

		assert.ErrorIs(t, err, apperrors.ErrCircuitOpen)
	})

	t.Run("No candidates never reserve", func(t *testing.T) {
		f, ctrl := newRouterFixture(t)
		f.source.addServer("A", model.ServerStatusUnhealthy, model.PriorityNormal)
		f.source.addPool(model.Pool{Name: "p", ServerIDs: []string{"A"}})
		f.dedup = mockrouter.NewMockOperationDeduplicator(ctrl)

		_, err := f.router().Execute(context.Background(), model.OperationRequest{OperationID: "op-1", PoolID: "p", Operation: "sync"})

		assert.ErrorIs(t, err, apperrors.ErrNoAvailableServers)
	})
}

func TestRouter_TimeoutFromAverageResponseTime(t *testing.T) {
	f, _ := newRouterFixture(t)
	r := f.router().(*router)

	server := model.ServerConfig{Performance: model.Performance{AverageResponseTimeMs: 200}}

	assert.Equal(t, 50*time.Millisecond, r.timeoutFor(model.OperationRequest{TimeoutMs: 50}, server))
	assert.Equal(t, 600*time.Millisecond, r.timeoutFor(model.OperationRequest{}, server))
	assert.Equal(t, time.Second, r.timeoutFor(model.OperationRequest{}, model.ServerConfig{}))
}

func TestRouter_OnServerRemoved(t *testing.T) {
	f, _ := newRouterFixture(t)
	r := f.router()
	cb := f.breakers.Get("A")
	for i := 0; i < f.cfg.Breaker.Threshold; i++ {
		p, _ := cb.Allow(f.cfg.Breaker)
		cb.RecordFailure(p, f.cfg.Breaker)
	}
	require.Equal(t, breaker.StateOpen, r.CircuitState("A"))

	r.OnServerRemoved("A")

	assert.Equal(t, breaker.StateClosed, r.CircuitState("A"))
	assert.Equal(t, int64(0), r.InFlight("A"))
}
