package bootstrap

import (
	mockalert "Integration_Pool_Manager/internal/pool-manager/mocks/alert"
	mockregistry "Integration_Pool_Manager/internal/pool-manager/mocks/registry"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const seedYAML = `
servers:
  - name: github-primary
    endpoint: https://github-mcp.internal
    protocol: http
    priority: high
    region: us-east-1
    authentication:
      type: bearer
      credentials:
        token: ${TEST_GITHUB_TOKEN}
    capabilities:
      - name: github
        operations: [listRepos, createIssue]
    healthCheck:
      enabled: true
      intervalMs: 10000
    tags: [scm]
  - name: github-secondary
    endpoint: https://github-mcp-2.internal
    protocol: grpc
pools:
  - name: github
    capability: github
    servers: [github-primary, github-secondary]
    loadBalancingStrategy: weighted
    configuration:
      minActiveServers: 1
      maxActiveServers: 2
      failoverTimeoutMs: 5000
      circuitBreakerThreshold: 3
alertRules:
  - name: github-slow
    condition:
      metric: latency_ms
      operator: gt
      threshold: 1500
      durationSeconds: 60
    severity: warning
    servers: [github-primary]
  - name: any-unhealthy
    condition:
      metric: health_score
      operator: lt
      threshold: 50
      durationSeconds: 30
      aggregation: min
    severity: critical
    cooldownMinutes: 5
    enabled: false
`

func writeSeed(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "pools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_GITHUB_TOKEN", "ghp-secret")

	file, err := Load(writeSeed(t, seedYAML))

	require.NoError(t, err)
	require.Len(t, file.Servers, 2)
	assert.Equal(t, "ghp-secret", file.Servers[0].Authentication.Credentials["token"])
	assert.Equal(t, model.ProtocolHTTP, file.Servers[0].Protocol)
	assert.Equal(t, []string{"listRepos", "createIssue"}, file.Servers[0].Capabilities[0].Operations)
	assert.Equal(t, 10000, file.Servers[0].HealthCheck.IntervalMs)
	require.Len(t, file.Pools, 1)
	assert.Equal(t, model.StrategyWeighted, file.Pools[0].LoadBalancingStrategy)
	assert.Equal(t, 3, file.Pools[0].Configuration.CircuitBreakerThreshold)
	require.Len(t, file.AlertRules, 2)
	assert.Equal(t, model.AggregationMin, file.AlertRules[1].Condition.Aggregation)
	assert.Nil(t, file.AlertRules[0].CooldownMinutes)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeSeed(t, "servers: [unterminated"))
	assert.Error(t, err)
}

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	file, err := Load(writeSeed(t, seedYAML))
	require.NoError(t, err)

	testCases := []struct {
		name       string
		file       File
		setupMocks func(reg *mockregistry.MockRegistry, alerts *mockalert.MockEngine)
		expectErr  bool
	}{
		{
			name: "Success Seeds empty store",
			file: file,
			setupMocks: func(reg *mockregistry.MockRegistry, alerts *mockalert.MockEngine) {
				reg.EXPECT().List(model.ServerFilter{}).Return(nil)
				reg.EXPECT().ListPools().Return(nil)
				reg.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s model.ServerConfig) (model.ServerConfig, error) {
					s.ID = "id-" + s.Name
					return s, nil
				}).Times(2)
				reg.EXPECT().CreatePool(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p model.Pool) (model.Pool, error) {
					assert.Equal(t, []string{"id-github-primary", "id-github-secondary"}, p.ServerIDs)
					return p, nil
				})
				alerts.EXPECT().ListRules().Return(nil)
				gomock.InOrder(
					alerts.EXPECT().CreateRule(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r model.AlertRule) (model.AlertRule, error) {
						assert.Equal(t, []string{"id-github-primary"}, r.ServerIDs)
						assert.Equal(t, 15, r.CooldownMinutes)
						assert.True(t, r.Enabled)
						return r, nil
					}),
					alerts.EXPECT().CreateRule(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r model.AlertRule) (model.AlertRule, error) {
						assert.Empty(t, r.ServerIDs)
						assert.Equal(t, 5, r.CooldownMinutes)
						assert.False(t, r.Enabled)
						return r, nil
					}),
				)
			},
		},
		{
			name: "Success Skips populated store",
			file: file,
			setupMocks: func(reg *mockregistry.MockRegistry, alerts *mockalert.MockEngine) {
				reg.EXPECT().List(model.ServerFilter{}).Return([]model.ServerConfig{{ID: "s-1", Name: "github-primary"}})
				alerts.EXPECT().ListRules().Return([]model.AlertRule{{ID: "r-1"}})
			},
		},
		{
			name: "Success Seeds rules against existing servers",
			file: File{AlertRules: file.AlertRules[:1]},
			setupMocks: func(reg *mockregistry.MockRegistry, alerts *mockalert.MockEngine) {
				reg.EXPECT().List(model.ServerFilter{}).Return([]model.ServerConfig{{ID: "s-1", Name: "github-primary"}})
				alerts.EXPECT().ListRules().Return(nil)
				alerts.EXPECT().CreateRule(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r model.AlertRule) (model.AlertRule, error) {
					assert.Equal(t, []string{"s-1"}, r.ServerIDs)
					return r, nil
				})
			},
		},
		{
			name: "Failure Pool references unknown server",
			file: File{Pools: []PoolEntry{{Name: "slack", Servers: []string{"nope"}}}},
			setupMocks: func(reg *mockregistry.MockRegistry, alerts *mockalert.MockEngine) {
				reg.EXPECT().List(model.ServerFilter{}).Return(nil)
				reg.EXPECT().ListPools().Return(nil)
			},
			expectErr: true,
		},
		{
			name: "Failure Register error",
			file: File{Servers: file.Servers[:1]},
			setupMocks: func(reg *mockregistry.MockRegistry, alerts *mockalert.MockEngine) {
				reg.EXPECT().List(model.ServerFilter{}).Return(nil)
				reg.EXPECT().ListPools().Return(nil)
				reg.EXPECT().Register(ctx, gomock.Any()).Return(model.ServerConfig{}, errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reg := mockregistry.NewMockRegistry(ctrl)
			alerts := mockalert.NewMockEngine(ctrl)
			tc.setupMocks(reg, alerts)

			err := NewSeeder(reg, alerts, zap.NewNop()).Seed(ctx, tc.file)

			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
