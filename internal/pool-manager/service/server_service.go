package service

import (
	"Integration_Pool_Manager/internal/pool-manager/health"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/registry"
	"Integration_Pool_Manager/internal/pool-manager/repository"
	"context"
	"fmt"
	"time"
)

type ServerService interface {
	RegisterServer(ctx context.Context, server model.ServerConfig) (model.ServerConfig, error)
	// ImportServers registers each server independently and reports the ones that failed.
	ImportServers(ctx context.Context, servers []model.ServerConfig) (imported []model.ServerConfig, failed []ImportFailure)
	GetServer(ctx context.Context, id string) (model.ServerConfig, error)
	ListServers(ctx context.Context, filter model.ServerFilter) []model.ServerConfig
	UpdateServer(ctx context.Context, id string, patch model.ServerPatch) (model.ServerConfig, error)
	RemoveServer(ctx context.Context, id string) error
	TestConnection(ctx context.Context, id string) (model.ProbeResult, error)
	TestServerConfig(ctx context.Context, server model.ServerConfig) (model.ProbeResult, error)
	GetHealthScore(ctx context.Context, id string) (model.HealthScore, error)
	GetAllHealthScores(ctx context.Context) []model.HealthScore
	GetServerUptimePercentage(ctx context.Context, serverID string, startDate time.Time, endDate time.Time) (float64, error)
}

type ImportFailure struct {
	Name   string
	Reason string
}

type serverService struct {
	registry              registry.Registry
	monitor               health.Monitor
	healthCheckRepository repository.HealthCheckRepository
}

func (s *serverService) RegisterServer(ctx context.Context, server model.ServerConfig) (model.ServerConfig, error) {
	created, err := s.registry.Register(ctx, server)
	if err != nil {
		return model.ServerConfig{}, fmt.Errorf("ServerService.RegisterServer: %w", err)
	}
	return created, nil
}

func (s *serverService) ImportServers(ctx context.Context, servers []model.ServerConfig) (imported []model.ServerConfig, failed []ImportFailure) {
	for _, server := range servers {
		created, err := s.registry.Register(ctx, server)
		if err != nil {
			failed = append(failed, ImportFailure{Name: server.Name, Reason: err.Error()})
			continue
		}
		imported = append(imported, created)
	}
	return
}

func (s *serverService) GetServer(ctx context.Context, id string) (model.ServerConfig, error) {
	server, err := s.registry.Get(id)
	if err != nil {
		return model.ServerConfig{}, fmt.Errorf("ServerService.GetServer: %w", err)
	}
	return server, nil
}

func (s *serverService) ListServers(ctx context.Context, filter model.ServerFilter) []model.ServerConfig {
	return s.registry.List(filter)
}

func (s *serverService) UpdateServer(ctx context.Context, id string, patch model.ServerPatch) (model.ServerConfig, error) {
	updated, err := s.registry.Update(ctx, id, patch)
	if err != nil {
		return model.ServerConfig{}, fmt.Errorf("ServerService.UpdateServer: %w", err)
	}
	return updated, nil
}

func (s *serverService) RemoveServer(ctx context.Context, id string) error {
	if err := s.registry.Remove(ctx, id); err != nil {
		return fmt.Errorf("ServerService.RemoveServer: %w", err)
	}
	return nil
}

func (s *serverService) TestConnection(ctx context.Context, id string) (model.ProbeResult, error) {
	server, err := s.registry.Get(id)
	if err != nil {
		return model.ProbeResult{}, fmt.Errorf("ServerService.TestConnection: %w", err)
	}
	return s.monitor.ProbeNow(ctx, server), nil
}

// TestServerConfig probes a configuration that has not been registered yet.
func (s *serverService) TestServerConfig(ctx context.Context, server model.ServerConfig) (model.ProbeResult, error) {
	server = registry.ApplyServerDefaults(server)
	if err := registry.ValidateServer(server); err != nil {
		return model.ProbeResult{}, fmt.Errorf("ServerService.TestServerConfig: %w", err)
	}
	return s.monitor.ProbeNow(ctx, server), nil
}

func (s *serverService) GetHealthScore(ctx context.Context, id string) (model.HealthScore, error) {
	score, err := s.monitor.GetHealthScore(id)
	if err != nil {
		return model.HealthScore{}, fmt.Errorf("ServerService.GetHealthScore: %w", err)
	}
	return score, nil
}

func (s *serverService) GetAllHealthScores(ctx context.Context) []model.HealthScore {
	return s.monitor.GetAllHealthScores()
}

func (s *serverService) GetServerUptimePercentage(ctx context.Context, serverID string, startDate time.Time, endDate time.Time) (float64, error) {
	if _, err := s.registry.Get(serverID); err != nil {
		return 0, fmt.Errorf("ServerService.GetServerUptimePercentage: %w", err)
	}
	res, err := s.healthCheckRepository.GetServerUptimePercentage(ctx, serverID, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("ServerService.GetServerUptimePercentage: %w", err)
	}
	return res, nil
}

func NewServerService(registry registry.Registry, monitor health.Monitor, healthCheckRepository repository.HealthCheckRepository) ServerService {
	return &serverService{
		registry:              registry,
		monitor:               monitor,
		healthCheckRepository: healthCheckRepository,
	}
}
