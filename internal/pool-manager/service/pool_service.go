package service

import (
	"Integration_Pool_Manager/internal/pool-manager/breaker"
	"Integration_Pool_Manager/internal/pool-manager/health"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/registry"
	"Integration_Pool_Manager/internal/pool-manager/router"
	"context"
	"fmt"
	"math"
)

type PoolService interface {
	CreatePool(ctx context.Context, pool model.Pool) (model.Pool, error)
	UpdatePool(ctx context.Context, name string, patch model.PoolPatch) (model.Pool, error)
	DeletePool(ctx context.Context, name string) error
	GetPool(ctx context.Context, name string) (model.Pool, error)
	ListPools(ctx context.Context) []model.Pool
	GetPoolStatistics(ctx context.Context, name string) (model.PoolStatistics, error)
	AllPoolStatistics() []model.PoolStatistics
}

type poolService struct {
	registry registry.Registry
	monitor  health.Monitor
	router   router.Router
}

func (p *poolService) CreatePool(ctx context.Context, pool model.Pool) (model.Pool, error) {
	created, err := p.registry.CreatePool(ctx, pool)
	if err != nil {
		return model.Pool{}, fmt.Errorf("PoolService.CreatePool: %w", err)
	}
	return created, nil
}

func (p *poolService) UpdatePool(ctx context.Context, name string, patch model.PoolPatch) (model.Pool, error) {
	updated, err := p.registry.UpdatePool(ctx, name, patch)
	if err != nil {
		return model.Pool{}, fmt.Errorf("PoolService.UpdatePool: %w", err)
	}
	return updated, nil
}

func (p *poolService) DeletePool(ctx context.Context, name string) error {
	if err := p.registry.DeletePool(ctx, name); err != nil {
		return fmt.Errorf("PoolService.DeletePool: %w", err)
	}
	return nil
}

func (p *poolService) GetPool(ctx context.Context, name string) (model.Pool, error) {
	pool, err := p.registry.GetPool(name)
	if err != nil {
		return model.Pool{}, fmt.Errorf("PoolService.GetPool: %w", err)
	}
	return pool, nil
}

func (p *poolService) ListPools(ctx context.Context) []model.Pool {
	return p.registry.ListPools()
}

func (p *poolService) GetPoolStatistics(ctx context.Context, name string) (model.PoolStatistics, error) {
	pool, err := p.registry.GetPool(name)
	if err != nil {
		return model.PoolStatistics{}, fmt.Errorf("PoolService.GetPoolStatistics: %w", err)
	}
	return p.statistics(pool), nil
}

func (p *poolService) AllPoolStatistics() []model.PoolStatistics {
	pools := p.registry.ListPools()
	stats := make([]model.PoolStatistics, 0, len(pools))
	for _, pool := range pools {
		stats = append(stats, p.statistics(pool))
	}
	return stats
}

// statistics is computed from live registry, monitor and router state; members removed concurrently are skipped.
func (p *poolService) statistics(pool model.Pool) model.PoolStatistics {
	stats := model.PoolStatistics{
		Name:               pool.Name,
		Strategy:           pool.LoadBalancingStrategy,
		HealthDistribution: make(map[model.ServerStatus]int),
		Configuration:      pool.Configuration,
	}
	var scoreSum float64
	var scored int
	for _, id := range pool.ServerIDs {
		server, err := p.registry.Get(id)
		if err != nil {
			continue
		}
		stats.MemberCount++
		stats.HealthDistribution[server.Status]++
		if server.Status == model.ServerStatusActive {
			stats.ActiveCount++
		}
		if score, err := p.monitor.GetHealthScore(id); err == nil {
			scoreSum += score.Score
			scored++
		}
		stats.CurrentLoad += p.router.InFlight(id)
		stats.Capacity += server.Performance.MaxConcurrentConnections
		if p.router.CircuitState(id) == breaker.StateOpen {
			stats.OpenCircuits++
		}
	}
	if scored > 0 {
		stats.AverageHealthScore = math.Round(scoreSum/float64(scored)*100) / 100
	}
	return stats
}

func NewPoolService(registry registry.Registry, monitor health.Monitor, router router.Router) PoolService {
	return &poolService{
		registry: registry,
		monitor:  monitor,
		router:   router,
	}
}
