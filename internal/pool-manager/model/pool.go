package model

import "time"

type LoadBalancingStrategy string

const (
	StrategyRoundRobin       LoadBalancingStrategy = "round_robin"
	StrategyLeastConnections LoadBalancingStrategy = "least_connections"
	StrategyWeighted         LoadBalancingStrategy = "weighted"
	StrategyPriority         LoadBalancingStrategy = "priority"
	StrategyRandom           LoadBalancingStrategy = "random"
)

func (s LoadBalancingStrategy) Valid() bool {
	switch s {
	case StrategyRoundRobin, StrategyLeastConnections, StrategyWeighted, StrategyPriority, StrategyRandom:
		return true
	}
	return false
}

type PoolConfiguration struct {
	MinActiveServers        int `json:"minActiveServers" yaml:"minActiveServers"`
	MaxActiveServers        int `json:"maxActiveServers" yaml:"maxActiveServers"`
	HealthCheckIntervalMs   int `json:"healthCheckIntervalMs" yaml:"healthCheckIntervalMs"`
	FailoverTimeoutMs       int `json:"failoverTimeoutMs" yaml:"failoverTimeoutMs"`
	CircuitBreakerThreshold int `json:"circuitBreakerThreshold" yaml:"circuitBreakerThreshold"`
}

type Pool struct {
	Name                  string                `json:"name" gorm:"primaryKey"`
	Description           string                `json:"description"`
	Capability            string                `json:"capability"`
	ServerIDs             []string              `json:"serverIds" gorm:"serializer:json"`
	LoadBalancingStrategy LoadBalancingStrategy `json:"loadBalancingStrategy"`
	Configuration         PoolConfiguration     `json:"configuration" gorm:"serializer:json"`
	CreatedAt             time.Time             `json:"createdAt"`
	UpdatedAt             time.Time             `json:"updatedAt"`
}

func (Pool) TableName() string {
	return "pools"
}

func (p Pool) HasServer(id string) bool {
	for _, s := range p.ServerIDs {
		if s == id {
			return true
		}
	}
	return false
}

type PoolPatch struct {
	Description           *string
	Capability            *string
	ServerIDs             []string
	LoadBalancingStrategy *LoadBalancingStrategy
	Configuration         *PoolConfiguration
}

func (p PoolPatch) Apply(pool Pool) Pool {
	if p.Description != nil {
		pool.Description = *p.Description
	}
	if p.Capability != nil {
		pool.Capability = *p.Capability
	}
	if p.ServerIDs != nil {
		pool.ServerIDs = p.ServerIDs
	}
	if p.LoadBalancingStrategy != nil {
		pool.LoadBalancingStrategy = *p.LoadBalancingStrategy
	}
	if p.Configuration != nil {
		pool.Configuration = *p.Configuration
	}
	return pool
}

type PoolStatistics struct {
	Name               string                `json:"name"`
	Strategy           LoadBalancingStrategy `json:"strategy"`
	MemberCount        int                   `json:"memberCount"`
	ActiveCount        int                   `json:"activeCount"`
	HealthDistribution map[ServerStatus]int  `json:"healthDistribution"`
	AverageHealthScore float64               `json:"averageHealthScore"`
	CurrentLoad        int64                 `json:"currentLoad"`
	Capacity           int                   `json:"capacity"`
	OpenCircuits       int                   `json:"openCircuits"`
	Configuration      PoolConfiguration     `json:"configuration"`
}
