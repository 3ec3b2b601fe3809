package bootstrap

import (
	"Integration_Pool_Manager/internal/pool-manager/alert"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/registry"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the on-disk seed. Pools and alert rules reference servers by name, ids are generated on registration.
type File struct {
	Servers    []ServerEntry    `yaml:"servers"`
	Pools      []PoolEntry      `yaml:"pools"`
	AlertRules []AlertRuleEntry `yaml:"alertRules"`
}

type ServerEntry struct {
	Name           string                  `yaml:"name"`
	Description    string                  `yaml:"description"`
	Version        string                  `yaml:"version"`
	Status         model.ServerStatus      `yaml:"status"`
	Endpoint       string                  `yaml:"endpoint"`
	Protocol       model.Protocol          `yaml:"protocol"`
	Authentication model.Authentication    `yaml:"authentication"`
	Capabilities   []model.Capability      `yaml:"capabilities"`
	Performance    model.Performance       `yaml:"performance"`
	Region         string                  `yaml:"region"`
	Priority       model.Priority          `yaml:"priority"`
	HealthCheck    model.HealthCheckConfig `yaml:"healthCheck"`
	Tags           []string                `yaml:"tags"`
	Metadata       map[string]interface{}  `yaml:"metadata"`
}

type PoolEntry struct {
	Name                  string                      `yaml:"name"`
	Description           string                      `yaml:"description"`
	Capability            string                      `yaml:"capability"`
	Servers               []string                    `yaml:"servers"`
	LoadBalancingStrategy model.LoadBalancingStrategy `yaml:"loadBalancingStrategy"`
	Configuration         model.PoolConfiguration     `yaml:"configuration"`
}

type AlertRuleEntry struct {
	Name            string               `yaml:"name"`
	Description     string               `yaml:"description"`
	Condition       model.AlertCondition `yaml:"condition"`
	Severity        model.AlertSeverity  `yaml:"severity"`
	CooldownMinutes *int                 `yaml:"cooldownMinutes"`
	Enabled         *bool                `yaml:"enabled"`
	Servers         []string             `yaml:"servers"`
	Tags            []string             `yaml:"tags"`
}

const defaultCooldownMinutes = 15

// Load reads a seed file. ${VAR} references are expanded from the environment so credentials stay out of the file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("bootstrap.Load: %w", err)
	}
	var file File
	if err = yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &file); err != nil {
		return File{}, fmt.Errorf("bootstrap.Load: %w", err)
	}
	return file, nil
}

type Seeder struct {
	registry registry.Registry
	alerts   alert.Engine
	logger   *zap.Logger
}

func NewSeeder(registry registry.Registry, alerts alert.Engine, logger *zap.Logger) *Seeder {
	return &Seeder{registry: registry, alerts: alerts, logger: logger}
}

// Seed registers the file contents. Servers and pools are only seeded into an empty registry,
// alert rules only when no rule exists yet.
func (s *Seeder) Seed(ctx context.Context, file File) error {
	ids := make(map[string]string)
	existing := s.registry.List(model.ServerFilter{})
	if len(existing) == 0 && len(s.registry.ListPools()) == 0 {
		for _, entry := range file.Servers {
			server, err := s.registry.Register(ctx, entry.toServerConfig())
			if err != nil {
				return fmt.Errorf("Seeder.Seed: server %s: %w", entry.Name, err)
			}
			ids[entry.Name] = server.ID
		}
		for _, entry := range file.Pools {
			serverIDs, err := resolveNames(ids, entry.Servers)
			if err != nil {
				return fmt.Errorf("Seeder.Seed: pool %s: %w", entry.Name, err)
			}
			pool := model.Pool{
				Name:                  entry.Name,
				Description:           entry.Description,
				Capability:            entry.Capability,
				ServerIDs:             serverIDs,
				LoadBalancingStrategy: entry.LoadBalancingStrategy,
				Configuration:         entry.Configuration,
			}
			if _, err = s.registry.CreatePool(ctx, pool); err != nil {
				return fmt.Errorf("Seeder.Seed: pool %s: %w", entry.Name, err)
			}
		}
		s.logger.Info("seeded registry", zap.Int("servers", len(file.Servers)), zap.Int("pools", len(file.Pools)))
	} else {
		for _, server := range existing {
			ids[server.Name] = server.ID
		}
		s.logger.Info("registry is not empty, skipping server and pool seed")
	}

	if len(s.alerts.ListRules()) > 0 {
		s.logger.Info("alert rules already exist, skipping rule seed")
		return nil
	}
	for _, entry := range file.AlertRules {
		serverIDs, err := resolveNames(ids, entry.Servers)
		if err != nil {
			return fmt.Errorf("Seeder.Seed: alert rule %s: %w", entry.Name, err)
		}
		rule := model.AlertRule{
			Name:            entry.Name,
			Description:     entry.Description,
			Condition:       entry.Condition,
			Severity:        entry.Severity,
			CooldownMinutes: defaultCooldownMinutes,
			Enabled:         true,
			ServerIDs:       serverIDs,
			Tags:            entry.Tags,
		}
		if entry.CooldownMinutes != nil {
			rule.CooldownMinutes = *entry.CooldownMinutes
		}
		if entry.Enabled != nil {
			rule.Enabled = *entry.Enabled
		}
		if _, err = s.alerts.CreateRule(ctx, rule); err != nil {
			return fmt.Errorf("Seeder.Seed: alert rule %s: %w", entry.Name, err)
		}
	}
	s.logger.Info("seeded alert rules", zap.Int("rules", len(file.AlertRules)))
	return nil
}

func resolveNames(ids map[string]string, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		id, ok := ids[name]
		if !ok {
			return nil, fmt.Errorf("unknown server %q", name)
		}
		out = append(out, id)
	}
	return out, nil
}

func (e ServerEntry) toServerConfig() model.ServerConfig {
	return model.ServerConfig{
		Name:           e.Name,
		Description:    e.Description,
		Version:        e.Version,
		Status:         e.Status,
		Endpoint:       e.Endpoint,
		Protocol:       e.Protocol,
		Authentication: e.Authentication,
		Capabilities:   e.Capabilities,
		Performance:    e.Performance,
		Region:         e.Region,
		Priority:       e.Priority,
		HealthCheck:    e.HealthCheck,
		Tags:           e.Tags,
		Metadata:       e.Metadata,
	}
}
