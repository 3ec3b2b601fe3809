package alert

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/metrics"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/repository"
	"Integration_Pool_Manager/pkg/mail"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	QueueSize    int
	AutoResolve  bool
	MaxSampleAge time.Duration
	Recipients   []string
}

// Engine evaluates alert rules against health snapshots.
type Engine interface {
	Load(ctx context.Context) error
	Start()
	Stop()
	// Observe hands a snapshot to the evaluation worker. It never blocks; snapshots are dropped when the queue is full.
	Observe(score model.HealthScore)
	OnServerRemoved(serverID string)

	CreateRule(ctx context.Context, rule model.AlertRule) (model.AlertRule, error)
	UpdateRule(ctx context.Context, id string, patch model.AlertRulePatch) (model.AlertRule, error)
	DeleteRule(ctx context.Context, id string) error
	ListRules() []model.AlertRule

	ActiveAlerts() []model.Alert
	History(ctx context.Context, limit int, offset int) ([]model.Alert, error)
	ResolveAlert(ctx context.Context, id string) (model.Alert, error)
	CountActiveBySeverity() map[model.AlertSeverity]int
	PurgeHistory(ctx context.Context, olderThan time.Duration) (int64, error)
}

type observation struct {
	at    time.Time
	score model.HealthScore
}

type engine struct {
	mu        sync.Mutex
	rules     map[string]model.AlertRule
	active    map[string]model.Alert
	lastFired map[string]time.Time
	samples   map[string][]observation

	queue  chan model.HealthScore
	cancel context.CancelFunc
	wg     sync.WaitGroup

	repo       repository.AlertRepository
	mailSender mail.Sender
	metrics    *metrics.Metrics
	cfg        Config
	logger     *zap.Logger
	now        func() time.Time
}

func pairKey(ruleID, serverID string) string {
	return ruleID + "/" + serverID
}

func (e *engine) Load(ctx context.Context) error {
	rules, err := e.repo.GetRules(ctx)
	if err != nil {
		return fmt.Errorf("Engine.Load: %w", err)
	}
	alerts, err := e.repo.GetActiveAlerts(ctx)
	if err != nil {
		return fmt.Errorf("Engine.Load: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range rules {
		e.rules[r.ID] = r
	}
	for _, a := range alerts {
		key := pairKey(a.RuleID, a.ServerID)
		e.active[key] = a
		if a.FiredAt.After(e.lastFired[key]) {
			e.lastFired[key] = a.FiredAt
		}
	}
	return nil
}

func (e *engine) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case score := <-e.queue:
				e.evaluate(ctx, score)
			}
		}
	}()
}

func (e *engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()
}

func (e *engine) Observe(score model.HealthScore) {
	select {
	case e.queue <- score:
	default:
		e.metrics.EventDropped("alert")
	}
}

// OnServerRemoved forgets the server and resolves the alerts still open for it.
func (e *engine) OnServerRemoved(serverID string) {
	e.mu.Lock()
	delete(e.samples, serverID)
	var open []model.Alert
	for key, a := range e.active {
		if a.ServerID == serverID {
			open = append(open, a)
			delete(e.active, key)
		}
	}
	for key := range e.lastFired {
		if strings.HasSuffix(key, "/"+serverID) {
			delete(e.lastFired, key)
		}
	}
	e.mu.Unlock()

	resolvedAt := e.now()
	for _, a := range open {
		if err := e.repo.ResolveAlert(context.Background(), a.ID, resolvedAt); err != nil {
			e.logger.Error("failed to resolve alert of removed server",
				zap.String("alert_id", a.ID), zap.String("server_id", serverID), zap.Error(err))
			continue
		}
		e.logger.Info("alert resolved, server removed", zap.String("alert_id", a.ID), zap.String("server_id", serverID))
	}
}

// evaluate records the snapshot and fires or resolves alerts for every enabled rule scoped to its server.
func (e *engine) evaluate(ctx context.Context, score model.HealthScore) {
	now := e.now()

	e.mu.Lock()
	samples := append(e.samples[score.ServerID], observation{at: now, score: score})
	cutoff := now.Add(-e.cfg.MaxSampleAge)
	i := 0
	for i < len(samples) && samples[i].at.Before(cutoff) {
		i++
	}
	samples = samples[i:]
	e.samples[score.ServerID] = samples

	var fired, resolved []model.Alert
	for _, rule := range e.rules {
		if !rule.Enabled || !rule.AppliesTo(score.ServerID) {
			continue
		}
		value, ok := aggregate(rule.Condition, samples, now)
		if !ok {
			continue
		}
		key := pairKey(rule.ID, score.ServerID)
		existing, isActive := e.active[key]

		if !rule.Condition.Operator.Compare(value, rule.Condition.Threshold) {
			if isActive && e.cfg.AutoResolve {
				delete(e.active, key)
				resolvedAt := now
				existing.Resolved = true
				existing.ResolvedAt = &resolvedAt
				resolved = append(resolved, existing)
			}
			continue
		}
		if isActive {
			continue
		}
		cooldown := time.Duration(rule.CooldownMinutes) * time.Minute
		if last, ok := e.lastFired[key]; ok && now.Sub(last) < cooldown {
			continue
		}
		a := model.Alert{
			ID:        uuid.NewString(),
			RuleID:    rule.ID,
			RuleName:  rule.Name,
			ServerID:  score.ServerID,
			Severity:  rule.Severity,
			Metric:    rule.Condition.Metric,
			Value:     value,
			Threshold: rule.Condition.Threshold,
			Message: fmt.Sprintf("%s on server %s: %s %s of %s is %.2f, threshold %.2f",
				rule.Name, score.ServerID, rule.Condition.Aggregation, rule.Condition.Metric,
				rule.Condition.Operator, value, rule.Condition.Threshold),
			FiredAt: now,
		}
		e.active[key] = a
		e.lastFired[key] = now
		fired = append(fired, a)
	}
	e.mu.Unlock()

	for _, a := range fired {
		e.metrics.AlertFired(string(a.Severity))
		e.logger.Warn("alert fired",
			zap.String("alert_id", a.ID),
			zap.String("rule_id", a.RuleID),
			zap.String("server_id", a.ServerID),
			zap.String("severity", string(a.Severity)),
			zap.Float64("value", a.Value))
		if err := e.repo.CreateAlert(ctx, a); err != nil {
			e.logger.Error("failed to persist alert", zap.String("alert_id", a.ID), zap.Error(err))
		}
		if a.Severity == model.SeverityCritical {
			e.notify(a)
		}
	}
	for _, a := range resolved {
		e.logger.Info("alert auto resolved", zap.String("alert_id", a.ID), zap.String("server_id", a.ServerID))
		if err := e.repo.ResolveAlert(ctx, a.ID, *a.ResolvedAt); err != nil {
			e.logger.Error("failed to persist alert resolution", zap.String("alert_id", a.ID), zap.Error(err))
		}
	}
}

// aggregate folds the metric over the samples inside the rule's duration.
func aggregate(cond model.AlertCondition, samples []observation, now time.Time) (float64, bool) {
	since := now.Add(-time.Duration(cond.DurationSeconds) * time.Second)
	values := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s.at.Before(since) {
			continue
		}
		v, ok := cond.Metric.Value(s.score)
		if !ok {
			return 0, false
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return 0, false
	}
	return cond.Aggregation.Apply(values), true
}

func (e *engine) notify(a model.Alert) {
	if e.mailSender == nil || len(e.cfg.Recipients) == 0 {
		return
	}
	subject := fmt.Sprintf("[CRITICAL] %s on %s", a.RuleName, a.ServerID)
	textBody := fmt.Sprintf("%s\nFired at: %s", a.Message, a.FiredAt.Format(time.RFC3339))
	htmlBody := fmt.Sprintf("<body><p>%s</p><p>Fired at: %s</p></body>", a.Message, a.FiredAt.Format(time.RFC3339))
	if err := e.mailSender.SendMail(e.cfg.Recipients, subject, htmlBody, textBody, nil); err != nil {
		e.logger.Error("failed to send alert mail", zap.String("alert_id", a.ID), zap.Error(err))
	}
}

func (e *engine) CreateRule(ctx context.Context, rule model.AlertRule) (model.AlertRule, error) {
	if rule.Condition.Aggregation == "" {
		rule.Condition.Aggregation = model.AggregationAvg
	}
	if err := validateRule(rule); err != nil {
		return model.AlertRule{}, fmt.Errorf("Engine.CreateRule: %w", err)
	}
	rule.ID = uuid.NewString()
	rule.CreatedAt = e.now()
	rule.UpdatedAt = rule.CreatedAt

	created, err := e.repo.CreateRule(ctx, rule)
	if err != nil {
		return model.AlertRule{}, fmt.Errorf("Engine.CreateRule: %w", err)
	}
	e.mu.Lock()
	e.rules[created.ID] = created
	e.mu.Unlock()
	return created, nil
}

func (e *engine) UpdateRule(ctx context.Context, id string, patch model.AlertRulePatch) (model.AlertRule, error) {
	e.mu.Lock()
	current, ok := e.rules[id]
	e.mu.Unlock()
	if !ok {
		return model.AlertRule{}, fmt.Errorf("Engine.UpdateRule: %w", apperrors.NewNotFoundError(apperrors.ErrAlertRuleNotFound, id))
	}

	updated := patch.Apply(current)
	if err := validateRule(updated); err != nil {
		return model.AlertRule{}, fmt.Errorf("Engine.UpdateRule: %w", err)
	}
	updated.UpdatedAt = e.now()
	if err := e.repo.UpdateRule(ctx, updated); err != nil {
		return model.AlertRule{}, fmt.Errorf("Engine.UpdateRule: %w", err)
	}
	e.mu.Lock()
	e.rules[id] = updated
	e.mu.Unlock()
	return updated, nil
}

func (e *engine) DeleteRule(ctx context.Context, id string) error {
	e.mu.Lock()
	_, ok := e.rules[id]
	e.mu.Unlock()
	if !ok {
		return fmt.Errorf("Engine.DeleteRule: %w", apperrors.NewNotFoundError(apperrors.ErrAlertRuleNotFound, id))
	}
	if err := e.repo.DeleteRule(ctx, id); err != nil {
		return fmt.Errorf("Engine.DeleteRule: %w", err)
	}
	e.mu.Lock()
	delete(e.rules, id)
	e.mu.Unlock()
	return nil
}

func (e *engine) ListRules() []model.AlertRule {
	e.mu.Lock()
	rules := make([]model.AlertRule, 0, len(e.rules))
	for _, r := range e.rules {
		rules = append(rules, r)
	}
	e.mu.Unlock()
	sort.Slice(rules, func(i, j int) bool { return rules[i].CreatedAt.Before(rules[j].CreatedAt) })
	return rules
}

func (e *engine) ActiveAlerts() []model.Alert {
	e.mu.Lock()
	alerts := make([]model.Alert, 0, len(e.active))
	for _, a := range e.active {
		alerts = append(alerts, a)
	}
	e.mu.Unlock()
	sort.Slice(alerts, func(i, j int) bool { return alerts[i].FiredAt.After(alerts[j].FiredAt) })
	return alerts
}

func (e *engine) History(ctx context.Context, limit int, offset int) ([]model.Alert, error) {
	alerts, err := e.repo.GetAlertHistory(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("Engine.History: %w", err)
	}
	return alerts, nil
}

func (e *engine) ResolveAlert(ctx context.Context, id string) (model.Alert, error) {
	e.mu.Lock()
	var key string
	var found model.Alert
	for k, a := range e.active {
		if a.ID == id {
			key, found = k, a
			break
		}
	}
	e.mu.Unlock()
	if key == "" {
		return model.Alert{}, fmt.Errorf("Engine.ResolveAlert: %w", apperrors.NewNotFoundError(apperrors.ErrAlertNotFound, id))
	}

	resolvedAt := e.now()
	if err := e.repo.ResolveAlert(ctx, id, resolvedAt); err != nil {
		return model.Alert{}, fmt.Errorf("Engine.ResolveAlert: %w", err)
	}
	e.mu.Lock()
	if a, ok := e.active[key]; ok && a.ID == id {
		delete(e.active, key)
	}
	e.mu.Unlock()

	found.Resolved = true
	found.ResolvedAt = &resolvedAt
	return found, nil
}

func (e *engine) CountActiveBySeverity() map[model.AlertSeverity]int {
	counts := map[model.AlertSeverity]int{
		model.SeverityWarning:  0,
		model.SeverityError:    0,
		model.SeverityCritical: 0,
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, a := range e.active {
		counts[a.Severity]++
	}
	return counts
}

func (e *engine) PurgeHistory(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := e.repo.DeleteResolvedAlertsBefore(ctx, e.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("Engine.PurgeHistory: %w", err)
	}
	return n, nil
}

func NewEngine(repo repository.AlertRepository, mailSender mail.Sender, metrics *metrics.Metrics, cfg Config, logger *zap.Logger) Engine {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.MaxSampleAge <= 0 {
		cfg.MaxSampleAge = time.Hour
	}
	return &engine{
		rules:      make(map[string]model.AlertRule),
		active:     make(map[string]model.Alert),
		lastFired:  make(map[string]time.Time),
		samples:    make(map[string][]observation),
		queue:      make(chan model.HealthScore, cfg.QueueSize),
		repo:       repo,
		mailSender: mailSender,
		metrics:    metrics,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}
