package model

import (
	"time"
)

type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityError    AlertSeverity = "error"
	SeverityCritical AlertSeverity = "critical"
)

type AlertMetric string

const (
	MetricHealthScore         AlertMetric = "health_score"
	MetricErrorRate           AlertMetric = "error_rate"
	MetricUptime              AlertMetric = "uptime"
	MetricLatency             AlertMetric = "latency_ms"
	MetricLatencyP95          AlertMetric = "latency_p95_ms"
	MetricConsecutiveFailures AlertMetric = "consecutive_failures"
)

// Value extracts the metric from a health snapshot.
func (m AlertMetric) Value(score HealthScore) (float64, bool) {
	switch m {
	case MetricHealthScore:
		return score.Score, true
	case MetricErrorRate:
		return score.ErrorRate, true
	case MetricUptime:
		return score.Uptime, true
	case MetricLatency:
		return score.AverageLatencyMs, true
	case MetricLatencyP95:
		return score.LatencyP95Ms, true
	case MetricConsecutiveFailures:
		return float64(score.ConsecutiveFailures), true
	}
	return 0, false
}

type ComparisonOperator string

const (
	OperatorGT  ComparisonOperator = "gt"
	OperatorLT  ComparisonOperator = "lt"
	OperatorEQ  ComparisonOperator = "eq"
	OperatorGTE ComparisonOperator = "gte"
	OperatorLTE ComparisonOperator = "lte"
)

func (o ComparisonOperator) Compare(value, threshold float64) bool {
	switch o {
	case OperatorGT:
		return value > threshold
	case OperatorLT:
		return value < threshold
	case OperatorEQ:
		return value == threshold
	case OperatorGTE:
		return value >= threshold
	case OperatorLTE:
		return value <= threshold
	}
	return false
}

type Aggregation string

const (
	AggregationAvg   Aggregation = "avg"
	AggregationMax   Aggregation = "max"
	AggregationMin   Aggregation = "min"
	AggregationSum   Aggregation = "sum"
	AggregationCount Aggregation = "count"
)

func (a Aggregation) Apply(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	switch a {
	case AggregationMax:
		m := values[0]
		for _, v := range values[1:] {
			m = max(m, v)
		}
		return m
	case AggregationMin:
		m := values[0]
		for _, v := range values[1:] {
			m = min(m, v)
		}
		return m
	case AggregationSum:
		var s float64
		for _, v := range values {
			s += v
		}
		return s
	case AggregationCount:
		return float64(len(values))
	default:
		var s float64
		for _, v := range values {
			s += v
		}
		return s / float64(len(values))
	}
}

type AlertCondition struct {
	Metric          AlertMetric        `json:"metric" yaml:"metric"`
	Operator        ComparisonOperator `json:"operator" yaml:"operator"`
	Threshold       float64            `json:"threshold" yaml:"threshold"`
	DurationSeconds int                `json:"durationSeconds" yaml:"durationSeconds"`
	Aggregation     Aggregation        `json:"aggregation" yaml:"aggregation"`
}

type AlertRule struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Condition       AlertCondition `json:"condition" gorm:"serializer:json"`
	Severity        AlertSeverity  `json:"severity"`
	CooldownMinutes int            `json:"cooldownMinutes"`
	Enabled         bool           `json:"enabled"`
	ServerIDs       []string       `json:"serverIds,omitempty" gorm:"serializer:json"`
	Tags            []string       `json:"tags,omitempty" gorm:"serializer:json"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func (AlertRule) TableName() string {
	return "alert_rules"
}

// AppliesTo reports whether the rule is scoped to the server. An empty scope matches all servers.
func (r AlertRule) AppliesTo(serverID string) bool {
	if len(r.ServerIDs) == 0 {
		return true
	}
	for _, id := range r.ServerIDs {
		if id == serverID {
			return true
		}
	}
	return false
}

type AlertRulePatch struct {
	Name            *string
	Description     *string
	Condition       *AlertCondition
	Severity        *AlertSeverity
	CooldownMinutes *int
	Enabled         *bool
	ServerIDs       []string
	Tags            []string
}

func (p AlertRulePatch) Apply(rule AlertRule) AlertRule {
	if p.Name != nil {
		rule.Name = *p.Name
	}
	if p.Description != nil {
		rule.Description = *p.Description
	}
	if p.Condition != nil {
		rule.Condition = *p.Condition
	}
	if p.Severity != nil {
		rule.Severity = *p.Severity
	}
	if p.CooldownMinutes != nil {
		rule.CooldownMinutes = *p.CooldownMinutes
	}
	if p.Enabled != nil {
		rule.Enabled = *p.Enabled
	}
	if p.ServerIDs != nil {
		rule.ServerIDs = p.ServerIDs
	}
	if p.Tags != nil {
		rule.Tags = p.Tags
	}
	return rule
}

type Alert struct {
	ID         string        `json:"id" gorm:"primaryKey"`
	RuleID     string        `json:"ruleId"`
	RuleName   string        `json:"ruleName"`
	ServerID   string        `json:"serverId"`
	Severity   AlertSeverity `json:"severity"`
	Metric     AlertMetric   `json:"metric"`
	Value      float64       `json:"value"`
	Threshold  float64       `json:"threshold"`
	Message    string        `json:"message"`
	Resolved   bool          `json:"resolved"`
	ResolvedAt *time.Time    `json:"resolvedAt,omitempty"`
	FiredAt    time.Time     `json:"firedAt"`
}

func (Alert) TableName() string {
	return "alerts"
}
