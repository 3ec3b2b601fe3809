package alert

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"strings"
)

func validateRule(rule model.AlertRule) error {
	if strings.TrimSpace(rule.Name) == "" {
		return apperrors.NewValidationError("name", "is required")
	}
	cond := rule.Condition
	if _, ok := cond.Metric.Value(model.HealthScore{}); !ok {
		return apperrors.NewValidationError("condition.metric", "unknown metric "+string(cond.Metric))
	}
	switch cond.Operator {
	case model.OperatorGT, model.OperatorLT, model.OperatorEQ, model.OperatorGTE, model.OperatorLTE:
	default:
		return apperrors.NewValidationError("condition.operator", "must be one of gt, lt, eq, gte, lte")
	}
	switch cond.Aggregation {
	case model.AggregationAvg, model.AggregationMax, model.AggregationMin, model.AggregationSum, model.AggregationCount:
	default:
		return apperrors.NewValidationError("condition.aggregation", "must be one of avg, max, min, sum, count")
	}
	if cond.Threshold <= 0 {
		return apperrors.NewValidationError("condition.threshold", "must be greater than 0")
	}
	if cond.DurationSeconds <= 0 {
		return apperrors.NewValidationError("condition.durationSeconds", "must be greater than 0")
	}
	if rule.CooldownMinutes < 0 {
		return apperrors.NewValidationError("cooldownMinutes", "must not be negative")
	}
	switch rule.Severity {
	case model.SeverityWarning, model.SeverityError, model.SeverityCritical:
	default:
		return apperrors.NewValidationError("severity", "must be one of warning, error, critical")
	}
	return nil
}
