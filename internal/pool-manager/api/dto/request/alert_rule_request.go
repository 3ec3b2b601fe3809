package request

type AlertConditionRequest struct {
	Metric          string   `json:"metric" binding:"required,oneof=health_score error_rate uptime latency_ms latency_p95_ms consecutive_failures"`
	Operator        string   `json:"operator" binding:"required,oneof=gt lt eq gte lte"`
	Threshold       *float64 `json:"threshold" binding:"required,gt=0"`
	DurationSeconds int      `json:"durationSeconds" binding:"required,gte=1"`
	Aggregation     string   `json:"aggregation" binding:"omitempty,oneof=avg max min sum count"`
}

type AlertRuleRequest struct {
	Name            string                `json:"name" binding:"required"`
	Description     string                `json:"description"`
	Condition       AlertConditionRequest `json:"condition"`
	Severity        string                `json:"severity" binding:"required,oneof=warning error critical"`
	CooldownMinutes *int                  `json:"cooldownMinutes" binding:"omitempty,gte=0"`
	Enabled         *bool                 `json:"enabled"`
	ServerIDs       []string              `json:"serverIds"`
	Tags            []string              `json:"tags"`
}

type UpdateAlertRuleRequest struct {
	Name            *string                `json:"name" binding:"omitempty,min=1"`
	Description     *string                `json:"description"`
	Condition       *AlertConditionRequest `json:"condition"`
	Severity        *string                `json:"severity" binding:"omitempty,oneof=warning error critical"`
	CooldownMinutes *int                   `json:"cooldownMinutes" binding:"omitempty,gte=0"`
	Enabled         *bool                  `json:"enabled"`
	ServerIDs       []string               `json:"serverIds"`
	Tags            []string               `json:"tags"`
}
