package request

import "Integration_Pool_Manager/internal/pool-manager/model"

type ExecuteOperationRequest struct {
	OperationID string                 `json:"operationId"`
	ServerID    string                 `json:"serverId"`
	PoolID      string                 `json:"poolId"`
	Capability  string                 `json:"capability"`
	Operation   string                 `json:"operation" binding:"required"`
	Parameters  map[string]interface{} `json:"parameters"`
	Context     map[string]interface{} `json:"context"`
	TimeoutMs   int                    `json:"timeoutMs" binding:"gte=0"`
	RetryConfig *model.RetryConfig     `json:"retryConfig"`
	Priority    string                 `json:"priority" binding:"omitempty,oneof=critical high normal low"`
	Consistency string                 `json:"consistency" binding:"omitempty,oneof=strong eventual weak"`
	Idempotent  *bool                  `json:"idempotent"`
	TraceID     string                 `json:"traceId"`
	SessionID   string                 `json:"sessionId"`
}
