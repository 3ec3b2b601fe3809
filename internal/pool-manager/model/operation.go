package model

import "time"

type BackoffStrategy string

const (
	BackoffLinear      BackoffStrategy = "linear"
	BackoffExponential BackoffStrategy = "exponential"
)

type RequestPriority string

const (
	RequestPriorityCritical RequestPriority = "critical"
	RequestPriorityHigh     RequestPriority = "high"
	RequestPriorityNormal   RequestPriority = "normal"
	RequestPriorityLow      RequestPriority = "low"
)

// Rank returns 0 for the most urgent requests.
func (p RequestPriority) Rank() int {
	switch p {
	case RequestPriorityCritical:
		return 0
	case RequestPriorityHigh:
		return 1
	case RequestPriorityLow:
		return 3
	}
	return 2
}

type Consistency string

const (
	ConsistencyStrong   Consistency = "strong"
	ConsistencyEventual Consistency = "eventual"
	ConsistencyWeak     Consistency = "weak"
)

// Accepts reports whether a server in the given status may serve a request at this consistency level.
func (c Consistency) Accepts(status ServerStatus) bool {
	switch status {
	case ServerStatusActive:
		return true
	case ServerStatusDegraded:
		return c != ConsistencyStrong
	case ServerStatusInactive:
		return c == ConsistencyWeak
	}
	return false
}

type RetryConfig struct {
	MaxRetries      int             `json:"maxRetries"`
	BackoffStrategy BackoffStrategy `json:"backoffStrategy"`
	InitialDelayMs  int             `json:"initialDelayMs"`
	MaxDelayMs      int             `json:"maxDelayMs"`
}

type OperationRequest struct {
	OperationID string                 `json:"operationId"`
	ServerID    string                 `json:"serverId,omitempty"`
	PoolID      string                 `json:"poolId,omitempty"`
	Capability  string                 `json:"capability,omitempty"`
	Operation   string                 `json:"operation"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
	Context     map[string]interface{} `json:"context,omitempty"`
	TimeoutMs   int                    `json:"timeoutMs,omitempty"`
	RetryConfig *RetryConfig           `json:"retryConfig,omitempty"`
	Priority    RequestPriority        `json:"priority,omitempty"`
	Consistency Consistency            `json:"consistency,omitempty"`
	Idempotent  *bool                  `json:"idempotent,omitempty"`
	TraceID     string                 `json:"traceId,omitempty"`
	UserID      string                 `json:"userId,omitempty"`
	SessionID   string                 `json:"sessionId,omitempty"`
}

// RetriesTimeouts is false only when the caller declared the operation non-idempotent.
func (r OperationRequest) RetriesTimeouts() bool {
	return r.Idempotent == nil || *r.Idempotent
}

type OperationStatus string

const (
	OperationStatusSuccess OperationStatus = "success"
	OperationStatusError   OperationStatus = "error"
	OperationStatusTimeout OperationStatus = "timeout"
	OperationStatusRetry   OperationStatus = "retry"
)

type OperationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type OperationMetadata struct {
	PoolID       string   `json:"poolId,omitempty"`
	Attempts     int      `json:"attempts"`
	ServersTried []string `json:"serversTried"`
}

type OperationResponse struct {
	OperationID     string            `json:"operationId"`
	ServerID        string            `json:"serverId"`
	Status          OperationStatus   `json:"status"`
	Data            interface{}       `json:"data,omitempty"`
	Error           *OperationError   `json:"error,omitempty"`
	ExecutionTimeMs int64             `json:"executionTimeMs"`
	NetworkTimeMs   int64             `json:"networkTimeMs"`
	TotalTimeMs     int64             `json:"totalTimeMs"`
	Metadata        OperationMetadata `json:"metadata"`
}

// DispatchResult is what a transport returns for one successful attempt.
type DispatchResult struct {
	Data          interface{}
	ExecutionTime time.Duration
	NetworkTime   time.Duration
}

// UsageEvent is published once per executed operation.
type UsageEvent struct {
	OperationID string          `json:"operationId"`
	ServerID    string          `json:"serverId"`
	PoolID      string          `json:"poolId,omitempty"`
	Operation   string          `json:"operation"`
	Status      OperationStatus `json:"status"`
	LatencyMs   int64           `json:"latencyMs"`
	Success     bool            `json:"success"`
	Attempts    int             `json:"attempts"`
	UserID      string          `json:"userId,omitempty"`
	TraceID     string          `json:"traceId,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}

func (s BackoffStrategy) Valid() bool {
	return s == BackoffLinear || s == BackoffExponential
}

func (p RequestPriority) Valid() bool {
	switch p {
	case RequestPriorityCritical, RequestPriorityHigh, RequestPriorityNormal, RequestPriorityLow:
		return true
	}
	return false
}

func (c Consistency) Valid() bool {
	return c == ConsistencyStrong || c == ConsistencyEventual || c == ConsistencyWeak
}
