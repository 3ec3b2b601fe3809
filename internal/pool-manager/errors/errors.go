package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound      = errors.New("server not found")
	ErrPoolNotFound        = errors.New("pool not found")
	ErrAlertRuleNotFound   = errors.New("alert rule not found")
	ErrAlertNotFound       = errors.New("alert not found")
	ErrServerNameExists    = errors.New("server name already exists")
	ErrPoolNameExists      = errors.New("pool name already exists")
	ErrNoAvailableServers  = errors.New("no available servers")
	ErrCircuitOpen         = errors.New("all candidate circuits are open")
	ErrDuplicateOperation  = errors.New("operation id already used")
	ErrAdmissionCancelled  = errors.New("operation cancelled while waiting for admission")
	ErrUnsupportedProtocol = errors.New("unsupported protocol")
)

// ValidationError reports malformed input. It is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError wraps one of the not-found sentinels together with the missing id.
type NotFoundError struct {
	Kind error
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Kind
}

func NewNotFoundError(kind error, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// ConstraintViolationError is returned when a change would break a pool invariant.
type ConstraintViolationError struct {
	Pool   string
	Reason string
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("pool %s: %s", e.Pool, e.Reason)
}

func NewConstraintViolationError(pool, reason string) error {
	return &ConstraintViolationError{Pool: pool, Reason: reason}
}

type ConflictError struct {
	Kind error
	Key  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Key)
}

func (e *ConflictError) Unwrap() error {
	return e.Kind
}

func NewConflictError(kind error, key string) error {
	return &ConflictError{Kind: kind, Key: key}
}

// DispatchError is a single failed attempt against a server.
type DispatchError struct {
	ServerID   string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *DispatchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("dispatch to %s failed with status %d: %v", e.ServerID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("dispatch to %s failed: %v", e.ServerID, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

type DispatchTimeoutError struct {
	ServerID string
	Timeout  string
}

func (e *DispatchTimeoutError) Error() string {
	return fmt.Sprintf("dispatch to %s timed out after %s", e.ServerID, e.Timeout)
}

// AuthenticationError is raised when a downstream server rejects our credentials.
type AuthenticationError struct {
	ServerID   string
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("server %s rejected credentials with status %d", e.ServerID, e.StatusCode)
}

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, typeReason string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       typeReason,
		Reason:     reason,
	}
}
