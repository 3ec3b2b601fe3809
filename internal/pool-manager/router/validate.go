package router

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"fmt"
)

const maxRetriesLimit = 10

func validateRequest(req model.OperationRequest) error {
	if req.Operation == "" {
		return apperrors.NewValidationError("operation", "is required")
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return apperrors.NewValidationError("priority", fmt.Sprintf("unknown priority %q", req.Priority))
	}
	if req.Consistency != "" && !req.Consistency.Valid() {
		return apperrors.NewValidationError("consistency", fmt.Sprintf("unknown consistency %q", req.Consistency))
	}
	if req.TimeoutMs < 0 {
		return apperrors.NewValidationError("timeoutMs", "must not be negative")
	}
	if rc := req.RetryConfig; rc != nil {
		if rc.MaxRetries < 0 || rc.MaxRetries > maxRetriesLimit {
			return apperrors.NewValidationError("retryConfig.maxRetries", fmt.Sprintf("must be between 0 and %d", maxRetriesLimit))
		}
		if rc.BackoffStrategy != "" && !rc.BackoffStrategy.Valid() {
			return apperrors.NewValidationError("retryConfig.backoffStrategy", fmt.Sprintf("unknown strategy %q", rc.BackoffStrategy))
		}
		if rc.InitialDelayMs < 0 || rc.MaxDelayMs < 0 {
			return apperrors.NewValidationError("retryConfig", "delays must not be negative")
		}
		if rc.MaxDelayMs > 0 && rc.MaxDelayMs < rc.InitialDelayMs {
			return apperrors.NewValidationError("retryConfig.maxDelayMs", "must not be lower than initialDelayMs")
		}
	}
	return nil
}
