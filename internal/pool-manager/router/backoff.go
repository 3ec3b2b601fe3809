package router

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"time"
)

// backoffDelay returns the wait before retry number attempt (1-based).
func backoffDelay(cfg model.RetryConfig, attempt int) time.Duration {
	initial := time.Duration(cfg.InitialDelayMs) * time.Millisecond
	maxDelay := time.Duration(cfg.MaxDelayMs) * time.Millisecond
	if attempt < 1 || initial <= 0 {
		return 0
	}

	var delay time.Duration
	switch cfg.BackoffStrategy {
	case model.BackoffLinear:
		delay = initial * time.Duration(attempt)
	default:
		delay = initial
		for i := 1; i < attempt; i++ {
			delay *= 2
			if maxDelay > 0 && delay >= maxDelay {
				break
			}
		}
	}
	if maxDelay > 0 && delay > maxDelay {
		delay = maxDelay
	}
	return delay
}
