package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OperationRepository remembers operation ids so a retried client call is not executed twice.
type OperationRepository interface {
	// ReserveOperationID returns false when the id was already reserved within ttl.
	ReserveOperationID(ctx context.Context, operationID string) (bool, error)
	// ReleaseOperationID forgets a reservation for an operation that never reached a server.
	ReleaseOperationID(ctx context.Context, operationID string) error
}

type operationRepository struct {
	redis *redis.Client
	ttl   time.Duration
}

func (*operationRepository) getOperationKey(operationID string) string {
	return fmt.Sprintf("operation:%s", operationID)
}

func (o *operationRepository) ReserveOperationID(ctx context.Context, operationID string) (bool, error) {
	ok, err := o.redis.SetNX(ctx, o.getOperationKey(operationID), 1, o.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("operationRepository.ReserveOperationID: %w", err)
	}
	return ok, nil
}

func (o *operationRepository) ReleaseOperationID(ctx context.Context, operationID string) error {
	if err := o.redis.Del(ctx, o.getOperationKey(operationID)).Err(); err != nil {
		return fmt.Errorf("operationRepository.ReleaseOperationID: %w", err)
	}
	return nil
}

func NewOperationRepository(redis *redis.Client, ttl time.Duration) OperationRepository {
	return &operationRepository{
		redis: redis,
		ttl:   ttl,
	}
}
