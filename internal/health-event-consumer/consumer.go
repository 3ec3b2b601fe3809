package health_event_consumer

import (
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/repository"
	"Integration_Pool_Manager/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var errInvalidEvent = errors.New("invalid health check event")

// HealthEventConsumer indexes the probe results published by the pool manager into Elasticsearch.
type HealthEventConsumer interface {
	Start()
	Stop()
}

type healthEventConsumer struct {
	kafkaReader     infra.KafkaReader
	healthCheckRepo repository.HealthCheckRepository
	attempts        int
	backoff         time.Duration
	logger          *zap.Logger

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func (h *healthEventConsumer) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			m, err := h.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("healthEventConsumer.Start: %w", err)
				h.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			h.handle(m)
		}
	}()
}

func (h *healthEventConsumer) handle(m kafka.Message) {
	check, err := decodeHealthCheck(m.Value)
	if err != nil {
		// poison messages are committed so they do not block the partition
		h.logger.Log(zap.WarnLevel, "skipping health check event", zap.String("key", string(m.Key)), zap.Error(err))
		h.commit(m)
		return
	}
	if err = h.index(check); err != nil {
		err = fmt.Errorf("healthEventConsumer.handle: %w", err)
		h.logger.Log(zap.ErrorLevel, "failed to index health check", zap.String("server_id", check.ServerID), zap.Error(err))
		return
	}
	h.commit(m)
}

func (h *healthEventConsumer) index(check model.HealthCheck) error {
	var err error
	for attempt := 1; attempt <= h.attempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = h.healthCheckRepo.IndexHealthCheck(ctx, check)
		cancel()
		if err == nil || attempt == h.attempts {
			break
		}
		select {
		case <-time.After(h.backoff * time.Duration(attempt)):
		case <-h.done:
			return err
		}
	}
	return err
}

func (h *healthEventConsumer) commit(m kafka.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.kafkaReader.CommitMessages(ctx, m); err != nil {
		err = fmt.Errorf("healthEventConsumer.commit: %w", err)
		h.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
	}
}

func decodeHealthCheck(value []byte) (model.HealthCheck, error) {
	if value == nil {
		return model.HealthCheck{}, fmt.Errorf("%w: empty value", errInvalidEvent)
	}
	var check model.HealthCheck
	if err := json.Unmarshal(value, &check); err != nil {
		return model.HealthCheck{}, fmt.Errorf("%w: %w", errInvalidEvent, err)
	}
	if check.ServerID == "" {
		return model.HealthCheck{}, fmt.Errorf("%w: missing server_id", errInvalidEvent)
	}
	if check.Timestamp.IsZero() {
		return model.HealthCheck{}, fmt.Errorf("%w: missing timestamp", errInvalidEvent)
	}
	return check, nil
}

// Stop closes the reader, which makes the pending FetchMessage return io.EOF, and waits for the loop to exit.
func (h *healthEventConsumer) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		if err := h.kafkaReader.Close(); err != nil {
			h.logger.Log(zap.ErrorLevel, "failed to close kafka reader", zap.Error(err))
		}
		h.wg.Wait()
	})
}

func NewHealthEventConsumer(reader infra.KafkaReader, healthCheckRepo repository.HealthCheckRepository, attempts int, backoff time.Duration, logger *zap.Logger) HealthEventConsumer {
	if attempts < 1 {
		attempts = 1
	}
	return &healthEventConsumer{
		kafkaReader:     reader,
		healthCheckRepo: healthCheckRepo,
		attempts:        attempts,
		backoff:         backoff,
		logger:          logger,
		done:            make(chan struct{}),
	}
}
