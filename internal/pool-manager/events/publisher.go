package events

import (
	"Integration_Pool_Manager/internal/pool-manager/metrics"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const writeTimeout = 10 * time.Second

// Publisher ships usage and health events to Kafka without blocking the caller.
type Publisher interface {
	Start()
	Stop() error
	PublishOperation(event model.UsageEvent)
	PublishHealthCheck(check model.HealthCheck)
}

type envelope struct {
	writer  infra.KafkaWriter
	message kafka.Message
}

type publisher struct {
	operations infra.KafkaWriter
	health     infra.KafkaWriter
	queue      chan envelope
	done       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

func (p *publisher) Start() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for {
			select {
			case e := <-p.queue:
				p.write(e)
			case <-p.done:
				for {
					select {
					case e := <-p.queue:
						p.write(e)
					default:
						return
					}
				}
			}
		}
	}()
}

func (p *publisher) write(e envelope) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := e.writer.WriteMessages(ctx, e.message); err != nil {
		err = fmt.Errorf("Publisher.write: %w", err)
		p.logger.Log(zap.ErrorLevel, "failed to write message", zap.String("key", string(e.message.Key)), zap.Error(err))
	}
}

// Stop flushes queued events and closes both writers.
func (p *publisher) Stop() error {
	var err error
	p.stopOnce.Do(func() {
		close(p.done)
		p.wg.Wait()
		err = errors.Join(p.operations.Close(), p.health.Close())
	})
	return err
}

func (p *publisher) enqueue(writer infra.KafkaWriter, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		p.logger.Log(zap.ErrorLevel, "failed to marshal event", zap.String("key", key), zap.Error(err))
		return
	}
	select {
	case <-p.done:
		p.metrics.EventDropped("kafka")
		return
	default:
	}
	select {
	case p.queue <- envelope{writer: writer, message: kafka.Message{Key: []byte(key), Value: b}}:
	default:
		p.metrics.EventDropped("kafka")
		p.logger.Warn("event queue full, dropping event", zap.String("key", key))
	}
}

func (p *publisher) PublishOperation(event model.UsageEvent) {
	p.enqueue(p.operations, event.ServerID, event)
}

func (p *publisher) PublishHealthCheck(check model.HealthCheck) {
	p.enqueue(p.health, check.ServerID, check)
}

func NewPublisher(operations infra.KafkaWriter, health infra.KafkaWriter, queueSize int, metrics *metrics.Metrics, logger *zap.Logger) Publisher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &publisher{
		operations: operations,
		health:     health,
		queue:      make(chan envelope, queueSize),
		done:       make(chan struct{}),
		metrics:    metrics,
		logger:     logger,
	}
}
