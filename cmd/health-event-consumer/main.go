package main

import (
	health_event_consumer "Integration_Pool_Manager/internal/health-event-consumer"
	"Integration_Pool_Manager/internal/pool-manager/repository"
	"Integration_Pool_Manager/pkg/infra"
	"Integration_Pool_Manager/pkg/logger"
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	appConfig, err := health_event_consumer.LoadConfig("./.env")
	if err != nil {
		log.Fatalf("load config error: %v", err)
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatalf("open log file error: %v", err)
	}
	zapLogger := logger.NewLogger(logger.Config{
		Level:   appConfig.Server.LogLevel,
		Service: "health-event-consumer",
		Console: appConfig.Server.LogConsole,
	}, fileSyncer)
	defer zapLogger.Sync()
	stopReload := logger.ReloadOnSIGHUP(fileSyncer, zapLogger)
	defer stopReload()

	// set up elasticsearch
	es, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	}
	zapLogger.Info("connected to elasticsearch successfully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = repository.EnsureHealthCheckIndex(ctx, es)
	cancel()
	if err != nil {
		zapLogger.Fatal("failed to create health check index", zap.Error(err))
	}

	healthCheckRepo := repository.NewHealthCheckRepository(es)

	consumers := make([]health_event_consumer.HealthEventConsumer, appConfig.Kafka.ConsumerCnt)
	for i := range consumers {
		reader := infra.NewKafkaReader(appConfig.Kafka.Brokers, appConfig.Kafka.ConsumerGroupID, appConfig.Kafka.ConsumerTopic)
		consumers[i] = health_event_consumer.NewHealthEventConsumer(reader, healthCheckRepo, appConfig.Kafka.IndexAttempts, appConfig.Kafka.IndexBackoff, zapLogger)
		consumers[i].Start()
	}
	zapLogger.Info("health event consumers started", zap.Int("count", len(consumers)), zap.String("topic", appConfig.Kafka.ConsumerTopic))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down consumers...")
	for _, c := range consumers {
		c.Stop()
	}
	zapLogger.Info("consumers exited")
}
