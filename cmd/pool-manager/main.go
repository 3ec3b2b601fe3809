package main

import (
	"Integration_Pool_Manager/internal/pool-manager/alert"
	"Integration_Pool_Manager/internal/pool-manager/api/handler"
	"Integration_Pool_Manager/internal/pool-manager/api/routes"
	"Integration_Pool_Manager/internal/pool-manager/bootstrap"
	"Integration_Pool_Manager/internal/pool-manager/breaker"
	"Integration_Pool_Manager/internal/pool-manager/config"
	"Integration_Pool_Manager/internal/pool-manager/events"
	"Integration_Pool_Manager/internal/pool-manager/health"
	"Integration_Pool_Manager/internal/pool-manager/metrics"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"Integration_Pool_Manager/internal/pool-manager/registry"
	"Integration_Pool_Manager/internal/pool-manager/repository"
	"Integration_Pool_Manager/internal/pool-manager/router"
	"Integration_Pool_Manager/internal/pool-manager/service"
	"Integration_Pool_Manager/pkg/infra"
	"Integration_Pool_Manager/pkg/logger"
	"Integration_Pool_Manager/pkg/mail"
	"Integration_Pool_Manager/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	statisticsInterval = 15 * time.Second
	handshakeTimeout   = 10 * time.Second
	startupTimeout     = 30 * time.Second
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
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
		Service: "pool-manager",
		Console: appConfig.Server.LogConsole,
	}, fileSyncer)
	defer zapLogger.Sync()
	stopReload := logger.ReloadOnSIGHUP(fileSyncer, zapLogger)
	defer stopReload()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:            appConfig.Postgres.Host,
		Port:            appConfig.Postgres.Port,
		User:            appConfig.Postgres.User,
		Password:        appConfig.Postgres.Password,
		DBName:          appConfig.Postgres.DBName,
		SSLMode:         appConfig.Postgres.SSLMode,
		MaxOpenConns:    appConfig.Postgres.MaxOpenConns,
		MaxIdleConns:    appConfig.Postgres.MaxIdleConns,
		ConnMaxLifetime: appConfig.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	}
	zapLogger.Info("connected to postgres successfully")
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm", zap.Error(err))
	}
	defer sqlDB.Close()
	if err = repository.Migrate(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host:     appConfig.Redis.Host,
		Port:     appConfig.Redis.Port,
		Password: appConfig.Redis.Password,
		DB:       appConfig.Redis.DB,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	}
	zapLogger.Info("connected to redis successfully")
	defer redisClient.Close()

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elasticsearch.Addresses,
		Username:  appConfig.Elasticsearch.Username,
		Password:  appConfig.Elasticsearch.Password,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	}
	zapLogger.Info("connected to elasticsearch successfully")

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()
	if err = repository.EnsureHealthCheckIndex(startupCtx, esClient); err != nil {
		zapLogger.Fatal("failed to create health check index", zap.Error(err))
	}

	// metrics
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(promRegistry)

	// repositories
	serverRepo := repository.NewServerRepository(db)
	poolRepo := repository.NewPoolRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	operationRepo := repository.NewOperationRepository(redisClient, appConfig.Redis.OperationIDTTL)
	healthCheckRepo := repository.NewHealthCheckRepository(esClient)

	mailSender := mail.NewMailSender(mail.Config{
		Email:    appConfig.Mail.Email,
		Password: appConfig.Mail.Password,
		Host:     appConfig.Mail.Host,
		Port:     appConfig.Mail.Port,
		FromName: appConfig.Mail.FromName,
		Timeout:  appConfig.Mail.Timeout,
	})

	// event publisher
	publisher := events.NewPublisher(
		infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.OperationTopic),
		infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.HealthCheckTopic),
		appConfig.Kafka.PublishQueueSize, m, zapLogger)
	publisher.Start()

	// core components
	reg := registry.NewRegistry(serverRepo, poolRepo, zapLogger)

	alertRecipients := appConfig.Mail.AlertRecipients
	if len(alertRecipients) == 0 {
		alertRecipients = []string{appConfig.Mail.AdminMailAddress}
	}
	alertEngine := alert.NewEngine(alertRepo, mailSender, m, alert.Config{
		QueueSize:    appConfig.Alert.QueueSize,
		AutoResolve:  appConfig.Alert.AutoResolve,
		MaxSampleAge: appConfig.Alert.MaxSampleAge,
		Recipients:   alertRecipients,
	}, zapLogger)
	if err = alertEngine.Load(startupCtx); err != nil {
		zapLogger.Fatal("failed to load alert rules", zap.Error(err))
	}

	prober := health.NewProber(appConfig.Health.ProbeRetries, appConfig.Health.DefaultTimeout, appConfig.Health.ProbeBackoff)
	monitor := health.NewMonitor(reg, prober, publisher, m, health.Config{
		DefaultInterval: appConfig.Health.DefaultInterval,
		Score: health.ScoreConfig{
			WindowSize:       appConfig.Health.WindowSize,
			Decay:            appConfig.Health.Decay,
			UptimeWeight:     appConfig.Health.UptimeWeight,
			LatencyWeight:    appConfig.Health.LatencyWeight,
			ErrorWeight:      appConfig.Health.ErrorWeight,
			ReferenceLatency: appConfig.Health.ReferenceLatency,
			ActiveScore:      appConfig.Health.ActiveScore,
			DegradedScore:    appConfig.Health.DegradedScore,
		},
		UnhealthyThreshold: appConfig.Health.UnhealthyThreshold,
		AutoTransitions:    appConfig.Health.AutoTransitions,
	}, zapLogger, alertEngine)

	breakers := breaker.NewSet(zapLogger, func(serverID string, from, to breaker.State) {
		m.SetCircuitState(serverID, string(to))
	})
	transport := router.NewTransport(handshakeTimeout)
	r := router.NewRouter(reg, monitor, breakers, transport, operationRepo, publisher, m, router.Config{
		MaxInFlight:    appConfig.Router.MaxInFlight,
		DefaultTimeout: appConfig.Router.DefaultTimeout,
		TimeoutFactor:  appConfig.Router.TimeoutFactor,
		DefaultRetry: model.RetryConfig{
			MaxRetries:      appConfig.Router.DefaultMaxRetries,
			BackoffStrategy: model.BackoffExponential,
			InitialDelayMs:  int(appConfig.Router.DefaultInitialDelay.Milliseconds()),
			MaxDelayMs:      int(appConfig.Router.DefaultMaxDelay.Milliseconds()),
		},
		Breaker: breaker.Settings{
			Threshold: appConfig.Breaker.DefaultThreshold,
			Window:    appConfig.Breaker.Window,
			Cooldown:  appConfig.Breaker.DefaultCooldown,
		},
	}, zapLogger)

	// listeners must be attached before Load so persisted servers reach every component
	reg.AddListener(monitor)
	reg.AddListener(r)
	reg.AddListener(transport)
	reg.AddListener(registry.RemovalListener(alertEngine.OnServerRemoved))
	if err = reg.Load(startupCtx); err != nil {
		zapLogger.Fatal("failed to load registry", zap.Error(err))
	}

	if appConfig.Server.BootstrapFile != "" {
		file, e := bootstrap.Load(appConfig.Server.BootstrapFile)
		if e != nil {
			zapLogger.Fatal("failed to read bootstrap file", zap.String("path", appConfig.Server.BootstrapFile), zap.Error(e))
		}
		if e = bootstrap.NewSeeder(reg, alertEngine, zapLogger).Seed(startupCtx, file); e != nil {
			zapLogger.Fatal("failed to seed from bootstrap file", zap.Error(e))
		}
	}

	monitor.Start()
	alertEngine.Start()

	// services and handlers
	serverService := service.NewServerService(reg, monitor, healthCheckRepo)
	poolService := service.NewPoolService(reg, monitor, r)
	operationService := service.NewOperationService(r, reg, monitor, alertEngine, healthCheckRepo, mailSender)

	collector := metrics.NewCollector(poolService, m, statisticsInterval)
	collector.Start()

	// Create cronjobs for the daily report and alert history retention
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Server.ReportCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		zapLogger.Info("daily report cronjob called")
		now := time.Now()
		if e := operationService.ReportIntegrationsHealth(ctx, now.Add(-24*time.Hour), now, []string{appConfig.Mail.AdminMailAddress}); e != nil {
			zapLogger.Error("failed to generate daily report", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
	}
	_, err = cronJob.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		n, e := alertEngine.PurgeHistory(ctx, appConfig.Alert.HistoryRetention)
		if e != nil {
			zapLogger.Error("failed to purge alert history", zap.Error(e))
			return
		}
		zapLogger.Info("purged alert history", zap.Int64("deleted", n))
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for alert history retention", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	engine := gin.Default()

	routes.AddIntegrationRoutes(engine, routes.Handlers{
		Server:     handler.NewServerHandler(zapLogger, serverService),
		Pool:       handler.NewPoolHandler(zapLogger, poolService),
		Operation:  handler.NewOperationHandler(zapLogger, operationService),
		Monitoring: handler.NewMonitoringHandler(zapLogger, alertEngine),
	}, middleware.NewAuthMiddleware(appConfig.Auth.JWTSecret))
	routes.AddMetricsRoute(engine, promRegistry)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: engine,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	<-cronJob.Stop().Done()
	collector.Stop()
	monitor.Stop()
	alertEngine.Stop()
	if err = publisher.Stop(); err != nil {
		zapLogger.Error("failed to flush event publisher", zap.Error(err))
	}
	if err = transport.Close(); err != nil {
		zapLogger.Error("failed to close transport connections", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
