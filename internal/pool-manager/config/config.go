package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Auth          AuthConfig
	Postgres      PostgresConfig
	Redis         RedisConfig
	Kafka         KafkaConfig
	Elasticsearch ElasticsearchConfig
	Mail          MailConfig
	Router        RouterConfig
	Health        HealthConfig
	Breaker       BreakerConfig
	Alert         AlertConfig
}

type ServerConfig struct {
	Port          string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile       string `envconfig:"LOG_FILE" default:"./log/pool-manager.log"`
	LogConsole    bool   `envconfig:"LOG_CONSOLE" default:"true"`
	BootstrapFile string `envconfig:"POOL_BOOTSTRAP_FILE"`
	ReportCron    string `envconfig:"REPORT_CRON" default:"0 0 * * *"`
}

type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET_KEY" required:"true"`
}

type PostgresConfig struct {
	Host            string        `envconfig:"POSTGRES_HOST" required:"true"`
	Port            int           `envconfig:"POSTGRES_PORT" required:"true"`
	User            string        `envconfig:"POSTGRES_USER" required:"true"`
	Password        string        `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName          string        `envconfig:"POSTGRES_DB" required:"true"`
	SSLMode         string        `envconfig:"POSTGRES_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"30m"`
}

type RedisConfig struct {
	Host           string        `envconfig:"REDIS_HOST" required:"true"`
	Port           int           `envconfig:"REDIS_PORT" required:"true"`
	Password       string        `envconfig:"REDIS_PASSWORD"`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	OperationIDTTL time.Duration `envconfig:"REDIS_OPERATION_ID_TTL" default:"24h"`
}

type KafkaConfig struct {
	Brokers          []string `envconfig:"KAFKA_BROKERS" required:"true"`
	OperationTopic   string   `envconfig:"KAFKA_OPERATION_TOPIC" default:"integration-operations"`
	HealthCheckTopic string   `envconfig:"KAFKA_HEALTH_CHECK_TOPIC" default:"integration-health-checks"`
	PublishQueueSize int      `envconfig:"KAFKA_PUBLISH_QUEUE_SIZE" default:"1000"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

type MailConfig struct {
	Email            string        `envconfig:"MAIL_EMAIL" required:"true"`
	Password         string        `envconfig:"MAIL_PASSWORD" required:"true"`
	Host             string        `envconfig:"MAIL_HOST" required:"true"`
	Port             int           `envconfig:"MAIL_PORT" required:"true"`
	AdminMailAddress string        `envconfig:"MAIL_ADMIN_EMAIL" required:"true"`
	AlertRecipients  []string      `envconfig:"MAIL_ALERT_RECIPIENTS"`
	FromName         string        `envconfig:"MAIL_FROM_NAME" default:"Integration Pool Manager"`
	Timeout          time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

type RouterConfig struct {
	MaxInFlight         int           `envconfig:"ROUTER_MAX_IN_FLIGHT" default:"0"`
	DefaultTimeout      time.Duration `envconfig:"ROUTER_DEFAULT_TIMEOUT" default:"30s"`
	TimeoutFactor       float64       `envconfig:"ROUTER_TIMEOUT_FACTOR" default:"3"`
	DefaultMaxRetries   int           `envconfig:"ROUTER_DEFAULT_MAX_RETRIES" default:"2"`
	DefaultInitialDelay time.Duration `envconfig:"ROUTER_DEFAULT_INITIAL_DELAY" default:"100ms"`
	DefaultMaxDelay     time.Duration `envconfig:"ROUTER_DEFAULT_MAX_DELAY" default:"2s"`
}

type HealthConfig struct {
	DefaultInterval    time.Duration `envconfig:"HEALTH_DEFAULT_INTERVAL" default:"30s"`
	DefaultTimeout     time.Duration `envconfig:"HEALTH_DEFAULT_TIMEOUT" default:"5s"`
	ProbeRetries       int           `envconfig:"HEALTH_PROBE_RETRIES" default:"1"`
	ProbeBackoff       time.Duration `envconfig:"HEALTH_PROBE_BACKOFF" default:"200ms"`
	WindowSize         int           `envconfig:"HEALTH_WINDOW_SIZE" default:"20"`
	Decay              float64       `envconfig:"HEALTH_DECAY" default:"0.9"`
	UptimeWeight       float64       `envconfig:"HEALTH_UPTIME_WEIGHT" default:"0.4"`
	LatencyWeight      float64       `envconfig:"HEALTH_LATENCY_WEIGHT" default:"0.2"`
	ErrorWeight        float64       `envconfig:"HEALTH_ERROR_WEIGHT" default:"0.4"`
	ReferenceLatency   time.Duration `envconfig:"HEALTH_REFERENCE_LATENCY" default:"500ms"`
	ActiveScore        float64       `envconfig:"HEALTH_ACTIVE_SCORE" default:"90"`
	DegradedScore      float64       `envconfig:"HEALTH_DEGRADED_SCORE" default:"70"`
	UnhealthyThreshold int           `envconfig:"HEALTH_UNHEALTHY_THRESHOLD" default:"3"`
	AutoTransitions    bool          `envconfig:"HEALTH_AUTO_TRANSITIONS" default:"true"`
}

type BreakerConfig struct {
	DefaultThreshold int           `envconfig:"BREAKER_DEFAULT_THRESHOLD" default:"5"`
	Window           time.Duration `envconfig:"BREAKER_WINDOW" default:"60s"`
	DefaultCooldown  time.Duration `envconfig:"BREAKER_DEFAULT_COOLDOWN" default:"30s"`
}

type AlertConfig struct {
	QueueSize        int           `envconfig:"ALERT_QUEUE_SIZE" default:"1024"`
	AutoResolve      bool          `envconfig:"ALERT_AUTO_RESOLVE" default:"true"`
	HistoryRetention time.Duration `envconfig:"ALERT_HISTORY_RETENTION" default:"720h"`
	MaxSampleAge     time.Duration `envconfig:"ALERT_MAX_SAMPLE_AGE" default:"1h"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
