package health_event_consumer

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server        ServerConfig
	Elasticsearch ElasticsearchConfig
	Kafka         KafkaConfig
}

type ServerConfig struct {
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string `envconfig:"LOG_FILE" default:"./log/health-event-consumer.log"`
	LogConsole bool   `envconfig:"LOG_CONSOLE" default:"true"`
}

type ElasticsearchConfig struct {
	Addresses []string `envconfig:"ELASTICSEARCH_ADDRESSES" required:"true"`
	Username  string   `envconfig:"ELASTICSEARCH_USERNAME"`
	Password  string   `envconfig:"ELASTICSEARCH_PASSWORD"`
}

type KafkaConfig struct {
	Brokers         []string      `envconfig:"KAFKA_BROKERS" required:"true"`
	ConsumerTopic   string        `envconfig:"KAFKA_HEALTH_CHECK_TOPIC" default:"integration-health-checks"`
	ConsumerGroupID string        `envconfig:"KAFKA_CONSUMER_GROUP_ID" default:"health-event-consumer"`
	ConsumerCnt     int           `envconfig:"KAFKA_CONSUMER_CNT" default:"1"`
	IndexAttempts   int           `envconfig:"KAFKA_INDEX_ATTEMPTS" default:"3"`
	IndexBackoff    time.Duration `envconfig:"KAFKA_INDEX_BACKOFF" default:"500ms"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
