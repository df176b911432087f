package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Gateway
	Auth
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

// Gateway holds the payment gateway integration settings. The checksum
// secret is shared with the gateway out of band and injected into the
// validator once at startup.
type Gateway struct {
	ChecksumSecret string `env:"GATEWAY_CHECKSUM_SECRET,notEmpty"`
}

type Auth struct {
	JWTSecret string `env:"JWT_SECRET,notEmpty"`
}

type Kafka struct {
	Brokers                 string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	SettlementConsumerGroup string `env:"KAFKA_SETTLEMENT_GROUP_ID" envDefault:"settlement-service"`
	PublishTopics           string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"settlements.posting.received,settlements.posting.reconciled,settlements.dlq"`
	SubscriberTopics        string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"settlements.posting.received"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
