package config

import (
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Error("Error can't get the environment variables by file")
		}
	}
	if err := env.Parse(&Config); err != nil {
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	Env string `env:"GO_ENV" envDefault:"production"`
	APP
	DB
	Kafka
	Gateways
	Reconcile
	Audit
	Log
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type APP struct {
	PORT            string        `env:"APP_PORT" envDefault:"8080"`
	PublishTimeout  time.Duration `env:"APP_PUBLISH_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"APP_SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup string `env:"KAFKA_CALLBACK_GROUP_ID" envDefault:"payment-callbacks"`
	CallbackTopic string `env:"KAFKA_CALLBACK_TOPIC" envDefault:"payments.callbacks"`
	EventsTopic   string `env:"KAFKA_EVENTS_TOPIC" envDefault:"payments.events"`
	DLQTopic      string `env:"KAFKA_DLQ_TOPIC" envDefault:"payments.callbacks.dlq"`
	Workers       int    `env:"KAFKA_CONSUMER_WORKERS" envDefault:"4"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Gateways struct {
	CardSecretKey     string        `env:"CARD_SECRET_KEY"`
	CardWebhookSecret string        `env:"CARD_WEBHOOK_SECRET"`
	WalletBaseURL     string        `env:"WALLET_BASE_URL"`
	WalletToken       string        `env:"WALLET_ACCESS_TOKEN"`
	BankBaseURL       string        `env:"BANK_BASE_URL"`
	BankAPIKey        string        `env:"BANK_API_KEY"`
	HTTPTimeout       time.Duration `env:"GATEWAY_HTTP_TIMEOUT" envDefault:"10s"`
}

type Reconcile struct {
	Enabled      bool          `env:"RECONCILE_ENABLED" envDefault:"true"`
	Interval     time.Duration `env:"RECONCILE_INTERVAL" envDefault:"5m"`
	Cutoff       time.Duration `env:"RECONCILE_CUTOFF" envDefault:"15m"`
	BatchSize    int           `env:"RECONCILE_BATCH_SIZE" envDefault:"100"`
	QueryTimeout time.Duration `env:"RECONCILE_QUERY_TIMEOUT" envDefault:"10s"`
}

type Audit struct {
	Retention time.Duration `env:"AUDIT_RETENTION" envDefault:"0"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
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

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (c *Config) IsLocal() bool {
	return c.Env == "local"
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Backoff is the exponential delay before retry number attempt+1, capped at MaxDelay.
// With Jitter the delay is spread by -15%..+15%.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

// WithDefaults fills zero values with the publisher defaults.
func (r RetryConfig) WithDefaults() RetryConfig {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.BaseDelay == 0 {
		r.BaseDelay = 100 * time.Millisecond
	}
	if r.MaxDelay == 0 {
		r.MaxDelay = 10 * time.Second
	}
	return r
}
