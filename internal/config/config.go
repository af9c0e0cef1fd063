// Package config loads the service configuration from PAYNOTIFY_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/paynotify/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "PAYNOTIFY"

const (
	ExplorerAPIREST = "rest"
	ExplorerAPIRPC  = "rpc"

	WatermarkDriverRedis  = "redis"
	WatermarkDriverSQLite = "sqlite"

	NotifierDriverWebhook = "webhook"
	NotifierDriverKafka   = "kafka"
)

// Config holds every setting of the service. TransferTopic defaults to the
// ERC-20 Transfer(address,address,uint256) event signature.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"paynotify" validate:"required"`

	ExplorerURL       string        `envconfig:"EXPLORER_URL" validate:"required,url"`
	ExplorerAPI       string        `envconfig:"EXPLORER_API" default:"rest" validate:"oneof=rest rpc"`
	ExplorerTimeout   time.Duration `envconfig:"EXPLORER_TIMEOUT" default:"10s" validate:"gt=0"`
	ExplorerRetryMax  int           `envconfig:"EXPLORER_RETRY_MAX" default:"3" validate:"gte=0"`
	ExplorerPageSize  int           `envconfig:"EXPLORER_PAGE_SIZE" default:"1000" validate:"gt=0"`
	ExplorerRateLimit int           `envconfig:"EXPLORER_RATE_LIMIT" default:"10" validate:"gte=0"`

	GoldTokenAddress      string `envconfig:"GOLD_TOKEN_ADDRESS" validate:"required,eth_addr"`
	StableTokenAddress    string `envconfig:"STABLE_TOKEN_ADDRESS" validate:"required,eth_addr"`
	NativeTransferAddress string `envconfig:"NATIVE_TRANSFER_ADDRESS" validate:"required,eth_addr"`
	TransferTopic         string `envconfig:"TRANSFER_TOPIC" default:"0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef" validate:"required,hexadecimal,len=66"`
	NativeCurrency        string `envconfig:"NATIVE_CURRENCY" default:"CELO" validate:"required"`
	StableCurrency        string `envconfig:"STABLE_CURRENCY" default:"cUSD" validate:"required"`

	PollInterval          time.Duration `envconfig:"POLL_INTERVAL" default:"5s" validate:"gt=0"`
	CycleRetryAttempts    uint          `envconfig:"CYCLE_RETRY_ATTEMPTS" default:"3" validate:"gte=1"`
	CycleRetryDelay       time.Duration `envconfig:"CYCLE_RETRY_DELAY" default:"1s" validate:"gte=0"`
	ProcessedSafetyMargin uint64        `envconfig:"PROCESSED_SAFETY_MARGIN" default:"100"`
	RetryFailedDeliveries bool          `envconfig:"RETRY_FAILED_DELIVERIES" default:"true"`
	InitialWatermark      *uint64       `envconfig:"INITIAL_WATERMARK"`

	WatermarkDriver string `envconfig:"WATERMARK_DRIVER" default:"redis" validate:"oneof=redis sqlite"`
	WatermarkKey    string `envconfig:"WATERMARK_KEY" default:"default" validate:"required"`
	RedisAddr       string `envconfig:"REDIS_ADDR" validate:"required_if=WatermarkDriver redis,omitempty,hostname_port"`
	RedisUsername   string `envconfig:"REDIS_USERNAME"`
	RedisPassword   string `envconfig:"REDIS_PASSWORD"`
	RedisDB         int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	SQLitePath      string `envconfig:"SQLITE_PATH" validate:"required_if=WatermarkDriver sqlite"`

	NotifierDriver   string        `envconfig:"NOTIFIER_DRIVER" default:"webhook" validate:"oneof=webhook kafka"`
	WebhookURL       string        `envconfig:"WEBHOOK_URL" validate:"required_if=NotifierDriver webhook,omitempty,url"`
	WebhookTimeout   time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"5s" validate:"gt=0"`
	WebhookAuthToken string        `envconfig:"WEBHOOK_AUTH_TOKEN"`
	KafkaBrokers     []string      `envconfig:"KAFKA_BROKERS" validate:"required_if=NotifierDriver kafka,dive,hostname_port"`
	KafkaTopic       string        `envconfig:"KAFKA_TOPIC" default:"payment-notifications" validate:"required_if=NotifierDriver kafka"`
}

// loadDotEnv loads path into the environment when it exists. Variables that
// are already set win over the file.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Load reads the configuration from the environment, after loading the
// optional dotEnvPath file, and validates it.
func Load(dotEnvPath string) (Config, error) {
	if err := loadDotEnv(dotEnvPath); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
