// Package config loads service settings from defaults, an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const envPrefix = "CONFIGURATOR"

type Config struct {
	HTTP     HTTPConfig
	Session  SessionConfig
	Pricing  PricingConfig
	Sync     SyncConfig
	Redis    RedisConfig
	DynamoDB DynamoDBConfig
	Payments PaymentsConfig
	Assets   AssetsConfig
	Log      LogConfig
}

type HTTPConfig struct {
	Port int
}

type SessionConfig struct {
	IdleTimeout         time.Duration
	ExpiryCheckInterval time.Duration
	EvictAfter          time.Duration
	MarkerTTL           time.Duration
}

type PricingConfig struct {
	TableFile      string
	ReloadDebounce time.Duration
}

type SyncConfig struct {
	Debounce    time.Duration
	QueueSize   int
	TaskTimeout time.Duration
}

type RedisConfig struct {
	Addr string
}

type DynamoDBConfig struct {
	Region              string
	Endpoint            string
	AccessKeyID         string
	SecretAccessKey     string
	ConfigurationsTable string
	CartTable           string
	PaymentsTable       string
}

type PaymentsConfig struct {
	Mock            bool
	DepositRate     float64
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

type AssetsConfig struct {
	BaseURL   string
	Extension string
}

type LogConfig struct {
	Level   string
	Console bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", 8080)

	v.SetDefault("session.idle_timeout", 30*time.Minute)
	v.SetDefault("session.expiry_check_interval", time.Minute)
	v.SetDefault("session.evict_after", 2*time.Hour)
	v.SetDefault("session.marker_ttl", 12*time.Hour)

	v.SetDefault("pricing.table_file", "")
	v.SetDefault("pricing.reload_debounce", 200*time.Millisecond)

	v.SetDefault("sync.debounce", time.Second)
	v.SetDefault("sync.queue_size", 256)
	v.SetDefault("sync.task_timeout", 10*time.Second)

	v.SetDefault("redis.addr", "")

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.configurations_table", "configurations")
	v.SetDefault("dynamodb.cart_table", "cart_items")
	v.SetDefault("dynamodb.payments_table", "deposit_payments")

	v.SetDefault("payments.mock", false)
	v.SetDefault("payments.deposit_rate", 0.1)

	v.SetDefault("assets.base_url", "/assets/previews")
	v.SetDefault("assets.extension", ".jpg")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)
}

// bindLegacyEnv keeps the variable names the deployment already uses for
// AWS and Mercado Pago. The prefixed name still wins when both are set.
func bindLegacyEnv(v *viper.Viper) {
	binds := map[string][]string{
		"dynamodb.region":             {"AWS_REGION"},
		"dynamodb.endpoint":           {"DYNAMODB_ENDPOINT"},
		"dynamodb.access_key_id":      {"AWS_ACCESS_KEY_ID"},
		"dynamodb.secret_access_key":  {"AWS_SECRET_ACCESS_KEY"},
		"payments.mock":               {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
		"payments.access_token":       {"MERCADOPAGO_ACCESS_TOKEN"},
		"payments.test_payer_email":   {"MERCADOPAGO_TEST_PAYER_EMAIL"},
		"payments.test_payer_user_id": {"MERCADOPAGO_TEST_PAYER_USER_ID"},
	}
	for key, legacy := range binds {
		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(append([]string{key, prefixed}, legacy...)...)
	}
}

// Load reads the configuration. The file is taken from CONFIGURATOR_CONFIG
// or ./configurator.yaml; a missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("configurator")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTPConfig{Port: v.GetInt("http.port")},
		Session: SessionConfig{
			IdleTimeout:         v.GetDuration("session.idle_timeout"),
			ExpiryCheckInterval: v.GetDuration("session.expiry_check_interval"),
			EvictAfter:          v.GetDuration("session.evict_after"),
			MarkerTTL:           v.GetDuration("session.marker_ttl"),
		},
		Pricing: PricingConfig{
			TableFile:      v.GetString("pricing.table_file"),
			ReloadDebounce: v.GetDuration("pricing.reload_debounce"),
		},
		Sync: SyncConfig{
			Debounce:    v.GetDuration("sync.debounce"),
			QueueSize:   v.GetInt("sync.queue_size"),
			TaskTimeout: v.GetDuration("sync.task_timeout"),
		},
		Redis: RedisConfig{Addr: v.GetString("redis.addr")},
		DynamoDB: DynamoDBConfig{
			Region:              v.GetString("dynamodb.region"),
			Endpoint:            v.GetString("dynamodb.endpoint"),
			AccessKeyID:         v.GetString("dynamodb.access_key_id"),
			SecretAccessKey:     v.GetString("dynamodb.secret_access_key"),
			ConfigurationsTable: v.GetString("dynamodb.configurations_table"),
			CartTable:           v.GetString("dynamodb.cart_table"),
			PaymentsTable:       v.GetString("dynamodb.payments_table"),
		},
		Payments: PaymentsConfig{
			Mock:            v.GetBool("payments.mock"),
			DepositRate:     v.GetFloat64("payments.deposit_rate"),
			AccessToken:     strings.TrimSpace(v.GetString("payments.access_token")),
			TestPayerEmail:  strings.TrimSpace(v.GetString("payments.test_payer_email")),
			TestPayerUserID: strings.TrimSpace(v.GetString("payments.test_payer_user_id")),
		},
		Assets: AssetsConfig{
			BaseURL:   v.GetString("assets.base_url"),
			Extension: v.GetString("assets.extension"),
		},
		Log: LogConfig{
			Level:   v.GetString("log.level"),
			Console: v.GetBool("log.console"),
		},
	}
}

func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port %d", c.HTTP.Port)
	}
	if c.Session.IdleTimeout <= 0 {
		return errors.New("session.idle_timeout must be positive")
	}
	if c.Session.ExpiryCheckInterval <= 0 {
		return errors.New("session.expiry_check_interval must be positive")
	}
	if c.Payments.DepositRate <= 0 || c.Payments.DepositRate > 1 {
		return fmt.Errorf("payments.deposit_rate must be in (0, 1], got %v", c.Payments.DepositRate)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q", c.Log.Level)
	}
	return nil
}

// Sandbox reports whether the access token belongs to a Mercado Pago test
// account.
func (p PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(p.AccessToken, "TEST-")
}

// SetupLogging configures the global zerolog logger.
func SetupLogging(c LogConfig) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if c.Console {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
