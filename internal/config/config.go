// Package config loads finapi settings from FINAPI_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "FINAPI"

const (
	EnvAppEnv     = "FINAPI_APP_ENV"
	EnvPort       = "FINAPI_APP_PORT"
	EnvLogLevel   = "FINAPI_LOG_LEVEL"
	EnvDBDriver   = "FINAPI_DB_DRIVER"
	EnvDBPath     = "FINAPI_DB_PATH"
	EnvDBDSN      = "FINAPI_DB_DSN"
	EnvJWTSecret  = "FINAPI_JWT_SECRET"
	EnvJWTExpires = "FINAPI_JWT_EXPIRES_IN"
	EnvPassMinLen = "FINAPI_PASSWORD_MIN_LENGTH"
	EnvKafka      = "FINAPI_KAFKA_BROKERS"
)

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Password PasswordConfig
	Kafka    KafkaConfig
	Metrics  MetricsConfig
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env             string        `envconfig:"FINAPI_APP_ENV" default:"development"`
	Port            int           `envconfig:"FINAPI_APP_PORT" default:"8080"`
	LogLevel        string        `envconfig:"FINAPI_LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `envconfig:"FINAPI_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) Addr() string {
	return fmt.Sprintf(":%d", a.Port)
}

type DBConfig struct {
	Driver string `envconfig:"FINAPI_DB_DRIVER" default:"sqlite"`
	Path   string `envconfig:"FINAPI_DB_PATH" default:"./data/finapi.db"`
	DSN    string `envconfig:"FINAPI_DB_DSN"`
}

type JWTConfig struct {
	Secret    string        `envconfig:"FINAPI_JWT_SECRET" required:"true"`
	ExpiresIn time.Duration `envconfig:"FINAPI_JWT_EXPIRES_IN" default:"24h"`
}

type PasswordConfig struct {
	MinLength  int `envconfig:"FINAPI_PASSWORD_MIN_LENGTH" default:"6"`
	BcryptCost int `envconfig:"FINAPI_PASSWORD_BCRYPT_COST" default:"10"`
}

// KafkaConfig enables event publishing when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string `envconfig:"FINAPI_KAFKA_BROKERS"`
	Topic   string   `envconfig:"FINAPI_KAFKA_TOPIC" default:"statement_created"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"FINAPI_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"FINAPI_METRICS_PATH" default:"/metrics"`
}

// Validate checks the combinations envconfig cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.DB.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.DB.DSN == "" {
			errs = append(errs, fmt.Errorf("%s is required when %s=%s", EnvDBDSN, EnvDBDriver, DriverPostgres))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported %s %q", EnvDBDriver, c.DB.Driver))
	}

	if c.Password.MinLength <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvPassMinLen))
	}
	if c.JWT.ExpiresIn <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvJWTExpires))
	}

	return errors.Join(errs...)
}
