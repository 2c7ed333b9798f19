// Package config loads the immutable application configuration from the
// environment. An optional env file is read first, then environment variables
// override it. The resulting struct is constructed once at startup and passed
// by reference to constructors.
package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every externally supplied setting of the service.
type Config struct {
	RunAddr  string `env:"SERVER_ADDRESS" envDefault:":8080" validate:"hostname_port"`
	BaseURL  string `env:"BASE_URL" envDefault:"http://localhost:8080" validate:"url"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error fatal"`

	DatabaseHost         string `env:"DB_HOST" envDefault:"localhost"`
	DatabasePort         int    `env:"DB_PORT" envDefault:"5432"`
	DatabaseUser         string `env:"DB_USERNAME" envDefault:"postgres"`
	DatabasePassword     string `env:"DB_PASSWORD" envDefault:"postgres"`
	DatabaseName         string `env:"DB_DATABASE" envDefault:"shortener"`
	DatabaseSSL          bool   `env:"DB_SSL" envDefault:"false"`
	DatabaseMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"16"`
	DatabaseMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"8"`

	JWTSecret            string        `env:"JWT_SECRET" validate:"required"`
	JWTExpiration        time.Duration `env:"JWT_EXPIRATION" envDefault:"15m"`
	JWTRefreshSecret     string        `env:"JWT_REFRESH_SECRET" validate:"required"`
	JWTRefreshExpiration time.Duration `env:"JWT_REFRESH_EXPIRATION" envDefault:"168h"`

	// Redis is optional; when RedisAddr is empty the resolve path runs
	// without a cache.
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	CacheExpiration time.Duration `env:"CACHE_EXPIRATION" envDefault:"5m"`

	// Kafka is optional; when KafkaAddr is empty click events are not
	// published.
	KafkaAddr        string `env:"KAFKA_ADDR"`
	KafkaClicksTopic string `env:"KAFKA_CLICKS_TOPIC" envDefault:"url.clicks"`
}

// New reads the env file at path (missing files are not an error), parses the
// environment into a Config and validates it.
func New(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	sslmode := "disable"
	if c.DatabaseSSL {
		sslmode = "require"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DatabaseUser, c.DatabasePassword,
		c.DatabaseHost, c.DatabasePort,
		c.DatabaseName, sslmode,
	)
}
