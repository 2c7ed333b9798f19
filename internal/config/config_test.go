package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-url-shortener/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	cfg, err := config.New("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.RunAddr)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost", cfg.DatabaseHost)
	assert.Equal(t, 5432, cfg.DatabasePort)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiration)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiration)
	assert.Equal(t, 5*time.Minute, cfg.CacheExpiration)
	assert.Equal(t, "url.clicks", cfg.KafkaClicksTopic)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaAddr)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9090")
	t.Setenv("BASE_URL", "https://sho.rt")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_EXPIRATION", "1m")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := config.New("does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.RunAddr)
	assert.Equal(t, "https://sho.rt", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, time.Minute, cfg.JWTExpiration)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestNew_MissingSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := config.New("does-not-exist.env")
	assert.Error(t, err)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := config.New("does-not-exist.env")
	assert.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &config.Config{
		DatabaseHost:     "db",
		DatabasePort:     5433,
		DatabaseUser:     "app",
		DatabasePassword: "pass",
		DatabaseName:     "shortener",
	}

	assert.Equal(t, "postgres://app:pass@db:5433/shortener?sslmode=disable", cfg.DSN())

	cfg.DatabaseSSL = true
	assert.Equal(t, "postgres://app:pass@db:5433/shortener?sslmode=require", cfg.DSN())
}
