package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MONO_API_KEY", "DATABASE_URL", "ENCODING_KEY", "REDIS_ADDR", "REDIS_PASSWORD",
		"CORS_ORIGINS", "PORT", "RATES_CRON", "LOCATION", "KEEP_SNAPSHOTS", "STATEMENTS_TTL",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "*/5 * * * *", cfg.CronSpec)
	assert.Equal(t, "Europe/Kyiv", cfg.Location)
	assert.Equal(t, 288, cfg.KeepSnapshots)
	assert.Equal(t, 10*time.Minute, cfg.StatementsTTL)
	assert.Empty(t, cfg.RedisAddrs)

	assert.EqualError(t, cfg.requireBank(), "MONO_API_KEY is empty")
	assert.EqualError(t, cfg.requireDatabase(), "DATABASE_URL is empty")
}

func TestLoadConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONO_API_KEY", "  token  ")
	t.Setenv("DATABASE_URL", "postgres://localhost/mono")
	t.Setenv("ENCODING_KEY", "secret")
	t.Setenv("REDIS_ADDR", "a:6379, b:6379,")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000")
	t.Setenv("PORT", "9090")
	t.Setenv("RATES_CRON", "0 * * * *")
	t.Setenv("LOCATION", "UTC")
	t.Setenv("KEEP_SNAPSHOTS", "12")
	t.Setenv("STATEMENTS_TTL", "90s")

	cfg, err := LoadConfig(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "token", cfg.MonoAPIKey)
	assert.Equal(t, []string{"a:6379", "b:6379"}, cfg.RedisAddrs)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "0 * * * *", cfg.CronSpec)
	assert.Equal(t, "UTC", cfg.Location)
	assert.Equal(t, 12, cfg.KeepSnapshots)
	assert.Equal(t, 90*time.Second, cfg.StatementsTTL)
	assert.NoError(t, cfg.requireBank())
	assert.NoError(t, cfg.requireDatabase())
}

func TestLoadConfig_EncodingKeyRequiredWithDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/mono")

	cfg, err := LoadConfig(zap.NewNop())

	require.NoError(t, err)
	assert.EqualError(t, cfg.requireDatabase(), "ENCODING_KEY is empty")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"KEEP_SNAPSHOTS": "zero",
		"STATEMENTS_TTL": "soon",
	}
	for k, v := range cases {
		clearEnv(t)
		t.Setenv(k, v)

		_, err := LoadConfig(zap.NewNop())

		assert.Error(t, err, k)
	}

	clearEnv(t)
	t.Setenv("STATEMENTS_TTL", "-1m")
	_, err := LoadConfig(zap.NewNop())
	assert.EqualError(t, err, "STATEMENTS_TTL must be positive")
}
