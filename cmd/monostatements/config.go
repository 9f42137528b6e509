package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mono-statements/internal/service/statements"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	MonoAPIKey string

	DatabaseURL string
	EncodingKey string

	RedisAddrs    []string
	RedisPassword string

	HTTPPort    string
	CORSOrigins []string

	CronSpec      string
	Location      string
	KeepSnapshots int

	StatementsTTL time.Duration
}

func LoadConfig(logger *zap.Logger) (Config, error) {
	if err := godotenv.Overload(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	cfg := Config{
		HTTPPort:      "8080",
		CronSpec:      "*/5 * * * *",
		Location:      "Europe/Kyiv",
		KeepSnapshots: 288,
		StatementsTTL: statements.DefaultTTL,
	}

	cfg.MonoAPIKey = strings.TrimSpace(os.Getenv("MONO_API_KEY"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.EncodingKey = strings.TrimSpace(os.Getenv("ENCODING_KEY"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	cfg.RedisAddrs = splitList(os.Getenv("REDIS_ADDR"))
	cfg.CORSOrigins = splitList(os.Getenv("CORS_ORIGINS"))

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.HTTPPort = p
	}
	if s := strings.TrimSpace(os.Getenv("RATES_CRON")); s != "" {
		cfg.CronSpec = s
	}
	if l := strings.TrimSpace(os.Getenv("LOCATION")); l != "" {
		cfg.Location = l
	}

	if v := strings.TrimSpace(os.Getenv("KEEP_SNAPSHOTS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("KEEP_SNAPSHOTS must be a positive integer, got %q", v)
		}
		cfg.KeepSnapshots = n
	}

	if v := strings.TrimSpace(os.Getenv("STATEMENTS_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse STATEMENTS_TTL: %w", err)
		}
		if d <= 0 {
			return Config{}, errors.New("STATEMENTS_TTL must be positive")
		}
		cfg.StatementsTTL = d
	}

	return cfg, nil
}

func (c Config) requireBank() error {
	if c.MonoAPIKey == "" {
		return errors.New("MONO_API_KEY is empty")
	}
	return nil
}

func (c Config) requireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is empty")
	}
	if c.EncodingKey == "" {
		return errors.New("ENCODING_KEY is empty")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
