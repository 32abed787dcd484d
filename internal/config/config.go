package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName            string        `env:"APP_NAME" envDefault:"nevilinq-api"`
	AppEnv             string        `env:"APP_ENV" envDefault:"development"`
	Port               string        `env:"PORT" envDefault:"8080"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	RedisURL           string        `env:"REDIS_URL"`
	SecretKey          string        `env:"SECRET_KEY"`
	AccessTokenMinutes int           `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"120"`
	ShutdownPeriod     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	IdempotencyTTL     time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
	CORSOrigins        []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}

// Load reads configuration from the environment and validates it. A missing
// signing secret or database URL is a startup failure, never a per-request
// error.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.DatabaseURL == "" && !isDev(cfg.AppEnv) {
		return Config{}, fmt.Errorf("DATABASE_URL must be set")
	}

	if cfg.SecretKey == "" {
		return Config{}, fmt.Errorf("SECRET_KEY must be set")
	}

	if cfg.AccessTokenMinutes <= 0 {
		return Config{}, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	return cfg, nil
}

// AccessTokenTTL returns the configured bearer token lifetime.
func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenMinutes) * time.Minute
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the app runs in a development-style environment,
// where the in-memory datastore is allowed.
func (c Config) IsDev() bool {
	return isDev(c.AppEnv)
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
