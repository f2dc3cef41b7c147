// Package config provides application configuration management.
// All settings come from environment variables (optionally seeded from a
// .env file in development) and are read once at process start.
package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DevJWTSecret is the fallback signing secret for local development.
// Load rejects it in production.
const DevJWTSecret = "dev-secret-change-me"

// Config holds all application configuration.
type Config struct {
	// Application settings
	AppName string `env:"APP_NAME" envDefault:"Nexus Edge Systems API"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	Addr    string `env:"ADDR" envDefault:":8000"`

	// Database connection. A postgres:// URL selects the Postgres driver;
	// anything else is treated as a SQLite file path.
	DatabaseURL string `env:"DATABASE_URL" envDefault:"dev.db"`

	// Token signing
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h"`

	// Browser frontend origin allowed by CORS
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:3000"`

	// Error reporting endpoint. Read for the deployment surface; no
	// reporter is wired in this build.
	SentryDSN string `env:"SENTRY_DSN"`
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment.
// A missing or default JWT secret is a deployment misconfiguration in
// production and fails startup instead of silently signing with a known key.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file just means plain env vars.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = DevJWTSecret
	}
	if cfg.IsProduction() && cfg.JWTSecret == DevJWTSecret {
		return nil, errors.New("JWT_SECRET must not be the development default in production")
	}

	return cfg, nil
}
