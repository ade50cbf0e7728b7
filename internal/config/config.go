// Package config loads server settings from the environment and an optional
// .env file.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. TrustedProxies is the number of reverse
// proxies that append to X-Forwarded-For; 0 keys the rate limiter on the
// connection address.
type Config struct {
	Port             int    `env:"PORT" envDefault:"8001"`
	DatabaseURL      string `env:"DATABASE_URL"`
	MongoURL         string `env:"MONGO_URL" envDefault:"mongodb://localhost:27017/portfolio_db"`
	DatabaseName     string `env:"DATABASE_NAME"`
	CORSOrigin       string `env:"CORS_ORIGIN" envDefault:"*"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"INFO"`
	UploadDir        string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	SeedOnStartup    bool   `env:"SEED_ON_STARTUP" envDefault:"true"`
	ContactRateLimit int    `env:"CONTACT_RATE_LIMIT" envDefault:"10"`
	TrustedProxies   int    `env:"TRUSTED_PROXIES" envDefault:"0"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"Portfolio API"`
	ServiceVersion   string `env:"SERVICE_VERSION" envDefault:"1.0.0"`
}

// Load reads .env files (missing ones are ignored) and then the process
// environment. Variables already set in the environment win over .env.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ContactRateLimit <= 0 {
		return nil, fmt.Errorf("CONTACT_RATE_LIMIT must be positive, got %d", cfg.ContactRateLimit)
	}
	if cfg.TrustedProxies < 0 {
		return nil, fmt.Errorf("TRUSTED_PROXIES must not be negative, got %d", cfg.TrustedProxies)
	}
	return &cfg, nil
}

// StoreURL is DATABASE_URL when set, otherwise MONGO_URL.
func (c *Config) StoreURL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.MongoURL
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
