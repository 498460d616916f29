package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory = "memory"
	StorageMongo  = "mongo"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	APIKey    string `env:"X_API_KEY,required"`
	JWTSecret string `env:"JWT_SECRET,required"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"memory"`
	MongoDBURI     string `env:"MONGODB_URI"`
	MongoDatabase  string `env:"MONGODB_DATABASE" envDefault:"eventin"`

	RedisAddr string `env:"REDIS_ADDR"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	MailFrom string `env:"MAIL_FROM" envDefault:"no-reply@event.in"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	switch cfg.StorageBackend {
	case StorageMemory:
	case StorageMongo:
		if cfg.MongoDBURI == "" {
			return nil, fmt.Errorf("MONGODB_URI is required when STORAGE_BACKEND is %q", StorageMongo)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND: %q", cfg.StorageBackend)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// SMTPConfigured reports whether outbound mail can actually be sent.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != ""
}
