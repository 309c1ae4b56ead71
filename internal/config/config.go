package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name        string   `envconfig:"APP_NAME" default:"funnelkit"`
		Port        int      `envconfig:"PORT" default:"8080"`
		CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"funnelkit"`
	}

	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:""`
		Password string `envconfig:"REDIS_PASSWORD" default:""`
		DB       int    `envconfig:"REDIS_DB" default:"0"`
	}

	Gateway struct {
		BaseURL       string        `envconfig:"GATEWAY_BASE_URL" default:"https://api.stripe.com"`
		SecretKey     string        `envconfig:"GATEWAY_SECRET_KEY"`
		WebhookSecret string        `envconfig:"GATEWAY_WEBHOOK_SECRET"`
		Timeout       time.Duration `envconfig:"GATEWAY_TIMEOUT" default:"15s"`
		Currency      string        `envconfig:"GATEWAY_CURRENCY" default:"usd"`
	}

	Auth struct {
		// Signing key for one-click purchase tokens.
		TokenSecret string        `envconfig:"PURCHASE_TOKEN_SECRET"`
		TokenTTL    time.Duration `envconfig:"PURCHASE_TOKEN_TTL" default:"30m"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
