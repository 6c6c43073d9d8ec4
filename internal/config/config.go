package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Contas"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"contas"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	RateLimit struct {
		Requests int           `envconfig:"RATE_LIMIT_REQUESTS" default:"30"`
		Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"60s"`
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
