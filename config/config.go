package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration, read from environment variables.
type Config struct {
	DatabaseURL string   `envconfig:"DATABASE_URL" default:"postgres://postgres@localhost:5432/timesheet?sslmode=disable"`
	ServerAddr  string   `envconfig:"SERVER_ADDR" default:":8080"`
	LogFormat   string   `envconfig:"LOG_FORMAT" default:"pretty"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
