package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Database    string `envconfig:"DATABASE" default:"board.sqlite"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Port        int    `envconfig:"PORT" default:"5000"`
	SecretKey   string `envconfig:"SECRET_KEY" default:"development-key"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads an optional .env file and then decodes the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		logrus.Debug("No .env file found, using system environment variables.")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("DATABASE must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Dialect tells which store DATABASE points at. URLs are postgres, anything
// else is treated as a sqlite file path.
func (c Config) Dialect() string {
	if strings.HasPrefix(c.Database, "postgres://") || strings.HasPrefix(c.Database, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
