package logger

import (
	"fmt"
	"os"

	"board/config"

	"github.com/sirupsen/logrus"
)

// New builds the application logger from the config.
func New(cfg config.Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.WithField("environment", cfg.Environment).Info("Logger initialized")
	return log, nil
}
