// Package logger configures the process-wide logrus logger.
package logger

import (
	"os"

	log "github.com/sirupsen/logrus"

	"tourcrm/internal/config"
)

func Setup(cfg config.LogConfig) {
	log.SetOutput(os.Stdout)
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("[logger] unknown level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
