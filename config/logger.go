package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ConfigureLogger sets up the global logrus logger. Unknown levels fall back to info.
func ConfigureLogger(cfg Log) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", cfg.Level)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.EqualFold(cfg.Format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
}
