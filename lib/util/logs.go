package util

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetLogLevel applies a textual log level (typically from the LOG_LEVEL
// environment variable) to the given logger. Unrecognized values fall back
// to info.
func SetLogLevel(logger *logrus.Logger, level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	case "warn", "warning":
		logger.SetLevel(logrus.WarnLevel)
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}
