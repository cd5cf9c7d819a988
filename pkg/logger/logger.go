package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

func init() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
}

// ParseLevel maps a LOG_LEVEL value to a logrus level. Unknown values fall back to debug.
func ParseLevel(level string) logrus.Level {
	if strings.TrimSpace(level) == "" {
		return logrus.InfoLevel
	}
	if strings.EqualFold(level, "critical") {
		return logrus.FatalLevel
	}
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.DebugLevel
	}
	return l
}

// SetLevel configures the process wide log level from a LOG_LEVEL value
func SetLevel(level string) {
	logrus.SetLevel(ParseLevel(level))
}

// For returns a logger.
func For(pkg, fn string) *logrus.Entry {
	return logrus.
		WithField("pkg", pkg).
		WithField("fn", fn)
}
