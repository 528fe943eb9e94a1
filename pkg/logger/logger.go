package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger with the specified log level. Unknown levels fall back
// to info so a bad env var never blocks startup.
func New(level string) *logrus.Logger {
	log := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Diagnostics go to stderr so they never corrupt the TUI or table output.
	log.SetOutput(os.Stderr)

	return log
}
