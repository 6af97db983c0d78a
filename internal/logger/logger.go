package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var defaultLogger = zerolog.New(consoleWriter()).With().Timestamp().Logger()

// Init configures the process-wide logger. When json is false, output is
// the human-readable console format.
func Init(level string, json bool) {
	zerolog.SetGlobalLevel(parseLevel(level))
	if json {
		defaultLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}
	defaultLogger = zerolog.New(consoleWriter()).With().Timestamp().Logger()
}

// Get returns the configured logger. The pointer lets level methods
// chain directly off the call.
func Get() *zerolog.Logger {
	return &defaultLogger
}

// With returns a child logger carrying the given component name.
func With(component string) zerolog.Logger {
	return defaultLogger.With().Str("component", component).Logger()
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
