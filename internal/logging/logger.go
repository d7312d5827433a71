package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the global logger from the LOG_LEVEL environment variable.
// Unknown or empty levels default to info.
func Init() {
	level := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	logger = logger.Level(level)
}

// Logger returns the configured logger instance.
func Logger() zerolog.Logger {
	return logger
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	return logger.Debug()
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	return logger.Info()
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	return logger.Warn()
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	return logger.Error()
}

// Fatal starts a fatal-level event. The process exits after Msg is called.
func Fatal() *zerolog.Event {
	return logger.Fatal()
}
