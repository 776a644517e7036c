// SPDX-License-Identifier: MIT
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the shared zerolog instance. Console output with short
// timestamps; the audio callback never logs, so nothing here needs to be
// allocation-free.
var logger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: "15:04:05",
}).With().Timestamp().Logger()

// SetLevel sets the global logging level from a string ("debug", "info",
// "warn", "error"). Unrecognized values fall back to info.
func SetLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Debugf logs a formatted debug message.
func Debugf(format string, v ...interface{}) {
	logger.Debug().Msgf(format, v...)
}

// Infof logs a formatted info message.
func Infof(format string, v ...interface{}) {
	logger.Info().Msgf(format, v...)
}

// Warnf logs a formatted warning message.
func Warnf(format string, v ...interface{}) {
	logger.Warn().Msgf(format, v...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	logger.Error().Msgf(format, v...)
}

// Fatalf logs a formatted fatal message and exits with a non-zero code.
func Fatalf(format string, v ...interface{}) {
	logger.Fatal().Msgf(format, v...)
}
