// Package logging provides the shared logger for the algebra library.
//
// The root logger uses github.com/rs/zerolog with a console writer. Library
// code only logs at Debug level on slow paths (irreducible modulus searches,
// adaptive precision retries); commands configure the global level at
// startup. Under `go test` the logger is a no-op unless re-enabled.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// L returns the package logger.
func L() zerolog.Logger {
	return logger
}

// Set replaces the package logger.
func Set(l zerolog.Logger) {
	logger = l
}

// SetOutput changes the output of the package logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// SetLevel sets the global zerolog level from a string such as "debug" or
// "info". Unknown names fall back to "info".
func SetLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// Disable silences the package logger.
func Disable() {
	logger = zerolog.Nop()
}
