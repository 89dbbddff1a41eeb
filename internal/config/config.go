// Package config holds runtime configuration for the algcalc command and
// the environment-variable override chain shared by tooling.
//
// Resolution chain (highest priority first):
//  1. CLI flags (-prec, -log-level, ...)
//  2. Environment variables (ALGEBRA_PRECISION, ...)
//  3. Static defaults in this file.
package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "ALGEBRA_"

// Defaults for the precision-bearing contexts and the adaptive evaluation
// loop. DefaultPrecision is the working precision in bits used when the
// caller does not choose one; MaxAdaptiveSteps caps how many times an
// elementary-function evaluation may double its internal padding before it
// returns the widened ball as-is.
const (
	DefaultPrecision   = 64
	DefaultLogLevel    = "info"
	DefaultMaxAdaptive = 4
	MinPrecision       = 2
	MaxPrecision       = 1 << 24
)

// AppConfig carries the resolved configuration of the algcalc command.
type AppConfig struct {
	// Precision is the working precision in bits for ball arithmetic.
	Precision uint
	// LogLevel is the zerolog level name ("debug", "info", ...).
	LogLevel string
	// Digits, when non-zero, overrides the printed decimal digit count.
	Digits int
	// Constants selects which certified constants to compute ("pi",
	// "log2", "e" or "all").
	Constants string
	// OutputFile, when non-empty, receives the computed values in the
	// CBOR wire format.
	OutputFile string
	// Quiet suppresses everything except the computed values.
	Quiet bool
}

// FromEnv returns an AppConfig populated from environment variables, with
// static defaults for anything unset.
func FromEnv() AppConfig {
	return AppConfig{
		Precision: uint(getEnvInt("PRECISION", DefaultPrecision)),
		LogLevel:  getEnvString("LOG_LEVEL", DefaultLogLevel),
		Digits:    getEnvInt("DIGITS", 0),
		Constants: "all",
		Quiet:     getEnvBool("QUIET", false),
	}
}

// MaxAdaptiveSteps returns the configured cap on adaptive precision retries.
func MaxAdaptiveSteps() int {
	n := getEnvInt("MAX_ADAPTIVE_STEPS", DefaultMaxAdaptive)
	if n < 1 {
		return DefaultMaxAdaptive
	}
	return n
}

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as bool, or the default value if not
// set. Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}
