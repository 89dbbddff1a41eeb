package apperrors

import (
	"context"
	"errors"

	"github.com/agbru/algebra"
)

// Application exit codes define the standard exit statuses for the
// application. These codes are used to signal the outcome of the program
// execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ExitCode maps an error to the exit code the process should report.
// Configuration and conversion errors from the library count as user
// configuration mistakes; context errors report cancellation or timeout.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	}
	var cfgErr algebra.ConfigurationError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	var convErr algebra.ConversionError
	if errors.As(err, &convErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
