// Package app wires flag parsing, logging setup and the computation run of
// the algcalc command. main stays a thin shell around it so the whole flow
// is testable with an in-memory writer.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/algebra/internal/config"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/logging"
)

// Application represents the algcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	app := &Application{ErrWriter: errWriter}

	programName := "algcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if _, err := zerolog.ParseLevel(a.Config.LogLevel); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: invalid log level %q\n", a.Config.LogLevel)
		return apperrors.ExitErrorConfig
	}
	logging.SetLevel(a.Config.LogLevel)
	if a.Config.Quiet {
		logging.Disable()
	}

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return a.runConstants(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
