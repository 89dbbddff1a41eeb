package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseConfig parses command-line flags on top of the environment defaults
// and returns the resolved configuration. Flag errors (including -help) are
// returned as-is from the flag package.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := FromEnv()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	prec := fs.Uint("prec", cfg.Precision, "working precision in bits")
	fs.IntVar(&cfg.Digits, "digits", cfg.Digits, "decimal digits to print (0 = from precision)")
	fs.StringVar(&cfg.Constants, "const", cfg.Constants, "constants to compute: pi, log2, e or all")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the computed values to this file (CBOR)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error, disabled")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the computed values")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	cfg.Precision = *prec

	if cfg.Precision < MinPrecision || cfg.Precision > MaxPrecision {
		return AppConfig{}, fmt.Errorf("precision %d out of range [%d, %d]", cfg.Precision, MinPrecision, MaxPrecision)
	}
	switch cfg.Constants {
	case "pi", "log2", "e", "all":
	default:
		return AppConfig{}, fmt.Errorf("unknown constant selection %q", cfg.Constants)
	}
	return cfg, nil
}
