package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/algebra"
	"github.com/agbru/algebra/encoding"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/logging"
)

// constantResult is one computed constant with its timing.
type constantResult struct {
	Name     string
	Value    *algebra.Real
	Duration time.Duration
}

// constantsFile is the CBOR payload written with -output: precision, then
// names and values in matching order.
type constantsFile struct {
	_         struct{} `cbor:",toarray"`
	Precision uint
	Names     []string
	Values    []*algebra.Real
}

// runConstants computes the selected certified constants concurrently. The
// real field context is shared read-only across the goroutines; each result
// ball is owned by the goroutine that produced it until collection.
func (a *Application) runConstants(ctx context.Context, out io.Writer) int {
	field, err := algebra.NewRealField(a.Config.Precision)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}

	names := selectedConstants(a.Config.Constants)
	results := make([]constantResult, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			v := computeConstant(field, name)
			results[i] = constantResult{Name: name, Value: v, Duration: time.Since(start)}
			log := logging.L()
			log.Debug().
				Str("constant", name).
				Dur("elapsed", results[i].Duration).
				Msg("computed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCode(err)
	}

	for _, r := range results {
		if a.Config.Quiet {
			fmt.Fprintln(out, a.render(r.Value))
		} else {
			fmt.Fprintf(out, "%-5s = %s  (%s)\n", r.Name, a.render(r.Value), r.Duration.Round(time.Microsecond))
		}
	}

	if a.Config.OutputFile != "" {
		payload := constantsFile{Precision: a.Config.Precision}
		for _, r := range results {
			payload.Names = append(payload.Names, r.Name)
			payload.Values = append(payload.Values, r.Value)
		}
		if err := encoding.Write(a.Config.OutputFile, payload); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "Results saved to: %s\n", a.Config.OutputFile)
		}
	}

	return apperrors.ExitSuccess
}

// render prints the midpoint of v at the configured digit count, falling
// back to the precision-derived count when unset.
func (a *Application) render(v *algebra.Real) string {
	if a.Config.Digits <= 0 {
		return v.String()
	}
	return fmt.Sprintf("[%s +/- %s]", v.Midpoint().Float().Text('g', a.Config.Digits), v.Radius())
}

func selectedConstants(sel string) []string {
	if sel == "all" {
		return []string{"pi", "log2", "e"}
	}
	return []string{sel}
}

func computeConstant(field *algebra.RealField, name string) *algebra.Real {
	switch name {
	case "pi":
		return field.Pi()
	case "log2":
		return field.Log2()
	case "e":
		return field.E()
	}
	panic("algcalc: unknown constant " + name)
}
