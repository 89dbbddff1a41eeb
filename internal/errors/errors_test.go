package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/agbru/algebra"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitErrorGeneric},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", fmt.Errorf("wrapped: %w", context.Canceled), ExitErrorCanceled},
		{"configuration", algebra.NewConfigurationError("modulus", "bad"), ExitErrorConfig},
		{"conversion", algebra.NewConversionError("1/2", "Rational", "Integer"), ExitErrorConfig},
		{"division", algebra.NewDivisionError("Div", "by zero"), ExitErrorGeneric},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tc.err); got != tc.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
