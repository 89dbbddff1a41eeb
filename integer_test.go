package algebra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestInteger_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b int64
		op   string
		want int64
	}{
		{3, 5, "add", 8},
		{-3, 5, "add", 2},
		{3, 5, "sub", -2},
		{7, -6, "mul", -42},
		{0, 123, "mul", 0},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d_%s_%d", tc.a, tc.op, tc.b), func(t *testing.T) {
			t.Parallel()
			a, b := NewInteger(tc.a), NewInteger(tc.b)
			var got *Integer
			switch tc.op {
			case "add":
				got = a.Add(b)
			case "sub":
				got = a.Sub(b)
			case "mul":
				got = a.Mul(b)
			}
			if got.CmpInt64(tc.want) != 0 {
				t.Errorf("%d %s %d = %s, want %d", tc.a, tc.op, tc.b, got, tc.want)
			}
		})
	}
}

func TestInteger_QuoRemEuclidean(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, b, q, r int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -2, 1},
		{-7, -3, 3, 2},
	}

	for _, tc := range cases {
		a, b := NewInteger(tc.a), NewInteger(tc.b)
		q, err := a.Quo(b)
		if err != nil {
			t.Fatalf("Quo(%d, %d): %v", tc.a, tc.b, err)
		}
		r, err := a.Rem(b)
		if err != nil {
			t.Fatalf("Rem(%d, %d): %v", tc.a, tc.b, err)
		}
		if q.CmpInt64(tc.q) != 0 || r.CmpInt64(tc.r) != 0 {
			t.Errorf("QuoRem(%d, %d) = (%s, %s), want (%d, %d)", tc.a, tc.b, q, r, tc.q, tc.r)
		}
	}
}

func TestInteger_DivisionByZero(t *testing.T) {
	t.Parallel()

	if _, err := NewInteger(5).Quo(NewInteger(0)); err == nil {
		t.Fatal("Quo by zero: expected error")
	} else {
		var de DivisionError
		if !errors.As(err, &de) {
			t.Fatalf("Quo by zero: got %T, want DivisionError", err)
		}
	}
}

func TestInteger_XGCD(t *testing.T) {
	t.Parallel()

	a, b := NewInteger(240), NewInteger(46)
	g, s, u := a.XGCD(b)
	if g.CmpInt64(2) != 0 {
		t.Fatalf("gcd(240, 46) = %s, want 2", g)
	}
	// Bezout: s*a + u*b == g.
	lhs := s.Mul(a).Add(u.Mul(b))
	if !lhs.Equal(g) {
		t.Errorf("Bezout identity broken: %s*240 + %s*46 = %s, want %s", s, u, lhs, g)
	}
}

func TestInteger_Int64Overflow(t *testing.T) {
	t.Parallel()

	big, err := IntegerFromString("123456789012345678901234567890")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := big.Int64(); err == nil {
		t.Fatal("Int64 on out-of-range value: expected ConversionError")
	} else {
		var ce ConversionError
		if !errors.As(err, &ce) {
			t.Fatalf("got %T, want ConversionError", err)
		}
	}
}

// TestInteger_AddSubRoundTrip_PropertyBased verifies (a + b) - b == a over
// randomly generated operands.
func TestInteger_AddSubRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(a + b) - b == a", prop.ForAll(
		func(a, b int64) bool {
			x, y := NewInteger(a), NewInteger(b)
			return x.Add(y).Sub(y).Equal(x)
		},
		gen.Int64(), gen.Int64(),
	))

	properties.Property("a * (b + c) == a*b + a*c", prop.ForAll(
		func(a, b, c int64) bool {
			x, y, z := NewInteger(a), NewInteger(b), NewInteger(c)
			return x.Mul(y.Add(z)).Equal(x.Mul(y).Add(x.Mul(z)))
		},
		gen.Int64(), gen.Int64(), gen.Int64(),
	))

	properties.TestingRun(t)
}

func TestInteger_AssignVariantsMatchAllocating(t *testing.T) {
	t.Parallel()

	a, b := NewInteger(17), NewInteger(25)
	want := a.Add(b)
	a.AddAssign(b)
	if !a.Equal(want) {
		t.Errorf("AddAssign = %s, want %s", a, want)
	}
}
