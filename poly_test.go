package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intPoly(t *testing.T, coeffs ...int64) *IntPoly {
	t.Helper()
	r := NewIntPolyRing("x")
	cs := make([]*Integer, len(coeffs))
	for i, c := range coeffs {
		cs[i] = NewInteger(c)
	}
	return r.New(cs...)
}

func ratPoly(t *testing.T, coeffs ...int64) *RatPoly {
	t.Helper()
	r := NewRatPolyRing("x")
	cs := make([]*Rational, len(coeffs))
	for i, c := range coeffs {
		cs[i] = QQ.FromInt64(c)
	}
	return r.New(cs...)
}

func TestPoly_NormalizationAndDegree(t *testing.T) {
	t.Parallel()

	// Trailing zero coefficients are stripped.
	p := intPoly(t, 1, 2, 0, 0)
	require.Equal(t, 1, p.Degree())

	zero := intPoly(t)
	require.True(t, zero.IsZero())
	require.Equal(t, -1, zero.Degree())
}

func TestPoly_Arithmetic(t *testing.T) {
	t.Parallel()

	// (x + 1)(x - 1) = x^2 - 1
	a := intPoly(t, 1, 1)
	b := intPoly(t, -1, 1)
	require.True(t, a.Mul(b).Equal(intPoly(t, -1, 0, 1)))

	// Degree cancellation in subtraction: (x^2+x) - (x^2) = x.
	require.True(t, intPoly(t, 0, 1, 1).Sub(intPoly(t, 0, 0, 1)).Equal(intPoly(t, 0, 1)))
}

func TestPoly_Eval(t *testing.T) {
	t.Parallel()

	// p(x) = 2x^2 - 3x + 1, p(3) = 10.
	p := intPoly(t, 1, -3, 2)
	require.True(t, p.Eval(NewInteger(3)).Equal(NewInteger(10)))
}

func TestPoly_DivModOverField(t *testing.T) {
	t.Parallel()

	// x^3 - 1 = (x - 1)(x^2 + x + 1).
	num := ratPoly(t, -1, 0, 0, 1)
	den := ratPoly(t, -1, 1)
	q, r, err := PolyDivMod(num, den)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, q.Equal(ratPoly(t, 1, 1, 1)))

	// Division identity: num == q*den + r in general.
	num2 := ratPoly(t, 3, 1, 4, 1)
	den2 := ratPoly(t, 2, 0, 1)
	q2, r2, err := PolyDivMod(num2, den2)
	require.NoError(t, err)
	require.True(t, q2.Mul(den2).Add(r2).Equal(num2))
	require.Less(t, r2.Degree(), den2.Degree())
}

func TestPoly_DivModOverNonField(t *testing.T) {
	t.Parallel()

	_, _, err := PolyDivMod(intPoly(t, 1, 1), intPoly(t, 2))
	require.Error(t, err)
	require.IsType(t, DivisionError{}, err)
}

func TestPoly_GCD(t *testing.T) {
	t.Parallel()

	// gcd((x-1)(x+2), (x-1)(x+3)) = x - 1, monic.
	a := ratPoly(t, -1, 1).Mul(ratPoly(t, 2, 1))
	b := ratPoly(t, -1, 1).Mul(ratPoly(t, 3, 1))
	g, err := PolyGCD(a, b)
	require.NoError(t, err)
	require.True(t, g.Equal(ratPoly(t, -1, 1)))

	// XGCD yields the same gcd and a valid Bezout pair.
	g2, s, u, err := PolyXGCD(a, b)
	require.NoError(t, err)
	require.True(t, g2.Equal(g))
	require.True(t, s.Mul(a).Add(u.Mul(b)).Equal(g))
}

func TestPoly_VariableNameNeverEntersIdentity(t *testing.T) {
	t.Parallel()

	rx := NewIntPolyRing("x")
	rt := NewIntPolyRing("t")
	require.True(t, rx.SameAs(rx))
	// Different variable names are different rings for dispatch.
	require.False(t, rx.SameAs(rt))
}

func TestPoly_NestedRing(t *testing.T) {
	t.Parallel()

	// Polynomials over polynomials: (ZZ[x])[y].
	rx := NewIntPolyRing("x")
	ry := NewPolyRing[*IntPoly](rx, "y")
	x := rx.Gen()
	p := ry.New(x, rx.One()) // x + y
	sq := p.Mul(p)
	require.Equal(t, 2, sq.Degree())
	require.True(t, sq.Coeff(1).Equal(x.MulScalar(NewInteger(2))))
}

func TestPoly_MismatchPanics(t *testing.T) {
	t.Parallel()

	rx := NewIntPolyRing("x")
	rt := NewIntPolyRing("t")
	require.Panics(t, func() {
		rx.Gen().Add(rt.Gen())
	})
}
