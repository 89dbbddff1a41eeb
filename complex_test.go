package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func complex64bits(t *testing.T) *ComplexField {
	t.Helper()
	f, err := NewComplexField(64)
	require.NoError(t, err)
	return f
}

func TestComplex_ImaginaryUnit(t *testing.T) {
	t.Parallel()
	f := complex64bits(t)

	// i^2 = -1.
	sq := f.I().Mul(f.I())
	require.True(t, sq.Re().ContainsInt64(-1))
	require.True(t, sq.Im().ContainsInt64(0))
}

func TestComplex_Arithmetic(t *testing.T) {
	t.Parallel()
	f := complex64bits(t)

	// (1 + 2i)(3 - i) = 5 + 5i.
	a := f.FromReals(f.RealField().FromInt64(1), f.RealField().FromInt64(2))
	b := f.FromReals(f.RealField().FromInt64(3), f.RealField().FromInt64(-1))
	p := a.Mul(b)
	require.True(t, p.Re().ContainsInt64(5))
	require.True(t, p.Im().ContainsInt64(5))

	sum := a.Add(b)
	require.True(t, sum.Re().ContainsInt64(4))
	require.True(t, sum.Im().ContainsInt64(1))

	require.True(t, a.Sub(a).ContainsZero())
}

func TestComplex_ConjAndAbs(t *testing.T) {
	t.Parallel()
	f := complex64bits(t)

	// |3 + 4i| = 5.
	z := f.FromReals(f.RealField().FromInt64(3), f.RealField().FromInt64(4))
	require.True(t, z.AbsSquared().ContainsInt64(25))
	abs, err := z.Abs()
	require.NoError(t, err)
	require.True(t, abs.ContainsInt64(5))

	// z * conj(z) = |z|^2 with no imaginary part.
	zz := z.Mul(z.Conj())
	require.True(t, zz.Re().ContainsInt64(25))
	require.True(t, zz.Im().ContainsInt64(0))
}

func TestComplex_DivRoundTrip(t *testing.T) {
	t.Parallel()
	f := complex64bits(t)

	a := f.FromReals(f.RealField().FromInt64(1), f.RealField().FromInt64(2))
	b := f.FromReals(f.RealField().FromInt64(3), f.RealField().FromInt64(-1))

	q, err := a.Div(b)
	require.NoError(t, err)
	back := q.Mul(b)
	require.True(t, back.Re().ContainsInt64(1))
	require.True(t, back.Im().ContainsInt64(2))

	// Division by a rectangle containing zero fails.
	_, err = a.Div(f.Zero())
	require.Error(t, err)
	require.IsType(t, DivisionError{}, err)

	straddle := f.FromReals(
		f.RealField().FromMidRad(ArfFromFloat64(0), MagFromFloat64(0.5)),
		f.RealField().FromMidRad(ArfFromFloat64(0), MagFromFloat64(0.5)))
	_, err = a.Div(straddle)
	require.Error(t, err)
}

func TestComplex_PowInt(t *testing.T) {
	t.Parallel()
	f := complex64bits(t)

	// (1 + i)^4 = -4.
	z := f.FromReals(f.RealField().FromInt64(1), f.RealField().FromInt64(1))
	p, err := z.PowInt(4)
	require.NoError(t, err)
	require.True(t, p.Re().ContainsInt64(-4))
	require.True(t, p.Im().ContainsInt64(0))

	inv, err := z.PowInt(-1)
	require.NoError(t, err)
	require.True(t, inv.Mul(z).Re().ContainsInt64(1))
}

func TestComplex_Exp(t *testing.T) {
	t.Parallel()
	f := complex64bits(t)

	// Euler: e^(i*pi) = -1.
	ipi := f.FromReals(f.RealField().Zero(), f.RealField().Pi())
	e, err := ipi.Exp()
	require.NoError(t, err)
	require.True(t, e.Re().ContainsInt64(-1))
	require.True(t, e.Im().ContainsInt64(0))
}

func TestComplex_MismatchPanics(t *testing.T) {
	t.Parallel()

	f64 := complex64bits(t)
	f128, err := NewComplexField(128)
	require.NoError(t, err)
	require.True(t, f64.SameAs(complex64bits(t)))
	require.False(t, f64.SameAs(f128))
	require.Panics(t, func() { f64.One().Add(f128.One()) })
}
