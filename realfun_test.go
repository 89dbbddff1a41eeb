package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// decidedLess asserts x < y is provable from the balls.
func decidedLess(t *testing.T, x, y *Real) {
	t.Helper()
	c, ok := x.Cmp(y)
	require.True(t, ok, "comparison undecided: %s vs %s", x, y)
	require.Equal(t, -1, c)
}

func TestRealField_Pi(t *testing.T) {
	t.Parallel()
	f := real64(t)

	pi := f.Pi()
	require.False(t, pi.Radius().IsInf())

	lo, err := f.FromString("3.14159265358979")
	require.NoError(t, err)
	hi, err := f.FromString("3.14159265358980")
	require.NoError(t, err)
	decidedLess(t, lo, pi)
	decidedLess(t, pi, hi)
}

func TestRealField_Log2AndE(t *testing.T) {
	t.Parallel()
	f := real64(t)

	ln2 := f.Log2()
	lo, err := f.FromString("0.693147180559")
	require.NoError(t, err)
	hi, err := f.FromString("0.693147180560")
	require.NoError(t, err)
	decidedLess(t, lo, ln2)
	decidedLess(t, ln2, hi)

	e := f.E()
	lo, err = f.FromString("2.718281828459")
	require.NoError(t, err)
	hi, err = f.FromString("2.718281828460")
	require.NoError(t, err)
	decidedLess(t, lo, e)
	decidedLess(t, e, hi)
}

func TestReal_Sqrt(t *testing.T) {
	t.Parallel()
	f := real64(t)

	two := f.FromInt64(2)
	r, err := two.Sqrt()
	require.NoError(t, err)
	// sqrt(2)^2 must contain 2.
	require.True(t, r.Mul(r).ContainsInt64(2))

	// Exact square stays tight enough to decide against neighbours.
	four, err := f.FromInt64(4).Sqrt()
	require.NoError(t, err)
	require.True(t, four.ContainsInt64(2))

	// Negative input is outside the domain.
	_, err = f.FromInt64(-1).Sqrt()
	require.Error(t, err)
	require.IsType(t, DomainError{}, err)
}

func TestReal_ExpLogRoundTrip(t *testing.T) {
	t.Parallel()
	f := real64(t)

	x := f.FromFloat64(1.5)
	ex, err := x.Exp()
	require.NoError(t, err)
	back, err := ex.Log()
	require.NoError(t, err)
	require.True(t, back.Overlaps(x))
	require.True(t, back.ContainsRational(mustRational(t, 3, 2)))

	// exp(1) * exp(-1) must contain 1.
	e1, err := f.FromInt64(1).Exp()
	require.NoError(t, err)
	em1, err := f.FromInt64(-1).Exp()
	require.NoError(t, err)
	require.True(t, e1.Mul(em1).ContainsInt64(1))

	// log(1) contains 0.
	l1, err := f.FromInt64(1).Log()
	require.NoError(t, err)
	require.True(t, l1.ContainsInt64(0))

	// log of a ball touching zero fails.
	_, err = f.Zero().Log()
	require.Error(t, err)
	require.IsType(t, DomainError{}, err)
	_, err = f.FromInt64(-3).Log()
	require.Error(t, err)
}

func mustRational(t *testing.T, num, den int64) *Rational {
	t.Helper()
	q, err := NewRational(num, den)
	require.NoError(t, err)
	return q
}

func TestReal_SinCos(t *testing.T) {
	t.Parallel()
	f := real64(t)

	x := f.FromFloat64(0.7)
	s, err := x.Sin()
	require.NoError(t, err)
	c, err := x.Cos()
	require.NoError(t, err)

	// sin^2 + cos^2 contains 1.
	require.True(t, s.Mul(s).Add(c.Mul(c)).ContainsInt64(1))

	// sin(0) = 0, cos(0) = 1.
	s0, err := f.Zero().Sin()
	require.NoError(t, err)
	require.True(t, s0.ContainsInt64(0))
	c0, err := f.Zero().Cos()
	require.NoError(t, err)
	require.True(t, c0.ContainsInt64(1))

	// sin(pi) contains 0.
	sp, err := f.Pi().Sin()
	require.NoError(t, err)
	require.True(t, sp.ContainsInt64(0))

	// Results always land in [-1, 1].
	one := f.FromInt64(1)
	c2, ok := s.Abs().Cmp(one.AddRational(mustRational(t, 1, 100)))
	require.True(t, ok)
	require.Equal(t, -1, c2)
}

func TestReal_PowInt(t *testing.T) {
	t.Parallel()
	f := real64(t)

	x := f.FromFloat64(1.5)
	cube, err := x.PowInt(3)
	require.NoError(t, err)
	require.True(t, cube.ContainsRational(mustRational(t, 27, 8)))

	invSq, err := x.PowInt(-2)
	require.NoError(t, err)
	require.True(t, invSq.ContainsRational(mustRational(t, 4, 9)))

	_, err = f.Zero().PowInt(-1)
	require.Error(t, err)

	p0, err := x.PowInt(0)
	require.NoError(t, err)
	require.True(t, p0.ContainsInt64(1))
}

func TestReal_PowReal(t *testing.T) {
	t.Parallel()
	f := real64(t)

	// 2^(1/2) agrees with sqrt(2).
	half := f.FromFloat64(0.5)
	p, err := f.FromInt64(2).Pow(half)
	require.NoError(t, err)
	s, err := f.FromInt64(2).Sqrt()
	require.NoError(t, err)
	require.True(t, p.Overlaps(s))

	// Negative base is outside the domain of the log-based power.
	_, err = f.FromInt64(-2).Pow(half)
	require.Error(t, err)
}

func TestReal_WideInputWidensOutput(t *testing.T) {
	t.Parallel()
	f := real64(t)

	// sin of a ball wider than a period is the whole range, not an error.
	wide := f.FromMidRad(ArfFromFloat64(0), MagFromFloat64(10))
	s, err := wide.Sin()
	require.NoError(t, err)
	require.True(t, s.ContainsInt64(1))
	require.True(t, s.ContainsInt64(-1))

	// exp of an infinite-radius ball widens to an infinite-radius ball.
	inf := f.FromMidRad(ArfFromFloat64(0), MagInf())
	e, err := inf.Exp()
	require.NoError(t, err)
	require.True(t, e.Radius().IsInf())
}
