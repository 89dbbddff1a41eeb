package algebra

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func real64(t *testing.T) *RealField {
	t.Helper()
	f, err := NewRealField(64)
	require.NoError(t, err)
	return f
}

func TestRealField_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewRealField(0)
	require.Error(t, err)
	require.IsType(t, ConfigurationError{}, err)

	_, err = NewRealField(1 << 30)
	require.Error(t, err)
}

func TestReal_ExactConstructors(t *testing.T) {
	t.Parallel()
	f := real64(t)

	require.True(t, f.FromInt64(42).IsExact())
	require.True(t, f.FromFloat64(0.5).IsExact())
	require.True(t, f.FromInt64(42).ContainsInt64(42))

	// 1/3 is not dyadic: the ball is inexact but still contains it.
	third, err := NewRational(1, 3)
	require.NoError(t, err)
	x := f.FromRational(third)
	require.False(t, x.IsExact())
	require.True(t, x.ContainsRational(third))
}

func TestReal_AddSoundness(t *testing.T) {
	t.Parallel()
	f := real64(t)

	a, err := NewRational(1, 3)
	require.NoError(t, err)
	b, err := NewRational(1, 7)
	require.NoError(t, err)

	sum := f.FromRational(a).Add(f.FromRational(b))
	require.True(t, sum.ContainsRational(a.Add(b)))

	diff := f.FromRational(a).Sub(f.FromRational(b))
	require.True(t, diff.ContainsRational(a.Sub(b)))
}

func TestReal_MulSoundness(t *testing.T) {
	t.Parallel()
	f := real64(t)

	a, err := NewRational(-22, 7)
	require.NoError(t, err)
	b, err := NewRational(355, 113)
	require.NoError(t, err)

	prod := f.FromRational(a).Mul(f.FromRational(b))
	require.True(t, prod.ContainsRational(a.Mul(b)))
}

func TestReal_DivByZeroBall(t *testing.T) {
	t.Parallel()
	f := real64(t)

	// A ball straddling zero cannot be inverted.
	straddling := f.FromMidRad(ArfFromFloat64(0.1), MagFromFloat64(0.5))
	_, err := f.One().Div(straddling)
	require.Error(t, err)
	require.IsType(t, DivisionError{}, err)

	_, err = straddling.Inv()
	require.Error(t, err)

	// Exact zero as well.
	_, err = f.One().Div(f.Zero())
	require.Error(t, err)

	// A ball bounded away from zero divides fine and contains the
	// exact quotient.
	q, err := f.FromInt64(1).Div(f.FromInt64(3))
	require.NoError(t, err)
	third, err := NewRational(1, 3)
	require.NoError(t, err)
	require.True(t, q.ContainsRational(third))
}

func TestReal_DivRadiusShrinksWithPrecision(t *testing.T) {
	t.Parallel()

	f10, err := NewRealField(10)
	require.NoError(t, err)
	f100, err := NewRealField(100)
	require.NoError(t, err)

	q10, err := f10.FromInt64(1).Div(f10.FromInt64(3))
	require.NoError(t, err)
	q100, err := f100.FromInt64(1).Div(f100.FromInt64(3))
	require.NoError(t, err)

	require.False(t, q10.Radius().IsZero())
	require.False(t, q100.Radius().IsZero())
	require.Negative(t, q100.Radius().Cmp(q10.Radius()))
}

func TestReal_CmpThreeValued(t *testing.T) {
	t.Parallel()
	f := real64(t)

	// Disjoint balls are decided.
	c, ok := f.FromInt64(1).Cmp(f.FromInt64(2))
	require.True(t, ok)
	require.Equal(t, -1, c)

	// Identical exact points are decided equal.
	c, ok = f.FromInt64(5).Cmp(f.FromInt64(5))
	require.True(t, ok)
	require.Equal(t, 0, c)

	// Overlapping inexact balls are undecided, and stay undecided
	// rather than collapsing to a midpoint guess.
	wide := f.FromMidRad(ArfFromFloat64(1.0), MagFromFloat64(0.1))
	narrow := f.FromMidRad(ArfFromFloat64(1.05), MagFromFloat64(0.1))
	_, ok = wide.Cmp(narrow)
	require.False(t, ok)

	// Equal is "provably equal", not "overlaps".
	require.False(t, wide.Equal(narrow))
	require.True(t, wide.Overlaps(narrow))
	require.True(t, f.FromInt64(5).Equal(f.FromInt64(5)))
}

func TestReal_AbsAndNeg(t *testing.T) {
	t.Parallel()
	f := real64(t)

	x := f.FromInt64(-3)
	require.True(t, x.Neg().ContainsInt64(3))
	require.True(t, x.Abs().ContainsInt64(3))

	// Abs of a zero-straddling ball still contains every |v|.
	s := f.FromMidRad(ArfFromFloat64(-0.25), MagFromFloat64(0.5))
	a := s.Abs()
	require.True(t, a.ContainsRational(QQ.Zero()))
	half, err := NewRational(1, 2)
	require.NoError(t, err)
	require.True(t, a.ContainsRational(half))
}

func TestReal_MismatchPanics(t *testing.T) {
	t.Parallel()

	f64 := real64(t)
	f128, err := NewRealField(128)
	require.NoError(t, err)

	require.Panics(t, func() {
		f64.One().Add(f128.One())
	})
}

func TestReal_StructuralFieldIdentity(t *testing.T) {
	t.Parallel()

	a, err := NewRealField(64)
	require.NoError(t, err)
	b, err := NewRealField(64)
	require.NoError(t, err)
	require.True(t, a.SameAs(b))
	require.True(t, a.One().Add(b.One()).ContainsInt64(2))
}

// TestReal_ArithmeticSoundness_PropertyBased samples random rational points,
// runs the ball operation, and checks the exact rational result is inside
// the output ball.
func TestReal_ArithmeticSoundness_PropertyBased(t *testing.T) {
	f, err := NewRealField(53)
	if err != nil {
		t.Fatal(err)
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	genRat := gopter.CombineGens(gen.Int64Range(-1<<40, 1<<40), gen.Int64Range(1, 1<<20)).Map(
		func(vals []interface{}) *Rational {
			q, err := NewRational(vals[0].(int64), vals[1].(int64))
			if err != nil {
				panic(err)
			}
			return q
		})

	properties.Property("ball sum contains exact sum", prop.ForAll(
		func(a, b *Rational) bool {
			return f.FromRational(a).Add(f.FromRational(b)).ContainsRational(a.Add(b))
		},
		genRat, genRat,
	))

	properties.Property("ball product contains exact product", prop.ForAll(
		func(a, b *Rational) bool {
			return f.FromRational(a).Mul(f.FromRational(b)).ContainsRational(a.Mul(b))
		},
		genRat, genRat,
	))

	properties.Property("ball quotient contains exact quotient", prop.ForAll(
		func(a, b *Rational) bool {
			if b.IsZero() {
				return true
			}
			q, err := f.FromRational(a).Div(f.FromRational(b))
			if err != nil {
				// The divisor ball may straddle zero for tiny b;
				// refusing is sound.
				return true
			}
			exact, err := a.Div(b)
			return err == nil && q.ContainsRational(exact)
		},
		genRat, genRat,
	))

	properties.TestingRun(t)
}
