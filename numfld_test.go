package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sqrt2Field returns Q(sqrt 2), built from x^2 - 2.
func sqrt2Field(t *testing.T) *NumFldCtx {
	t.Helper()
	ring := NewRatPolyRing("x")
	minpoly := ring.New(QQ.FromInt64(-2), QQ.FromInt64(0), QQ.FromInt64(1))
	ctx, err := NewNumFldCtx(minpoly)
	require.NoError(t, err)
	return ctx
}

func TestNumFldCtx_Validation(t *testing.T) {
	t.Parallel()

	ring := NewRatPolyRing("x")

	// Non-monic.
	twoX := ring.New(QQ.FromInt64(1), QQ.FromInt64(2))
	_, err := NewNumFldCtx(twoX)
	require.Error(t, err)
	require.IsType(t, ConfigurationError{}, err)

	// Constant.
	_, err = NewNumFldCtx(ring.New(QQ.FromInt64(1)))
	require.Error(t, err)
}

func TestNumFldElem_GeneratorSquares(t *testing.T) {
	t.Parallel()

	ctx := sqrt2Field(t)
	sqrt2 := ctx.Gen()

	// sqrt(2)^2 = 2.
	two := ctx.NewFromInt64(2)
	require.True(t, sqrt2.Mul(sqrt2).Equal(two))
	require.True(t, sqrt2.Pow(2).Equal(two))
}

func TestNumFldElem_Inverse(t *testing.T) {
	t.Parallel()

	ctx := sqrt2Field(t)
	sqrt2 := ctx.Gen()

	// 1/(1 + sqrt 2) = sqrt(2) - 1.
	x := ctx.One().Add(sqrt2)
	inv, err := x.Inv()
	require.NoError(t, err)
	require.True(t, inv.Equal(sqrt2.Sub(ctx.One())))
	require.True(t, x.Mul(inv).Equal(ctx.One()))

	_, err = ctx.Zero().Inv()
	require.Error(t, err)
	require.IsType(t, DivisionError{}, err)
}

func TestNumFldElem_NormAndTrace(t *testing.T) {
	t.Parallel()

	ctx := sqrt2Field(t)
	sqrt2 := ctx.Gen()

	// For a + b*sqrt(2): trace = 2a, norm = a^2 - 2b^2.
	require.Equal(t, "0", sqrt2.Trace().String())
	require.Equal(t, "-2", sqrt2.Norm().String())

	x := ctx.NewFromInt64(1).Add(sqrt2) // 1 + sqrt 2
	require.Equal(t, "2", x.Trace().String())
	require.Equal(t, "-1", x.Norm().String())

	// Norm is multiplicative.
	y := ctx.NewFromInt64(3).Sub(sqrt2)
	require.True(t, x.Mul(y).Norm().Equal(x.Norm().Mul(y.Norm())))
}

func TestNumFldCtx_StructuralIdentity(t *testing.T) {
	t.Parallel()

	// Variable names don't matter, coefficients do.
	rx := NewRatPolyRing("x")
	ry := NewRatPolyRing("y")
	fx := rx.New(QQ.FromInt64(-2), QQ.FromInt64(0), QQ.FromInt64(1))
	fy := ry.New(QQ.FromInt64(-2), QQ.FromInt64(0), QQ.FromInt64(1))

	c1, err := NewNumFldCtx(fx)
	require.NoError(t, err)
	c2, err := NewNumFldCtx(fy)
	require.NoError(t, err)
	require.True(t, c1.SameAs(c2))

	sum := c1.Gen().Add(c2.Gen())
	require.True(t, sum.Equal(c1.Gen().MulRational(QQ.FromInt64(2))))

	// Q(sqrt 3) is a different field.
	f3 := rx.New(QQ.FromInt64(-3), QQ.FromInt64(0), QQ.FromInt64(1))
	c3, err := NewNumFldCtx(f3)
	require.NoError(t, err)
	require.False(t, c1.SameAs(c3))
	require.Panics(t, func() { c1.Gen().Add(c3.Gen()) })
}

func TestNumFldElem_ReducibleMinPolySurfacesOnInv(t *testing.T) {
	t.Parallel()

	// x^2 - 1 is reducible; construction succeeds, inverting x - 1 fails.
	ring := NewRatPolyRing("x")
	f := ring.New(QQ.FromInt64(-1), QQ.FromInt64(0), QQ.FromInt64(1))
	ctx, err := NewNumFldCtx(f)
	require.NoError(t, err)

	zeroDiv := ctx.Gen().Sub(ctx.One())
	_, err = zeroDiv.Inv()
	require.Error(t, err)
	require.IsType(t, DivisionError{}, err)
}
