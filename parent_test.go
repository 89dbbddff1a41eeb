package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestParent_SameAsIsEquivalence(t *testing.T) {
	t.Parallel()

	r12a, err := NewIntModRingInt64(12)
	require.NoError(t, err)
	r12b, err := NewIntModRingInt64(12)
	require.NoError(t, err)
	r12c, err := NewIntModRingInt64(12)
	require.NoError(t, err)
	r7, err := NewIntModRingInt64(7)
	require.NoError(t, err)

	// Reflexive, symmetric, transitive.
	require.True(t, r12a.SameAs(r12a))
	require.True(t, r12a.SameAs(r12b))
	require.True(t, r12b.SameAs(r12a))
	require.True(t, r12b.SameAs(r12c))
	require.True(t, r12a.SameAs(r12c))

	require.False(t, r12a.SameAs(r7))
	require.False(t, r12a.SameAs(ZZ))
	require.True(t, ZZ.SameAs(ZZ))
	require.True(t, QQ.SameAs(QQ))
	require.False(t, ZZ.SameAs(QQ))
}

func TestParent_ElementsReferenceTheirContext(t *testing.T) {
	t.Parallel()

	r, err := NewIntModRingInt64(9)
	require.NoError(t, err)
	x := r.NewInt64(5)
	require.True(t, x.Parent().SameAs(r))

	require.True(t, NewInteger(1).Parent().SameAs(ZZ))
	require.True(t, QQ.One().Parent().SameAs(QQ))
}

// TestParent_ConcurrentReadOnlyContext exercises the shared-resource policy:
// one immutable context, many goroutines computing with it concurrently.
func TestParent_ConcurrentReadOnlyContext(t *testing.T) {
	t.Parallel()

	ctx, err := NewFinFldCtx(NewInteger(7), 2)
	require.NoError(t, err)
	f, err := NewRealField(96)
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 16; i++ {
		n := uint(i + 1)
		g.Go(func() error {
			// Each goroutine owns its elements; only the contexts
			// are shared.
			x := ctx.Gen().Pow(n)
			if !x.Add(x.Neg()).IsZero() {
				return NewConfigurationError("finfld", "additive inverse broken for x^%d", n)
			}
			inv, err := x.Inv()
			if err != nil {
				return err
			}
			if !x.Mul(inv).Equal(ctx.One()) {
				return NewConfigurationError("finfld", "inverse broken for x^%d", n)
			}
			pi := f.Pi()
			if pi.Radius().IsInf() {
				return NewConfigurationError("pi", "infinite radius at prec %d", f.Prec())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestMustCompatible_PanicMessageNamesOperation(t *testing.T) {
	t.Parallel()

	r12, err := NewIntModRingInt64(12)
	require.NoError(t, err)
	r7, err := NewIntModRingInt64(7)
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.Contains(t, r.(string), "Add")
	}()
	r12.NewInt64(1).Add(r7.NewInt64(1))
}
