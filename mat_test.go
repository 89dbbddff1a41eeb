package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func intMat(t *testing.T, rows, cols int, vals ...int64) *IntMat {
	t.Helper()
	s, err := NewIntMatSpace(rows, cols)
	require.NoError(t, err)
	es := make([]*Integer, len(vals))
	for i, v := range vals {
		es[i] = NewInteger(v)
	}
	m, err := s.New(es...)
	require.NoError(t, err)
	return m
}

// entryStrings renders a matrix row-major for diffing.
func entryStrings[E any](m *Mat[E]) []string {
	base := m.Space().Base()
	out := make([]string, 0, m.Rows()*m.Cols())
	for _, e := range m.Entries() {
		out = append(out, base.Text(e))
	}
	return out
}

func TestMatSpace_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewIntMatSpace(0, 3)
	require.Error(t, err)
	require.IsType(t, ConfigurationError{}, err)

	s, err := NewIntMatSpace(2, 2)
	require.NoError(t, err)

	// Entry count must match the space dimensions.
	_, err = s.New(NewInteger(1), NewInteger(2), NewInteger(3))
	require.Error(t, err)
}

func TestMat_Arithmetic(t *testing.T) {
	t.Parallel()

	a := intMat(t, 2, 2, 1, 2, 3, 4)
	b := intMat(t, 2, 2, 5, 6, 7, 8)

	sum := a.Add(b)
	if diff := cmp.Diff([]string{"6", "8", "10", "12"}, entryStrings(sum)); diff != "" {
		t.Errorf("Add mismatch (-want +got):\n%s", diff)
	}

	prod, err := a.Mul(b)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"19", "22", "43", "50"}, entryStrings(prod)); diff != "" {
		t.Errorf("Mul mismatch (-want +got):\n%s", diff)
	}
}

func TestMat_MulShapes(t *testing.T) {
	t.Parallel()

	a := intMat(t, 2, 3, 1, 0, 2, 0, 1, 1)
	b := intMat(t, 3, 1, 1, 2, 3)

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 1, prod.Cols())
	if diff := cmp.Diff([]string{"7", "5"}, entryStrings(prod)); diff != "" {
		t.Errorf("Mul mismatch (-want +got):\n%s", diff)
	}

	// Inner dimensions must agree.
	_, err = b.Mul(b)
	require.Error(t, err)
}

func TestMat_IdentityAndTranspose(t *testing.T) {
	t.Parallel()

	s, err := NewIntMatSpace(3, 3)
	require.NoError(t, err)
	id, err := s.Identity()
	require.NoError(t, err)

	a := intMat(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	prod, err := a.Mul(id)
	require.NoError(t, err)
	require.True(t, prod.Equal(a))

	tr := a.Transpose()
	require.Equal(t, "2", tr.At(1, 0).String())
	require.True(t, tr.Transpose().Equal(a))
}

func TestMatDet(t *testing.T) {
	t.Parallel()

	s, err := NewRatMatSpace(3, 3)
	require.NoError(t, err)
	vals := []int64{2, 0, 1, 1, 1, 0, 0, 3, 1}
	es := make([]*Rational, len(vals))
	for i, v := range vals {
		es[i] = QQ.FromInt64(v)
	}
	m, err := s.New(es...)
	require.NoError(t, err)

	det, err := MatDet(m)
	require.NoError(t, err)
	require.Equal(t, "5", det.String())

	// Singular matrix.
	for i := range vals {
		es[i] = QQ.FromInt64([]int64{1, 2, 3, 2, 4, 6, 0, 1, 1}[i])
	}
	sing, err := s.New(es...)
	require.NoError(t, err)
	det, err = MatDet(sing)
	require.NoError(t, err)
	require.True(t, det.IsZero())
}

func TestMat_AtSetBounds(t *testing.T) {
	t.Parallel()

	a := intMat(t, 2, 2, 1, 2, 3, 4)
	require.Panics(t, func() { a.At(2, 0) })
	require.Panics(t, func() { a.Set(0, -1, NewInteger(0)) })
}
