package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSerde_IntegerRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"0", "-1", "123456789012345678901234567890"} {
		n, err := IntegerFromString(s)
		require.NoError(t, err)
		data, err := n.MarshalCBOR()
		require.NoError(t, err)
		back, err := ZZ.DecodeElem(data)
		require.NoError(t, err)
		require.True(t, back.Equal(n), "value %s", s)
	}
}

func TestSerde_RationalRoundTrip(t *testing.T) {
	t.Parallel()

	q, err := QQ.FromString("-355/113")
	require.NoError(t, err)
	data, err := q.MarshalCBOR()
	require.NoError(t, err)
	back, err := QQ.DecodeElem(data)
	require.NoError(t, err)
	require.True(t, back.Equal(q))
}

func TestSerde_IntModWire(t *testing.T) {
	t.Parallel()

	r12, err := NewIntModRingInt64(12)
	require.NoError(t, err)
	x := r12.NewInt64(7)

	data, err := x.MarshalCBOR()
	require.NoError(t, err)

	back, err := r12.DecodeElem(data)
	require.NoError(t, err)
	require.True(t, back.Equal(x))

	// Decoding into a ring with a different modulus is rejected.
	r13, err := NewIntModRingInt64(13)
	require.NoError(t, err)
	_, err = r13.DecodeElem(data)
	require.Error(t, err)
	require.IsType(t, ConversionError{}, err)

	// An over-sized residue on the wire decodes to its canonical
	// representative.
	oversized, err := cborEnc.Marshal(intModWire{Modulus: NewInteger(12), Residue: NewInteger(25)})
	require.NoError(t, err)
	back, err = r12.DecodeElem(oversized)
	require.NoError(t, err)
	require.True(t, back.Equal(r12.NewInt64(1)))
}

func TestSerde_FinFldElemWire(t *testing.T) {
	t.Parallel()

	ctx, err := NewFinFldCtx(NewInteger(3), 2)
	require.NoError(t, err)
	x := ctx.Gen().Add(ctx.One())

	data, err := x.MarshalCBOR()
	require.NoError(t, err)
	back, err := ctx.DecodeElem(data)
	require.NoError(t, err)
	require.True(t, back.Equal(x))

	// A context over a different field rejects the bytes.
	other, err := NewFinFldCtx(NewInteger(3), 3)
	require.NoError(t, err)
	_, err = other.DecodeElem(data)
	require.Error(t, err)
	require.IsType(t, ConversionError{}, err)
}

func TestSerde_NumFldElemWire(t *testing.T) {
	t.Parallel()

	ctx := sqrt2Field(t)
	x := ctx.Gen().Add(ctx.NewFromRational(mustRational(t, 1, 2)))

	data, err := x.MarshalCBOR()
	require.NoError(t, err)
	back, err := ctx.DecodeElem(data)
	require.NoError(t, err)
	require.True(t, back.Equal(x))

	// A different minimal polynomial rejects the bytes.
	ring := NewRatPolyRing("x")
	f3 := ring.New(QQ.FromInt64(-3), QQ.FromInt64(0), QQ.FromInt64(1))
	other, err := NewNumFldCtx(f3)
	require.NoError(t, err)
	_, err = other.DecodeElem(data)
	require.Error(t, err)
}

func TestSerde_PolyRoundTrip(t *testing.T) {
	t.Parallel()

	ring := NewRatPolyRing("x")
	p := ring.New(mustRational(t, 1, 2), QQ.FromInt64(0), QQ.FromInt64(-3))

	data, err := p.MarshalCBOR()
	require.NoError(t, err)
	back, err := ring.DecodeCBOR(data)
	require.NoError(t, err)
	require.True(t, back.Equal(p))
}

func TestSerde_MatrixRoundTrip(t *testing.T) {
	t.Parallel()

	// 4x4 mixed-sign matrix with a large entry, row-major wire order.
	s, err := NewIntMatSpace(4, 4)
	require.NoError(t, err)
	vals := make([]*Integer, 0, 16)
	for i := int64(0); i < 16; i++ {
		vals = append(vals, NewInteger((i-7)*1000003))
	}
	big, err := IntegerFromString("98765432109876543210")
	require.NoError(t, err)
	vals[5] = big
	m, err := s.New(vals...)
	require.NoError(t, err)

	data, err := m.MarshalCBOR()
	require.NoError(t, err)
	back, err := s.DecodeCBOR(data)
	require.NoError(t, err)
	require.True(t, back.Equal(m))
	if diff := cmp.Diff(entryStrings(m), entryStrings(back)); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	// A space with other dimensions rejects the bytes before decoding
	// any entry.
	s2, err := NewIntMatSpace(2, 8)
	require.NoError(t, err)
	_, err = s2.DecodeCBOR(data)
	require.Error(t, err)
	require.IsType(t, ConversionError{}, err)
}

func TestSerde_RealRoundTrip(t *testing.T) {
	t.Parallel()
	f := real64(t)

	for _, x := range []*Real{
		f.FromInt64(42),
		f.FromRational(mustRational(t, 1, 3)),
		f.Pi(),
		f.FromMidRad(ArfFromFloat64(0), MagInf()),
	} {
		data, err := x.MarshalCBOR()
		require.NoError(t, err)
		back, err := f.DecodeElem(data)
		require.NoError(t, err)
		require.True(t, back.Midpoint().Equal(x.Midpoint()))
		require.Equal(t, 0, back.Radius().Cmp(x.Radius()))
	}
}

func TestSerde_ComplexRoundTrip(t *testing.T) {
	t.Parallel()

	cf, err := NewComplexField(64)
	require.NoError(t, err)
	z := cf.FromReals(cf.RealField().Pi(), cf.RealField().FromInt64(-2))

	data, err := z.MarshalCBOR()
	require.NoError(t, err)
	back, err := cf.DecodeElem(data)
	require.NoError(t, err)
	require.True(t, back.Re().Midpoint().Equal(z.Re().Midpoint()))
	require.True(t, back.Im().Midpoint().Equal(z.Im().Midpoint()))
}

func TestSerde_GarbageRejected(t *testing.T) {
	t.Parallel()

	_, err := ZZ.DecodeElem([]byte{0xff, 0x00, 0x01})
	require.Error(t, err)

	r, err := NewIntModRingInt64(7)
	require.NoError(t, err)
	_, err = r.DecodeElem([]byte("not cbor"))
	require.Error(t, err)
}
