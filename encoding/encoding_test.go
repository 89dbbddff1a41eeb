package encoding

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agbru/algebra"
)

func TestSerializeDeserialize_Integer(t *testing.T) {
	t.Parallel()

	n, err := algebra.IntegerFromString("123456789012345678901234567890")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Serialize(&buf, n))

	back := new(algebra.Integer)
	require.NoError(t, Deserialize(&buf, back))
	require.True(t, back.Equal(n))
}

func TestWriteRead_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "value.cbor")
	q, err := algebra.NewRational(-355, 113)
	require.NoError(t, err)

	require.NoError(t, Write(path, q))

	version, err := PeekVersion(path)
	require.NoError(t, err)
	require.Equal(t, Version, version)

	back := new(algebra.Rational)
	require.NoError(t, Read(path, back))
	require.True(t, back.Equal(q))
}

func TestReadBytes_RoutesThroughContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "residue.cbor")
	ring, err := algebra.NewIntModRingInt64(12)
	require.NoError(t, err)
	x := ring.NewInt64(7)

	require.NoError(t, Write(path, x))

	raw, err := ReadBytes(path)
	require.NoError(t, err)
	back, err := ring.DecodeElem(raw)
	require.NoError(t, err)
	require.True(t, back.Equal(x))
}

func TestDeserialize_RejectsWrongVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	enc := encMode.NewEncoder(&buf)
	require.NoError(t, enc.Encode(uint32(999)))
	require.NoError(t, enc.Encode(algebra.NewInteger(1)))

	back := new(algebra.Integer)
	err := Deserialize(&buf, back)
	require.Error(t, err)
}
