package quicvarint

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	// 1-byte
	v, n, err := Parse([]byte{0x19})
	require.NoError(t, err)
	require.Equal(t, uint64(25), v)
	require.Equal(t, 1, n)
	// 2-byte
	v, n, err = Parse([]byte{0x7b, 0xbd})
	require.NoError(t, err)
	require.Equal(t, uint64(15293), v)
	require.Equal(t, 2, n)
	// 4-byte
	v, n, err = Parse([]byte{0x9d, 0x7f, 0x3e, 0x7d})
	require.NoError(t, err)
	require.Equal(t, uint64(494878333), v)
	require.Equal(t, 4, n)
	// 8-byte
	v, n, err = Parse([]byte{0xc2, 0x19, 0x7c, 0x5e, 0xff, 0x14, 0xe8, 0x8c})
	require.NoError(t, err)
	require.Equal(t, uint64(151288809941952652), v)
	require.Equal(t, 8, n)
}

func TestParseErrors(t *testing.T) {
	_, _, err := Parse(nil)
	require.ErrorIs(t, err, io.EOF)
	_, _, err = Parse([]byte{0x7b})
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestAppendRoundTrip(t *testing.T) {
	for _, val := range []uint64{0, 37, maxVarInt1, maxVarInt1 + 1, 15293, maxVarInt2, maxVarInt2 + 1, 494878333, maxVarInt4, maxVarInt4 + 1, 151288809941952652, maxVarInt8} {
		b := Append(nil, val)
		require.Equal(t, Len(val), len(b))
		parsed, n, err := Parse(b)
		require.NoError(t, err)
		require.Equal(t, len(b), n)
		require.Equal(t, val, parsed)
	}
}

func TestAppendTooLarge(t *testing.T) {
	require.Panics(t, func() { Append(nil, maxVarInt8+1) })
	require.Panics(t, func() { Len(maxVarInt8 + 1) })
}
