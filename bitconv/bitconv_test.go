package bitconv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	conv := New(8)
	for k := uint64(0); k < 256; k++ {
		bits := conv.Bits(k)
		require.Len(t, bits, 8)
		require.Equal(t, k, FromBits(bits))
	}
}

func TestMSBFirst(t *testing.T) {
	conv := New(8)
	bits := conv.Bits(0b10000001)
	require.Equal(t, []bool{true, false, false, false, false, false, false, true}, bits)
}

func TestWidth64(t *testing.T) {
	conv := New(64)
	k := uint64(0xDEADBEEFCAFEBABE)
	require.Equal(t, k, FromBits(conv.Bits(k)))
}

func TestInvalidWidthPanics(t *testing.T) {
	require.Panics(t, func() { New(0) })
	require.Panics(t, func() { New(65) })
}
