package packing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feedbackward/doshamesh/errs"
)

func TestUnpackSimpleRawValues(t *testing.T) {
	p := SimpleParams{Reference: 0, BinaryScale: 0, DecimalScale: 0, Bits: 8}

	out, err := UnpackSimple([]byte{0x01, 0x02, 0x03}, 3, p)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, out)
}

func TestUnpackSimpleScaling(t *testing.T) {
	// Y = (R + X*2^E) / 10^D with R=10, E=1, D=1.
	p := SimpleParams{Reference: 10, BinaryScale: 1, DecimalScale: 1, Bits: 4}

	out, err := UnpackSimple([]byte{0x12}, 2, p)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1.2, 1.4}, out, 1e-12)
}

func TestUnpackSimpleUnalignedWidth(t *testing.T) {
	// Three 6-bit values packed MSB first: 000001 000010 000011 (00 pad).
	p := SimpleParams{Bits: 6}

	out, err := UnpackSimple([]byte{0b00000100, 0b00100000, 0b11000000}, 3, p)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, out)
}

func TestUnpackSimpleConstantField(t *testing.T) {
	// Zero bits per value: every point is R / 10^D, no payload consumed.
	p := SimpleParams{Reference: 5, DecimalScale: 1}

	out, err := UnpackSimple(nil, 4, p)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 0.5, 0.5, 0.5}, out, 1e-12)
}

func TestUnpackSimpleTruncated(t *testing.T) {
	p := SimpleParams{Bits: 8}

	_, err := UnpackSimple([]byte{0x01}, 3, p)
	require.ErrorIs(t, err, errs.ErrTruncatedData)
}

func TestUnpackSimpleEmptyGrid(t *testing.T) {
	out, err := UnpackSimple(nil, 0, SimpleParams{Bits: 8})
	require.NoError(t, err)
	require.Empty(t, out)
}

func BenchmarkUnpackSimple(b *testing.B) {
	// One dosha mesh worth of 12-bit values.
	const n = 560 * 512
	payload := make([]byte, n*12/8)
	p := SimpleParams{Reference: -10, BinaryScale: -2, DecimalScale: 1, Bits: 12}
	b.ResetTimer()
	for b.Loop() {
		_, _ = UnpackSimple(payload, n, p)
	}
}
