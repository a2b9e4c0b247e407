package section

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feedbackward/doshamesh/errs"
	"github.com/feedbackward/doshamesh/format"
)

func drsPayload(numPoints uint32, template uint16, body []byte) []byte {
	buf := make([]byte, 6, 6+len(body))
	binary.BigEndian.PutUint32(buf[0:4], numPoints)
	binary.BigEndian.PutUint16(buf[4:6], template)

	return append(buf, body...)
}

func simpleBody(ref float32, e, d int16, bits, fieldType byte) []byte {
	body := make([]byte, 10)
	binary.BigEndian.PutUint32(body[0:4], math.Float32bits(ref))
	binary.BigEndian.PutUint16(body[4:6], signMagnitudeBits16(e))
	binary.BigEndian.PutUint16(body[6:8], signMagnitudeBits16(d))
	body[8] = bits
	body[9] = fieldType

	return body
}

func signMagnitudeBits16(v int16) uint16 {
	if v < 0 {
		return 0x8000 | uint16(-v)
	}

	return uint16(v)
}

func TestParseDataRepresentationSimple(t *testing.T) {
	payload := drsPayload(100, 0, simpleBody(1.5, -2, 1, 12, 0))

	s, err := ParseDataRepresentation(payload)
	require.NoError(t, err)
	require.Equal(t, 100, s.NumPoints)
	require.Equal(t, format.PackingSimple, s.Packing)
	require.InDelta(t, 1.5, s.Simple.Reference, 1e-9)
	require.Equal(t, -2, s.Simple.BinaryScale)
	require.Equal(t, 1, s.Simple.DecimalScale)
	require.Equal(t, 12, s.Simple.Bits)
	require.Equal(t, uint8(0), s.FieldType)
}

func TestParseDataRepresentationComplexSD(t *testing.T) {
	body := simpleBody(0, 0, 0, 8, 0)
	body = append(body,
		1, // group splitting method
		0, // missing value management
		0, 0, 0, 0, 0, 0, 0, 0, // primary/secondary missing substitutes
	)
	body = binary.BigEndian.AppendUint32(body, 17) // number of groups
	body = append(body, 4, 6)                      // width reference, width bits
	body = binary.BigEndian.AppendUint32(body, 2)  // length reference
	body = append(body, 3)                         // length increment
	body = binary.BigEndian.AppendUint32(body, 41) // last group length
	body = append(body, 7, 2, 2)                   // length bits, order, extra octets

	s, err := ParseDataRepresentation(drsPayload(500, 3, body))
	require.NoError(t, err)
	require.Equal(t, format.PackingComplexSD, s.Packing)

	c := s.Complex
	require.Equal(t, uint8(0), c.MissingValueMgmt)
	require.Equal(t, 17, c.NumGroups)
	require.Equal(t, uint32(4), c.GroupWidthRef)
	require.Equal(t, 6, c.GroupWidthBits)
	require.Equal(t, uint32(2), c.GroupLengthRef)
	require.Equal(t, 3, c.GroupLengthInc)
	require.Equal(t, 41, c.LastGroupLength)
	require.Equal(t, 7, c.GroupLengthBits)
	require.Equal(t, 2, c.SpatialOrder)
	require.Equal(t, 2, c.SpatialOctets)
	require.Equal(t, 8, c.Bits)
}

func TestParseDataRepresentationRunLength(t *testing.T) {
	// 8-bit codes, levels through 98, 3 representative values with one
	// decimal: 0.5, 1.0, 2.5.
	body := []byte{8, 0, 98, 0, 3, 1, 0, 5, 0, 10, 0, 25}

	s, err := ParseDataRepresentation(drsPayload(286720, 200, body))
	require.NoError(t, err)
	require.Equal(t, format.PackingRunLength, s.Packing)
	require.Equal(t, 8, s.RunLength.Bits)
	require.Equal(t, 98, s.RunLength.MaxLevel)
	require.InDeltaSlice(t, []float64{0.5, 1.0, 2.5}, s.LevelValues, 1e-9)
}

func TestParseDataRepresentationErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		wantErr error
	}{
		{
			name:    "unsupported template",
			payload: drsPayload(10, 2, make([]byte, 40)),
			wantErr: errs.ErrUnsupportedPackingType,
		},
		{
			name:    "short payload",
			payload: []byte{0, 0},
			wantErr: errs.ErrTruncatedMessage,
		},
		{
			name:    "simple body truncated",
			payload: drsPayload(10, 0, make([]byte, 4)),
			wantErr: errs.ErrTruncatedMessage,
		},
		{
			name:    "run-length level table truncated",
			payload: drsPayload(10, 200, []byte{8, 0, 98, 0, 5, 1, 0, 5}),
			wantErr: errs.ErrTruncatedMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataRepresentation(tt.payload)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
