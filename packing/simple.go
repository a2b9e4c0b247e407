package packing

import (
	"errors"
	"fmt"
	"math"

	"github.com/feedbackward/doshamesh/errs"
)

// SimpleParams carries the scaling metadata of data representation template
// 5.0 (grid point data, simple packing).
type SimpleParams struct {
	// Reference is R, the reference value (minimum of the packed values).
	Reference float64
	// BinaryScale is E, the binary scale factor.
	BinaryScale int
	// DecimalScale is D, the decimal scale factor.
	DecimalScale int
	// Bits is the width in bits of each packed value. Zero means a constant
	// field: every point equals R / 10^D and the payload carries no bits.
	Bits int
}

// scale converts a packed integer to its physical value using the standard
// GRIB2 formula Y = (R + X*2^E) / 10^D.
func (p SimpleParams) scale(x int64) float64 {
	e := math.Ldexp(1, p.BinaryScale)
	d := math.Pow(10, float64(p.DecimalScale))

	return (p.Reference + float64(x)*e) / d
}

// UnpackSimple decodes n simple-packed values from the data section payload.
//
// Each value occupies exactly p.Bits bits, MSB first. When a bitmap marks
// points missing, n must be the number of PRESENT points: missing points do
// not consume bits, and the caller expands the result over the bitmap
// afterwards.
//
// Returns errs.ErrTruncatedData when the payload holds fewer than n*p.Bits
// bits.
func UnpackSimple(payload []byte, n int, p SimpleParams) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative point count %d", n)
	}
	out := make([]float64, n)

	if p.Bits == 0 {
		v := p.scale(0)
		for i := range out {
			out[i] = v
		}

		return out, nil
	}

	r := NewBitReader(payload)
	for i := range n {
		x, err := r.ReadUint(p.Bits)
		if err != nil {
			if errors.Is(err, errs.ErrOutOfBounds) {
				return nil, fmt.Errorf("simple packing: value %d of %d: %w", i, n, errs.ErrTruncatedData)
			}

			return nil, fmt.Errorf("simple packing: value %d: %w", i, err)
		}
		out[i] = p.scale(int64(x))
	}

	return out, nil
}
