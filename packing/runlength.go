package packing

import (
	"errors"
	"fmt"

	"github.com/feedbackward/doshamesh/errs"
)

// RunLengthParams carries the metadata of data representation template 5.200
// (JMA run-length packing of level values).
type RunLengthParams struct {
	// Bits is the width of each packed code.
	Bits int
	// MaxLevel is MV, the highest code that denotes a level value. Codes
	// above MV are run-length digits in base 2^Bits - 1 - MV.
	MaxLevel int
}

// lngu returns the run-length digit base: the number of codes left above the
// level range.
func (p RunLengthParams) lngu() int64 {
	return (int64(1) << p.Bits) - 1 - int64(p.MaxLevel)
}

// UnpackRunLength decodes a run-length packed level sequence into exactly n
// level values.
//
// The packed stream alternates level codes (<= MaxLevel) with zero or more
// run-length digits (> MaxLevel). Digits d_0..d_k-1 following a level encode
// a total repeat count of
//
//	1 + sum( LNGU^i * (d_i - (MaxLevel+1)) )   with LNGU = 2^Bits - 1 - MaxLevel
//
// so a level with no digits appears once. Levels are returned as raw float64
// indices; mapping level indices to representative physical values is the
// caller's concern.
//
// The stream must expand to exactly n points; anything else fails with
// errs.ErrTruncatedData rather than returning a short or overlong grid.
func UnpackRunLength(payload []byte, n int, p RunLengthParams) ([]float64, error) {
	if p.Bits <= 0 || p.Bits > 32 {
		return nil, fmt.Errorf("run-length packing: %d bits per code: %w", p.Bits, errs.ErrUnsupportedPackingType)
	}
	if p.lngu() <= 0 {
		return nil, fmt.Errorf("run-length packing: max level %d leaves no run-length codes in %d bits: %w",
			p.MaxLevel, p.Bits, errs.ErrUnsupportedPackingType)
	}

	out := make([]float64, 0, n)
	r := NewBitReader(payload)

	level := int64(-1)
	run := int64(0)  // accumulated repeat count minus the implicit first occurrence
	unit := int64(1) // LNGU^i for the next digit
	flush := func() error {
		if level < 0 {
			return nil
		}
		for range run + 1 {
			out = append(out, float64(level))
		}
		if len(out) > n {
			return fmt.Errorf("run-length expansion exceeds %d grid points: %w", n, errs.ErrTruncatedData)
		}

		return nil
	}

	for r.Remaining() >= p.Bits {
		code, err := r.ReadUint(p.Bits)
		if err != nil {
			// Unreachable given the Remaining guard, but never truncate
			// silently.
			return nil, fmt.Errorf("run-length packing: %w", errors.Join(errs.ErrTruncatedData, err))
		}

		if int(code) > p.MaxLevel {
			if level < 0 {
				return nil, fmt.Errorf("run-length packing: stream starts with digit %d: %w",
					code, errs.ErrTruncatedData)
			}
			run += unit * (int64(code) - int64(p.MaxLevel) - 1)
			unit *= p.lngu()

			continue
		}

		if err := flush(); err != nil {
			return nil, err
		}
		level = int64(code)
		run, unit = 0, 1
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(out) != n {
		return nil, fmt.Errorf("run-length expansion produced %d of %d grid points: %w",
			len(out), n, errs.ErrTruncatedData)
	}

	return out, nil
}
