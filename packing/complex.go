package packing

import (
	"errors"
	"fmt"

	"github.com/feedbackward/doshamesh/errs"
)

// ComplexSDParams carries the metadata of data representation template 5.3
// (complex packing with spatial differencing).
//
// The packed payload is organized as, in order: the spatial differencing
// descriptors (initial values and the overall minimum, each SpatialOctets
// bytes wide, sign and magnitude), the per-group reference values, the
// per-group widths, the per-group lengths (each block padded to a byte
// boundary), and finally the group data itself.
type ComplexSDParams struct {
	SimpleParams

	// MissingValueMgmt is code table 5.5; only 0 (no explicit missing
	// values inside the packed data) is supported.
	MissingValueMgmt uint8

	// NumGroups is NG, the number of groups the points are split into.
	NumGroups int
	// GroupWidthRef and GroupWidthBits describe the per-group value widths:
	// width(g) = GroupWidthRef + packedWidth(g).
	GroupWidthRef  uint32
	GroupWidthBits int
	// GroupLengthRef, GroupLengthInc and GroupLengthBits describe the
	// per-group lengths: length(g) = GroupLengthRef + GroupLengthInc *
	// packedLength(g). The final group uses LastGroupLength verbatim.
	GroupLengthRef  uint32
	GroupLengthInc  int
	LastGroupLength int
	GroupLengthBits int

	// SpatialOrder is the order of spatial differencing (1 or 2).
	SpatialOrder int
	// SpatialOctets is the byte width of the extra descriptors at the start
	// of the payload.
	SpatialOctets int
}

// UnpackComplexSD decodes n values packed with complex packing and spatial
// differencing.
//
// Reconstruction follows the template contract: packed integers are
// per-group offsets from the group reference; the resulting sequence holds
// spatial differences of order SpatialOrder, seeded by the explicit initial
// values stored at the start of the payload; prefix-sum passes rebuild the
// original scaled integers, which are then converted with the same
// reference/scale formula as simple packing.
func UnpackComplexSD(payload []byte, n int, p ComplexSDParams) ([]float64, error) {
	if p.MissingValueMgmt != 0 {
		return nil, fmt.Errorf("missing value management %d: %w", p.MissingValueMgmt, errs.ErrUnsupportedPackingType)
	}
	if p.SpatialOrder != 1 && p.SpatialOrder != 2 {
		return nil, fmt.Errorf("spatial differencing order %d: %w", p.SpatialOrder, errs.ErrUnsupportedPackingType)
	}
	if n == 0 {
		return []float64{}, nil
	}
	if p.NumGroups <= 0 {
		return nil, fmt.Errorf("complex packing: %d groups declared for %d points: %w",
			p.NumGroups, n, errs.ErrTruncatedData)
	}

	r := NewBitReader(payload)

	ival1, ival2, minsd, err := readSpatialDescriptors(r, p)
	if err != nil {
		return nil, err
	}

	refs, widths, lengths, err := readGroupTables(r, p)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, l := range lengths {
		total += l
	}
	if total != n {
		return nil, fmt.Errorf("group lengths sum to %d points, grid declares %d: %w",
			total, n, errs.ErrTruncatedData)
	}

	// Group data: per-point offsets from the group reference.
	x := make([]int64, 0, n)
	for g := range p.NumGroups {
		for range lengths[g] {
			raw, err := r.ReadUint(widths[g])
			if err != nil {
				return nil, truncated("group data", err)
			}
			x = append(x, int64(refs[g])+int64(raw))
		}
	}

	// Undo the differencing: seed with the stored initial values, add the
	// overall minimum back to every difference, then prefix-sum once per
	// order.
	switch p.SpatialOrder {
	case 1:
		x[0] = ival1
		for i := 1; i < len(x); i++ {
			x[i] += x[i-1] + minsd
		}
	case 2:
		x[0] = ival1
		if len(x) > 1 {
			x[1] = ival2
		}
		for i := 2; i < len(x); i++ {
			x[i] += 2*x[i-1] - x[i-2] + minsd
		}
	}

	out := make([]float64, n)
	for i, xi := range x {
		out[i] = p.scale(xi)
	}

	return out, nil
}

func readSpatialDescriptors(r *BitReader, p ComplexSDParams) (ival1, ival2, minsd int64, err error) {
	if p.SpatialOctets == 0 {
		return 0, 0, 0, nil
	}
	w := p.SpatialOctets * 8

	if ival1, err = r.ReadInt(w); err != nil {
		return 0, 0, 0, truncated("first initial value", err)
	}
	if p.SpatialOrder == 2 {
		if ival2, err = r.ReadInt(w); err != nil {
			return 0, 0, 0, truncated("second initial value", err)
		}
	}
	if minsd, err = r.ReadInt(w); err != nil {
		return 0, 0, 0, truncated("difference minimum", err)
	}

	return ival1, ival2, minsd, nil
}

func readGroupTables(r *BitReader, p ComplexSDParams) (refs []uint32, widths, lengths []int, err error) {
	refs = make([]uint32, p.NumGroups)
	for g := range refs {
		raw, err := r.ReadUint(p.Bits)
		if err != nil {
			return nil, nil, nil, truncated("group references", err)
		}
		refs[g] = uint32(raw)
	}
	r.Align()

	widths = make([]int, p.NumGroups)
	for g := range widths {
		raw, err := r.ReadUint(p.GroupWidthBits)
		if err != nil {
			return nil, nil, nil, truncated("group widths", err)
		}
		widths[g] = int(p.GroupWidthRef) + int(raw)
		if widths[g] > 64 {
			return nil, nil, nil, fmt.Errorf("group %d width %d bits: %w", g, widths[g], errs.ErrUnsupportedPackingType)
		}
	}
	r.Align()

	lengths = make([]int, p.NumGroups)
	for g := range lengths {
		raw, err := r.ReadUint(p.GroupLengthBits)
		if err != nil {
			return nil, nil, nil, truncated("group lengths", err)
		}
		lengths[g] = int(p.GroupLengthRef) + p.GroupLengthInc*int(raw)
	}
	lengths[p.NumGroups-1] = p.LastGroupLength
	r.Align()

	return refs, widths, lengths, nil
}

func truncated(what string, err error) error {
	if errors.Is(err, errs.ErrOutOfBounds) {
		return fmt.Errorf("complex packing: %s: %w", what, errs.ErrTruncatedData)
	}

	return fmt.Errorf("complex packing: %s: %w", what, err)
}
