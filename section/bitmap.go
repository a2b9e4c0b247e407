package section

import (
	"fmt"
	"math/bits"

	"github.com/feedbackward/doshamesh/errs"
)

// Bitmap indicator values from code table 6.0.
const (
	bitmapApplies  = 0
	bitmapPrevious = 254
	bitmapAbsent   = 255
)

// Bitmap is section 6: the optional per-point presence mask. Bit i (MSB
// first: bit 7 of byte 0 is point 0) set means point i carries a value in
// the data section.
type Bitmap struct {
	length int

	// Indicator is code table 6.0: 0 for a bitmap in this section, 254 to
	// re-use the previous bitmap of the message, 255 for no bitmap.
	Indicator uint8

	mask []byte
}

// ParseBitmap reads a section 6 payload.
func ParseBitmap(payload []byte) (*Bitmap, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("bitmap section payload empty: %w", errs.ErrTruncatedMessage)
	}

	s := &Bitmap{
		length:    HeaderLength + len(payload),
		Indicator: payload[0],
	}
	switch s.Indicator {
	case bitmapApplies:
		s.mask = payload[1:]
	case bitmapPrevious, bitmapAbsent:
		// No mask octets in this section.
	default:
		// Centre-defined predetermined bitmaps are not distributed with the
		// message and cannot be applied here.
		return nil, fmt.Errorf("predetermined bitmap %d not available: %w",
			s.Indicator, errs.ErrUnsupportedPackingType)
	}

	return s, nil
}

// Applies reports whether this section carries a bitmap of its own.
func (s *Bitmap) Applies() bool { return s.Indicator == bitmapApplies }

// ReusesPrevious reports whether the previously defined bitmap of this
// message applies to the following data section.
func (s *Bitmap) ReusesPrevious() bool { return s.Indicator == bitmapPrevious }

// Absent reports whether all grid points are present.
func (s *Bitmap) Absent() bool { return s.Indicator == bitmapAbsent }

// Present reports whether grid point i carries a value. Points beyond the
// mask are absent.
func (s *Bitmap) Present(i int) bool {
	byteIdx := i / 8
	if byteIdx >= len(s.mask) {
		return false
	}

	return s.mask[byteIdx]>>(7-i%8)&1 == 1
}

// CountPresent returns the number of present points among the first n grid
// points.
func (s *Bitmap) CountPresent(n int) int {
	full := n / 8
	count := 0
	for _, b := range s.mask[:min(full, len(s.mask))] {
		count += bits.OnesCount8(b)
	}
	for i := full * 8; i < n; i++ {
		if s.Present(i) {
			count++
		}
	}

	return count
}

func (s *Bitmap) Number() Number { return NumBitmap }
func (s *Bitmap) Length() int    { return s.length }
func (s *Bitmap) sealed()        {}
