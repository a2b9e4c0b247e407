package packing

import (
	"encoding/binary"
	"fmt"

	"github.com/feedbackward/doshamesh/errs"
)

// BitReader reads unsigned and sign-and-magnitude integers of arbitrary bit
// width from a byte buffer, most significant bit first.
//
// The reader keeps a single bit cursor; it is not safe for concurrent use.
// Decode one message per reader.
type BitReader struct {
	buf []byte
	pos int // bit position from the start of buf
}

// NewBitReader creates a BitReader over buf with the cursor at bit 0.
func NewBitReader(buf []byte) *BitReader {
	return &BitReader{buf: buf}
}

// ReadUint reads nbits (0 <= nbits <= 64) and returns them as an unsigned
// integer formed MSB-first, spanning byte boundaries as needed.
//
// Reading zero bits returns 0 without advancing the cursor. Reads past the
// end of the buffer fail with errs.ErrOutOfBounds and leave the cursor
// unchanged.
func (r *BitReader) ReadUint(nbits int) (uint64, error) {
	if nbits < 0 || nbits > 64 {
		return 0, fmt.Errorf("bit width %d outside [0, 64]: %w", nbits, errs.ErrOutOfBounds)
	}
	if nbits == 0 {
		return 0, nil
	}
	end := r.pos + nbits
	if end > len(r.buf)*8 {
		return 0, fmt.Errorf("read of %d bits at bit offset %d exceeds %d-byte buffer: %w",
			nbits, r.pos, len(r.buf), errs.ErrOutOfBounds)
	}

	// Fast path for byte-aligned reads of whole-byte widths.
	if r.pos%8 == 0 {
		off := r.pos / 8
		switch nbits {
		case 8:
			r.pos = end
			return uint64(r.buf[off]), nil
		case 16:
			r.pos = end
			return uint64(binary.BigEndian.Uint16(r.buf[off:])), nil
		case 32:
			r.pos = end
			return uint64(binary.BigEndian.Uint32(r.buf[off:])), nil
		case 64:
			r.pos = end
			return binary.BigEndian.Uint64(r.buf[off:]), nil
		}
	}

	var v uint64
	for i := r.pos; i < end; i++ {
		bit := (r.buf[i/8] >> (7 - i%8)) & 1
		v = v<<1 | uint64(bit)
	}
	r.pos = end

	return v, nil
}

// ReadInt reads an nbits-wide sign-and-magnitude integer, the signed
// representation GRIB2 uses for coordinates and scale factors: the most
// significant bit of the field carries the sign, the remaining bits the
// magnitude.
func (r *BitReader) ReadInt(nbits int) (int64, error) {
	raw, err := r.ReadUint(nbits)
	if err != nil {
		return 0, err
	}
	if nbits == 0 {
		return 0, nil
	}

	sign := uint64(1) << (nbits - 1)
	if raw&sign != 0 {
		return -int64(raw &^ sign), nil
	}

	return int64(raw), nil
}

// ReadBytes reads n whole bytes and advances the cursor accordingly.
//
// The bit cursor must be byte aligned; calling ReadBytes mid-byte fails with
// errs.ErrAlignment. The returned slice aliases the underlying buffer and
// must not be modified.
func (r *BitReader) ReadBytes(n int) ([]byte, error) {
	if r.pos%8 != 0 {
		return nil, fmt.Errorf("ReadBytes at bit offset %d: %w", r.pos, errs.ErrAlignment)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative byte count %d: %w", n, errs.ErrOutOfBounds)
	}
	off := r.pos / 8
	if off+n > len(r.buf) {
		return nil, fmt.Errorf("read of %d bytes at offset %d exceeds %d-byte buffer: %w",
			n, off, len(r.buf), errs.ErrOutOfBounds)
	}
	r.pos += n * 8

	return r.buf[off : off+n], nil
}

// Align advances the cursor to the next byte boundary. It is a no-op when
// the cursor is already aligned.
func (r *BitReader) Align() {
	if rem := r.pos % 8; rem != 0 {
		r.pos += 8 - rem
	}
}

// Remaining returns the number of unread bits left in the buffer.
func (r *BitReader) Remaining() int {
	return len(r.buf)*8 - r.pos
}

// BitPos returns the current cursor position in bits from the start of the
// buffer.
func (r *BitReader) BitPos() int {
	return r.pos
}
