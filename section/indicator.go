package section

import (
	"encoding/binary"
	"fmt"

	"github.com/feedbackward/doshamesh/errs"
)

// gribMagic is the first four octets of every GRIB message.
const gribMagic = "GRIB"

// supportedEdition is the only GRIB edition this module decodes.
const supportedEdition = 2

// Indicator is section 0: the fixed 16-byte message header.
type Indicator struct {
	// Discipline is the product discipline from code table 0.0. The JMA
	// landslide feed uses a locally defined discipline.
	Discipline uint8
	// Edition is the GRIB edition number, always 2 here.
	Edition uint8
	// TotalLength is the length in bytes of the whole message, all sections
	// included.
	TotalLength uint64
}

// ParseIndicator reads section 0 from the start of data.
//
// It verifies the "GRIB" magic and the edition number, and checks that the
// buffer can hold the declared total message length. data may extend past
// the message; only the first 16 bytes are consumed.
func ParseIndicator(data []byte) (*Indicator, error) {
	if len(data) < IndicatorLength {
		return nil, fmt.Errorf("indicator section needs %d bytes, have %d: %w",
			IndicatorLength, len(data), errs.ErrTruncatedMessage)
	}
	if got := string(data[0:4]); got != gribMagic {
		return nil, fmt.Errorf("first four bytes %q, want %q: %w", got, gribMagic, errs.ErrTruncatedMessage)
	}
	if data[7] != supportedEdition {
		return nil, fmt.Errorf("GRIB edition %d, want %d: %w", data[7], supportedEdition, errs.ErrUnsupportedEdition)
	}

	s := &Indicator{
		Discipline:  data[6],
		Edition:     data[7],
		TotalLength: binary.BigEndian.Uint64(data[8:16]),
	}
	if s.TotalLength < IndicatorLength+EndLength {
		return nil, fmt.Errorf("declared message length %d shorter than indicator and end marker: %w",
			s.TotalLength, errs.ErrTruncatedMessage)
	}
	if s.TotalLength > uint64(len(data)) {
		return nil, fmt.Errorf("declared message length %d exceeds %d remaining bytes: %w",
			s.TotalLength, len(data), errs.ErrTruncatedMessage)
	}

	return s, nil
}

func (s *Indicator) Number() Number { return NumIndicator }
func (s *Indicator) Length() int    { return IndicatorLength }
func (s *Indicator) sealed()        {}
