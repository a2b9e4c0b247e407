package section

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/feedbackward/doshamesh/errs"
	"github.com/feedbackward/doshamesh/format"
	"github.com/feedbackward/doshamesh/packing"
)

// DataRepresentation is section 5: the packing template and its metadata.
// Exactly one of the parameter sets is meaningful, selected by Packing.
type DataRepresentation struct {
	length int

	// NumPoints is the number of points carried by the following data
	// section: all grid points when no bitmap applies, present points
	// otherwise.
	NumPoints int
	// Packing selects the data representation template.
	Packing format.PackingType

	// Simple holds the scaling metadata for templates 5.0 and 5.3.
	Simple packing.SimpleParams
	// Complex holds the grouping metadata for template 5.3.
	Complex packing.ComplexSDParams
	// RunLength holds the metadata for template 5.200.
	RunLength packing.RunLengthParams

	// FieldType is code table 5.1 (original field type) for 5.0/5.3.
	FieldType uint8
	// LevelValues is the representative value per level for 5.200, already
	// divided by the template's decimal scale. Level index m (1-based) maps
	// to LevelValues[m-1]. The unpacked grid keeps raw level indices; this
	// table is exposed for callers that want physical values.
	LevelValues []float64
}

// drsMinLen covers octets 6..11: point count and template number.
const drsMinLen = 6

// ParseDataRepresentation reads a section 5 payload.
//
// Supported templates are 5.0 (simple), 5.3 (complex with spatial
// differencing) and 5.200 (JMA run length); anything else fails with
// errs.ErrUnsupportedPackingType.
func ParseDataRepresentation(payload []byte) (*DataRepresentation, error) {
	if len(payload) < drsMinLen {
		return nil, fmt.Errorf("data representation payload %d bytes, need at least %d: %w",
			len(payload), drsMinLen, errs.ErrTruncatedMessage)
	}

	s := &DataRepresentation{
		length:    HeaderLength + len(payload),
		NumPoints: int(binary.BigEndian.Uint32(payload[0:4])),
		Packing:   format.PackingType(binary.BigEndian.Uint16(payload[4:6])),
	}
	body := payload[6:]

	var err error
	switch s.Packing {
	case format.PackingSimple:
		err = s.parseSimple(body)
	case format.PackingComplexSD:
		err = s.parseComplexSD(body)
	case format.PackingRunLength:
		err = s.parseRunLength(body)
	default:
		return nil, fmt.Errorf("data representation template 5.%d: %w",
			uint16(s.Packing), errs.ErrUnsupportedPackingType)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

// parseSimple reads the template 5.0 body: octets 12..21 of the section.
func (s *DataRepresentation) parseSimple(body []byte) error {
	if len(body) < 10 {
		return fmt.Errorf("template 5.0 body %d bytes, need 10: %w", len(body), errs.ErrTruncatedMessage)
	}

	s.Simple = packing.SimpleParams{
		Reference:    float64(math.Float32frombits(binary.BigEndian.Uint32(body[0:4]))),
		BinaryScale:  signMagnitude16(binary.BigEndian.Uint16(body[4:6])),
		DecimalScale: signMagnitude16(binary.BigEndian.Uint16(body[6:8])),
		Bits:         int(body[8]),
	}
	s.FieldType = body[9]

	return nil
}

// parseComplexSD reads the template 5.3 body: the 5.0 fields followed by the
// group split and spatial differencing descriptors, octets 12..49.
func (s *DataRepresentation) parseComplexSD(body []byte) error {
	if len(body) < 38 {
		return fmt.Errorf("template 5.3 body %d bytes, need 38: %w", len(body), errs.ErrTruncatedMessage)
	}
	if err := s.parseSimple(body); err != nil {
		return err
	}

	s.Complex = packing.ComplexSDParams{
		SimpleParams:     s.Simple,
		MissingValueMgmt: body[11],
		NumGroups:        int(binary.BigEndian.Uint32(body[20:24])),
		GroupWidthRef:    uint32(body[24]),
		GroupWidthBits:   int(body[25]),
		GroupLengthRef:   binary.BigEndian.Uint32(body[26:30]),
		GroupLengthInc:   int(body[30]),
		LastGroupLength:  int(binary.BigEndian.Uint32(body[31:35])),
		GroupLengthBits:  int(body[35]),
		SpatialOrder:     int(body[36]),
		SpatialOctets:    int(body[37]),
	}

	return nil
}

// parseRunLength reads the template 5.200 body: octets 12..17 plus the
// two-octet representative value of each level.
func (s *DataRepresentation) parseRunLength(body []byte) error {
	if len(body) < 6 {
		return fmt.Errorf("template 5.200 body %d bytes, need at least 6: %w", len(body), errs.ErrTruncatedMessage)
	}

	s.RunLength = packing.RunLengthParams{
		Bits:     int(body[0]),
		MaxLevel: int(binary.BigEndian.Uint16(body[1:3])),
	}

	numLevels := int(binary.BigEndian.Uint16(body[3:5]))
	decimals := signMagnitude8(body[5])
	scale := math.Pow(10, float64(decimals))

	levels := body[6:]
	if len(levels) < 2*numLevels {
		return fmt.Errorf("template 5.200 declares %d levels, body holds %d: %w",
			numLevels, len(levels)/2, errs.ErrTruncatedMessage)
	}
	s.LevelValues = make([]float64, numLevels)
	for m := range s.LevelValues {
		s.LevelValues[m] = float64(binary.BigEndian.Uint16(levels[2*m:])) / scale
	}

	return nil
}

func (s *DataRepresentation) Number() Number { return NumDataRepresentation }
func (s *DataRepresentation) Length() int    { return s.length }
func (s *DataRepresentation) sealed()        {}

// signMagnitude16 decodes the 16-bit sign-and-magnitude integers GRIB2 uses
// for scale factors.
func signMagnitude16(v uint16) int {
	if v&0x8000 != 0 {
		return -int(v & 0x7FFF)
	}

	return int(v)
}

func signMagnitude8(v uint8) int {
	if v&0x80 != 0 {
		return -int(v & 0x7F)
	}

	return int(v)
}
