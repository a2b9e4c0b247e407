package section

import (
	"encoding/binary"
	"fmt"

	"github.com/feedbackward/doshamesh/errs"
	"github.com/feedbackward/doshamesh/packing"
)

// latLonTemplate is grid definition template 3.0: equally spaced
// latitude/longitude, the only template the JMA 5-km mesh uses.
const latLonTemplate = 0

// coordinateScale converts the scaled integer coordinates of template 3.0
// to degrees.
const coordinateScale = 1e6

// profileScanMode is the only scanning mode this decoder accepts: +i
// (west to east), -j (north to south), rows consecutive. Grids serialized in
// any other order would need reordering, and reordering silently is exactly
// the kind of plausible-wrong output this decoder refuses to produce.
const profileScanMode = 0x00

// CoordinateTemplate describes the reconstructed grid geometry.
//
// Values are row-major: NumCols consecutive points per row, rows running
// from (LatFirst, LonFirst) towards (LatLast, LonLast). Steps are positive
// magnitudes; the traversal direction follows from the corner coordinates.
type CoordinateTemplate struct {
	NumRows int
	NumCols int

	LatFirst float64
	LonFirst float64
	LatLast  float64
	LonLast  float64
	LatStep  float64
	LonStep  float64
}

// Points returns NumRows * NumCols.
func (c CoordinateTemplate) Points() int {
	return c.NumRows * c.NumCols
}

// GridDefinition is section 3. The template payload stays raw until Resolve
// interprets it.
type GridDefinition struct {
	length int

	// Source is code table 3.0 (source of grid definition).
	Source uint8
	// NumPoints is the declared total number of data points.
	NumPoints uint32
	// TemplateNumber is code table 3.1.
	TemplateNumber uint16

	template []byte // template octets 15..nn
}

// gridDefinitionMinLen covers section octets 6..14.
const gridDefinitionMinLen = 9

// ParseGridDefinition reads a section 3 payload. The grid template itself is
// interpreted later by Resolve.
func ParseGridDefinition(payload []byte) (*GridDefinition, error) {
	if len(payload) < gridDefinitionMinLen {
		return nil, fmt.Errorf("grid definition payload %d bytes, need at least %d: %w",
			len(payload), gridDefinitionMinLen, errs.ErrTruncatedMessage)
	}

	return &GridDefinition{
		length:         HeaderLength + len(payload),
		Source:         payload[0],
		NumPoints:      binary.BigEndian.Uint32(payload[1:5]),
		TemplateNumber: binary.BigEndian.Uint16(payload[7:9]),
		template:       payload[9:],
	}, nil
}

func (s *GridDefinition) Number() Number { return NumGridDefinition }
func (s *GridDefinition) Length() int    { return s.length }
func (s *GridDefinition) sealed()        {}

// Resolve interprets the grid definition template into a coordinate
// template.
//
// Only template 3.0 is supported (errs.ErrUnsupportedGridTemplate
// otherwise). Coordinates arrive as sign-and-magnitude integers in units of
// 10^-6 degree and are converted to floating-point degrees. The resolved
// rows x columns product must match the declared point count
// (errs.ErrGridSizeMismatch).
func (s *GridDefinition) Resolve() (CoordinateTemplate, error) {
	if s.TemplateNumber != latLonTemplate {
		return CoordinateTemplate{}, fmt.Errorf("grid definition template 3.%d: %w",
			s.TemplateNumber, errs.ErrUnsupportedGridTemplate)
	}

	// Template 3.0, octets 15..72. The shape-of-earth block (octets 15..30)
	// is irrelevant to the equally spaced grid and skipped.
	r := packing.NewBitReader(s.template)
	if _, err := r.ReadBytes(16); err != nil {
		return CoordinateTemplate{}, truncatedTemplate(err)
	}

	var (
		tpl CoordinateTemplate
		ni  uint64
		nj  uint64
		err error
	)
	if ni, err = r.ReadUint(32); err != nil {
		return CoordinateTemplate{}, truncatedTemplate(err)
	}
	if nj, err = r.ReadUint(32); err != nil {
		return CoordinateTemplate{}, truncatedTemplate(err)
	}
	// Basic angle and subdivisions (octets 39..46) are zero for this
	// profile.
	if _, err = r.ReadBytes(8); err != nil {
		return CoordinateTemplate{}, truncatedTemplate(err)
	}

	read := func(dst *float64) {
		if err != nil {
			return
		}
		var v int64
		if v, err = r.ReadInt(32); err == nil {
			*dst = float64(v) / coordinateScale
		}
	}

	read(&tpl.LatFirst)
	read(&tpl.LonFirst)
	if err == nil {
		_, err = r.ReadBytes(1) // resolution and component flags
	}
	read(&tpl.LatLast)
	read(&tpl.LonLast)
	read(&tpl.LonStep) // i direction increment
	read(&tpl.LatStep) // j direction increment
	if err != nil {
		return CoordinateTemplate{}, truncatedTemplate(err)
	}

	scan, err := r.ReadUint(8)
	if err != nil {
		return CoordinateTemplate{}, truncatedTemplate(err)
	}
	if scan != profileScanMode {
		return CoordinateTemplate{}, fmt.Errorf("scanning mode 0x%02x, profile requires 0x%02x: %w",
			scan, profileScanMode, errs.ErrUnsupportedGridTemplate)
	}

	tpl.NumCols = int(ni)
	tpl.NumRows = int(nj)
	if declared := int(s.NumPoints); tpl.Points() != declared {
		return CoordinateTemplate{}, fmt.Errorf("%d rows x %d cols = %d points, section declares %d: %w",
			tpl.NumRows, tpl.NumCols, tpl.Points(), declared, errs.ErrGridSizeMismatch)
	}

	return tpl, nil
}

func truncatedTemplate(err error) error {
	return fmt.Errorf("grid definition template 3.0: %v: %w", err, errs.ErrTruncatedMessage)
}
