package grib2

import (
	"time"

	"github.com/feedbackward/doshamesh/internal/hash"
	"github.com/feedbackward/doshamesh/section"
)

// Grid is one fully decoded field: the geometry of the grid, the physical
// values at every point in row-major order (first row northernmost, west to
// east within a row), and the timing and parameter metadata of the field.
type Grid struct {
	// Coordinates describes the point lattice resolved from the grid
	// definition section.
	Coordinates section.CoordinateTemplate

	// Values holds Coordinates.Points() physical values in row-major scan
	// order. Points masked out by the bitmap hold MissingValue.
	Values []float64

	// ReferenceTime is the UTC reference time from the identification
	// section.
	ReferenceTime time.Time

	// ValidityTime is ReferenceTime plus the forecast offset of the
	// product definition section. For analysis products it equals
	// ReferenceTime.
	ValidityTime time.Time

	// Parameter names the physical parameter, e.g. "LandslideRiskLevel".
	// Code triples absent from the parameter table yield the sentinel
	// form "Unknown(d-c-n)" along with a diagnostic.
	Parameter string

	// Units carries the unit string of the parameter table entry, empty
	// when the parameter is unknown.
	Units string

	// LevelValues holds the representative physical value of each
	// run-length level for fields packed with template 5.200. The decoded
	// Values are level indices into this slice offset by one (index value
	// v maps to LevelValues[v-1]; 0 means no level). Nil for other
	// packing templates.
	LevelValues []float64

	// MissingValue is the sentinel stored in Values at masked-out points.
	// NaN unless overridden with WithMissingValue.
	MissingValue float64

	// Diagnostics collects the non-fatal conditions met while decoding
	// this field, such as errs.ErrUnknownParameter.
	Diagnostics []error

	fingerprint uint64
}

// At returns the value at the given row and column of the scan lattice.
// Row 0 is the first (northernmost) row.
func (g *Grid) At(row, col int) float64 {
	return g.Values[row*g.Coordinates.NumCols+col]
}

// Fingerprint returns a 64-bit content hash of the decoded values,
// suitable for detecting duplicate fields across feeds. The hash is
// computed once and cached.
func (g *Grid) Fingerprint() uint64 {
	if g.fingerprint == 0 {
		g.fingerprint = hash.Values(g.Values)
	}
	return g.fingerprint
}
