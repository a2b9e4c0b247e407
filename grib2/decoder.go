package grib2

import (
	"fmt"
	"iter"
	"math"

	"github.com/feedbackward/doshamesh/errs"
	"github.com/feedbackward/doshamesh/format"
	"github.com/feedbackward/doshamesh/packing"
	"github.com/feedbackward/doshamesh/section"
)

type config struct {
	missing float64
	table   ParameterTable
}

// Option customizes the decoder.
type Option func(*config)

// WithMissingValue sets the sentinel stored at grid points masked out by
// the bitmap. The default is NaN.
func WithMissingValue(v float64) Option {
	return func(c *config) { c.missing = v }
}

// WithParameterTable replaces the default parameter table. Pass nil to
// force every parameter into its Unknown(d-c-n) form.
func WithParameterTable(t ParameterTable) Option {
	return func(c *config) { c.table = t }
}

func newConfig(opts []Option) *config {
	cfg := &config{
		missing: math.NaN(),
		table:   DefaultParameterTable(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Decode returns an iterator over the grids decoded from buf.
//
// The buffer may hold several concatenated messages, optionally separated
// by zero padding. Messages are independent: a decode failure is yielded
// as an error for that message and iteration resumes at the next message
// boundary. Only a failure to parse an indicator section ends the
// iteration early, because without it the next boundary is unknown.
func Decode(buf []byte, opts ...Option) iter.Seq2[*Grid, error] {
	cfg := newConfig(opts)
	return func(yield func(*Grid, error) bool) {
		pos := 0
		for {
			pos += skipPadding(buf[pos:])
			if pos == len(buf) {
				return
			}

			ind, err := section.ParseIndicator(buf[pos:])
			if err != nil {
				yield(nil, err)
				return
			}
			msg := buf[pos : pos+int(ind.TotalLength)]
			pos += int(ind.TotalLength)

			grids, err := decodeMessage(msg, cfg)
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			for _, g := range grids {
				if !yield(g, nil) {
					return
				}
			}
		}
	}
}

// DecodeAll decodes every message in buf and returns the grids in buffer
// order. Unlike Decode it is strict: the first message that fails aborts
// the whole call.
func DecodeAll(buf []byte, opts ...Option) ([]*Grid, error) {
	var grids []*Grid
	for g, err := range Decode(buf, opts...) {
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
	return grids, nil
}

// fieldState carries the most recent occurrence of each metadata section
// while walking a message. Repeated field groups inherit whatever they do
// not re-send.
type fieldState struct {
	indicator *section.Indicator
	ident     *section.Identification
	coords    section.CoordinateTemplate
	hasCoords bool
	product   *section.ProductDefinition
	drs       *section.DataRepresentation
	bitmap    *section.Bitmap
	// prevBitmap is the last explicit bitmap, the referent of
	// indicator value 254.
	prevBitmap *section.Bitmap
}

func decodeMessage(msg []byte, cfg *config) ([]*Grid, error) {
	var (
		st    fieldState
		grids []*Grid
	)
	for sec, err := range ScanSections(msg) {
		if err != nil {
			return nil, err
		}
		switch s := sec.(type) {
		case *section.Indicator:
			st.indicator = s
		case *section.Identification:
			st.ident = s
		case *section.GridDefinition:
			st.coords, err = s.Resolve()
			if err != nil {
				return nil, err
			}
			st.hasCoords = true
		case *section.ProductDefinition:
			st.product = s
		case *section.DataRepresentation:
			st.drs = s
		case *section.Bitmap:
			st.bitmap = s
			if s.Applies() {
				st.prevBitmap = s
			}
		case *section.Data:
			g, err := assemble(&st, s, cfg)
			if err != nil {
				return nil, err
			}
			grids = append(grids, g)
		}
	}
	if len(grids) == 0 {
		return nil, fmt.Errorf("message carries no data section: %w", errs.ErrTruncatedMessage)
	}
	return grids, nil
}

// assemble unpacks one data section against the current field state and
// builds the Grid.
func assemble(st *fieldState, data *section.Data, cfg *config) (*Grid, error) {
	switch {
	case st.ident == nil:
		return nil, fmt.Errorf("data section without identification: %w", errs.ErrSectionOrder)
	case !st.hasCoords:
		return nil, fmt.Errorf("data section without grid definition: %w", errs.ErrSectionOrder)
	case st.product == nil:
		return nil, fmt.Errorf("data section without product definition: %w", errs.ErrSectionOrder)
	case st.drs == nil:
		return nil, fmt.Errorf("data section without data representation: %w", errs.ErrSectionOrder)
	}

	total := st.coords.Points()
	bm, err := effectiveBitmap(st)
	if err != nil {
		return nil, err
	}

	packed := total
	if bm != nil {
		packed = bm.CountPresent(total)
	}
	if st.drs.NumPoints != packed {
		return nil, fmt.Errorf("data representation declares %d points, grid expects %d: %w",
			st.drs.NumPoints, packed, errs.ErrGridSizeMismatch)
	}

	values, err := unpack(st.drs, data.Payload, packed)
	if err != nil {
		return nil, err
	}
	if bm != nil {
		values = spread(values, bm, total, cfg.missing)
	}

	g := &Grid{
		Coordinates:   st.coords,
		Values:        values,
		ReferenceTime: st.ident.ReferenceTime,
		ValidityTime:  st.ident.ReferenceTime.Add(st.product.ForecastOffset),
		LevelValues:   st.drs.LevelValues,
		MissingValue:  cfg.missing,
	}

	key := ParameterKey{
		Discipline: st.indicator.Discipline,
		Category:   st.product.ParameterCategory,
		Number:     st.product.ParameterNumber,
	}
	param, known := cfg.table.Lookup(key)
	g.Parameter = param.Name
	g.Units = param.Units
	if !known {
		g.Diagnostics = append(g.Diagnostics,
			fmt.Errorf("parameter %s has no table entry: %w", key, errs.ErrUnknownParameter))
	}

	return g, nil
}

func effectiveBitmap(st *fieldState) (*section.Bitmap, error) {
	if st.bitmap == nil || st.bitmap.Absent() {
		return nil, nil
	}
	if st.bitmap.ReusesPrevious() {
		if st.prevBitmap == nil {
			return nil, fmt.Errorf("bitmap refers to a previous bitmap but none was defined: %w",
				errs.ErrSectionOrder)
		}
		return st.prevBitmap, nil
	}
	return st.bitmap, nil
}

func unpack(drs *section.DataRepresentation, payload []byte, n int) ([]float64, error) {
	switch drs.Packing {
	case format.PackingSimple:
		return packing.UnpackSimple(payload, n, drs.Simple)
	case format.PackingComplexSD:
		return packing.UnpackComplexSD(payload, n, drs.Complex)
	case format.PackingRunLength:
		return packing.UnpackRunLength(payload, n, drs.RunLength)
	default:
		return nil, fmt.Errorf("data representation template 5.%d: %w",
			uint16(drs.Packing), errs.ErrUnsupportedPackingType)
	}
}

// spread expands packed present-point values to the full grid, writing the
// missing sentinel at masked-out points.
func spread(packed []float64, bm *section.Bitmap, total int, missing float64) []float64 {
	out := make([]float64, total)
	j := 0
	for i := range total {
		if bm.Present(i) {
			out[i] = packed[j]
			j++
		} else {
			out[i] = missing
		}
	}
	return out
}
