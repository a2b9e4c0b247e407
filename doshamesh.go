// Package doshamesh decodes the JMA 10-minute landslide disaster risk mesh
// feed: GRIB2 edition-2 files on a fixed 5 km latitude/longitude lattice
// over Japan, packed with simple, complex spatial-differencing, or JMA
// run-length packing.
//
// The root package is a thin facade. Decode and DecodeFile accept raw or
// compressed archives and return fully assembled grids; ProductTime and
// RiskLevels interpret feed-specific conventions on top of them. The
// building blocks live in the subpackages:
//
//   - grib2: message walking, decode orchestration, Grid assembly
//   - section: typed parsers for the GRIB2 sections
//   - packing: the bit reader and the three unpacking algorithms
//   - compress: container compression around archived files
//   - errs: the error taxonomy shared by all of the above
//
// # Quick Start
//
//	grids, err := doshamesh.DecodeFile(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	levels, err := doshamesh.RiskLevels(grids[0])
package doshamesh

import (
	"fmt"
	"os"

	"github.com/feedbackward/doshamesh/compress"
	"github.com/feedbackward/doshamesh/grib2"
)

// Decode decodes every GRIB2 message in data and returns the grids in
// buffer order. Gzip, Zstandard and LZ4 wrapped input is detected by magic
// prefix and unwrapped first.
func Decode(data []byte, opts ...grib2.Option) ([]*grib2.Grid, error) {
	raw, err := compress.Decode(data)
	if err != nil {
		return nil, err
	}

	return grib2.DecodeAll(raw, opts...)
}

// DecodeFile reads and decodes one archive file. See Decode.
func DecodeFile(path string, opts ...grib2.Option) ([]*grib2.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return Decode(data, opts...)
}
