package doshamesh

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/feedbackward/doshamesh/grib2"
)

// Canonical geometry of the dosha mesh: 5 km cells covering Japan, rows
// scanning north to south. Reference: JMA Technical Report 374.
const (
	MeshRows = 560
	MeshCols = 512

	MeshLatFirst = 47.975
	MeshLonFirst = 118.03125
	MeshLatLast  = 20.025
	MeshLonLast  = 149.96875
	MeshLatStep  = 3.0 / 60
	MeshLonStep  = 3.75 / 60
)

// MissingRiskLevel marks cells with no risk assessment: sea cells, cells
// masked out by a bitmap, and level codes below the level offset.
const MissingRiskLevel uint8 = 99

// riskLevelOffset is subtracted from the raw run-length level code to get
// the warning level.
const riskLevelOffset = 3

// productPrefix starts every feed file name; the timestamp follows it.
const productPrefix = "Z__C_RJTD_"

const timestampLayout = "20060102150405"

// ProductTime extracts the UTC observation time embedded in a feed file
// name of the form
//
//	Z__C_RJTD_yyyymmddHHMM00_MET_INF_Jdosha_Ggis5km_ANAL_grib2.bin
//
// Any directory part of name is ignored.
func ProductTime(name string) (time.Time, error) {
	base := filepath.Base(name)

	rest, ok := strings.CutPrefix(base, productPrefix)
	if !ok {
		return time.Time{}, fmt.Errorf("file name %q lacks the %q prefix", base, productPrefix)
	}
	if len(rest) < len(timestampLayout) {
		return time.Time{}, fmt.Errorf("file name %q is too short to carry a timestamp", base)
	}

	ts, err := time.ParseInLocation(timestampLayout, rest[:len(timestampLayout)], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("file name %q: %w", base, err)
	}

	return ts, nil
}

// RiskLevels converts a decoded dosha grid into warning levels, row-major
// like Grid.Values. Raw level codes are offset by 3; codes below the
// offset, along with missing points, become MissingRiskLevel.
//
// The grid must have the canonical mesh shape.
func RiskLevels(g *grib2.Grid) ([]uint8, error) {
	rows, cols := g.Coordinates.NumRows, g.Coordinates.NumCols
	if rows != MeshRows || cols != MeshCols {
		return nil, fmt.Errorf("grid is %dx%d, the dosha mesh is %dx%d",
			rows, cols, MeshRows, MeshCols)
	}

	out := make([]uint8, len(g.Values))
	for i, v := range g.Values {
		if math.IsNaN(v) || v == g.MissingValue || v < riskLevelOffset {
			out[i] = MissingRiskLevel
			continue
		}
		out[i] = uint8(v - riskLevelOffset)
	}

	return out, nil
}
