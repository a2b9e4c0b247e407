package doshamesh

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/feedbackward/doshamesh/grib2"
	"github.com/feedbackward/doshamesh/section"
)

func TestProductTime(t *testing.T) {
	ts, err := ProductTime("Z__C_RJTD_20210703094000_MET_INF_Jdosha_Ggis5km_ANAL_grib2.bin")
	require.NoError(t, err)
	require.Equal(t, time.Date(2021, time.July, 3, 9, 40, 0, 0, time.UTC), ts)
}

func TestProductTimeIgnoresDirectory(t *testing.T) {
	ts, err := ProductTime("/data/dosha/2021/Z__C_RJTD_20210703094000_MET_INF_Jdosha_Ggis5km_ANAL_grib2.bin")
	require.NoError(t, err)
	require.Equal(t, 2021, ts.Year())
}

func TestProductTimeErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"missing prefix", "dosha_20210703094000.bin"},
		{"too short", "Z__C_RJTD_2021"},
		{"garbage timestamp", "Z__C_RJTD_2021070309400X_MET_INF.bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProductTime(tt.file)
			require.Error(t, err)
		})
	}
}

// meshGrid builds a canonical-shaped grid filled with fill.
func meshGrid(fill float64) *grib2.Grid {
	values := make([]float64, MeshRows*MeshCols)
	for i := range values {
		values[i] = fill
	}

	return &grib2.Grid{
		Coordinates: section.CoordinateTemplate{
			NumRows:  MeshRows,
			NumCols:  MeshCols,
			LatFirst: MeshLatFirst,
			LonFirst: MeshLonFirst,
			LatLast:  MeshLatLast,
			LonLast:  MeshLonLast,
			LatStep:  MeshLatStep,
			LonStep:  MeshLonStep,
		},
		Values:       values,
		MissingValue: math.NaN(),
	}
}

func TestRiskLevels(t *testing.T) {
	g := meshGrid(0)
	g.Values[0] = 3          // level offset exactly: warning level 0
	g.Values[1] = 5          // warning level 2
	g.Values[2] = 7          // warning level 4
	g.Values[3] = math.NaN() // masked out
	g.Values[4] = 1          // below the offset: no assessment

	levels, err := RiskLevels(g)
	require.NoError(t, err)
	require.Len(t, levels, MeshRows*MeshCols)

	require.Equal(t, uint8(0), levels[0])
	require.Equal(t, uint8(2), levels[1])
	require.Equal(t, uint8(4), levels[2])
	require.Equal(t, MissingRiskLevel, levels[3])
	require.Equal(t, MissingRiskLevel, levels[4])
	// The zero fill is below the offset as well.
	require.Equal(t, MissingRiskLevel, levels[5])
}

func TestRiskLevelsCustomMissingValue(t *testing.T) {
	g := meshGrid(4)
	g.MissingValue = -9999
	g.Values[10] = -9999

	levels, err := RiskLevels(g)
	require.NoError(t, err)
	require.Equal(t, uint8(1), levels[0])
	require.Equal(t, MissingRiskLevel, levels[10])
}

func TestRiskLevelsWrongShape(t *testing.T) {
	g := &grib2.Grid{
		Coordinates: section.CoordinateTemplate{NumRows: 2, NumCols: 3},
		Values:      make([]float64, 6),
	}

	_, err := RiskLevels(g)
	require.Error(t, err)
}

func TestMeshConstants(t *testing.T) {
	// The corner coordinates and steps must agree with the lattice size.
	require.InDelta(t, MeshLatFirst-MeshLatLast, MeshLatStep*(MeshRows-1), 1e-9)
	require.InDelta(t, MeshLonLast-MeshLonFirst, MeshLonStep*(MeshCols-1), 1e-9)
}
