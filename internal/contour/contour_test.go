package contour

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastal-hazards/inun-utils/internal/raster"
)

func gridFrom(data [][]float64) *raster.Grid {
	return &raster.Grid{
		Header: raster.Header{
			Ncols:       uint(len(data[0])),
			Nrows:       uint(len(data)),
			Xll:         0,
			Yll:         0,
			CellSize:    1,
			NoDataValue: -9999,
		},
		Data: data,
	}
}

func TestLinesSinglePeak(t *testing.T) {
	grid := gridFrom([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	lines := Lines(grid, 0.5)

	// the four cell segments stitch into one closed ring around the peak
	require.Len(t, lines, 1)
	ring := lines[0]
	require.Len(t, ring, 5)
	assert.True(t, ring[0].Equal(ring[len(ring)-1]))

	// ring vertices sit halfway between the peak center (1.5, 1.5) and its
	// neighbors
	expected := map[orb.Point]bool{
		{1.0, 1.5}: false,
		{2.0, 1.5}: false,
		{1.5, 1.0}: false,
		{1.5, 2.0}: false,
	}
	for _, p := range ring[:4] {
		_, ok := expected[p]
		assert.True(t, ok, "unexpected vertex %v", p)
		expected[p] = true
	}
	for p, seen := range expected {
		assert.True(t, seen, "missing vertex %v", p)
	}
}

func TestLinesFlatGrid(t *testing.T) {
	grid := gridFrom([][]float64{
		{1, 1},
		{1, 1},
	})

	assert.Empty(t, Lines(grid, 0.5))
	assert.Empty(t, Lines(grid, 2))
}

func TestLinesOpenContour(t *testing.T) {
	// monotone east-west slope: the iso line crosses the grid top to bottom
	grid := gridFrom([][]float64{
		{0, 1},
		{0, 1},
		{0, 1},
	})

	lines := Lines(grid, 0.5)

	require.Len(t, lines, 1)
	line := lines[0]
	require.Len(t, line, 3)

	for _, p := range line {
		assert.Equal(t, 1.0, p[0])
	}
}

func TestLinesSkipNoData(t *testing.T) {
	grid := gridFrom([][]float64{
		{0, -9999},
		{0, 1},
	})

	// the only cell touches a nodata corner and is skipped
	assert.Empty(t, Lines(grid, 0.5))
}

func TestLinesInterpolatedCrossing(t *testing.T) {
	grid := gridFrom([][]float64{
		{0, 4},
		{0, 4},
	})

	lines := Lines(grid, 1)

	require.Len(t, lines, 1)
	require.Len(t, lines[0], 2)

	// crossing at a quarter of the way between the cell centers
	for _, p := range lines[0] {
		assert.InDelta(t, 0.75, p[0], 1e-12)
	}
}
