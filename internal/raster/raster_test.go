package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGrid() *Grid {
	return &Grid{
		Header: Header{
			Ncols:       4,
			Nrows:       3,
			Xll:         100,
			Yll:         50,
			CellSize:    2,
			NoDataValue: -9999,
		},
		Data: [][]float64{
			{1, 2, 3, 4},
			{5, 6, 7, 8},
			{9, 10, 11, -9999},
		},
	}
}

func TestCoordinates(t *testing.T) {
	grid := testGrid()

	// cell centers, half a cell in from the corner
	assert.Equal(t, 101.0, grid.X(0))
	assert.Equal(t, 107.0, grid.X(3))
	assert.Equal(t, 55.0, grid.Y(0))
	assert.Equal(t, 51.0, grid.Y(2))

	xs := grid.Xs()
	require.Len(t, xs, 4)
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
	}

	// row 0 is the northernmost row
	ys := grid.Ys()
	require.Len(t, ys, 3)
	for i := 1; i < len(ys); i++ {
		assert.Less(t, ys[i], ys[i-1])
	}
}

func TestBounds(t *testing.T) {
	grid := testGrid()

	w, s, e, n := grid.Bounds()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, s)
	assert.Equal(t, 108.0, e)
	assert.Equal(t, 56.0, n)
}

func TestBoundsCentered(t *testing.T) {
	grid := testGrid()
	grid.Centered = true

	w, s, e, n := grid.Bounds()
	assert.Equal(t, 99.0, w)
	assert.Equal(t, 49.0, s)
	assert.Equal(t, 107.0, e)
	assert.Equal(t, 55.0, n)
}

func TestMaskBelow(t *testing.T) {
	grid := testGrid()

	masked := grid.MaskBelow(5)

	// original untouched
	assert.Equal(t, 1.0, grid.Z(0, 0))

	assert.True(t, masked.IsNoData(0, 0))
	assert.True(t, masked.IsNoData(3, 0))
	assert.Equal(t, 5.0, masked.Z(0, 1))
	assert.Equal(t, 11.0, masked.Z(2, 2))

	// nodata cells stay nodata, they are never compared against the cutoff
	assert.True(t, masked.IsNoData(3, 2))
}

func TestMaskWhere(t *testing.T) {
	grid := testGrid()

	masked := grid.MaskWhere(func(c, r uint, v float64) bool {
		return c == 0
	})

	assert.True(t, masked.IsNoData(0, 0))
	assert.True(t, masked.IsNoData(0, 2))
	assert.Equal(t, 2.0, masked.Z(1, 0))
	assert.Equal(t, 1.0, grid.Z(0, 0))
}
