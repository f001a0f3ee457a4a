// Package contour extracts iso-depth polylines from a raster grid using
// marching squares over the cell-center lattice.
package contour

import (
	"github.com/paulmach/orb"

	"github.com/coastal-hazards/inun-utils/internal/raster"
)

// Lines calculates the contour lines of the grid at the given level.
// Adjacent segments are stitched into continuous polylines. Cells touching
// a nodata value are skipped.
func Lines(grid *raster.Grid, level float64) []orb.LineString {
	lines := []orb.LineString{}

	for col := uint(0); col < grid.Ncols-1; col++ {
		for row := uint(0); row < grid.Nrows-1; row++ {
			newLines := cellLines(grid, col, row, level)

			for _, newLine := range newLines {
				// find all existing lines this segment can extend
				combinable := []int{}
				for j := 0; j < len(lines); j++ {
					canCombine, _ := canCombineLines(newLine, lines[j])

					if canCombine {
						combinable = append(combinable, j)

						if len(combinable) == 2 {
							break
						}
					}
				}

				if len(combinable) == 0 {
					lines = append(lines, newLine)
				} else {
					combined := newLine
					for _, index := range combinable {
						_, combined = combineLines(combined, lines[index])
					}

					lines[combinable[0]] = combined

					if len(combinable) == 2 {
						// remove the second merged line, order is irrelevant
						lines[combinable[1]] = lines[len(lines)-1]
						lines[len(lines)-1] = nil
						lines = lines[:len(lines)-1]
					}
				}
			}
		}
	}

	return lines
}

func cellLines(grid *raster.Grid, col, row uint, level float64) []orb.LineString {
	if grid.IsNoData(col, row) || grid.IsNoData(col+1, row) ||
		grid.IsNoData(col+1, row+1) || grid.IsNoData(col, row+1) {
		return nil
	}

	tl := grid.Z(col, row)
	tr := grid.Z(col+1, row)
	br := grid.Z(col+1, row+1)
	bl := grid.Z(col, row+1)

	leftX := grid.X(col)
	rightX := grid.X(col + 1)
	bottomY := grid.Y(row + 1)
	topY := grid.Y(row)

	// marching squares case index
	index := uint(0)
	if tl > level {
		index = index | 8
	}
	if tr > level {
		index = index | 4
	}
	if br > level {
		index = index | 2
	}
	if bl > level {
		index = index | 1
	}

	topEdgePoint := func() orb.Point {
		return orb.Point{interpolate(leftX, tl, rightX, tr, level), topY}
	}
	leftEdgePoint := func() orb.Point {
		return orb.Point{leftX, interpolate(bottomY, bl, topY, tl, level)}
	}
	bottomEdgePoint := func() orb.Point {
		return orb.Point{interpolate(leftX, bl, rightX, br, level), bottomY}
	}
	rightEdgePoint := func() orb.Point {
		return orb.Point{rightX, interpolate(bottomY, br, topY, tr, level)}
	}

	switch index {
	case 0, 15:
		return nil
	case 1, 14:
		return []orb.LineString{{bottomEdgePoint(), leftEdgePoint()}}
	case 2, 13:
		return []orb.LineString{{rightEdgePoint(), bottomEdgePoint()}}
	case 3, 12:
		return []orb.LineString{{rightEdgePoint(), leftEdgePoint()}}
	case 4, 11:
		return []orb.LineString{{topEdgePoint(), rightEdgePoint()}}
	case 5:
		// saddle: two separate lines
		l1 := orb.LineString{leftEdgePoint(), topEdgePoint()}
		l2 := orb.LineString{bottomEdgePoint(), rightEdgePoint()}
		return []orb.LineString{l1, l2}
	case 6, 9:
		return []orb.LineString{{topEdgePoint(), bottomEdgePoint()}}
	case 7, 8:
		return []orb.LineString{{leftEdgePoint(), topEdgePoint()}}
	case 10:
		// saddle: two separate lines
		l1 := orb.LineString{leftEdgePoint(), bottomEdgePoint()}
		l2 := orb.LineString{topEdgePoint(), rightEdgePoint()}
		return []orb.LineString{l1, l2}
	}

	return nil
}

func interpolate(c0, h0, c1, h1, level float64) float64 {
	return (c0*(h1-level) + c1*(level-h0)) / (h1 - h0)
}

// canCombineLines checks whether two lines share an endpoint (second bool
// is whether l2, l1 have to be swapped to be combined)
func canCombineLines(l1 orb.LineString, l2 orb.LineString) (bool, bool) {
	len1 := len(l1) - 1
	len2 := len(l2) - 1

	if l1[len1].Equal(l2[0]) {
		return true, false
	}

	if l2[len2].Equal(l1[0]) {
		return true, true
	}

	l2.Reverse()

	if l1[len1].Equal(l2[0]) {
		return true, false
	}

	if l2[len2].Equal(l1[0]) {
		return true, true
	}

	return false, false
}

func combineLines(l1 orb.LineString, l2 orb.LineString) (bool, orb.LineString) {
	canCombine, swapped := canCombineLines(l1, l2)

	if !canCombine {
		return false, nil
	}

	if swapped {
		return true, stitchLines(l2, l1)
	}

	return true, stitchLines(l1, l2)
}

// stitchLines appends all points of line2 (except the first one) to line1
func stitchLines(line1 orb.LineString, line2 orb.LineString) orb.LineString {
	for i := 1; i < len(line2); i++ {
		line1 = append(line1, line2[i])
	}

	return line1
}
