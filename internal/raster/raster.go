package raster

// Header holds the metadata block of an ESRI ASCII grid.
type Header struct {
	Ncols, Nrows uint
	// Xll and Yll are the lower-left coordinates of the grid. Whether they
	// refer to the corner or the center of the lower-left cell depends on
	// Centered.
	Xll, Yll    float64
	CellSize    float64
	NoDataValue float64
	Centered    bool
}

// Grid is an immutable raster loaded from an ESRI ASCII grid file. Data is
// stored in raster order: row 0 is the northernmost row.
type Grid struct {
	Header
	Data [][]float64
}

// Dims returns the dimensions of the grid.
func (g *Grid) Dims() (c, r uint) {
	return g.Ncols, g.Nrows
}

// Z returns the value of the cell at (c, r).
// It will panic if c or r are out of bounds for the grid.
func (g *Grid) Z(c, r uint) float64 {
	return g.Data[r][c]
}

// IsNoData reports whether the cell at (c, r) holds the nodata sentinel.
func (g *Grid) IsNoData(c, r uint) bool {
	return g.Data[r][c] == g.NoDataValue
}

// X returns the cell-center x coordinate for the column at index c.
func (g *Grid) X(c uint) float64 {
	if g.Centered {
		return g.Xll + float64(c)*g.CellSize
	}
	return g.Xll + (float64(c)+0.5)*g.CellSize
}

// Y returns the cell-center y coordinate for the row at index r. Row 0 is
// the northernmost row, so Y decreases with increasing r.
func (g *Grid) Y(r uint) float64 {
	if g.Centered {
		return g.Yll + float64(g.Nrows-1-r)*g.CellSize
	}
	return g.Yll + (float64(g.Nrows-1-r)+0.5)*g.CellSize
}

// Xs returns the cell-center x coordinates of all columns, west to east.
func (g *Grid) Xs() []float64 {
	xs := make([]float64, g.Ncols)
	for c := uint(0); c < g.Ncols; c++ {
		xs[c] = g.X(c)
	}
	return xs
}

// Ys returns the cell-center y coordinates of all rows, north to south.
func (g *Grid) Ys() []float64 {
	ys := make([]float64, g.Nrows)
	for r := uint(0); r < g.Nrows; r++ {
		ys[r] = g.Y(r)
	}
	return ys
}

// Bounds returns the outer edges of the grid as (west, south, east, north).
func (g *Grid) Bounds() (w, s, e, n float64) {
	half := 0.0
	if g.Centered {
		half = 0.5 * g.CellSize
	}
	w = g.Xll - half
	s = g.Yll - half
	e = w + float64(g.Ncols)*g.CellSize
	n = s + float64(g.Nrows)*g.CellSize
	return w, s, e, n
}

// MaskBelow returns a copy of the grid in which every cell with a value
// below min is replaced by the nodata sentinel. The receiver is not
// modified.
func (g *Grid) MaskBelow(min float64) *Grid {
	return g.mask(func(c, r uint, v float64) bool {
		return v < min
	})
}

// MaskWhere returns a copy of the grid in which every cell for which drop
// returns true is replaced by the nodata sentinel. The receiver is not
// modified.
func (g *Grid) MaskWhere(drop func(c, r uint, v float64) bool) *Grid {
	return g.mask(drop)
}

func (g *Grid) mask(drop func(c, r uint, v float64) bool) *Grid {
	masked := &Grid{Header: g.Header}
	masked.Data = make([][]float64, g.Nrows)
	for r := uint(0); r < g.Nrows; r++ {
		row := make([]float64, g.Ncols)
		for c := uint(0); c < g.Ncols; c++ {
			v := g.Data[r][c]
			if v != g.NoDataValue && drop(c, r, v) {
				row[c] = g.NoDataValue
			} else {
				row[c] = v
			}
		}
		masked.Data[r] = row
	}
	return masked
}
