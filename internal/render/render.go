// Package render rasterizes an inundation grid into an RGBA image: filled
// depth bands from a discrete color ramp, contour polylines on top and an
// optional basemap underneath.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/nfnt/resize"
	"github.com/paulmach/orb"

	"github.com/coastal-hazards/inun-utils/internal/ramp"
	"github.com/coastal-hazards/inun-utils/internal/raster"
)

// Options controls how a grid is rendered.
type Options struct {
	// CellPx is the edge length of one grid cell in output pixels.
	CellPx int
	// DryThreshold masks cells whose depth is below it. Zero disables
	// depth masking.
	DryThreshold float64
	// Topo optionally masks cells whose topography is below zero, so that
	// permanent water is not drawn as inundation. Must have the same
	// dimensions as the rendered grid.
	Topo *raster.Grid
}

// FilledContours paints each wet cell of the grid with the color of its
// depth band. Dry, masked and nodata cells stay fully transparent.
func FilledContours(grid *raster.Grid, rmp *ramp.Ramp, opts Options) (*image.RGBA, error) {
	cellPx := opts.CellPx
	if cellPx <= 0 {
		cellPx = 1
	}

	masked := grid
	if opts.DryThreshold > 0 {
		masked = masked.MaskBelow(opts.DryThreshold)
	}
	if opts.Topo != nil {
		if opts.Topo.Ncols != grid.Ncols || opts.Topo.Nrows != grid.Nrows {
			return nil, fmt.Errorf("render: topo grid is %dx%d, depth grid is %dx%d",
				opts.Topo.Ncols, opts.Topo.Nrows, grid.Ncols, grid.Nrows)
		}
		topo := opts.Topo
		masked = masked.MaskWhere(func(c, r uint, v float64) bool {
			return !topo.IsNoData(c, r) && topo.Z(c, r) < 0
		})
	}

	img := image.NewRGBA(image.Rect(0, 0, int(grid.Ncols)*cellPx, int(grid.Nrows)*cellPx))

	for r := uint(0); r < masked.Nrows; r++ {
		for c := uint(0); c < masked.Ncols; c++ {
			if masked.IsNoData(c, r) {
				continue
			}

			col, ok := rmp.Pick(masked.Z(c, r))
			if !ok {
				continue
			}

			cell := image.Rect(int(c)*cellPx, int(r)*cellPx, int(c+1)*cellPx, int(r+1)*cellPx)
			draw.Draw(img, cell, image.NewUniform(col.RGBA()), image.Point{}, draw.Src)
		}
	}

	return img, nil
}

// DrawLines draws the given polylines, in grid world coordinates, onto the
// image previously rendered from the grid.
func DrawLines(img *image.RGBA, grid *raster.Grid, lines []orb.LineString, col color.RGBA) {
	w, s, e, n := grid.Bounds()
	width := float64(img.Bounds().Dx())
	height := float64(img.Bounds().Dy())

	toPixel := func(p orb.Point) (int, int) {
		px := (p[0] - w) / (e - w) * width
		py := (n - p[1]) / (n - s) * height
		return int(px), int(py)
	}

	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			x0, y0 := toPixel(line[i-1])
			x1, y1 := toPixel(line[i])
			drawSegment(img, x0, y0, x1, y1, col)
		}
	}
}

// drawSegment rasterizes one line segment with Bresenham's algorithm.
func drawSegment(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy

	for {
		img.SetRGBA(x0, y0, col)

		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Composite scales the background to the overlay's dimensions and draws
// the overlay on top of it. Both images must cover the same bounding box.
func Composite(background image.Image, overlay *image.RGBA) *image.RGBA {
	bounds := overlay.Bounds()

	scaled := resize.Resize(uint(bounds.Dx()), uint(bounds.Dy()), background, resize.MitchellNetravali)

	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, scaled, image.Point{}, draw.Src)
	draw.Draw(out, bounds, overlay, image.Point{}, draw.Over)

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
