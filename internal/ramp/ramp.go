// Package ramp builds the discrete color ramp used for filled-contour
// rendering of inundation depth. Shallow water is drawn in turquoise
// shifting towards yellow, deep water in saturated red.
package ramp

import (
	"fmt"
	"image/color"
	"sort"
)

// RGB is a color with each channel in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGBA converts the color to 8-bit premultiplied RGBA at full opacity.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}

// DepthColors returns one color per interval between consecutive breaks,
// i.e. len(breaks)-1 colors. The low half of the intervals ramps from
// turquoise towards yellow, the high half from yellow towards red. When the
// interval count is odd the low half gets the extra interval, so a minimal
// two-break ramp yields the pure low-end start color. breaks must hold at
// least two strictly increasing values.
func DepthColors(breaks []float64) ([]RGB, error) {
	if len(breaks) < 2 {
		return nil, fmt.Errorf("need at least 2 breaks to form an interval, got %d", len(breaks))
	}
	if !sort.Float64sAreSorted(breaks) || hasDuplicates(breaks) {
		return nil, fmt.Errorf("breaks must be strictly increasing")
	}

	intervals := len(breaks) - 1
	n1 := (intervals + 1) / 2
	n2 := intervals - n1

	colors := make([]RGB, 0, intervals)

	for k := 0; k < n1; k++ {
		colors = append(colors, RGB{
			R: linspace(0.0, 0.8, n1, k),
			G: 1.0,
			B: linspace(1.0, 0.2, n1, k),
		})
	}
	for k := 0; k < n2; k++ {
		colors = append(colors, RGB{
			R: 1.0,
			G: linspace(1.0, 0.0, n2, k),
			B: 0.0,
		})
	}

	return colors, nil
}

// linspace returns the k-th of n evenly spaced values from a to b
// inclusive. A single value resolves to a. Both endpoints are returned
// exactly, free of rounding from the interpolation arithmetic.
func linspace(a, b float64, n, k int) float64 {
	if n == 1 || k == 0 {
		return a
	}
	if k == n-1 {
		return b
	}
	return a + float64(k)*(b-a)/float64(n-1)
}

func hasDuplicates(sorted []float64) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return true
		}
	}
	return false
}

// Ramp pairs a strictly increasing break sequence with one color per
// interval. It is immutable after construction.
type Ramp struct {
	breaks []float64
	colors []RGB
}

// New builds a depth ramp from the given breaks.
func New(breaks []float64) (*Ramp, error) {
	colors, err := DepthColors(breaks)
	if err != nil {
		return nil, err
	}

	r := &Ramp{
		breaks: make([]float64, len(breaks)),
		colors: colors,
	}
	copy(r.breaks, breaks)

	return r, nil
}

// Breaks returns a copy of the ramp's break values.
func (r *Ramp) Breaks() []float64 {
	breaks := make([]float64, len(r.breaks))
	copy(breaks, r.breaks)
	return breaks
}

// Colors returns a copy of the ramp's interval colors.
func (r *Ramp) Colors() []RGB {
	colors := make([]RGB, len(r.colors))
	copy(colors, r.colors)
	return colors
}

// Pick returns the color of the interval containing v. Values below the
// first break report ok=false; values at or above the last break map to the
// last interval.
func (r *Ramp) Pick(v float64) (RGB, bool) {
	if v < r.breaks[0] {
		return RGB{}, false
	}

	// index of the first break greater than v
	i := sort.SearchFloat64s(r.breaks, v)
	if i < len(r.breaks) && r.breaks[i] == v {
		i++
	}

	if i <= 0 {
		return RGB{}, false
	}
	if i > len(r.colors) {
		i = len(r.colors)
	}

	return r.colors[i-1], true
}
