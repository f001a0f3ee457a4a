package ramp

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepthColorsFiveBreaks(t *testing.T) {
	colors, err := DepthColors([]float64{0, 1, 2, 3, 4})
	require.NoError(t, err)
	require.Len(t, colors, 4)

	// low end starts at turquoise
	assert.Equal(t, RGB{R: 0, G: 1, B: 1}, colors[0])
	assert.Equal(t, RGB{R: 0.8, G: 1, B: 0.2}, colors[1])

	// high end ends at saturated red
	assert.Equal(t, RGB{R: 1, G: 1, B: 0}, colors[2])
	assert.Equal(t, RGB{R: 1, G: 0, B: 0}, colors[3])
}

func TestDepthColorsMinimal(t *testing.T) {
	colors, err := DepthColors([]float64{0, 1})
	require.NoError(t, err)
	require.Len(t, colors, 1)

	assert.Equal(t, RGB{R: 0, G: 1, B: 1}, colors[0])
}

func TestDepthColorsOddIntervalCount(t *testing.T) {
	// 4 breaks, 3 intervals: the low half gets the extra interval
	colors, err := DepthColors([]float64{0, 1, 2, 3})
	require.NoError(t, err)
	require.Len(t, colors, 3)

	// two low intervals running the full turquoise to yellow ramp
	assert.Equal(t, RGB{R: 0, G: 1, B: 1}, colors[0])
	assert.Equal(t, RGB{R: 0.8, G: 1, B: 0.2}, colors[1])

	// the single high interval takes the start of the high ramp
	assert.Equal(t, RGB{R: 1, G: 1, B: 0}, colors[2])
}

func TestDepthColorsChannelsInRange(t *testing.T) {
	colors, err := DepthColors([]float64{0, 0.5, 1, 1.5, 2, 3, 4.5, 6, 9})
	require.NoError(t, err)
	require.Len(t, colors, 8)

	for _, c := range colors {
		assert.GreaterOrEqual(t, c.R, 0.0)
		assert.LessOrEqual(t, c.R, 1.0)
		assert.GreaterOrEqual(t, c.G, 0.0)
		assert.LessOrEqual(t, c.G, 1.0)
		assert.GreaterOrEqual(t, c.B, 0.0)
		assert.LessOrEqual(t, c.B, 1.0)
	}
}

func TestDepthColorsDeterministic(t *testing.T) {
	breaks := []float64{0, 0.5, 1, 2, 4}

	first, err := DepthColors(breaks)
	require.NoError(t, err)
	second, err := DepthColors(breaks)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDepthColorsTooFewBreaks(t *testing.T) {
	_, err := DepthColors([]float64{0})
	assert.Error(t, err)

	_, err = DepthColors(nil)
	assert.Error(t, err)
}

func TestDepthColorsNotIncreasing(t *testing.T) {
	_, err := DepthColors([]float64{0, 2, 1})
	assert.Error(t, err)

	_, err = DepthColors([]float64{0, 1, 1})
	assert.Error(t, err)
}

func TestRampInvariant(t *testing.T) {
	r, err := New([]float64{0, 1, 2, 3, 4})
	require.NoError(t, err)

	assert.Len(t, r.Colors(), len(r.Breaks())-1)
}

func TestRampPick(t *testing.T) {
	r, err := New([]float64{0, 1, 2, 3, 4})
	require.NoError(t, err)

	colors := r.Colors()

	for _, tc := range []struct {
		value    float64
		expected RGB
		ok       bool
	}{
		{-0.5, RGB{}, false},
		{0, colors[0], true},
		{0.5, colors[0], true},
		{1, colors[1], true},
		{3.999, colors[3], true},
		{4, colors[3], true},
		{99, colors[3], true},
	} {
		got, ok := r.Pick(tc.value)
		assert.Equal(t, tc.ok, ok, "value %v", tc.value)
		assert.Equal(t, tc.expected, got, "value %v", tc.value)
	}
}

func TestRGBConversion(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 255, A: 255}, RGB{R: 0, G: 1, B: 1}.RGBA())
	assert.Equal(t, color.RGBA{R: 255, G: 0, B: 0, A: 255}, RGB{R: 1, G: 0, B: 0}.RGBA())
	assert.Equal(t, color.RGBA{R: 204, G: 255, B: 51, A: 255}, RGB{R: 0.8, G: 1, B: 0.2}.RGBA())
}
