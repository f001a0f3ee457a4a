package basemap

import "math"

// TileXY returns the fractional WebMercator tile coordinates of a WGS84
// position at the given zoom level.
func TileXY(lon, lat float64, zoom uint8) (x, y float64) {
	n := math.Exp2(float64(zoom))
	latRad := lat * math.Pi / 180

	x = n * (lon + 180) / 360
	y = n * (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2

	return x, y
}

// ZoomFor returns the zoom level at which the given longitude span is
// covered by roughly the given number of 256px tiles.
func ZoomFor(lonSpan float64, tiles int) uint8 {
	if lonSpan <= 0 {
		return 0
	}

	zoom := math.Log2(360 / lonSpan * float64(tiles))
	if zoom < 0 {
		return 0
	}
	if zoom > 19 {
		return 19
	}

	return uint8(math.Round(zoom))
}
