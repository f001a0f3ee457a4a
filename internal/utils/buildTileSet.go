package utils

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path"
	"runtime"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/sync/semaphore"
)

// TileSizePx is the edge length of one output tile in pixels.
const TileSizePx = 256

var sem = semaphore.NewWeighted(int64(runtime.NumCPU()))

// BuildTileSet slices the given image into the XYZ tiles of one zoom level
// below outputDirectory, resampling each tile to 256x256.
func BuildTileSet(zoom uint8, img *image.RGBA, outputDirectory string) error {
	outputDirectory = path.Join(outputDirectory, fmt.Sprintf("%d", zoom))

	tilesPerRowCol := int(math.Pow(2, float64(zoom)))

	for col := 0; col < tilesPerRowCol; col++ {
		dirPath := path.Join(outputDirectory, fmt.Sprintf("%d", col))
		if !IsDirectory(dirPath) {
			if err := os.MkdirAll(dirPath, os.ModePerm); err != nil {
				return err
			}
		}
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()

	wg := sync.WaitGroup{}
	errs := make(chan error, tilesPerRowCol*tilesPerRowCol)

	for col := 0; col < tilesPerRowCol; col++ {
		for row := 0; row < tilesPerRowCol; row++ {
			wg.Add(1)
			go func(col, row int) {
				defer wg.Done()

				tilePath := path.Join(outputDirectory, fmt.Sprintf("%d", col), fmt.Sprintf("%d.png", row))
				x, w := tileSpan(col, tilesPerRowCol, width)
				y, h := tileSpan(row, tilesPerRowCol, height)

				p := image.Point{x, y}
				rect := image.Rectangle{p, p.Add(image.Point{w, h})}
				if err := createTile(img, rect, tilePath); err != nil {
					errs <- err
				}
			}(col, row)
		}
	}

	wg.Wait()
	close(errs)

	return <-errs
}

// tileSpan returns the pixel offset and size of the i-th of n tiles
// covering length pixels. Remaining pixels go to the first tiles, and
// offsets account for the extra pixels handed to earlier tiles, so the
// spans partition the full length exactly.
func tileSpan(i, n, length int) (offset, size int) {
	base := length / n
	remainder := length % n

	offset = base * i
	if i < remainder {
		offset += i
	} else {
		offset += remainder
	}

	size = base
	if i < remainder {
		size++
	}

	return offset, size
}

func createTile(img *image.RGBA, rect image.Rectangle, tilePath string) error {
	sem.Acquire(context.Background(), 1)
	defer sem.Release(1)

	subImg := img.SubImage(rect)

	tile := resize.Resize(TileSizePx, TileSizePx, subImg, resize.MitchellNetravali)

	out, err := os.Create(tilePath)
	if err != nil {
		return err
	}

	if err := png.Encode(out, tile); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}

// CalcMaxZoomFromImage calculates the maximum zoom level needed so that no
// tile of the image is upsampled.
func CalcMaxZoomFromImage(img *image.RGBA) uint8 {
	w := float64(img.Bounds().Dx())

	tilesPerRowCol := math.Ceil(w / TileSizePx)

	return uint8(math.Ceil(math.Log2(tilesPerRowCol)))
}
