// Package basemap fetches web map tiles and stitches them into a single
// background image covering a raster's bounding box. Tiles are fetched
// once per call: no cache, no retries.
package basemap

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

const tileSizePx = 256

// Fetcher downloads map tiles from an XYZ tile server.
type Fetcher struct {
	// URLTemplate contains {z}, {x} and {y} placeholders.
	URLTemplate string
	Client      *http.Client
	// Parallelism bounds concurrent tile requests. Defaults to 4, the
	// customary per-host limit of public tile servers.
	Parallelism int64
}

// NewFetcher returns a Fetcher for the given XYZ URL template.
func NewFetcher(urlTemplate string) *Fetcher {
	return &Fetcher{
		URLTemplate: urlTemplate,
		Client:      &http.Client{Timeout: 30 * time.Second},
		Parallelism: 4,
	}
}

// Fetch downloads all tiles covering the WGS84 bounding box at the given
// zoom level, stitches them and crops the result to exactly the box. The
// returned image's pixel grid is the WebMercator projection of the box.
func (f *Fetcher) Fetch(ctx context.Context, west, south, east, north float64, zoom uint8) (*image.RGBA, error) {
	if east <= west || north <= south {
		return nil, fmt.Errorf("basemap: empty bounding box")
	}

	minX, minY := TileXY(west, north, zoom)
	maxX, maxY := TileXY(east, south, zoom)

	minTx, minTy := int(math.Floor(minX)), int(math.Floor(minY))
	maxTx, maxTy := int(math.Floor(maxX)), int(math.Floor(maxY))

	stitched := image.NewRGBA(image.Rect(0, 0, (maxTx-minTx+1)*tileSizePx, (maxTy-minTy+1)*tileSizePx))

	sem := semaphore.NewWeighted(f.parallelism())
	errs := make(chan error, (maxTx-minTx+1)*(maxTy-minTy+1))
	done := make(chan struct{}, cap(errs))

	for tx := minTx; tx <= maxTx; tx++ {
		for ty := minTy; ty <= maxTy; ty++ {
			go func(tx, ty int) {
				defer func() { done <- struct{}{} }()

				if err := sem.Acquire(ctx, 1); err != nil {
					errs <- err
					return
				}
				defer sem.Release(1)

				tile, err := f.fetchTile(ctx, zoom, tx, ty)
				if err != nil {
					errs <- err
					return
				}

				offset := image.Point{(tx - minTx) * tileSizePx, (ty - minTy) * tileSizePx}
				rect := image.Rectangle{offset, offset.Add(image.Point{tileSizePx, tileSizePx})}
				draw.Draw(stitched, rect, tile, tile.Bounds().Min, draw.Src)
			}(tx, ty)
		}
	}

	for i := 0; i < cap(done); i++ {
		<-done
	}

	select {
	case err := <-errs:
		return nil, err
	default:
	}

	// crop to the exact bounding box
	x0 := int(math.Round((minX - float64(minTx)) * tileSizePx))
	y0 := int(math.Round((minY - float64(minTy)) * tileSizePx))
	x1 := int(math.Round((maxX - float64(minTx)) * tileSizePx))
	y1 := int(math.Round((maxY - float64(minTy)) * tileSizePx))

	cropped := image.NewRGBA(image.Rect(0, 0, x1-x0, y1-y0))
	draw.Draw(cropped, cropped.Bounds(), stitched, image.Point{x0, y0}, draw.Src)

	return cropped, nil
}

func (f *Fetcher) fetchTile(ctx context.Context, zoom uint8, tx, ty int) (image.Image, error) {
	url := f.URLTemplate
	url = strings.ReplaceAll(url, "{z}", fmt.Sprintf("%d", zoom))
	url = strings.ReplaceAll(url, "{x}", fmt.Sprintf("%d", tx))
	url = strings.ReplaceAll(url, "{y}", fmt.Sprintf("%d", ty))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("basemap: create request: %w", err)
	}
	req.Header.Set("User-Agent", "inun-utils")

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("basemap: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("basemap: fetch %s: status %d", url, resp.StatusCode)
	}

	tile, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("basemap: decode %s: %w", url, err)
	}

	return tile, nil
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *Fetcher) parallelism() int64 {
	if f.Parallelism <= 0 {
		return 4
	}
	return f.Parallelism
}
