package mvt

import (
	"context"
	"fmt"
	"math"
	"os"
	"path"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/project"
	"github.com/paulmach/orb/simplify"

	"github.com/coastal-hazards/inun-utils/internal/utils"
)

const tileSize = mvt.DefaultExtent

// bbox is the grid's bounding box in world coordinates.
type bbox struct {
	west, south, east, north float64
}

func buildVectorTiles(outputPath string, collections map[string]*geojson.FeatureCollection, maxZoom uint8, box bbox) {

	for zoom := uint8(0); zoom <= maxZoom; zoom++ {
		zoomDir := path.Join(outputPath, fmt.Sprintf("%d", zoom))
		start := time.Now()

		if !utils.IsDirectory(zoomDir) {
			err := os.MkdirAll(zoomDir, os.ModePerm)
			if err != nil {
				fmt.Println(err)
				return
			}
		}

		buildZoomVectorTiles(zoom, zoomDir, collections, box)

		fmt.Println("    ✔️  Finished tiles for zoom", zoom, "in", time.Since(start).String())
	}
}

func buildZoomVectorTiles(zoom uint8, zoomDir string, collections map[string]*geojson.FeatureCollection, box bbox) {
	// how many tiles one row / col has
	tilesPerRowCol := uint32(math.Pow(2, float64(zoom)))

	layers := cloneLayers(collections)

	// project features to pixels
	pixels := uint64(tileSize) * uint64(tilesPerRowCol) // how many pixels one row / col has
	factorX := float64(pixels) / (box.east - box.west)
	factorY := float64(pixels) / (box.north - box.south)
	projectLayersInPlace(layers, func(p orb.Point) orb.Point {
		return orb.Point{
			(p[0] - box.west) * factorX,
			(box.north - p[1]) * factorY,
		}
	})

	// set layer version to v2
	for _, l := range layers {
		l.Version = 2
	}

	layers.Simplify(simplify.DouglasPeucker(1.0))
	layers.RemoveEmpty(10.0, 20.0)

	colWaitGrp := sync.WaitGroup{}

	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for col := uint32(0); col < tilesPerRowCol; col++ {
		colWaitGrp.Add(1)
		go func(col uint32) {
			defer colWaitGrp.Done()

			colPath := path.Join(zoomDir, fmt.Sprintf("%d", col))
			if !utils.IsDirectory(colPath) {
				err := os.MkdirAll(colPath, os.ModePerm)
				if err != nil {
					fmt.Println(err)
					return
				}
			}

			rowWaitGrp := sync.WaitGroup{}

			for row := uint32(0); row < tilesPerRowCol; row++ {
				rowWaitGrp.Add(1)
				go func(row uint32) {
					defer rowWaitGrp.Done()

					sem.Acquire(context.Background(), 1)
					defer sem.Release(1)

					data, err := createTile(col, row, layers)
					if err != nil {
						fmt.Printf("Error while creating tile %d/%d/%d\n", zoom, col, row)
						return
					}

					tilePath := path.Join(colPath, fmt.Sprintf("%d.pbf", row))
					if err := writeTile(tilePath, data); err != nil {
						fmt.Printf("Error while writing tile %d/%d/%d: %v\n", zoom, col, row, err)
						return
					}

				}(row)
			}

			rowWaitGrp.Wait()
		}(col)
	}

	colWaitGrp.Wait()
}

// cloneLayers converts the feature collections into mvt layers, deep
// cloning so per-zoom projection never touches the source geometry.
func cloneLayers(collections map[string]*geojson.FeatureCollection) mvt.Layers {
	cloned := make(map[string]*geojson.FeatureCollection)

	for layerName, fc := range collections {
		cloned[layerName] = cloneCollection(fc)
	}

	return mvt.NewLayers(cloned)
}

func createTile(x uint32, y uint32, layers mvt.Layers) ([]byte, error) {
	layersClone := cloneLayerSet(layers)

	xOffset := float64(x * tileSize)
	yOffset := float64(y * tileSize)
	projectLayersInPlace(layersClone, func(p orb.Point) orb.Point {
		return orb.Point{
			p[0] - xOffset,
			p[1] - yOffset,
		}
	})

	layersClone.Clip(mvt.MapboxGLDefaultExtentBound)
	layersClone.RemoveEmpty(0, 0)

	data, err := mvt.MarshalGzipped(layersClone)
	if err != nil {
		return []byte{}, err
	}

	return data, nil
}

func writeTile(tilePath string, data []byte) error {
	f, err := os.Create(tilePath)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// projectLayersInPlace projects all features of a layer
func projectLayersInPlace(layers mvt.Layers, projection orb.Projection) {
	for _, layer := range layers {
		for _, feature := range layer.Features {
			feature.Geometry = project.Geometry(feature.Geometry, projection)
		}
	}
}
