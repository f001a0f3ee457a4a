// Package mvt implements the contours subcommand: iso-depth polylines as
// GeoJSON files and Mapbox vector tiles.
package mvt

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/coastal-hazards/inun-utils/internal/scenario"
	"github.com/coastal-hazards/inun-utils/internal/tilejson"
	"github.com/coastal-hazards/inun-utils/internal/utils"
)

// Run is the contours subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	layers := make(map[string]*geojson.FeatureCollection)
	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to scenario directory")
	outputPtr := flagSet.String("out", "", "Path to output directory")
	maxZoomPtr := flagSet.Int("maxzoom", -1, "Maximum tile zoom level (-1 = derive from grid size)")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	if !utils.IsDirectory(*outputPtr) {
		log.Fatal(fmt.Errorf("output directory %s doesn't exist", *outputPtr))
	}

	timer = time.Now()
	fmt.Println("▶️  Loading scenario")
	dataset, err := scenario.LoadDataset(*inputPtr, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Loaded scenario in", time.Since(timer).String())

	masked := dataset.Hmax.MaskBelow(dataset.Scenario.DryThreshold)

	timer = time.Now()
	fmt.Println("▶️  Building contour lines")
	buildLevels(masked, dataset.Scenario.DepthBreaks, layers)
	fmt.Println("✔️  Built contour lines in", time.Since(timer).String())

	// print built layers
	fmt.Printf("ℹ️  Built the following layers (%d): ", len(layers))
	layerNames := make([]string, 0, len(layers))
	for layerName := range layers {
		layerNames = append(layerNames, layerName)
	}
	sort.Strings(layerNames)
	fmt.Printf("%s\n", strings.Join(layerNames, ", "))

	timer = time.Now()
	fmt.Println("▶️  Writing GeoJSON files")
	if err := writeGeoJSONs(path.Join(*outputPtr, "geojson"), layers); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Wrote GeoJSON files in", time.Since(timer).String())

	maxZoom := uint8(0)
	if *maxZoomPtr >= 0 {
		maxZoom = uint8(*maxZoomPtr)
	} else {
		maxZoom = calcMaxZoom(dataset.Hmax.Ncols, dataset.Hmax.Nrows)
	}
	fmt.Println("ℹ️  Maximum zoom level:", maxZoom)

	w, s, e, n := dataset.Hmax.Bounds()

	timer = time.Now()
	fmt.Println("▶️  Building vector tiles")
	buildVectorTiles(*outputPtr, layers, maxZoom, bbox{west: w, south: s, east: e, north: n})
	fmt.Println("✔️  Built vector tiles in", time.Since(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Creating tile.json")
	if err := tilejson.Write(*outputPtr, maxZoom, dataset.Scenario, "Depth Contour Vector", layerNames); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created tile.json in", time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// calcMaxZoom picks the deepest zoom level so that one tile edge covers no
// less than one grid cell at the grid's native resolution.
func calcMaxZoom(ncols, nrows uint) uint8 {
	cells := float64(ncols)
	if float64(nrows) > cells {
		cells = float64(nrows)
	}

	zoom := math.Ceil(math.Log2(cells / utils.TileSizePx))
	if zoom < 0 {
		zoom = 0
	}

	return uint8(zoom)
}

func writeGeoJSONs(outputDirectory string, layers map[string]*geojson.FeatureCollection) error {
	for name, collection := range layers {
		filePath := path.Join(outputDirectory, name+".geojson")

		if err := os.MkdirAll(path.Dir(filePath), os.ModePerm); err != nil {
			return err
		}

		data, err := json.Marshal(collection)
		if err != nil {
			return err
		}

		if err := os.WriteFile(filePath, data, 0o644); err != nil {
			return err
		}
	}

	return nil
}
