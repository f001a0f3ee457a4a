// Package tiles implements the tiles subcommand: an XYZ raster tile
// pyramid of the filled-contour depth map.
package tiles

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coastal-hazards/inun-utils/internal/ramp"
	"github.com/coastal-hazards/inun-utils/internal/render"
	"github.com/coastal-hazards/inun-utils/internal/scenario"
	"github.com/coastal-hazards/inun-utils/internal/tilejson"
	"github.com/coastal-hazards/inun-utils/internal/utils"
)

// Run is the tiles subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to scenario directory")
	outputPtr := flagSet.String("out", "", "Path to output directory")
	cellPxPtr := flagSet.Int("cellpx", 4, "Rendered pixels per grid cell")

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

	depthRamp, err := ramp.New(dataset.Scenario.DepthBreaks)
	if err != nil {
		log.Fatal(err)
	}

	timer = time.Now()
	fmt.Println("▶️  Rendering depth map")
	img, err := render.FilledContours(dataset.Hmax, depthRamp, render.Options{
		CellPx:       *cellPxPtr,
		DryThreshold: dataset.Scenario.DryThreshold,
		Topo:         dataset.Topo,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Rendered depth map in", time.Since(timer).String())

	maxZoom := utils.CalcMaxZoomFromImage(img)
	fmt.Println("ℹ️  Calculated max zoom:", maxZoom)

	timer = time.Now()
	fmt.Println("▶️  Building tiles")
	for zoom := uint8(0); zoom <= maxZoom; zoom++ {
		timer2 := time.Now()
		if err := utils.BuildTileSet(zoom, img, *outputPtr); err != nil {
			log.Fatal(err)
		}
		fmt.Println("    ✔️  Finished tiles for zoom", zoom, "in", time.Since(timer2).String())
	}
	fmt.Println("✔️  Built depth tiles in", time.Since(timer).String())

	timer = time.Now()
	fmt.Println("▶️  Creating tile.json")
	if err := tilejson.Write(*outputPtr, maxZoom, dataset.Scenario, "Depth Raster", []string{}); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Created tile.json in", time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}
