// Package overlay implements the render subcommand: a filled-contour map
// of maximum inundation depth, optionally drawn over a web map basemap.
package overlay

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/coastal-hazards/inun-utils/internal/basemap"
	"github.com/coastal-hazards/inun-utils/internal/contour"
	"github.com/coastal-hazards/inun-utils/internal/ramp"
	"github.com/coastal-hazards/inun-utils/internal/render"
	"github.com/coastal-hazards/inun-utils/internal/scenario"
)

var contourLineColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}

// Run is the render subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	var timer time.Time
	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to scenario directory")
	outputPtr := flagSet.String("out", "", "Path of the output PNG")
	cellPxPtr := flagSet.Int("cellpx", 4, "Output pixels per grid cell")
	dryPtr := flagSet.Float64("dry", 0, "Dry-cell depth cutoff in meters (0 = use scenario value)")
	linesPtr := flagSet.Bool("lines", true, "Draw contour lines on top of the filled bands")
	basemapPtr := flagSet.Bool("basemap", false, "Composite the map over fetched basemap tiles")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	timer = time.Now()
	fmt.Println("▶️  Loading scenario")
	dataset, err := scenario.LoadDataset(*inputPtr, true)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Loaded scenario in", time.Since(timer).String())

	dry := *dryPtr
	if dry <= 0 {
		dry = dataset.Scenario.DryThreshold
	}

	depthRamp, err := ramp.New(dataset.Scenario.DepthBreaks)
	if err != nil {
		log.Fatal(err)
	}

	timer = time.Now()
	fmt.Println("▶️  Rendering filled contours")
	img, err := render.FilledContours(dataset.Hmax, depthRamp, render.Options{
		CellPx:       *cellPxPtr,
		DryThreshold: dry,
		Topo:         dataset.Topo,
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Rendered filled contours in", time.Since(timer).String())

	if *linesPtr {
		timer = time.Now()
		fmt.Println("▶️  Drawing contour lines")
		masked := dataset.Hmax.MaskBelow(dry)
		for _, level := range dataset.Scenario.DepthBreaks {
			lines := contour.Lines(masked, level)
			render.DrawLines(img, dataset.Hmax, lines, contourLineColor)
		}
		fmt.Println("✔️  Drew contour lines in", time.Since(timer).String())
	}

	if *basemapPtr {
		timer = time.Now()
		fmt.Println("▶️  Fetching basemap tiles")
		background, err := fetchBasemap(dataset)
		if err != nil {
			log.Fatal(err)
		}
		img = render.Composite(background, img)
		fmt.Println("✔️  Fetched basemap in", time.Since(timer).String())
	}

	timer = time.Now()
	fmt.Println("▶️  Writing output image")
	if err := saveImage(*outputPtr, img); err != nil {
		log.Fatal(err)
	}
	fmt.Println("✔️  Wrote output image in", time.Since(timer).String())

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}

// fetchBasemap downloads and stitches the tiles covering the grid. The
// grid's coordinates are taken as WGS84 longitude/latitude; at the small
// extents of an inundation raster the mercator distortion across the box
// is below one tile pixel.
func fetchBasemap(dataset *scenario.Dataset) (image.Image, error) {
	if dataset.Scenario.BasemapURL == "" {
		return nil, errors.New("scenario has no basemapUrl")
	}

	w, s, e, n := dataset.Hmax.Bounds()
	zoom := basemap.ZoomFor(e-w, 4)

	fetcher := basemap.NewFetcher(dataset.Scenario.BasemapURL)
	return fetcher.Fetch(context.Background(), w, s, e, n, zoom)
}

func saveImage(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
