// Package maskout implements the mask subcommand: it writes a copy of the
// hmax raster with dry and permanently wet cells replaced by nodata, for
// downstream tools that want the cleaned grid itself.
package maskout

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/coastal-hazards/inun-utils/internal/raster"
	"github.com/coastal-hazards/inun-utils/internal/scenario"
)

// Run is the mask subcommand's entrypoint
func Run(flagSet *flag.FlagSet) {

	start := time.Now()

	inputPtr := flagSet.String("in", "", "Path to scenario directory")
	outputPtr := flagSet.String("out", "", "Path of the output .asc file")
	dryPtr := flagSet.Float64("dry", 0, "Dry-cell depth cutoff in meters (0 = use scenario value)")
	seaPtr := flagSet.Bool("sea", true, "Also mask cells whose topography is below zero")

	flagSet.Parse(os.Args[2:])

	// make sure both flags are present
	if *outputPtr == "" || *inputPtr == "" {
		flagSet.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println("▶️  Loading scenario")
	dataset, err := scenario.LoadDataset(*inputPtr, true)
	if err != nil {
		log.Fatal(err)
	}

	dry := *dryPtr
	if dry <= 0 {
		dry = dataset.Scenario.DryThreshold
	}

	masked := dataset.Hmax.MaskBelow(dry)

	if *seaPtr {
		topo := dataset.Topo
		if topo.Ncols != masked.Ncols || topo.Nrows != masked.Nrows {
			log.Fatal(fmt.Errorf("topo grid is %dx%d, depth grid is %dx%d",
				topo.Ncols, topo.Nrows, masked.Ncols, masked.Nrows))
		}
		masked = masked.MaskWhere(func(c, r uint, v float64) bool {
			return !topo.IsNoData(c, r) && topo.Z(c, r) < 0
		})
	}

	fmt.Println("▶️  Writing masked raster")
	if err := raster.WriteFile(*outputPtr, masked); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n    🎉  Finished in %s\n", time.Since(start).String())
}
