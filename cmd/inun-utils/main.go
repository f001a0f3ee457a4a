package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coastal-hazards/inun-utils/internal/maskout"
	"github.com/coastal-hazards/inun-utils/internal/mvt"
	"github.com/coastal-hazards/inun-utils/internal/overlay"
	"github.com/coastal-hazards/inun-utils/internal/tiles"
)

type command struct {
	name        string
	description string
	run         func(*flag.FlagSet)
}

var subCommands []command

func init() {
	subCommands = []command{
		{"render", "Render a filled-contour depth map PNG, optionally over a basemap.", overlay.Run},
		{"contours", "Build depth contour GeoJSON and Mapbox vector tiles.", mvt.Run},
		{"tiles", "Build XYZ raster tiles of the depth map.", tiles.Run},
		{"mask", "Write a dry-cell-masked copy of the hmax raster.", maskout.Run},
		{"help", "Print this message.", func(s *flag.FlagSet) { printUsage() }},
	}
}

func printUsage() {
	fmt.Printf("USAGE:\n    %s [SUBCOMMAND] [SUBCOMMAND FLAGS]\n\n", os.Args[0])
	fmt.Print("SUBCOMMANDS: \n")

	for i := 0; i < len(subCommands); i++ {
		name := subCommands[i].name

		fmt.Printf("%12s    %s\n", name, subCommands[i].description)
	}

	fmt.Printf("\nUse -h as SUBCOMMAND FLAG to print help for each subcommand.\n\n")
}

func main() {

	if len(os.Args) < 2 {
		fmt.Printf("\nERROR: No subcommand was provided.\n\n")
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	for i := 0; i < len(subCommands); i++ {
		if subCommands[i].name == cmd {
			set := flag.NewFlagSet(cmd, flag.ExitOnError)
			subCommands[i].run(set)
			return
		}
	}

	fmt.Printf("\nERROR: Subcommand '%s' was not found.\n\n", cmd)
	printUsage()
}
