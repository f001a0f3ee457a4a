package raster

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Load reads the ESRI ASCII grid at path, transparently decompressing
// files with a .gz suffix. When validate is set the grid is scanned for
// nodata cells and their count is logged; partial-coverage rasters are
// expected, so this is informational only.
func Load(path string, validate bool) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raster: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open raster %s: %w", path, err)
		}
		defer gz.Close()
		reader = gz
	}

	grid, err := Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("parse raster %s: %w", path, err)
	}

	if validate {
		count := 0
		for r := uint(0); r < grid.Nrows; r++ {
			for c := uint(0); c < grid.Ncols; c++ {
				if grid.Data[r][c] == grid.NoDataValue {
					count++
				}
			}
		}
		if count > 0 {
			log.Printf("raster %s: %d of %d cells are nodata", path, count, grid.Ncols*grid.Nrows)
		}
	}

	return grid, nil
}
