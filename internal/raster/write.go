package raster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write serializes the grid as an ESRI ASCII grid to w.
func Write(w io.Writer, grid *Grid) error {
	bw := bufio.NewWriter(w)

	xKey, yKey := "xllcorner", "yllcorner"
	if grid.Centered {
		xKey, yKey = "xllcenter", "yllcenter"
	}

	fmt.Fprintf(bw, "ncols         %d\n", grid.Ncols)
	fmt.Fprintf(bw, "nrows         %d\n", grid.Nrows)
	fmt.Fprintf(bw, "%s     %s\n", xKey, strconv.FormatFloat(grid.Xll, 'f', -1, 64))
	fmt.Fprintf(bw, "%s     %s\n", yKey, strconv.FormatFloat(grid.Yll, 'f', -1, 64))
	fmt.Fprintf(bw, "cellsize      %s\n", strconv.FormatFloat(grid.CellSize, 'f', -1, 64))
	fmt.Fprintf(bw, "NODATA_value  %s\n", strconv.FormatFloat(grid.NoDataValue, 'f', -1, 64))

	for r := uint(0); r < grid.Nrows; r++ {
		for c := uint(0); c < grid.Ncols; c++ {
			if c > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatFloat(grid.Data[r][c], 'f', -1, 64)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes the grid as an ESRI ASCII grid file at path.
func WriteFile(path string, grid *Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create raster: %w", err)
	}

	if err := Write(file, grid); err != nil {
		file.Close()
		return fmt.Errorf("write raster %s: %w", path, err)
	}

	return file.Close()
}
