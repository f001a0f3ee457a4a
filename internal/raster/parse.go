package raster

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// DefaultNoDataValue is assumed when a grid omits the optional
// NODATA_value header line.
const DefaultNoDataValue = -9999

// Parse reads an ESRI ASCII grid from reader. The header lines may appear
// in any order and their keys are matched case-insensitively, but all
// mandatory ones must precede the data block. The data block must contain
// exactly nrows lines of exactly ncols values each.
func Parse(reader io.Reader) (*Grid, error) {
	grid := &Grid{}
	grid.NoDataValue = DefaultNoDataValue

	remainingHeaders := []string{"NCOLS", "NROWS", "XLLCENTER", "XLLCORNER", "YLLCENTER", "YLLCORNER", "CELLSIZE", "NODATA_VALUE"}
	stillIsHeader := true
	rowIndex := uint(0)

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		keyword := strings.ToUpper(fields[0])

		if stillIsHeader && contains(remainingHeaders, keyword) {
			remainingHeaders = remove(remainingHeaders, keyword)

			// the lower-left reference is either corner or center, never both
			if keyword == "XLLCENTER" || keyword == "YLLCENTER" {
				remainingHeaders = remove(remainingHeaders, "XLLCORNER")
				remainingHeaders = remove(remainingHeaders, "YLLCORNER")
			}
			if keyword == "XLLCORNER" || keyword == "YLLCORNER" {
				remainingHeaders = remove(remainingHeaders, "XLLCENTER")
				remainingHeaders = remove(remainingHeaders, "YLLCENTER")
			}

			if err := parseHeaderLine(fields, grid); err != nil {
				return nil, err
			}
		} else {
			if stillIsHeader {
				// NODATA_value is optional, everything still pending beyond
				// it means the header is incomplete
				remainingHeaders = remove(remainingHeaders, "NODATA_VALUE")

				if len(remainingHeaders) > 0 {
					return nil, formatErrorf("missing mandatory header(s): %s", strings.ToLower(strings.Join(remainingHeaders, ", ")))
				}

				stillIsHeader = false

				grid.Data = make([][]float64, grid.Nrows)
			}

			if rowIndex >= grid.Nrows {
				return nil, formatErrorf("data block has more than the declared %d rows", grid.Nrows)
			}

			row, err := parseDataLine(fields, grid.Ncols, rowIndex)
			if err != nil {
				return nil, err
			}

			grid.Data[rowIndex] = row
			rowIndex++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if stillIsHeader {
		return nil, formatErrorf("no data block found")
	}

	if rowIndex != grid.Nrows {
		return nil, formatErrorf("data block has %d rows, header declares %d", rowIndex, grid.Nrows)
	}

	return grid, nil
}

func parseHeaderLine(fields []string, grid *Grid) error {
	if len(fields) != 2 {
		return formatErrorf("header line must have exactly two fields, got %d", len(fields))
	}

	keyword := strings.ToUpper(fields[0])
	value := fields[1]

	switch keyword {
	case "NCOLS", "NROWS":
		i, err := strconv.ParseUint(value, 10, 32)
		if err != nil || i == 0 {
			return formatErrorf("%s must be a positive integer, got %q", strings.ToLower(keyword), value)
		}
		if keyword == "NCOLS" {
			grid.Ncols = uint(i)
		} else {
			grid.Nrows = uint(i)
		}

	case "XLLCENTER", "XLLCORNER", "YLLCENTER", "YLLCORNER":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return formatErrorf("%s must be numeric, got %q", strings.ToLower(keyword), value)
		}
		if keyword[0] == 'X' {
			grid.Xll = f
		} else {
			grid.Yll = f
		}
		grid.Centered = strings.HasSuffix(keyword, "CENTER")

	case "CELLSIZE":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return formatErrorf("cellsize must be numeric, got %q", value)
		}
		if f <= 0.0 {
			return formatErrorf("cellsize must be greater than 0, got %v", f)
		}
		grid.CellSize = f

	case "NODATA_VALUE":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return formatErrorf("nodata_value must be numeric, got %q", value)
		}
		grid.NoDataValue = f
	}

	return nil
}

func parseDataLine(fields []string, cols, row uint) ([]float64, error) {
	if uint(len(fields)) != cols {
		return nil, formatErrorf("data row %d has %d values, header declares %d columns", row, len(fields), cols)
	}

	values := make([]float64, cols)
	for i := uint(0); i < cols; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, formatErrorf("data row %d: %q is not numeric", row, fields[i])
		}
		values[i] = f
	}

	return values, nil
}

func contains(arr []string, element string) bool {
	for _, cur := range arr {
		if cur == element {
			return true
		}
	}
	return false
}

func remove(arr []string, element string) []string {
	var remaining []string
	for i := 0; i < len(arr); i++ {
		if element != arr[i] {
			remaining = append(remaining, arr[i])
		}
	}
	return remaining
}
