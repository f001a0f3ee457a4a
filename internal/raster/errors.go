package raster

import "fmt"

// FormatError reports a malformed or internally inconsistent ESRI ASCII
// grid: a missing or unparseable header field, or a data block that does
// not match the declared dimensions.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string {
	return "esri ascii grid: " + e.Msg
}

func formatErrorf(format string, a ...interface{}) error {
	return &FormatError{Msg: fmt.Sprintf(format, a...)}
}
