package validate

import (
	"fmt"
	"path"

	"github.com/coastal-hazards/inun-utils/internal/utils"
)

// ScenarioDirectory validates that the given directory holds a complete
// inundation dataset: the maximum-depth raster, the topography raster and
// the scenario.json describing them.
func ScenarioDirectory(dirPath string) error {
	if !utils.IsDirectory(dirPath) {
		return fmt.Errorf("%s does not exist or is no directory", dirPath)
	}

	if RasterPath(dirPath, "hmax") == "" {
		return fmt.Errorf("%s is missing (hmax.asc or hmax.asc.gz)", path.Join(dirPath, "hmax.asc"))
	}

	if RasterPath(dirPath, "topo") == "" {
		return fmt.Errorf("%s is missing (topo.asc or topo.asc.gz)", path.Join(dirPath, "topo.asc"))
	}

	if !utils.IsFile(path.Join(dirPath, "scenario.json")) {
		return fmt.Errorf("%s is missing", path.Join(dirPath, "scenario.json"))
	}

	return nil
}

// RasterPath returns the path of the named raster inside the scenario
// directory, preferring the uncompressed variant. It returns "" when
// neither exists.
func RasterPath(dirPath, name string) string {
	plain := path.Join(dirPath, name+".asc")
	if utils.IsFile(plain) {
		return plain
	}

	gzipped := plain + ".gz"
	if utils.IsFile(gzipped) {
		return gzipped
	}

	return ""
}
