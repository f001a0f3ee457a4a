package scenario

import (
	"path"

	"github.com/coastal-hazards/inun-utils/internal/raster"
	"github.com/coastal-hazards/inun-utils/internal/validate"
)

// Dataset is a fully loaded inundation scenario: the metadata plus the
// maximum-depth and topography grids.
type Dataset struct {
	Scenario Scenario
	Hmax     *raster.Grid
	Topo     *raster.Grid
}

// LoadDataset validates the scenario directory and loads its metadata and
// both rasters. When validateCells is set, nodata coverage of the rasters
// is logged.
func LoadDataset(dirPath string, validateCells bool) (*Dataset, error) {
	if err := validate.ScenarioDirectory(dirPath); err != nil {
		return nil, err
	}

	s, err := Read(path.Join(dirPath, "scenario.json"))
	if err != nil {
		return nil, err
	}

	hmax, err := raster.Load(validate.RasterPath(dirPath, "hmax"), validateCells)
	if err != nil {
		return nil, err
	}

	topo, err := raster.Load(validate.RasterPath(dirPath, "topo"), validateCells)
	if err != nil {
		return nil, err
	}

	return &Dataset{Scenario: s, Hmax: hmax, Topo: topo}, nil
}
