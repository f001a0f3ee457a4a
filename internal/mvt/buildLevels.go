package mvt

import (
	"fmt"
	"sync"

	"github.com/paulmach/orb/geojson"

	"github.com/coastal-hazards/inun-utils/internal/contour"
	"github.com/coastal-hazards/inun-utils/internal/raster"
)

// buildLevels extracts the iso-depth polylines for every break level and
// collects them in one feature collection per level, keyed
// "depth/<level>". A combined "depth" layer holds all levels.
func buildLevels(grid *raster.Grid, levels []float64, layers map[string]*geojson.FeatureCollection) {
	waitGrp := sync.WaitGroup{}
	mutex := sync.Mutex{}

	combined := geojson.NewFeatureCollection()

	for _, level := range levels {
		waitGrp.Add(1)
		go func(level float64) {
			defer waitGrp.Done()

			lines := contour.Lines(grid, level)

			collection := geojson.NewFeatureCollection()
			for i := 0; i < len(lines); i++ {
				f := geojson.NewFeature(lines[i])
				f.Properties["depth"] = level
				collection.Append(f)
			}

			mutex.Lock()
			layers[fmt.Sprintf("depth/%g", level)] = collection
			combined.Features = append(combined.Features, collection.Features...)
			mutex.Unlock()
		}(level)
	}

	waitGrp.Wait()

	layers["depth"] = combined
}
