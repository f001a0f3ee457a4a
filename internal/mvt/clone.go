package mvt

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/mvt"
	"github.com/paulmach/orb/geojson"
)

// The tile pipeline projects geometry in place, per zoom level and again
// per tile, so every stage works on its own deep copy of the contour
// features.

func cloneFeature(f *geojson.Feature) *geojson.Feature {
	clone := geojson.NewFeature(orb.Clone(f.Geometry))

	clone.ID = f.ID
	clone.Type = f.Type
	clone.Properties = f.Properties.Clone()
	copy(clone.BBox, f.BBox)

	return clone
}

func cloneCollection(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	clone := geojson.NewFeatureCollection()

	clone.Features = make([]*geojson.Feature, len(fc.Features))
	for i, f := range fc.Features {
		clone.Features[i] = cloneFeature(f)
	}
	copy(clone.BBox, fc.BBox)
	clone.Type = fc.Type

	return clone
}

func cloneLayerSet(layers mvt.Layers) mvt.Layers {
	clones := make(mvt.Layers, len(layers))

	for i, layer := range layers {
		fc := cloneCollection(&geojson.FeatureCollection{Features: layer.Features})
		clones[i] = &mvt.Layer{
			Name:     layer.Name,
			Version:  layer.Version,
			Extent:   layer.Extent,
			Features: fc.Features,
		}
	}

	return clones
}
