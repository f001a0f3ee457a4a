package tilejson

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/coastal-hazards/inun-utils/internal/scenario"
)

// VectorLayer describes one layer of a vector tile set.
type VectorLayer struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

// TileJSON is the tile.json structure written next to each tile set.
type TileJSON struct {
	TileJSON     string        `json:"tilejson"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Attribution  string        `json:"attribution,omitempty"`
	Scheme       string        `json:"scheme"`
	Minzoom      uint8         `json:"minzoom"`
	Maxzoom      uint8         `json:"maxzoom"`
	VectorLayers []VectorLayer `json:"vector_layers,omitempty"`
}

var vectorLayerFields = map[string]map[string]string{
	"depth": {"depth": "Number"},
}

// Write a tile.json for a tile set rendered from the given scenario.
func Write(outputDirectory string, maxZoom uint8, s scenario.Scenario, tileKind string, vectorLayerNames []string) error {
	vectorLayers := make([]VectorLayer, len(vectorLayerNames))
	for i, layerName := range vectorLayerNames {
		fields, found := vectorLayerFields[layerName]

		if !found {
			fields = map[string]string{}
		}

		vectorLayers[i] = VectorLayer{
			ID:     layerName,
			Fields: fields,
		}
	}

	obj := TileJSON{
		TileJSON:     "2.2.0",
		Name:         fmt.Sprintf("%s %s Tiles", s.DisplayName, tileKind),
		Description:  fmt.Sprintf("%s tiles of the inundation scenario '%s' (%s)", tileKind, s.DisplayName, s.Event),
		Attribution:  s.Attribution,
		Scheme:       "xyz",
		Minzoom:      0,
		Maxzoom:      maxZoom,
		VectorLayers: vectorLayers,
	}

	f, err := os.Create(path.Join(outputDirectory, "tile.json"))
	if err != nil {
		return err
	}

	bytes, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		f.Close()
		return err
	}

	if _, err := f.Write(bytes); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
