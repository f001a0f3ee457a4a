package tilejson

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastal-hazards/inun-utils/internal/scenario"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()

	s := scenario.Scenario{
		DisplayName: "Crescent City",
		Event:       "CSZ Mw 9.0",
		Attribution: "© Example Tiles",
	}

	require.NoError(t, Write(dir, 6, s, "Depth Contour Vector", []string{"depth"}))

	data, err := os.ReadFile(filepath.Join(dir, "tile.json"))
	require.NoError(t, err)

	var parsed TileJSON
	require.NoError(t, json.Unmarshal(data, &parsed))

	assert.Equal(t, "2.2.0", parsed.TileJSON)
	assert.Equal(t, "Crescent City Depth Contour Vector Tiles", parsed.Name)
	assert.Contains(t, parsed.Description, "CSZ Mw 9.0")
	assert.Equal(t, "© Example Tiles", parsed.Attribution)
	assert.Equal(t, "xyz", parsed.Scheme)
	assert.Equal(t, uint8(0), parsed.Minzoom)
	assert.Equal(t, uint8(6), parsed.Maxzoom)

	require.Len(t, parsed.VectorLayers, 1)
	assert.Equal(t, "depth", parsed.VectorLayers[0].ID)

	// advertised fields match exactly what the contour features carry
	assert.Equal(t, map[string]string{"depth": "Number"}, parsed.VectorLayers[0].Fields)
}

func TestWriteNoVectorLayers(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Write(dir, 3, scenario.Scenario{DisplayName: "X"}, "Depth Raster", nil))

	data, err := os.ReadFile(filepath.Join(dir, "tile.json"))
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	_, hasLayers := parsed["vector_layers"]
	assert.False(t, hasLayers)
}
