package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coastal-hazards/inun-utils/internal/raster"
)

func writeScenarioJSON(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	path := writeScenarioJSON(t, t.TempDir(), `{
		"name": "crescent-city",
		"displayName": "Crescent City",
		"event": "CSZ Mw 9.0",
		"dryThreshold": 0.01,
		"depthBreaks": [0, 1, 2, 4],
		"basemapUrl": "https://tile.example.com/{z}/{x}/{y}.png"
	}`)

	s, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "crescent-city", s.Name)
	assert.Equal(t, "Crescent City", s.DisplayName)
	assert.Equal(t, 0.01, s.DryThreshold)
	assert.Equal(t, []float64{0, 1, 2, 4}, s.DepthBreaks)
	assert.Equal(t, "https://tile.example.com/{z}/{x}/{y}.png", s.BasemapURL)
}

func TestReadDefaults(t *testing.T) {
	path := writeScenarioJSON(t, t.TempDir(), `{"name": "minimal"}`)

	s, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultDryThreshold, s.DryThreshold)
	assert.NotEmpty(t, s.DepthBreaks)
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "scenario.json"))
	assert.Error(t, err)
}

func TestReadInvalidJSON(t *testing.T) {
	path := writeScenarioJSON(t, t.TempDir(), "{not json")

	_, err := Read(path)
	assert.Error(t, err)
}

func writeTestRaster(t *testing.T, path string, value float64) {
	t.Helper()
	grid := &raster.Grid{
		Header: raster.Header{
			Ncols:       2,
			Nrows:       2,
			CellSize:    1,
			NoDataValue: -9999,
		},
		Data: [][]float64{{value, value}, {value, value}},
	}
	require.NoError(t, raster.WriteFile(path, grid))
}

func TestLoadDataset(t *testing.T) {
	dir := t.TempDir()
	writeScenarioJSON(t, dir, `{"name": "test"}`)
	writeTestRaster(t, filepath.Join(dir, "hmax.asc"), 1.5)
	writeTestRaster(t, filepath.Join(dir, "topo.asc"), 10)

	dataset, err := LoadDataset(dir, false)
	require.NoError(t, err)

	assert.Equal(t, "test", dataset.Scenario.Name)
	assert.Equal(t, 1.5, dataset.Hmax.Z(0, 0))
	assert.Equal(t, 10.0, dataset.Topo.Z(1, 1))
}

func TestLoadDatasetIncomplete(t *testing.T) {
	dir := t.TempDir()
	writeScenarioJSON(t, dir, `{"name": "test"}`)

	_, err := LoadDataset(dir, false)
	assert.Error(t, err)
}
