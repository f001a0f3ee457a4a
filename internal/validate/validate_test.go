package validate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestScenarioDirectory(t *testing.T) {
	dir := t.TempDir()

	err := ScenarioDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hmax")

	touch(t, filepath.Join(dir, "hmax.asc"))
	err = ScenarioDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topo")

	touch(t, filepath.Join(dir, "topo.asc"))
	err = ScenarioDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario.json")

	touch(t, filepath.Join(dir, "scenario.json"))
	assert.NoError(t, ScenarioDirectory(dir))
}

func TestScenarioDirectoryMissing(t *testing.T) {
	err := ScenarioDirectory(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestScenarioDirectoryGzippedRasters(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "hmax.asc.gz"))
	touch(t, filepath.Join(dir, "topo.asc.gz"))
	touch(t, filepath.Join(dir, "scenario.json"))

	assert.NoError(t, ScenarioDirectory(dir))
}

func TestRasterPath(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "", RasterPath(dir, "hmax"))

	touch(t, filepath.Join(dir, "hmax.asc.gz"))
	assert.Equal(t, filepath.Join(dir, "hmax.asc.gz"), RasterPath(dir, "hmax"))

	// the uncompressed variant wins when both exist
	touch(t, filepath.Join(dir, "hmax.asc"))
	assert.Equal(t, filepath.Join(dir, "hmax.asc"), RasterPath(dir, "hmax"))
}
