package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegionDefinitionsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.json")
	data := `[
		{"id": "alpha", "name": "Alpha", "lat": 10, "lon": 20, "size_radius": 0.1, "color": "#2d6a4f", "description": "first"},
		{"id": "beta", "name": "Beta", "lat": -5, "lon": 40, "size_radius": 0.2, "color": "#ffff00", "description": "second"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	require.NoError(t, LoadRegionDefinitions(path))
	require.Len(t, RegionCatalog, 2)

	// File order is preserved: it decides placement priority downstream.
	assert.Equal(t, "alpha", RegionCatalog[0].ID)
	assert.Equal(t, "beta", RegionCatalog[1].ID)
	assert.Equal(t, 0.2, RegionLibrary["beta"].SizeRadius)
	assert.Equal(t, "#ffff00", RegionLibrary["beta"].Color)
}

func TestLoadRegionDefinitionsEmptyPathUsesBuiltIn(t *testing.T) {
	require.NoError(t, LoadRegionDefinitions(""))
	assert.NotEmpty(t, RegionCatalog)
	assert.Len(t, RegionLibrary, len(RegionCatalog))
}

func TestLoadRegionDefinitionsErrors(t *testing.T) {
	err := LoadRegionDefinitions(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read region definitions file")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	err = LoadRegionDefinitions(path)
	assert.ErrorContains(t, err, "failed to unmarshal region definitions")

	path = filepath.Join(t.TempDir(), "dup.json")
	dup := `[{"id": "x", "size_radius": 0.1, "color": "#2d6a4f"}, {"id": "x", "size_radius": 0.1, "color": "#2d6a4f"}]`
	require.NoError(t, os.WriteFile(path, []byte(dup), 0o644))
	err = LoadRegionDefinitions(path)
	assert.ErrorContains(t, err, "duplicate region definition id")
}

func TestBuiltInCatalogIsSane(t *testing.T) {
	for _, def := range defaultCatalog {
		assert.NotEmpty(t, def.ID)
		assert.NotEmpty(t, def.Name)
		assert.Greater(t, def.SizeRadius, 0.0, "region %s", def.ID)
		assert.GreaterOrEqual(t, def.Lat, -90.0, "region %s", def.ID)
		assert.LessOrEqual(t, def.Lat, 90.0, "region %s", def.ID)
		assert.GreaterOrEqual(t, def.Lon, -180.0, "region %s", def.ID)
		assert.LessOrEqual(t, def.Lon, 180.0, "region %s", def.ID)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, def.Color, "region %s", def.ID)
	}
}
