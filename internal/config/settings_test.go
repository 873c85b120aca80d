package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileMeansDefaults(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "screen:\n  width: 1920\n  height: 1080\nseed: 7\nregions_file: custom.json\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 1920, s.Screen.Width)
	assert.Equal(t, 1080, s.Screen.Height)
	assert.Equal(t, int64(7), s.Seed)
	assert.Equal(t, "custom.json", s.RegionsFile)
}

func TestLoadSettingsPartialFileKeepsRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 99\n"), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, ScreenWidth, s.Screen.Width)
}

func TestLoadSettingsRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{ not yaml"), 0o644))
	_, err := LoadSettings(path)
	assert.ErrorContains(t, err, "failed to unmarshal settings")

	require.NoError(t, os.WriteFile(path, []byte("screen:\n  width: -5\n  height: 100\n"), 0o644))
	_, err = LoadSettings(path)
	assert.ErrorContains(t, err, "screen size must be positive")
}
