// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings are the few knobs worth overriding without a rebuild. Everything
// not present in the file keeps its default.
type Settings struct {
	Screen struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"screen"`
	Seed        int64  `yaml:"seed"`
	RegionsFile string `yaml:"regions_file"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	var s Settings
	s.Screen.Width = ScreenWidth
	s.Screen.Height = ScreenHeight
	return s
}

// LoadSettings reads a YAML settings file over the defaults. A missing file
// is not an error — it simply means defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.Screen.Width <= 0 || s.Screen.Height <= 0 {
		return s, fmt.Errorf("settings: screen size must be positive, got %dx%d", s.Screen.Width, s.Screen.Height)
	}
	return s, nil
}
