// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// RegionLibrary holds all region definitions, keyed by their ID.
var RegionLibrary map[string]RegionDefinition

// RegionCatalog holds the same definitions in file order. The slice, not
// the map, is what the layout generator consumes.
var RegionCatalog []RegionDefinition

// LoadRegionDefinitions reads a region catalog file and populates
// RegionCatalog and RegionLibrary. An empty path loads the built-in
// catalog.
func LoadRegionDefinitions(path string) error {
	if path == "" {
		return setCatalog(defaultCatalog)
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read region definitions file: %w", err)
	}

	var regionDefs []RegionDefinition
	if err := json.Unmarshal(file, &regionDefs); err != nil {
		return fmt.Errorf("failed to unmarshal region definitions: %w", err)
	}
	return setCatalog(regionDefs)
}

func setCatalog(regionDefs []RegionDefinition) error {
	library := make(map[string]RegionDefinition, len(regionDefs))
	for i, def := range regionDefs {
		if def.ID == "" {
			return fmt.Errorf("region definition %d has no id", i)
		}
		if _, dup := library[def.ID]; dup {
			return fmt.Errorf("duplicate region definition id %q", def.ID)
		}
		library[def.ID] = def
	}

	RegionCatalog = regionDefs
	RegionLibrary = library
	fmt.Printf("Loaded %d region definitions\n", len(RegionCatalog))
	return nil
}
