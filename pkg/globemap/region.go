// pkg/globemap/region.go
package globemap

import (
	"fmt"
	"image/color"

	"go-biome-globe/pkg/geo"
)

// BiomeType classifies a region. The set is closed; classification from a
// raw colour hint happens exactly once, at catalog build.
type BiomeType string

const (
	BiomeForest BiomeType = "forest"
	BiomeSnow   BiomeType = "snow"
	BiomeDesert BiomeType = "desert"
	BiomeBeach  BiomeType = "beach"
	BiomeWater  BiomeType = "water"
)

// Region is a classified hexagonal area anchored to a geographic coordinate
// on the globe. Regions are built once per session and never mutated.
type Region struct {
	ID          string
	Name        string
	Description string
	Center      geo.GeoPoint
	// SizeRadius is the region's radius expressed in unit-sphere chord
	// units (radians, to first order). See AngularSizeDeg for the display
	// conversion.
	SizeRadius float64
	Biome      BiomeType
	Color      color.RGBA
}

// AngularSizeDeg returns the region's radius as an angle in degrees, the
// unit HexagonVertices works in. For the small radii a catalog carries the
// chord and the arc are interchangeable.
func (r Region) AngularSizeDeg() float64 {
	return r.SizeRadius * geo.RadToDeg
}

// Vertices returns the region's six display vertices.
func (r Region) Vertices() [6]geo.GeoPoint {
	return HexagonVertices(r.Center, r.AngularSizeDeg())
}

// ParseHexColor parses a "#rrggbb" colour hint. Malformed hints come back
// as an error so a bad catalog entry is caught at build time.
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color hint %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
