// pkg/globemap/tiling.go
package globemap

import (
	"fmt"
	"image/color"
	"math"

	"go-biome-globe/pkg/geo"
)

// TilingParams configures procedural tiling mode.
type TilingParams struct {
	// LatStepDeg is the latitude increment between bands, in degrees.
	LatStepDeg float64
	// SizeRadius is applied to every generated tile, in the same
	// unit-sphere chord units curated regions use.
	SizeRadius float64
}

// tileColor is the uniform display hint for procedural tiles; tiling mode
// does not classify biomes, every tile comes out as water.
var tileColor = color.RGBA{R: 0xa8, G: 0xda, B: 0xdc, A: 255}

// generateTiling lays a brick-offset lattice of hexagon centres from pole
// to pole. Longitude steps widen by 1/cos(lat) so tiles stay roughly equal
// area, and every other band shifts by half a step. The lattice spacing
// already approximates non-overlap, so no overlap filter runs here.
func generateTiling(p TilingParams) ([]Region, error) {
	if p.LatStepDeg <= 0 {
		return nil, fmt.Errorf("tiling: latitude step must be positive, got %v", p.LatStepDeg)
	}
	if p.SizeRadius <= 0 {
		return nil, fmt.Errorf("tiling: size radius must be positive, got %v", p.SizeRadius)
	}

	var regions []Region
	row := 0
	for lat := -90 + p.LatStepDeg/2; lat < 90; lat += p.LatStepDeg {
		lonStep := p.LatStepDeg / math.Max(math.Cos(lat*geo.DegToRad), minCosLat)
		offset := 0.0
		if row%2 == 1 {
			offset = lonStep / 2
		}
		col := 0
		for lon := -180 + offset; lon < 180; lon += lonStep {
			regions = append(regions, Region{
				ID:         fmt.Sprintf("tile-%d-%d", row, col),
				Name:       fmt.Sprintf("Tile %d/%d", row, col),
				Center:     geo.GeoPoint{Lat: lat, Lon: geo.WrapLon(lon)},
				SizeRadius: p.SizeRadius,
				Biome:      BiomeWater,
				Color:      tileColor,
			})
			col++
		}
		row++
	}
	return regions, nil
}
