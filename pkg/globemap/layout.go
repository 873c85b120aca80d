// pkg/globemap/layout.go
package globemap

import (
	"fmt"

	"go-biome-globe/pkg/geo"
)

// overlapFactor scales the combined radii of two regions into the minimum
// centre-to-centre distance they must keep. Two regions are non-overlapping
// only if the distance between their unit-sphere projections exceeds
// overlapFactor * (sizeA + sizeB).
const overlapFactor = 0.9

// Mode selects how GenerateRegions builds the catalog.
type Mode string

const (
	// ModeCurated filters an ordered candidate list with the greedy
	// overlap scan. This is the mode behind the user-visible catalog.
	ModeCurated Mode = "curated"
	// ModeTiling lays a near-uniform hexagon lattice over the sphere.
	ModeTiling Mode = "tiling"
)

// Candidate is one unfiltered curated-mode input tuple. Candidates are
// considered strictly in slice order; earlier entries always win ties.
type Candidate struct {
	ID          string
	Name        string
	Description string
	Lat         float64
	Lon         float64
	// SizeRadius in unit-sphere chord units, same scale Region uses.
	SizeRadius float64
	ColorHint  string
}

// Config selects the generation mode and carries its inputs.
type Config struct {
	Mode       Mode
	Candidates []Candidate  // ModeCurated
	Tiling     TilingParams // ModeTiling
	// Filter overrides the overlap-filter strategy for curated mode.
	// Any replacement must keep greedy order-preserving acceptance
	// semantics; nil means the default linear scan.
	Filter OverlapFilter
}

// GenerateRegions builds the session's region catalog. The returned slice
// is ordered (arrival order for curated mode, row-major for tiling) and is
// meant to be treated as read-only for the life of the process.
func GenerateRegions(cfg Config) ([]Region, error) {
	switch cfg.Mode {
	case ModeCurated:
		return generateCurated(cfg.Candidates, cfg.Filter)
	case ModeTiling:
		return generateTiling(cfg.Tiling)
	default:
		return nil, fmt.Errorf("unknown generation mode %q", cfg.Mode)
	}
}

// generateCurated runs the one-pass greedy packing over the candidates.
// Each candidate is tested against every previously accepted region — never
// against rejected ones — and accepted regions are final. The scan is O(n²)
// in candidate count, fine for catalogs in the low hundreds; swapping in
// GridFilter keeps the same accepted set if that ever becomes a problem.
func generateCurated(candidates []Candidate, filter OverlapFilter) ([]Region, error) {
	if filter == nil {
		filter = NewGreedyFilter()
	}
	regions := make([]Region, 0, len(candidates))
	for i, c := range candidates {
		if c.SizeRadius <= 0 {
			return nil, fmt.Errorf("candidate %d (%q): size radius must be positive, got %v", i, c.ID, c.SizeRadius)
		}
		if c.Lat < -90 || c.Lat > 90 {
			return nil, fmt.Errorf("candidate %d (%q): latitude %v out of range", i, c.ID, c.Lat)
		}
		rgba, err := ParseHexColor(c.ColorHint)
		if err != nil {
			return nil, fmt.Errorf("candidate %d (%q): %w", i, c.ID, err)
		}

		center := geo.Project(c.Lat, c.Lon, 1)
		if !filter.Accept(center, c.SizeRadius) {
			continue
		}
		regions = append(regions, Region{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Center:      geo.GeoPoint{Lat: c.Lat, Lon: c.Lon},
			SizeRadius:  c.SizeRadius,
			Biome:       ClassifyColor(c.ColorHint),
			Color:       rgba,
		})
	}
	return regions, nil
}
