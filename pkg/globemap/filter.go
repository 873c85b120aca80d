// pkg/globemap/filter.go
package globemap

import (
	"math"

	"go-biome-globe/pkg/geo"
)

// OverlapFilter decides, one candidate at a time, whether a projected
// centre keeps enough distance from everything accepted before it. A filter
// holds the accepted set for one generation run and is not reusable across
// runs. Implementations must be interchangeable: for any candidate sequence
// they accept the same entries in the same order.
type OverlapFilter interface {
	// Accept records the centre as accepted and returns true, or returns
	// false leaving the accepted set untouched.
	Accept(center geo.SpherePoint, sizeRadius float64) bool
}

// GreedyFilter is the default strategy: a linear scan over the accepted
// slice. Quadratic over the whole run, trivially correct.
type GreedyFilter struct {
	accepted []acceptedEntry
}

type acceptedEntry struct {
	center geo.SpherePoint
	size   float64
}

// NewGreedyFilter returns an empty linear-scan filter.
func NewGreedyFilter() *GreedyFilter {
	return &GreedyFilter{}
}

func (f *GreedyFilter) Accept(center geo.SpherePoint, sizeRadius float64) bool {
	for _, a := range f.accepted {
		if center.DistanceTo(a.center) <= overlapFactor*(sizeRadius+a.size) {
			return false
		}
	}
	f.accepted = append(f.accepted, acceptedEntry{center: center, size: sizeRadius})
	return true
}

// GridFilter buckets accepted centres into a uniform spatial grid so each
// candidate only scans nearby cells. Accepted-set semantics are identical
// to GreedyFilter for any input; only the lookup cost changes.
type GridFilter struct {
	cellSize float64
	cells    map[gridCell][]acceptedEntry
	maxSize  float64
}

type gridCell struct {
	x, y, z int
}

// NewGridFilter returns a grid-bucketed filter. cellSize is the bucket edge
// length in unit-sphere units; anything non-positive falls back to a
// quarter of the sphere radius.
func NewGridFilter(cellSize float64) *GridFilter {
	if cellSize <= 0 {
		cellSize = 0.25
	}
	return &GridFilter{
		cellSize: cellSize,
		cells:    make(map[gridCell][]acceptedEntry),
	}
}

func (f *GridFilter) Accept(center geo.SpherePoint, sizeRadius float64) bool {
	// The farthest an accepted centre can be while still conflicting.
	reach := overlapFactor * (sizeRadius + f.maxSize)
	span := int(math.Ceil(reach/f.cellSize)) + 1

	home := f.cellOf(center)
	for dx := -span; dx <= span; dx++ {
		for dy := -span; dy <= span; dy++ {
			for dz := -span; dz <= span; dz++ {
				cell := gridCell{home.x + dx, home.y + dy, home.z + dz}
				for _, a := range f.cells[cell] {
					if center.DistanceTo(a.center) <= overlapFactor*(sizeRadius+a.size) {
						return false
					}
				}
			}
		}
	}

	f.cells[home] = append(f.cells[home], acceptedEntry{center: center, size: sizeRadius})
	if sizeRadius > f.maxSize {
		f.maxSize = sizeRadius
	}
	return true
}

func (f *GridFilter) cellOf(p geo.SpherePoint) gridCell {
	return gridCell{
		x: int(math.Floor(p.X / f.cellSize)),
		y: int(math.Floor(p.Y / f.cellSize)),
		z: int(math.Floor(p.Z / f.cellSize)),
	}
}
