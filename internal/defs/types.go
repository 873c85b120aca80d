// internal/defs/types.go
package defs

// RegionDefinition is one curated catalog entry. Catalog order is
// significant: it is the arrival order of the layout generator, so earlier
// entries win placement conflicts.
type RegionDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	SizeRadius  float64 `json:"size_radius"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}
