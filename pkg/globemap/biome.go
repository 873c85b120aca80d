// pkg/globemap/biome.go
package globemap

import "strings"

// beachMarker is the one reserved colour that always means beach.
const beachMarker = "#ffff00"

// Colour-prefix palettes for biome classification. Membership is prefix
// match against the lowercased hint, so each entry covers a family of
// shades. The buckets are checked in a fixed order (see ClassifyColor);
// changing the order changes how ambiguous hints classify.
var (
	forestPrefixes = []string{"#1b4", "#2d6", "#2e7", "#387", "#40a", "#52b", "#74c"}
	waterPrefixes  = []string{"#48c", "#5ad", "#89c", "#90e", "#a8d", "#ade", "#bde"}
	desertPrefixes = []string{"#c98", "#d2b", "#e76", "#e9c", "#f4a", "#ff"}
)

// ClassifyColor maps a raw colour hint to a biome. Precedence: the beach
// marker wins outright, then forest greens, then water blues, then desert
// tans; anything unmatched is snow. The desert bucket's "#ff" prefix covers
// the orange shades and therefore also matches the beach marker — which is
// exactly why beach is checked first.
func ClassifyColor(hint string) BiomeType {
	h := strings.ToLower(strings.TrimSpace(hint))
	switch {
	case h == beachMarker:
		return BiomeBeach
	case hasAnyPrefix(h, forestPrefixes):
		return BiomeForest
	case hasAnyPrefix(h, waterPrefixes):
		return BiomeWater
	case hasAnyPrefix(h, desertPrefixes):
		return BiomeDesert
	default:
		return BiomeSnow
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
