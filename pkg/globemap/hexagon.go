// pkg/globemap/hexagon.go
package globemap

import (
	"math"

	"go-biome-globe/pkg/geo"
)

// minCosLat floors the longitude scaling near the poles so vertex
// longitudes do not blow up. Distortion up there is an accepted trade-off.
const minCosLat = 0.1

// HexagonVertices places six vertices at 60° steps around center in the
// local tangent approximation. sizeDeg is the hexagon's angular radius in
// degrees. This is a planar hexagon projected onto the tangent plane, not a
// true geodesic hexagon. Vertex latitudes are clamped into [-90, 90].
func HexagonVertices(center geo.GeoPoint, sizeDeg float64) [6]geo.GeoPoint {
	var out [6]geo.GeoPoint
	denom := math.Max(math.Cos(center.Lat*geo.DegToRad), minCosLat)
	for i := 0; i < 6; i++ {
		angle := float64(i) * 60 * geo.DegToRad
		lat := center.Lat + sizeDeg*math.Cos(angle)
		if lat > 90 {
			lat = 90
		} else if lat < -90 {
			lat = -90
		}
		out[i] = geo.GeoPoint{
			Lat: lat,
			Lon: center.Lon + sizeDeg*math.Sin(angle)/denom,
		}
	}
	return out
}
