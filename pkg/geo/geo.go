// pkg/geo/geo.go
package geo

import "math"

// Degree/radian conversion factors used across the globe code.
const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// GeoPoint is a geographic coordinate in degrees.
// Lat is in [-90, 90], Lon is in [-180, 180].
type GeoPoint struct {
	Lat float64
	Lon float64
}

// SpherePoint is a Cartesian point relative to the sphere centre.
// The axes follow the scene convention: +Y is the north pole.
type SpherePoint struct {
	X, Y, Z float64
}

// Norm returns the Euclidean norm of the point treated as a vector.
func (p SpherePoint) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Sub returns p - other.
func (p SpherePoint) Sub(other SpherePoint) SpherePoint {
	return SpherePoint{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Dot returns the dot product of two points treated as vectors.
func (p SpherePoint) Dot(other SpherePoint) float64 {
	return p.X*other.X + p.Y*other.Y + p.Z*other.Z
}

// DistanceTo returns the straight-line distance between two points.
func (p SpherePoint) DistanceTo(other SpherePoint) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Project converts a geographic coordinate to a point on a sphere of the
// given radius. The orientation (the 180° azimuth offset and the negated X
// term) is what keeps the rendered hemispheres matching the reference globe;
// do not simplify it to the plain spherical mapping.
func Project(lat, lon, radius float64) SpherePoint {
	phi := (90 - lat) * DegToRad
	theta := (lon + 180) * DegToRad
	sinPhi := math.Sin(phi)
	return SpherePoint{
		X: -radius * sinPhi * math.Cos(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Sin(theta),
	}
}

// Unproject maps a point back to the geographic coordinate that Project
// would place at p's direction, for any positive radius.
//
// At the exact poles the longitude is undefined; the value returned there is
// arbitrary but stable for a given input. The zero point maps to GeoPoint{}.
func Unproject(p SpherePoint) GeoPoint {
	r := p.Norm()
	if r == 0 {
		return GeoPoint{}
	}
	lat := 90 - math.Acos(p.Y/r)*RadToDeg
	lon := WrapLon(math.Atan2(p.Z, -p.X)*RadToDeg - 180)
	return GeoPoint{Lat: lat, Lon: lon}
}

// WrapLon normalises a longitude in degrees into [-180, 180).
func WrapLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}
