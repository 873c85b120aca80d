package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func TestProjectReferencePoints(t *testing.T) {
	// Equator on the reference meridian.
	p := Project(0, 0, 1)
	assert.InDelta(t, 1, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
	assert.InDelta(t, 0, p.Z, eps)

	// The north pole maps to +Y no matter the longitude.
	for _, lon := range []float64{0, 45, -120, 180} {
		p := Project(90, lon, 1)
		assert.InDelta(t, 0, p.X, eps)
		assert.InDelta(t, 1, p.Y, eps)
		assert.InDelta(t, 0, p.Z, eps)
	}

	// South pole maps to -Y.
	p = Project(-90, 30, 1)
	assert.InDelta(t, -1, p.Y, eps)

	// Radius scales linearly.
	p = Project(0, 0, 2.5)
	assert.InDelta(t, 2.5, p.X, eps)
}

func TestProjectStaysOnSphere(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 13 {
		for lon := -180.0; lon <= 180; lon += 17 {
			p := Project(lat, lon, 3)
			require.InDelta(t, 3, p.Norm(), eps, "lat=%v lon=%v", lat, lon)
		}
	}
}

func TestUnprojectRoundTrip(t *testing.T) {
	// Poles excluded: longitude is degenerate there.
	for lat := -89.0; lat <= 89; lat += 7.3 {
		for lon := -179.5; lon < 180; lon += 11.7 {
			got := Unproject(Project(lat, lon, 1))
			require.InDelta(t, lat, got.Lat, eps, "lat=%v lon=%v", lat, lon)
			require.InDelta(t, 0, lonDiff(lon, got.Lon), eps, "lat=%v lon=%v", lat, lon)
		}
	}
}

func TestUnprojectRoundTripScaledRadius(t *testing.T) {
	got := Unproject(Project(37.5, -122.25, 42))
	assert.InDelta(t, 37.5, got.Lat, eps)
	assert.InDelta(t, -122.25, got.Lon, eps)
}

func TestUnprojectPoleLongitudeIsStable(t *testing.T) {
	p := Project(90, 123, 1)
	first := Unproject(p)
	second := Unproject(p)
	assert.InDelta(t, 90, first.Lat, eps)
	// Whatever longitude falls out at the pole, it must not wander.
	assert.Equal(t, first.Lon, second.Lon)
}

func TestUnprojectZeroPoint(t *testing.T) {
	assert.Equal(t, GeoPoint{}, Unproject(SpherePoint{}))
}

func TestWrapLon(t *testing.T) {
	assert.InDelta(t, 0, WrapLon(360), eps)
	assert.InDelta(t, -180, WrapLon(180), eps)
	assert.InDelta(t, 170, WrapLon(-190), eps)
	assert.InDelta(t, -90, WrapLon(270), eps)
}

func TestSpherePointVectorOps(t *testing.T) {
	a := SpherePoint{X: 1, Y: 2, Z: 2}
	b := SpherePoint{X: 1, Y: 0, Z: 0}
	assert.InDelta(t, 3, a.Norm(), eps)
	assert.InDelta(t, 1, a.Dot(b), eps)
	assert.Equal(t, SpherePoint{X: 0, Y: 2, Z: 2}, a.Sub(b))
	assert.InDelta(t, math.Sqrt(8), a.DistanceTo(b), eps)
}

// lonDiff returns the smallest absolute angular difference between two
// longitudes, so ±180 compare as equal.
func lonDiff(a, b float64) float64 {
	return math.Abs(WrapLon(a - b))
}
