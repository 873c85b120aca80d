package render

import (
	"testing"

	"go-biome-globe/pkg/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settle(c *Camera) {
	for i := 0; i < 1000; i++ {
		if c.Update(1.0 / 60) {
			return
		}
	}
}

func TestFocusOnBringsPointToScreenCentre(t *testing.T) {
	for _, p := range []geo.GeoPoint{
		{Lat: 0, Lon: 0},
		{Lat: 48, Lon: 8},
		{Lat: -23, Lon: -69},
		{Lat: -78, Lon: 0},
		{Lat: 61, Lon: 100},
	} {
		c := NewCamera(1280, 800)
		c.FocusOn(p)
		settle(c)

		sx, sy, depth := c.ProjectPoint(geo.Project(p.Lat, p.Lon, 1))
		assert.InDelta(t, 640, sx, 1.5, "point %+v", p)
		assert.InDelta(t, 400, sy, 1.5, "point %+v", p)
		assert.Greater(t, depth, 0.9, "point %+v should face the viewer", p)
	}
}

func TestUnprojectCursorRoundTrip(t *testing.T) {
	c := NewCamera(1280, 800)
	c.Rotate(0.7, -0.4)

	for _, p := range []geo.GeoPoint{
		{Lat: 10, Lon: 30},
		{Lat: -40, Lon: 60},
		{Lat: 25, Lon: -15},
	} {
		sx, sy, depth := c.ProjectPoint(geo.Project(p.Lat, p.Lon, 1))
		if depth <= 0 {
			continue // back hemisphere for this orientation, nothing to pick
		}
		got, ok := c.UnprojectCursor(sx, sy)
		require.True(t, ok, "point %+v", p)
		assert.InDelta(t, p.Lat, got.Lat, 1e-6, "point %+v", p)
		assert.InDelta(t, p.Lon, got.Lon, 1e-6, "point %+v", p)
	}
}

func TestUnprojectCursorMissesOffTheDisc(t *testing.T) {
	c := NewCamera(1280, 800)
	_, ok := c.UnprojectCursor(0, 0) // top-left corner, well outside the globe
	assert.False(t, ok)
}

func TestRotateClampsPitch(t *testing.T) {
	c := NewCamera(1280, 800)
	c.Rotate(0, 10)
	assert.LessOrEqual(t, c.Pitch, 1.45)
	c.Rotate(0, -20)
	assert.GreaterOrEqual(t, c.Pitch, -1.45)
}

func TestAdjustZoomClamps(t *testing.T) {
	c := NewCamera(1280, 800)
	c.AdjustZoom(1e6)
	assert.Equal(t, 520.0, c.Zoom)
	c.AdjustZoom(-1e6)
	assert.Equal(t, 180.0, c.Zoom)
}

func TestUpdateSettlesExactlyOnTarget(t *testing.T) {
	c := NewCamera(1280, 800)
	c.FocusOn(geo.GeoPoint{Lat: 33, Lon: 86})
	settle(c)
	require.True(t, c.Update(1.0/60))

	// After settling the tween must hold position.
	yaw, pitch := c.Yaw, c.Pitch
	c.Update(1.0 / 60)
	assert.Equal(t, yaw, c.Yaw)
	assert.Equal(t, pitch, c.Pitch)
}
