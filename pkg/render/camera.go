// pkg/render/camera.go
package render

import (
	"math"

	"go-biome-globe/internal/config"
	"go-biome-globe/internal/utils"
	"go-biome-globe/pkg/geo"
)

// Camera is an orbit camera around the globe centre. Yaw spins the globe
// about the polar axis, pitch tilts it toward the viewer; Zoom is the
// screen scale in pixels per unit of sphere radius. The camera tweens
// smoothly toward targetYaw/targetPitch every frame.
type Camera struct {
	Yaw   float64
	Pitch float64
	Zoom  float64

	targetYaw   float64
	targetPitch float64

	screenWidth  int
	screenHeight int
}

// NewCamera creates a camera centred on the given screen size.
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         config.GlobeScale,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// Rotate nudges both the current and target angles, so manual rotation
// does not fight a pending tween.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw = utils.NormalizeAngle(c.Yaw + dYaw)
	c.Pitch = utils.Clamp(c.Pitch+dPitch, -config.PitchLimit, config.PitchLimit)
	c.targetYaw = c.Yaw
	c.targetPitch = c.Pitch
}

// AdjustZoom changes the scale within the configured limits.
func (c *Camera) AdjustZoom(delta float64) {
	c.Zoom = utils.Clamp(c.Zoom+delta, config.ZoomMin, config.ZoomMax)
}

// FocusOn retargets the tween so the given geographic point ends up facing
// the viewer at the screen centre.
func (c *Camera) FocusOn(p geo.GeoPoint) {
	sp := geo.Project(p.Lat, p.Lon, 1)
	c.targetYaw = -math.Atan2(sp.X, sp.Z)
	c.targetPitch = utils.Clamp(math.Atan2(sp.Y, math.Hypot(sp.X, sp.Z)), -config.PitchLimit, config.PitchLimit)
}

// Update advances the tween and reports whether the camera has settled on
// its target.
func (c *Camera) Update(deltaTime float64) bool {
	t := utils.Clamp(config.TweenSpeed*deltaTime, 0, 1)
	c.Yaw = utils.LerpAngle(c.Yaw, c.targetYaw, t)
	c.Pitch = utils.Lerp(c.Pitch, c.targetPitch, t)

	settled := math.Abs(utils.NormalizeAngle(c.targetYaw-c.Yaw)) < config.SettleEpsilon &&
		math.Abs(c.targetPitch-c.Pitch) < config.SettleEpsilon
	if settled {
		c.Yaw = c.targetYaw
		c.Pitch = c.targetPitch
	}
	return settled
}

// view rotates a world point into camera space. The viewer sits on the +Z
// side looking at the origin, so positive depth faces the viewer.
func (c *Camera) view(p geo.SpherePoint) (x, y, depth float64) {
	sinYaw, cosYaw := math.Sincos(c.Yaw)
	x1 := p.X*cosYaw + p.Z*sinYaw
	z1 := -p.X*sinYaw + p.Z*cosYaw

	sinPitch, cosPitch := math.Sincos(c.Pitch)
	y2 := p.Y*cosPitch - z1*sinPitch
	z2 := p.Y*sinPitch + z1*cosPitch

	return x1, y2, z2
}

// ProjectPoint maps a world point to screen coordinates. depth > 0 means
// the point is on the hemisphere facing the viewer.
func (c *Camera) ProjectPoint(p geo.SpherePoint) (sx, sy, depth float64) {
	x, y, depth := c.view(p)
	sx = float64(c.screenWidth)/2 + c.Zoom*x
	sy = float64(c.screenHeight)/2 - c.Zoom*y
	return sx, sy, depth
}

// UnprojectCursor maps a screen position back onto the visible hemisphere
// of the unit sphere. ok is false when the cursor is off the globe disc.
func (c *Camera) UnprojectCursor(sx, sy float64) (geo.GeoPoint, bool) {
	x := (sx - float64(c.screenWidth)/2) / c.Zoom
	y := (float64(c.screenHeight)/2 - sy) / c.Zoom
	rr := x*x + y*y
	if rr > 1 {
		return geo.GeoPoint{}, false
	}
	z := math.Sqrt(1 - rr)

	// Invert the pitch rotation, then the yaw rotation.
	sinPitch, cosPitch := math.Sincos(c.Pitch)
	y1 := y*cosPitch + z*sinPitch
	z1 := -y*sinPitch + z*cosPitch

	sinYaw, cosYaw := math.Sincos(c.Yaw)
	wx := x*cosYaw - z1*sinYaw
	wz := x*sinYaw + z1*cosYaw

	return geo.Unproject(geo.SpherePoint{X: wx, Y: y1, Z: wz}), true
}
