// pkg/render/color.go
package render

import "image/color"

// ShadeColor scales a colour's brightness by factor, clamped to [0, 1].
// Alpha is left alone.
func ShadeColor(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	} else if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// LightenColor moves a colour toward white by t in [0, 1].
func LightenColor(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*t),
		G: uint8(float64(c.G) + (255-float64(c.G))*t),
		B: uint8(float64(c.B) + (255-float64(c.B))*t),
		A: c.A,
	}
}
