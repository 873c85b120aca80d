package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.InDelta(t, 5, Lerp(0, 10, 0.5), 1e-9)
	assert.InDelta(t, 10, Lerp(10, 20, 0), 1e-9)
	assert.InDelta(t, 20, Lerp(10, 20, 1), 1e-9)
}

func TestLerpAngleTakesShortestArc(t *testing.T) {
	// From just below +π to just above -π: the short way crosses the seam.
	from := math.Pi - 0.1
	to := -math.Pi + 0.1
	mid := LerpAngle(from, to, 0.5)
	assert.InDelta(t, math.Pi, math.Abs(mid), 1e-9)

	assert.InDelta(t, 0.25, LerpAngle(0, 0.5, 0.5), 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, 0, 1))
	assert.Equal(t, 0.0, Clamp(-5, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
