package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAzimuthDeg(t *testing.T) {
	cases := []struct {
		name     string
		x, y     float64
		wantLow  float64
		wantHigh float64
	}{
		{"first quadrant", 1, 1, 0, 90},
		{"fourth quadrant", 1, -1, 270, 360},
		{"x negative", -1, 1, 90, 270},
		{"x negative, y negative", -1, -1, 90, 270},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := AzimuthDeg(c.x, c.y)
			assert.GreaterOrEqual(t, got, c.wantLow)
			assert.Less(t, got, c.wantHigh)
		})
	}

	assert.InDelta(t, 90.0, AzimuthDeg(0, 1), 1e-9)
	assert.InDelta(t, 270.0, AzimuthDeg(0, -1), 1e-9)
	assert.InDelta(t, 0.0, AzimuthDeg(0, 0), 1e-9)
	assert.InDelta(t, 0.0, AzimuthDeg(1, 0), 1e-9)
}

func TestAzimuthDegIsFullCircle(t *testing.T) {
	for deg := 0.0; deg < 360.0; deg += 1.0 {
		rad := deg * math.Pi / 180.0
		got := AzimuthDeg(math.Cos(rad), math.Sin(rad))
		assert.InDelta(t, deg, got, 1e-6)
	}
}

func TestPlanarRange(t *testing.T) {
	p := Point{X: 3, Y: 4, Z: 100}
	assert.InDelta(t, 5.0, p.PlanarRange(), 1e-9)
}
