// Package geometry provides the point type and polar-coordinate helpers
// shared by the scan-context descriptor builder.
package geometry

import "math"

// Point is a 3D position in the sensor frame (meters).
type Point struct {
	X, Y, Z float64
}

// PlanarRange returns the range projected onto the XY plane, sqrt(x^2+y^2).
func (p Point) PlanarRange() float64 {
	return math.Hypot(p.X, p.Y)
}

// AzimuthDeg returns the four-quadrant azimuth of (x, y) in degrees, in
// [0, 360). Azimuth increases counter-clockwise from the +X axis, matching
// the convention used throughout the descriptor builder.
func AzimuthDeg(x, y float64) float64 {
	switch {
	case x > 0 && y >= 0:
		return rad2deg(math.Atan(y / x))
	case x > 0 && y < 0:
		return 360.0 + rad2deg(math.Atan(y/x))
	case x < 0:
		return 180.0 + rad2deg(math.Atan(y/x))
	case x == 0 && y > 0:
		return 90.0
	case x == 0 && y < 0:
		return 270.0
	default: // x == 0 && y == 0
		return 0.0
	}
}

func rad2deg(r float64) float64 {
	return r * 180.0 / math.Pi
}
