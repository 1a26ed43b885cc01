package geom

import "math"

// ToPolar converts a screen offset into an angle in degrees and a distance.
// The angle uses the mathematical orientation (counterclockwise from +X,
// i.e. "up" on screen is 90) and is normalized into [0, 360).
// The angle of the zero vector is undefined; ToPolar reports 0 for it.
func ToPolar(d Point) (angle, distance float64) {
	distance = d.Len()
	if distance == 0 {
		return 0, 0
	}

	// screen Y grows downward, so the sign flip restores the math orientation
	angle = -math.Atan2(d.Y, d.X) * 180 / math.Pi
	return NormalizeDegrees(angle), distance
}

// FromPolar is the inverse of ToPolar.
func FromPolar(angle, distance float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: math.Cos(rad) * distance,
		Y: -math.Sin(rad) * distance,
	}
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}

	// math.Mod of a tiny negative value plus 360 can round up to 360
	if angle >= 360 {
		angle = 0
	}

	return angle
}

// ClampToDisk keeps the offset d inside the closed disk of the given radius.
// Offsets on or beyond the boundary are rescaled onto it. The returned distance
// is the length of the returned offset.
// A radius <= 0 collapses everything onto the origin.
func ClampToDisk(d Point, radius float64) (clamped Point, distance float64) {
	if radius <= 0 {
		return Point{}, 0
	}

	distance = d.Len()
	if distance >= radius {
		return d.Mul(radius / distance), radius
	}

	return d, distance
}
