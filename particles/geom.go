package particles

import "math"

// vec2 represents a 2D vector
type vec2 struct {
	x float64
	y float64
}

// clamp limits v to the [min, max] interval.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
