package schemagen

import "math"

const (
	epsilon32 = 1.1920929e-07 // difference between 1 and the next float32
	maxULPs   = 4
)

// ApproxEqual reports whether a and b are equal within float32 round-off:
// either their difference is below machine epsilon, or they are at most a
// few representable values apart.
func ApproxEqual(a, b float32) bool {
	if a == b {
		return true
	}
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	if math.Abs(float64(a)-float64(b)) <= epsilon32 {
		return true
	}
	if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
		return false
	}
	ua, ub := math.Float32bits(a), math.Float32bits(b)
	if ua > ub {
		ua, ub = ub, ua
	}
	return ub-ua <= maxULPs
}
