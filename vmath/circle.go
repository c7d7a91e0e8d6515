package vmath

import "math"

// Distance is the Euclidean distance between two centers
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// CirclesOverlap reports strict overlap: center distance < r1 + r2.
// Tangent circles do not overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// Clamp limits v to [lo, hi]. When the range is inverted (circle wider than
// the canvas) lo wins, matching max(lo, min(hi, v)).
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampCircle keeps a circle of radius r fully inside [0, width] x [0, height]
func ClampCircle(x, y, r, width, height float64) (float64, float64) {
	return Clamp(x, r, width-r), Clamp(y, r, height-r)
}
