package geometry

import "math"

// PointToSegmentDistance returns the distance from p to the segment a-b.
//
// The point is projected onto the line through a and b. If the projection
// falls outside the segment the point does not belong to it and +Inf is
// returned. A zero length segment never matches.
func PointToSegmentDistance(p, a, b Vector2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	k := ap.Dot(ab) / ab.LengthSq()
	if 0 <= k && k <= 1 {
		// Pythagoras on the projection; rounding can dip below zero for points on the line
		return math.Sqrt(math.Max(0, ap.LengthSq()-k*k*ab.LengthSq()))
	}
	return math.Inf(1)
}
