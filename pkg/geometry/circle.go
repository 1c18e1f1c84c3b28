package geometry

import (
	"errors"
	"math"
)

// ErrCollinear is returned when three points do not define a circle
var ErrCollinear = errors.New("points are collinear")

// collinearTolerance is the relative cross product below which three points
// are treated as lying on one line
const collinearTolerance = 1e-9

// intersectLines intersects the lines p1 + k*d1 and p2 + t*d2.
// Returns false when the lines are parallel.
func intersectLines(p1, d1, p2, d2 Vector2) (Vector2, bool) {
	p1p2 := p2.Sub(p1)
	det := d1.X*d2.Y - d1.Y*d2.X
	if det == 0 {
		return Vector2{}, false
	}
	k := NewVector2(d2.Y/det, -d2.X/det).Dot(p1p2)
	return d1.Mul(k).Add(p1), true
}

// Circumcenter returns the center of the circle through three points.
//
// The center is the intersection of the perpendicular bisectors of p1-p2 and
// p2-p3. Collinear points give parallel bisectors, in which case both
// components of the result are NaN.
func Circumcenter(p1, p2, p3 Vector2) Vector2 {
	ab := p2.Sub(p1)
	bc := p3.Sub(p2)
	center, ok := intersectLines(p1.Midpoint(p2), ab.Rot90(), p2.Midpoint(p3), bc.Rot90())
	if !ok {
		return Vector2{X: math.NaN(), Y: math.NaN()}
	}
	return center
}

// Circumradius returns the radius of a circle given its center and any point
// on its boundary
func Circumradius(center, point Vector2) float64 {
	return center.Distance(point)
}

// Circumcircle returns the center and radius of the circle through three
// points, or ErrCollinear when the points are (nearly) on one line
func Circumcircle(p1, p2, p3 Vector2) (Vector2, float64, error) {
	ab := p2.Sub(p1)
	ac := p3.Sub(p1)
	scale := ab.Length() * ac.Length()
	if scale == 0 || math.Abs(ab.Cross(ac)) <= collinearTolerance*scale {
		return Vector2{}, 0, ErrCollinear
	}

	center := Circumcenter(p1, p2, p3)
	radius := Circumradius(center, p1)
	if !center.IsFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Vector2{}, 0, ErrCollinear
	}
	return center, radius, nil
}
