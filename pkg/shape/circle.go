package shape

import (
	"math"

	"github.com/bluekompass/bluekompass/pkg/geometry"
)

// Circle is defined by three points on its boundary. Center and radius are
// derived from the points and recomputed whenever one of them changes.
type Circle struct {
	points [3]geometry.Vector2
	center geometry.Vector2
	radius float64
}

// NewCircle creates a circle through three points.
// Collinear points produce a NaN center; see Valid.
func NewCircle(points [3]geometry.Vector2) Circle {
	c := Circle{points: points}
	c.derive()
	return c
}

func (c *Circle) derive() {
	c.center = geometry.Circumcenter(c.points[0], c.points[1], c.points[2])
	c.radius = geometry.Circumradius(c.center, c.points[0])
}

// Points returns the three control points
func (c Circle) Points() [3]geometry.Vector2 {
	return c.points
}

// Center returns the derived circle center
func (c Circle) Center() geometry.Vector2 {
	return c.center
}

// Radius returns the derived circle radius
func (c Circle) Radius() float64 {
	return c.radius
}

// Valid reports whether the control points define a finite, non-empty circle
func (c Circle) Valid() bool {
	return c.center.IsFinite() && !math.IsNaN(c.radius) && !math.IsInf(c.radius, 0) && c.radius > 0
}

// HitTest returns |(|p-center|² - radius²) / radius|, a distance-like score
// that is zero on the boundary. A circle whose points became collinear has no
// boundary and scores the distance to its nearest control point instead, so
// it can still be selected and repaired or deleted.
func (c Circle) HitTest(p geometry.Vector2) float64 {
	if !c.Valid() {
		nearest := math.Inf(1)
		for _, point := range c.points {
			nearest = math.Min(nearest, point.Distance(p))
		}
		return nearest
	}
	radius2 := c.radius * c.radius
	score := math.Abs((p.Sub(c.center).LengthSq() - radius2) / c.radius)
	if math.IsNaN(score) {
		return math.Inf(1)
	}
	return score
}

func (c *Circle) replace(index int, p geometry.Vector2) {
	c.points[index] = p
	c.derive()
}

// outline approximates the boundary with a closed polyline
func (c Circle) outline(segments int) []geometry.Vector2 {
	if segments < 3 {
		segments = 3
	}
	points := make([]geometry.Vector2, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments) * 2 * math.Pi
		points[i] = geometry.NewVector2(
			c.radius*math.Cos(t)+c.center.X,
			c.radius*math.Sin(t)+c.center.Y,
		)
	}
	return points
}

func (c Circle) draw(style Style, selected bool) []Primitive {
	fill := style.Marker
	if selected {
		fill = style.Selected
	}
	markers := style.ControlMarkers([]geometry.Vector2{c.points[0], c.points[1], c.points[2]}, fill)
	if !c.Valid() {
		return []Primitive{markers}
	}
	return []Primitive{
		style.Polyline(c.outline(style.CircleSegments), style.Stroke),
		markers,
		style.CenterMarker(c.center),
	}
}
