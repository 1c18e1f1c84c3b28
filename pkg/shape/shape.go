// Package shape holds the annotation shapes drawn over an image: line
// segments and three-point circles.
//
// Shape is a closed union over the two variants. Every operation switches on
// the kind, so adding a variant is a compile-visible change in this package
// only.
package shape

import (
	"fmt"

	"github.com/bluekompass/bluekompass/pkg/geometry"
)

// Kind identifies the variant held by a Shape
type Kind int

const (
	KindLine Kind = iota
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is either a Line or a Circle plus its selection flag
type Shape struct {
	kind     Kind
	line     Line
	circle   Circle
	selected bool
}

// FromLine wraps a line
func FromLine(l Line) Shape {
	return Shape{kind: KindLine, line: l}
}

// FromCircle wraps a circle
func FromCircle(c Circle) Shape {
	return Shape{kind: KindCircle, circle: c}
}

// Kind returns the variant
func (s Shape) Kind() Kind {
	return s.kind
}

// Line returns the line variant
func (s Shape) Line() (Line, bool) {
	return s.line, s.kind == KindLine
}

// Circle returns the circle variant
func (s Shape) Circle() (Circle, bool) {
	return s.circle, s.kind == KindCircle
}

// Points returns a copy of the control points: 2 for a line, 3 for a circle
func (s Shape) Points() []geometry.Vector2 {
	switch s.kind {
	case KindLine:
		return []geometry.Vector2{s.line.Points[0], s.line.Points[1]}
	case KindCircle:
		return []geometry.Vector2{s.circle.points[0], s.circle.points[1], s.circle.points[2]}
	}
	return nil
}

// Len returns the number of control points
func (s Shape) Len() int {
	switch s.kind {
	case KindLine:
		return len(s.line.Points)
	case KindCircle:
		return len(s.circle.points)
	}
	return 0
}

// HitTest returns a distance-like score of p to the shape; lower is closer
func (s Shape) HitTest(p geometry.Vector2) float64 {
	switch s.kind {
	case KindLine:
		return s.line.HitTest(p)
	case KindCircle:
		return s.circle.HitTest(p)
	}
	panic(fmt.Sprintf("shape: unknown kind %v", s.kind))
}

// Replace moves the control point at index. A circle re-derives its center
// and radius. index must be below Len.
func (s *Shape) Replace(index int, p geometry.Vector2) {
	switch s.kind {
	case KindLine:
		s.line.replace(index, p)
	case KindCircle:
		s.circle.replace(index, p)
	}
}

// Select marks the shape as selected
func (s *Shape) Select() {
	s.selected = true
}

// Unselect clears the selected flag
func (s *Shape) Unselect() {
	s.selected = false
}

// Selected reports whether the shape is selected
func (s Shape) Selected() bool {
	return s.selected
}

// Draw returns the primitives needed to render the shape
func (s Shape) Draw(style Style) []Primitive {
	switch s.kind {
	case KindLine:
		return s.line.draw(style, s.selected)
	case KindCircle:
		return s.circle.draw(style, s.selected)
	}
	return nil
}

func (s Shape) String() string {
	switch s.kind {
	case KindLine:
		a, b := s.line.Points[0], s.line.Points[1]
		return fmt.Sprintf("line (%.2f, %.2f) -> (%.2f, %.2f), length %.2f", a.X, a.Y, b.X, b.Y, s.line.Length())
	case KindCircle:
		c := s.circle.center
		return fmt.Sprintf("circle center (%.2f, %.2f), radius %.2f", c.X, c.Y, s.circle.radius)
	}
	return s.kind.String()
}
