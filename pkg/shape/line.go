package shape

import "github.com/bluekompass/bluekompass/pkg/geometry"

// Line is a straight segment between two control points
type Line struct {
	Points [2]geometry.Vector2
}

// NewLine creates a line from its two endpoints
func NewLine(points [2]geometry.Vector2) Line {
	return Line{Points: points}
}

// HitTest returns the distance from p to the segment, +Inf when p projects
// outside of it
func (l Line) HitTest(p geometry.Vector2) float64 {
	return geometry.PointToSegmentDistance(p, l.Points[0], l.Points[1])
}

// Length returns the distance between the endpoints
func (l Line) Length() float64 {
	return l.Points[0].Distance(l.Points[1])
}

func (l *Line) replace(index int, p geometry.Vector2) {
	l.Points[index] = p
}

func (l Line) draw(style Style, selected bool) []Primitive {
	fill := style.Marker
	if selected {
		fill = style.Selected
	}
	return []Primitive{
		style.Polyline([]geometry.Vector2{l.Points[0], l.Points[1]}, style.Stroke),
		style.ControlMarkers([]geometry.Vector2{l.Points[0], l.Points[1]}, fill),
	}
}
