package shape

import (
	"image/color"

	"github.com/bluekompass/bluekompass/pkg/geometry"
)

// PrimitiveKind identifies what a render backend has to draw
type PrimitiveKind int

const (
	// PrimitivePolyline is a stroked open polyline through Points
	PrimitivePolyline PrimitiveKind = iota
	// PrimitiveMarker is one marker per entry in Points
	PrimitiveMarker
)

// MarkerShape selects the glyph used for a marker primitive
type MarkerShape int

const (
	MarkerDot MarkerShape = iota
	MarkerCross
)

// Primitive is a single render instruction in canvas logical space.
// Width, Radius and OutlineWidth are screen pixels.
type Primitive struct {
	Kind         PrimitiveKind
	Points       []geometry.Vector2
	Color        color.RGBA
	Width        float64     // Stroke width for polylines and cross markers
	Radius       float64     // Marker radius
	Marker       MarkerShape // Marker glyph
	Outline      color.RGBA  // Ring drawn around dot markers
	OutlineWidth float64     // Zero disables the ring
}

// Style holds the colors and sizes used to turn shapes into primitives
type Style struct {
	Stroke         color.RGBA // Line and circle outline
	Marker         color.RGBA // Control point fill
	Selected       color.RGBA // Control point fill of the selected shape
	Outline        color.RGBA // Ring around control points
	Center         color.RGBA // Circle center cross
	Preview        color.RGBA // Shapes under construction
	StrokeWidth    float64
	MarkerRadius   float64
	OutlineWidth   float64
	CircleSegments int
}

// DefaultStyle returns black shapes with blue selection markers
func DefaultStyle() Style {
	return Style{
		Stroke:         color.RGBA{0, 0, 0, 255},
		Marker:         color.RGBA{0, 0, 0, 255},
		Selected:       color.RGBA{46, 101, 255, 255},
		Outline:        color.RGBA{255, 255, 255, 255},
		Center:         color.RGBA{0, 0, 0, 255},
		Preview:        color.RGBA{0, 0, 0, 255},
		StrokeWidth:    3,
		MarkerRadius:   5,
		OutlineWidth:   1,
		CircleSegments: 512,
	}
}

// ForPreview returns the style used for shapes that are still being built
func (s Style) ForPreview() Style {
	s.Stroke = s.Preview
	s.Marker = s.Preview
	s.Center = s.Preview
	return s
}

// Polyline builds a stroked polyline primitive
func (s Style) Polyline(points []geometry.Vector2, col color.RGBA) Primitive {
	return Primitive{
		Kind:   PrimitivePolyline,
		Points: points,
		Color:  col,
		Width:  s.StrokeWidth,
	}
}

// ControlMarkers builds outlined dot markers for control points
func (s Style) ControlMarkers(points []geometry.Vector2, fill color.RGBA) Primitive {
	return Primitive{
		Kind:         PrimitiveMarker,
		Points:       points,
		Color:        fill,
		Radius:       s.MarkerRadius,
		Marker:       MarkerDot,
		Outline:      s.Outline,
		OutlineWidth: s.OutlineWidth,
	}
}

// CenterMarker builds the cross drawn at a circle center
func (s Style) CenterMarker(center geometry.Vector2) Primitive {
	return Primitive{
		Kind:   PrimitiveMarker,
		Points: []geometry.Vector2{center},
		Color:  s.Center,
		Width:  1,
		Radius: s.MarkerRadius,
		Marker: MarkerCross,
	}
}
