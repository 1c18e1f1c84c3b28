package shape

import (
	"math"
	"testing"

	"github.com/bluekompass/bluekompass/pkg/geometry"
)

func v(x, y float64) geometry.Vector2 {
	return geometry.NewVector2(x, y)
}

func TestLineHitTest(t *testing.T) {
	s := FromLine(NewLine([2]geometry.Vector2{v(0, 0), v(10, 0)}))

	if score := s.HitTest(v(5, 0)); score != 0 {
		t.Errorf("HitTest on line: expected 0, got %v", score)
	}
	if score := s.HitTest(v(5, 1)); math.Abs(score-1) > 1e-10 {
		t.Errorf("HitTest above line: expected 1, got %v", score)
	}
	if score := s.HitTest(v(-1, 0)); !math.IsInf(score, 1) {
		t.Errorf("HitTest outside segment: expected +Inf, got %v", score)
	}
}

func TestCircleHitTest(t *testing.T) {
	s := FromCircle(NewCircle([3]geometry.Vector2{v(15, 10), v(10, 15), v(5, 10)}))

	if score := s.HitTest(v(10, 5)); score > 1e-9 {
		t.Errorf("HitTest on boundary: expected 0, got %v", score)
	}
	// |(6² - 5²) / 5| = 11/5
	if score := s.HitTest(v(16, 10)); math.Abs(score-2.2) > 1e-9 {
		t.Errorf("HitTest outside: expected 2.2, got %v", score)
	}
	// |(0 - 25) / 5| = 5
	if score := s.HitTest(v(10, 10)); math.Abs(score-5) > 1e-9 {
		t.Errorf("HitTest at center: expected 5, got %v", score)
	}
}

func TestCircleDegenerateHitTest(t *testing.T) {
	c := NewCircle([3]geometry.Vector2{v(0, 0), v(1, 1), v(2, 2)})

	if c.Valid() {
		t.Fatalf("collinear circle should not be valid")
	}
	// Scored by the nearest control point
	if score := c.HitTest(v(1, 1)); score != 0 {
		t.Errorf("HitTest on control point: expected 0, got %v", score)
	}
	if score := c.HitTest(v(5, 2)); math.Abs(score-3) > 1e-9 {
		t.Errorf("HitTest near control point: expected 3, got %v", score)
	}
}

func TestCircleReplaceRederives(t *testing.T) {
	points := [3]geometry.Vector2{v(15, 10), v(10, 15), v(5, 10)}
	replacements := []geometry.Vector2{v(40, -3), v(7.5, 22), v(-12, 9)}

	for index, p := range replacements {
		s := FromCircle(NewCircle(points))
		s.Replace(index, p)

		got, ok := s.Circle()
		if !ok {
			t.Fatalf("expected a circle")
		}

		moved := points
		moved[index] = p
		want := NewCircle(moved)

		if got.Points() != moved {
			t.Errorf("replace %d: expected points %v, got %v", index, moved, got.Points())
		}
		if got.Center() != want.Center() {
			t.Errorf("replace %d: expected center %v, got %v", index, want.Center(), got.Center())
		}
		if got.Radius() != want.Radius() {
			t.Errorf("replace %d: expected radius %v, got %v", index, want.Radius(), got.Radius())
		}
	}
}

func TestLineReplace(t *testing.T) {
	s := FromLine(NewLine([2]geometry.Vector2{v(0, 0), v(10, 0)}))
	s.Replace(1, v(3, 4))

	points := s.Points()
	if len(points) != 2 || points[0] != v(0, 0) || points[1] != v(3, 4) {
		t.Errorf("Replace failed: got %v", points)
	}
}

func TestShapePointsIsCopy(t *testing.T) {
	s := FromLine(NewLine([2]geometry.Vector2{v(0, 0), v(10, 0)}))
	points := s.Points()
	points[0] = v(99, 99)

	if s.Points()[0] != v(0, 0) {
		t.Errorf("Points should return a copy")
	}
}

func TestShapeSelection(t *testing.T) {
	s := FromLine(NewLine([2]geometry.Vector2{v(0, 0), v(10, 0)}))
	if s.Selected() {
		t.Errorf("new shape should not be selected")
	}
	s.Select()
	if !s.Selected() {
		t.Errorf("Select failed")
	}
	s.Unselect()
	if s.Selected() {
		t.Errorf("Unselect failed")
	}
}

func TestLineDraw(t *testing.T) {
	style := DefaultStyle()
	s := FromLine(NewLine([2]geometry.Vector2{v(0, 0), v(10, 0)}))

	prims := s.Draw(style)
	if len(prims) != 2 {
		t.Fatalf("expected 2 primitives, got %d", len(prims))
	}
	if prims[0].Kind != PrimitivePolyline || len(prims[0].Points) != 2 {
		t.Errorf("expected a 2 point polyline, got %+v", prims[0])
	}
	if prims[1].Kind != PrimitiveMarker || prims[1].Color != style.Marker {
		t.Errorf("expected unselected markers, got %+v", prims[1])
	}

	s.Select()
	prims = s.Draw(style)
	if prims[1].Color != style.Selected {
		t.Errorf("expected selected marker color %v, got %v", style.Selected, prims[1].Color)
	}
	if prims[0].Color != style.Stroke {
		t.Errorf("stroke color should not depend on selection, got %v", prims[0].Color)
	}
}

func TestCircleDraw(t *testing.T) {
	style := DefaultStyle()
	s := FromCircle(NewCircle([3]geometry.Vector2{v(15, 10), v(10, 15), v(5, 10)}))

	prims := s.Draw(style)
	if len(prims) != 3 {
		t.Fatalf("expected 3 primitives, got %d", len(prims))
	}
	outline := prims[0]
	if len(outline.Points) != style.CircleSegments+1 {
		t.Errorf("expected %d outline points, got %d", style.CircleSegments+1, len(outline.Points))
	}
	for _, p := range outline.Points {
		if d := p.Distance(v(10, 10)); math.Abs(d-5) > 1e-9 {
			t.Fatalf("outline point %v is %v from center", p, d)
		}
	}
	if len(prims[1].Points) != 3 {
		t.Errorf("expected 3 control markers, got %d", len(prims[1].Points))
	}
	if prims[2].Marker != MarkerCross || prims[2].Points[0] != v(10, 10) {
		t.Errorf("expected center cross at (10, 10), got %+v", prims[2])
	}
}

func TestDegenerateCircleDrawsMarkersOnly(t *testing.T) {
	s := FromCircle(NewCircle([3]geometry.Vector2{v(0, 0), v(1, 1), v(2, 2)}))

	prims := s.Draw(DefaultStyle())
	if len(prims) != 1 || prims[0].Kind != PrimitiveMarker {
		t.Errorf("expected markers only, got %+v", prims)
	}
}

func TestKindString(t *testing.T) {
	if KindLine.String() != "line" || KindCircle.String() != "circle" {
		t.Errorf("unexpected kind names: %v, %v", KindLine, KindCircle)
	}
}
