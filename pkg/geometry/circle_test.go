package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestCircumcenterEquidistant(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Vector2
	}{
		{"unit circle", NewVector2(1, 0), NewVector2(0, 1), NewVector2(-1, 0)},
		{"offset circle", NewVector2(12, 5), NewVector2(2, 15), NewVector2(-8, 5)},
		{"obtuse triangle", NewVector2(0, 0), NewVector2(10, 1), NewVector2(20, 0)},
		{"image coordinates", NewVector2(103.5, 220.25), NewVector2(340, 87), NewVector2(512, 400.75)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := Circumcenter(tt.p1, tt.p2, tt.p3)
			radius := Circumradius(center, tt.p1)

			for i, p := range []Vector2{tt.p1, tt.p2, tt.p3} {
				d := center.Distance(p)
				if math.Abs(d-radius) > 1e-9*math.Max(1, radius) {
					t.Errorf("point %d: expected distance %v from center %v, got %v", i, radius, center, d)
				}
			}
		})
	}
}

func TestCircumcenterKnownCircle(t *testing.T) {
	center := Circumcenter(NewVector2(15, 10), NewVector2(10, 15), NewVector2(5, 10))

	expected := NewVector2(10, 10)
	if math.Abs(center.X-expected.X) > 1e-10 || math.Abs(center.Y-expected.Y) > 1e-10 {
		t.Errorf("Circumcenter failed: expected %v, got %v", expected, center)
	}

	radius := Circumradius(center, NewVector2(15, 10))
	if math.Abs(radius-5) > 1e-10 {
		t.Errorf("Circumradius failed: expected 5, got %v", radius)
	}
}

func TestCircumcenterCollinearIsNaN(t *testing.T) {
	center := Circumcenter(NewVector2(0, 0), NewVector2(1, 1), NewVector2(2, 2))

	if !math.IsNaN(center.X) || !math.IsNaN(center.Y) {
		t.Errorf("Circumcenter of collinear points: expected NaN, got %v", center)
	}
	if center.IsFinite() {
		t.Errorf("Circumcenter of collinear points should not be finite")
	}
}

func TestCircumcircle(t *testing.T) {
	center, radius, err := Circumcircle(NewVector2(0, 0), NewVector2(4, 0), NewVector2(0, 4))
	if err != nil {
		t.Fatalf("Circumcircle failed: %v", err)
	}

	expected := NewVector2(2, 2)
	if math.Abs(center.X-expected.X) > 1e-10 || math.Abs(center.Y-expected.Y) > 1e-10 {
		t.Errorf("Circumcircle center: expected %v, got %v", expected, center)
	}
	if math.Abs(radius-math.Sqrt(8)) > 1e-10 {
		t.Errorf("Circumcircle radius: expected %v, got %v", math.Sqrt(8), radius)
	}
}

func TestCircumcircleDegenerate(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Vector2
	}{
		{"collinear", NewVector2(0, 0), NewVector2(5, 0), NewVector2(10, 0)},
		{"nearly collinear", NewVector2(0, 0), NewVector2(5, 1e-12), NewVector2(10, 0)},
		{"coincident", NewVector2(3, 3), NewVector2(3, 3), NewVector2(7, 1)},
		{"all equal", NewVector2(1, 1), NewVector2(1, 1), NewVector2(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Circumcircle(tt.p1, tt.p2, tt.p3)
			if !errors.Is(err, ErrCollinear) {
				t.Errorf("expected ErrCollinear, got %v", err)
			}
		})
	}
}
