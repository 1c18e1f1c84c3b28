package geometry

import (
	"math"
	"testing"
)

func TestVector2Add(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Add(v2)

	expected := NewVector2(5, 7)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Sub(t *testing.T) {
	v1 := NewVector2(5, 7)
	v2 := NewVector2(1, 2)
	result := v1.Sub(v2)

	expected := NewVector2(4, 5)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Length(t *testing.T) {
	v := NewVector2(3, 4)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector2Distance(t *testing.T) {
	v1 := NewVector2(0, 0)
	v2 := NewVector2(3, 4)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector2Dot(t *testing.T) {
	v1 := NewVector2(1, 2)
	v2 := NewVector2(4, 5)
	result := v1.Dot(v2)

	expected := 14.0 // 1*4 + 2*5 = 14
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector2Cross(t *testing.T) {
	v1 := NewVector2(1, 0)
	v2 := NewVector2(0, 1)

	if result := v1.Cross(v2); result != 1 {
		t.Errorf("Cross failed: expected 1, got %v", result)
	}
	if result := v2.Cross(v1); result != -1 {
		t.Errorf("Cross failed: expected -1, got %v", result)
	}
}

func TestVector2Rot90(t *testing.T) {
	v := NewVector2(2, 1)
	result := v.Rot90()

	expected := NewVector2(-1, 2)
	if result != expected {
		t.Errorf("Rot90 failed: expected %v, got %v", expected, result)
	}
	if result.Dot(v) != 0 {
		t.Errorf("Rot90 failed: result %v is not perpendicular to %v", result, v)
	}
}

func TestVector2Midpoint(t *testing.T) {
	result := NewVector2(0, 0).Midpoint(NewVector2(4, -2))

	expected := NewVector2(2, -1)
	if result != expected {
		t.Errorf("Midpoint failed: expected %v, got %v", expected, result)
	}
}

func TestVector2IsFinite(t *testing.T) {
	tests := []struct {
		v        Vector2
		expected bool
	}{
		{NewVector2(1, 2), true},
		{NewVector2(math.NaN(), 0), false},
		{NewVector2(0, math.Inf(1)), false},
		{NewVector2(math.Inf(-1), math.NaN()), false},
	}

	for _, tt := range tests {
		if result := tt.v.IsFinite(); result != tt.expected {
			t.Errorf("IsFinite(%v) failed: expected %v, got %v", tt.v, tt.expected, result)
		}
	}
}
