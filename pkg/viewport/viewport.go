// Package viewport maps between screen pixels and canvas logical space.
//
// Canvas space is the pixel space of the background image. A screen point s
// and a canvas point c are related by s = Offset + c*Scale.
package viewport

import (
	"math"

	"github.com/bluekompass/bluekompass/pkg/geometry"
)

const (
	MinScale = 0.05
	MaxScale = 40.0
)

// Viewport is the pan and zoom state of a canvas view
type Viewport struct {
	Offset geometry.Vector2 // Screen position of the canvas origin
	Scale  float64          // Screen pixels per canvas unit
}

// New returns the identity viewport
func New() Viewport {
	return Viewport{Scale: 1}
}

// ToCanvas converts a screen position to canvas space
func (v Viewport) ToCanvas(screen geometry.Vector2) geometry.Vector2 {
	return screen.Sub(v.Offset).Mul(1 / v.Scale)
}

// ToScreen converts a canvas position to screen space
func (v Viewport) ToScreen(canvas geometry.Vector2) geometry.Vector2 {
	return canvas.Mul(v.Scale).Add(v.Offset)
}

// Fit scales and centers a canvas of the given size inside a view, leaving a
// margin in screen pixels on every side. Images smaller than the view are not
// enlarged.
func Fit(canvasW, canvasH, viewW, viewH, margin float64) Viewport {
	if canvasW <= 0 || canvasH <= 0 {
		return New()
	}
	availW := math.Max(viewW-2*margin, 1)
	availH := math.Max(viewH-2*margin, 1)
	scale := clamp(math.Min(1, math.Min(availW/canvasW, availH/canvasH)))

	return Viewport{
		Offset: geometry.NewVector2(
			(viewW-canvasW*scale)/2,
			(viewH-canvasH*scale)/2,
		),
		Scale: scale,
	}
}

// ZoomAt multiplies the scale by factor keeping the canvas point under the
// screen position anchor fixed
func (v *Viewport) ZoomAt(anchor geometry.Vector2, factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	pinned := v.ToCanvas(anchor)
	v.Scale = clamp(v.Scale * factor)
	v.Offset = anchor.Sub(pinned.Mul(v.Scale))
}

// Pan moves the canvas by a screen space delta
func (v *Viewport) Pan(delta geometry.Vector2) {
	v.Offset = v.Offset.Add(delta)
}

// Contains reports whether a canvas point lies inside a canvas of the given
// size. Points on the right and bottom edge are outside.
func Contains(p geometry.Vector2, canvasW, canvasH float64) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < canvasW && p.Y < canvasH
}

func clamp(scale float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, scale))
}
