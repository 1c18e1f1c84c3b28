package app

import (
	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/shape"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawCanvas draws the background image, or a white sheet without one
func (app *App) drawCanvas() {
	vp := app.Canvas.viewport
	origin := app.toScreen(geometry.Vector2{})

	if app.Canvas.hasTexture {
		rl.DrawTextureEx(app.Canvas.texture, origin, 0, float32(vp.Scale), rl.White)
		return
	}
	rl.DrawRectangleV(origin, rl.NewVector2(
		float32(app.Canvas.width*vp.Scale),
		float32(app.Canvas.height*vp.Scale),
	), rl.White)
}

// drawPrimitives draws render primitives in screen space. Widths and radii
// are screen pixels and do not scale with zoom.
func (app *App) drawPrimitives(prims []shape.Primitive) {
	for _, p := range prims {
		switch p.Kind {
		case shape.PrimitivePolyline:
			app.drawPolyline(p)
		case shape.PrimitiveMarker:
			for _, pt := range p.Points {
				if !pt.IsFinite() {
					continue
				}
				if p.Marker == shape.MarkerCross {
					app.drawCross(app.toScreen(pt), p)
				} else {
					app.drawDot(app.toScreen(pt), p)
				}
			}
		}
	}
}

func (app *App) drawPolyline(p shape.Primitive) {
	width := float32(p.Width)
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		if !a.IsFinite() || !b.IsFinite() {
			continue
		}
		start, end := app.toScreen(a), app.toScreen(b)
		rl.DrawLineEx(start, end, width, p.Color)
		// Round joints so thick polylines have no gaps
		if width > 2 {
			rl.DrawCircleV(end, width/2, p.Color)
		}
	}
}

func (app *App) drawDot(center rl.Vector2, p shape.Primitive) {
	if p.OutlineWidth > 0 {
		rl.DrawCircleV(center, float32(p.Radius+p.OutlineWidth), p.Outline)
	}
	rl.DrawCircleV(center, float32(p.Radius), p.Color)
}

func (app *App) drawCross(center rl.Vector2, p shape.Primitive) {
	r := float32(p.Radius)
	width := float32(max(p.Width, 1))
	rl.DrawLineEx(rl.NewVector2(center.X-r, center.Y), rl.NewVector2(center.X+r, center.Y), width, p.Color)
	rl.DrawLineEx(rl.NewVector2(center.X, center.Y-r), rl.NewVector2(center.X, center.Y+r), width, p.Color)
}
