package app

import (
	"math"

	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/viewport"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fitMargin  = 40
	zoomFactor = 1.1 // Scale change per wheel notch
)

// fitCanvas resets the view so the whole canvas is visible below the toolbar
func (app *App) fitCanvas() {
	viewW := float64(rl.GetScreenWidth())
	viewH := float64(rl.GetScreenHeight()) - toolbarHeight
	app.Canvas.viewport = viewport.Fit(app.Canvas.width, app.Canvas.height, viewW, viewH, fitMargin)
	app.Canvas.viewport.Pan(geometry.NewVector2(0, toolbarHeight))
	app.Canvas.needsFit = false
}

// doPan moves the canvas by a mouse delta in screen pixels
func (app *App) doPan(delta rl.Vector2) {
	app.Canvas.viewport.Pan(fromRL(delta))
}

// doZoom zooms around the mouse position by wheel notches
func (app *App) doZoom(mouse rl.Vector2, wheel float32) {
	app.Canvas.viewport.ZoomAt(fromRL(mouse), math.Pow(zoomFactor, float64(wheel)))
}

// canvasCursor returns the mouse position in canvas space, nil when the
// mouse is over the UI or outside of the canvas
func (app *App) canvasCursor(mouse rl.Vector2) *geometry.Vector2 {
	if app.Interaction.overUI {
		return nil
	}
	p := app.Canvas.viewport.ToCanvas(fromRL(mouse))
	if !viewport.Contains(p, app.Canvas.width, app.Canvas.height) {
		return nil
	}
	return &p
}

// toScreen converts a canvas point to a raylib screen position
func (app *App) toScreen(p geometry.Vector2) rl.Vector2 {
	return toRL(app.Canvas.viewport.ToScreen(p))
}

func toRL(v geometry.Vector2) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}

func fromRL(v rl.Vector2) geometry.Vector2 {
	return geometry.NewVector2(float64(v.X), float64(v.Y))
}
