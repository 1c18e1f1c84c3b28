package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/internal/gesture"
	"github.com/bluekompass/bluekompass/pkg/export"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// modeKeys maps keyboard shortcuts to modes
var modeKeys = []struct {
	keys []int32
	mode editor.Mode
}{
	{[]int32{rl.KeyOne, rl.KeyH}, editor.ModeDrag},
	{[]int32{rl.KeyTwo, rl.KeyS}, editor.ModeSelect},
	{[]int32{rl.KeyThree, rl.KeyL}, editor.ModeLine},
	{[]int32{rl.KeyFour, rl.KeyC}, editor.ModeCircle},
}

// handleInput processes user input and feeds one frame to the editor
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	if !ctrlPressed {
		app.handleModeKeys()
	}
	if rl.IsKeyPressed(rl.KeyHome) || rl.IsKeyPressed(rl.KeyF) {
		app.Canvas.needsFit = true
	}
	if ctrlPressed && rl.IsKeyPressed(rl.KeyE) {
		app.exportSnapshot()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.Editor.Cancel()
		app.Editor.Unselect()
	}

	// Toolbar clicks never reach the canvas
	app.Interaction.overUI = app.toolbarHit(mouse)
	if app.Interaction.overUI && !app.Interaction.tracker.Dragging() && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if mode, ok := app.toolbarModeAt(mouse); ok {
			app.setMode(mode)
		}
		app.Interaction.tracker.Reset()
		return
	}

	// Zoom with mouse wheel
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(mouse, wheel)
	}

	// Panning with middle mouse button drag, or left drag in drag mode
	dragMode := app.Editor.Mode() == editor.ModeDrag
	app.Interaction.isPanning = rl.IsMouseButtonDown(rl.MouseMiddleButton) ||
		(dragMode && rl.IsMouseButtonDown(rl.MouseLeftButton))
	if app.Interaction.isPanning {
		if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
			app.doPan(delta)
		}
	}

	app.Interaction.cursor = app.canvasCursor(mouse)
	raw := gesture.Raw{
		Screen:           fromRL(mouse),
		PrimaryPressed:   rl.IsMouseButtonPressed(rl.MouseLeftButton),
		PrimaryDown:      rl.IsMouseButtonDown(rl.MouseLeftButton),
		PrimaryReleased:  rl.IsMouseButtonReleased(rl.MouseLeftButton),
		SecondaryPressed: rl.IsMouseButtonPressed(rl.MouseRightButton),
		DeletePressed: rl.IsKeyPressed(rl.KeyDelete) || rl.IsKeyPressed(rl.KeyBackspace) ||
			(!ctrlPressed && rl.IsKeyPressed(rl.KeyD)),
	}
	in := app.Interaction.tracker.Input(raw, app.Interaction.cursor)

	intent := app.Editor.Update(in)
	app.Interaction.lastIntent = intent
	app.reportAction(intent.Action)
}

func (app *App) handleModeKeys() {
	for _, mk := range modeKeys {
		for _, key := range mk.keys {
			if rl.IsKeyPressed(key) {
				app.setMode(mk.mode)
				return
			}
		}
	}
}

func (app *App) setMode(mode editor.Mode) {
	if mode == app.Editor.Mode() {
		return
	}
	app.Editor.SetMode(mode)
	app.Interaction.tracker.Reset()
	app.Interaction.lastIntent = editor.RenderIntent{}
	app.notify(fmt.Sprintf("Mode: %s", mode))
}

// reportAction shows a status message for actions the user may not see
func (app *App) reportAction(action editor.Action) {
	switch action {
	case editor.ActionRejected:
		app.notify("Points are collinear, circle discarded")
	case editor.ActionShapeBuilt:
		app.notify(fmt.Sprintf("Shape created (%d total)", app.Editor.Len()))
	case editor.ActionDeleted:
		app.notify("Shape deleted")
	case editor.ActionCancelled:
		app.notify("Construction cancelled")
	}
}

// exportSnapshot writes the annotated canvas next to the image
func (app *App) exportSnapshot() {
	base := app.Canvas.image
	if base == nil {
		blank, err := export.Blank(int(app.Canvas.width), int(app.Canvas.height))
		if err != nil {
			app.log.WithError(err).Error("export failed")
			return
		}
		base = blank
	}

	path := "bluekompass.png"
	if app.FileWatch.imagePath != "" {
		ext := filepath.Ext(app.FileWatch.imagePath)
		path = strings.TrimSuffix(app.FileWatch.imagePath, ext) + ".annotated.png"
	}

	if err := export.SavePNG(path, base, app.Editor.Draw()); err != nil {
		app.log.WithError(err).Error("export failed")
		app.notify("Export failed")
		return
	}
	app.log.WithFields(logrus.Fields{"file": path, "shapes": app.Editor.Len()}).Info("snapshot exported")
	app.notify(fmt.Sprintf("Saved %s", filepath.Base(path)))
}
