package app

import (
	"fmt"
	"time"

	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/version"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	toolbarHeight  = 44
	buttonWidth    = 96
	buttonHeight   = 28
	buttonSpacing  = 8
	messageTimeout = 3 * time.Second
)

var (
	panelColor    = rl.NewColor(0, 0, 0, 200)
	buttonColor   = rl.NewColor(60, 66, 78, 255)
	activeColor   = rl.NewColor(46, 101, 255, 255)
	hintTextColor = rl.NewColor(144, 238, 144, 255)
)

// buildToolbar lays out one button per mode
func (app *App) buildToolbar() {
	app.UI.toolbar = app.UI.toolbar[:0]
	x := float32(10)
	y := float32(toolbarHeight-buttonHeight) / 2
	for i, mode := range editor.Modes {
		app.UI.toolbar = append(app.UI.toolbar, toolbarButton{
			mode:   mode,
			label:  fmt.Sprintf("%d %s", i+1, mode),
			bounds: rl.NewRectangle(x, y, buttonWidth, buttonHeight),
		})
		x += buttonWidth + buttonSpacing
	}
}

// toolbarHit reports whether the mouse is over the toolbar strip
func (app *App) toolbarHit(mouse rl.Vector2) bool {
	return mouse.Y < toolbarHeight
}

// toolbarModeAt returns the mode of the button under the mouse
func (app *App) toolbarModeAt(mouse rl.Vector2) (editor.Mode, bool) {
	for _, b := range app.UI.toolbar {
		if rl.CheckCollisionPointRec(mouse, b.bounds) {
			return b.mode, true
		}
	}
	return 0, false
}

// notify shows a transient message in the status panel
func (app *App) notify(message string) {
	app.UI.message = message
	app.UI.messageTime = time.Now()
}

// drawUI draws the user interface
func (app *App) drawUI() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())
	lineHeight := int32(20)
	fontSize14 := int32(14)
	fontSize16 := int32(16)

	// === TOOLBAR ===
	rl.DrawRectangle(0, 0, screenWidth, toolbarHeight, panelColor)
	for _, b := range app.UI.toolbar {
		col := buttonColor
		if b.mode == app.Editor.Mode() {
			col = activeColor
		}
		rl.DrawRectangleRec(b.bounds, col)
		textWidth := rl.MeasureText(b.label, fontSize14)
		rl.DrawText(b.label,
			int32(b.bounds.X)+(int32(b.bounds.Width)-textWidth)/2,
			int32(b.bounds.Y)+(int32(b.bounds.Height)-fontSize14)/2,
			fontSize14, rl.White)
	}

	// Loading indicator
	if app.FileWatch.isLoading {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		loadingText := fmt.Sprintf("Loading... (%.1fs)", elapsed)
		textWidth := rl.MeasureText(loadingText, fontSize16)
		rl.DrawText(loadingText, screenWidth-textWidth-20, (toolbarHeight-fontSize16)/2, fontSize16, rl.Yellow)
	}

	// === STATUS ===
	lines := app.statusLines()
	panelHeight := int32(len(lines))*lineHeight + 20
	panelY := screenHeight - panelHeight - 30
	rl.DrawRectangle(10, panelY, 300, panelHeight, panelColor)
	y := panelY + 10
	for i, line := range lines {
		col := rl.White
		if i == 0 {
			col = rl.Yellow
		}
		rl.DrawText(line, 20, y, fontSize14, col)
		y += lineHeight
	}

	if hint := app.modeHint(); hint != "" {
		rl.DrawText(hint, 320, screenHeight-50, fontSize14, hintTextColor)
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 22
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawText(versionText, 10, bottomY, 12, rl.Gray)
	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	rl.DrawText(fpsText, 10+rl.MeasureText(versionText, 12)+15, bottomY, 12, rl.Lime)
}

// statusLines describes the session state
func (app *App) statusLines() []string {
	lines := []string{
		fmt.Sprintf("Mode: %s", app.Editor.Mode()),
		fmt.Sprintf("Shapes: %d", app.Editor.Len()),
	}

	if shapeIndex, pointIndex, ok := app.Editor.Selection(); ok {
		s, _ := app.Editor.Shape(shapeIndex)
		selection := fmt.Sprintf("Selected: #%d %s", shapeIndex, s.Kind())
		if pointIndex >= 0 {
			selection += fmt.Sprintf(", point %d", pointIndex)
		}
		if c, ok := s.Circle(); ok {
			selection += fmt.Sprintf(", r = %.1f", c.Radius())
		} else if l, ok := s.Line(); ok {
			selection += fmt.Sprintf(", length %.1f", l.Length())
		}
		lines = append(lines, selection)
	} else {
		lines = append(lines, "Selected: none")
	}

	if app.Editor.Mode().Constructs() {
		lines = append(lines, fmt.Sprintf("Points: %d", app.Editor.PendingPoints()))
	}

	if c := app.Interaction.cursor; c != nil {
		lines = append(lines, fmt.Sprintf("Cursor: (%.1f, %.1f)", c.X, c.Y))
	} else {
		lines = append(lines, "Cursor: -")
	}
	lines = append(lines, fmt.Sprintf("Zoom: %.0f%%", app.Canvas.viewport.Scale*100))

	if app.UI.message != "" && time.Since(app.UI.messageTime) < messageTimeout {
		lines = append(lines, app.UI.message)
	}
	return lines
}

// modeHint returns the controls of the current mode
func (app *App) modeHint() string {
	switch app.Editor.Mode() {
	case editor.ModeDrag:
		return "Left Drag: Pan | Wheel: Zoom | F: Fit"
	case editor.ModeSelect:
		if _, _, ok := app.Editor.Selection(); ok {
			return "Drag point: Move | Delete/D: Remove | Right Click: Deselect"
		}
		return "Left Click: Select shape"
	case editor.ModeLine:
		return "Left Click: Place 2 points | Right Click/ESC: Cancel"
	case editor.ModeCircle:
		return "Left Click: Place 3 points on the circle | Right Click/ESC: Cancel"
	}
	return ""
}
