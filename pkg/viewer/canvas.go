// Package viewer provides a fyne widget that hosts the shape editor.
package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/shape"
	"github.com/bluekompass/bluekompass/pkg/viewport"
	"github.com/sirupsen/logrus"
)

const (
	fitMargin  = 20
	zoomFactor = 1.1
)

// CanvasView shows a background image with the editor's shapes on top and
// forwards pointer and keyboard events to the editor
type CanvasView struct {
	widget.BaseWidget

	editor   *editor.Editor
	viewport viewport.Viewport
	image    image.Image
	width    float64 // Canvas size in logical units
	height   float64
	size     fyne.Size // Widget size at the last layout
	fitted   bool

	cursor   *geometry.Vector2
	dragging bool
	press    *geometry.Vector2 // Canvas position where the drag started
	preview  []shape.Primitive
	onChange func(editor.RenderIntent)
	log      logrus.FieldLogger
}

// NewCanvasView creates a view for ed with a blank canvas of the given size
func NewCanvasView(ed *editor.Editor, width, height float64, log logrus.FieldLogger) *CanvasView {
	if log == nil {
		log = logrus.StandardLogger()
	}
	v := &CanvasView{
		editor:   ed,
		viewport: viewport.New(),
		width:    width,
		height:   height,
		log:      log,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnChange sets the callback called after every event the editor handled
func (v *CanvasView) SetOnChange(callback func(editor.RenderIntent)) {
	v.onChange = callback
}

// Editor returns the hosted editor
func (v *CanvasView) Editor() *editor.Editor {
	return v.editor
}

// Image returns the background image, nil for a blank canvas
func (v *CanvasView) Image() image.Image {
	return v.image
}

// CanvasSize returns the canvas size in logical units
func (v *CanvasView) CanvasSize() (float64, float64) {
	return v.width, v.height
}

// Viewport returns the current pan and zoom
func (v *CanvasView) Viewport() viewport.Viewport {
	return v.viewport
}

// SetImage replaces the background image. Shapes are kept.
func (v *CanvasView) SetImage(img image.Image) {
	v.image = img
	if img != nil {
		bounds := img.Bounds()
		v.width, v.height = float64(bounds.Dx()), float64(bounds.Dy())
	}
	v.Fit()
	if !v.fitted {
		v.Refresh()
	}
}

// SetMode switches the editor mode and drops the preview
func (v *CanvasView) SetMode(mode editor.Mode) {
	v.editor.SetMode(mode)
	v.preview = nil
	v.changed(editor.RenderIntent{})
}

// Fit resets pan and zoom so the whole canvas is visible
func (v *CanvasView) Fit() {
	if v.size.Width <= 0 || v.size.Height <= 0 {
		v.fitted = false
		return
	}
	v.viewport = viewport.Fit(v.width, v.height, float64(v.size.Width), float64(v.size.Height), fitMargin)
	v.fitted = true
	v.Refresh()
}

// Cursor returns the last pointer position in canvas space
func (v *CanvasView) Cursor() (geometry.Vector2, bool) {
	if v.cursor == nil {
		return geometry.Vector2{}, false
	}
	return *v.cursor, true
}

// toCanvas converts a widget position to canvas space, nil outside of the
// canvas
func (v *CanvasView) toCanvas(pos fyne.Position) *geometry.Vector2 {
	p := v.viewport.ToCanvas(geometry.NewVector2(float64(pos.X), float64(pos.Y)))
	if !viewport.Contains(p, v.width, v.height) {
		return nil
	}
	return &p
}

// update feeds one frame to the editor
func (v *CanvasView) update(in editor.Input) {
	v.cursor = in.Cursor
	intent := v.editor.Update(in)
	v.preview = intent.Preview
	v.changed(intent)
}

func (v *CanvasView) changed(intent editor.RenderIntent) {
	if v.onChange != nil {
		v.onChange(intent)
	}
	v.Refresh()
}

// Tapped handles a primary click
func (v *CanvasView) Tapped(event *fyne.PointEvent) {
	v.update(editor.Input{Cursor: v.toCanvas(event.Position), PrimaryClicked: true})
}

// TappedSecondary handles a secondary click
func (v *CanvasView) TappedSecondary(event *fyne.PointEvent) {
	v.update(editor.Input{Cursor: v.toCanvas(event.Position), SecondaryClicked: true})
}

// Dragged moves a control point, or pans in drag mode. The first event of a
// drag already carries the travel since the press, so the press position is
// recovered from it.
func (v *CanvasView) Dragged(event *fyne.DragEvent) {
	if !v.dragging {
		v.dragging = true
		v.press = v.toCanvas(fyne.NewPos(event.Position.X-event.Dragged.DX, event.Position.Y-event.Dragged.DY))
	}
	if v.editor.Mode() == editor.ModeDrag {
		v.viewport.Pan(geometry.NewVector2(float64(event.Dragged.DX), float64(event.Dragged.DY)))
	}
	v.update(editor.Input{Cursor: v.toCanvas(event.Position), PressCursor: v.press, PrimaryDown: true})
}

// DragEnd releases the dragged control point
func (v *CanvasView) DragEnd() {
	v.dragging = false
	v.press = nil
	v.update(editor.Input{Cursor: v.cursor})
}

// Scrolled zooms around the pointer
func (v *CanvasView) Scrolled(event *fyne.ScrollEvent) {
	if event.Scrolled.DY == 0 {
		return
	}
	factor := zoomFactor
	if event.Scrolled.DY < 0 {
		factor = 1 / zoomFactor
	}
	v.viewport.ZoomAt(geometry.NewVector2(float64(event.Position.X), float64(event.Position.Y)), factor)
	v.Refresh()
}

// MouseIn is part of desktop.Hoverable
func (v *CanvasView) MouseIn(event *desktop.MouseEvent) {
	v.MouseMoved(event)
}

// MouseMoved updates the construction preview
func (v *CanvasView) MouseMoved(event *desktop.MouseEvent) {
	v.update(editor.Input{Cursor: v.toCanvas(event.Position)})
}

// MouseOut clears the preview
func (v *CanvasView) MouseOut() {
	v.update(editor.Input{})
}

// FocusGained is part of fyne.Focusable
func (v *CanvasView) FocusGained() {}

// FocusLost is part of fyne.Focusable
func (v *CanvasView) FocusLost() {}

// TypedRune switches modes with 1-4 or the mode keys. d deletes the
// selection.
func (v *CanvasView) TypedRune(r rune) {
	if r == 'd' || r == 'D' {
		v.update(editor.Input{Cursor: v.cursor, DeletePressed: true})
		return
	}
	if mode, ok := modeForRune(r); ok {
		v.SetMode(mode)
	}
}

// TypedKey handles delete and escape
func (v *CanvasView) TypedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyDelete, fyne.KeyBackspace:
		v.update(editor.Input{Cursor: v.cursor, DeletePressed: true})
	case fyne.KeyEscape:
		v.editor.Cancel()
		v.editor.Unselect()
		v.preview = nil
		v.changed(editor.RenderIntent{Action: editor.ActionCancelled})
	case fyne.KeyHome:
		v.Fit()
	}
}

func modeForRune(r rune) (editor.Mode, bool) {
	switch r {
	case '1', 'h', 'H':
		return editor.ModeDrag, true
	case '2', 's', 'S':
		return editor.ModeSelect, true
	case '3', 'l', 'L':
		return editor.ModeLine, true
	case '4', 'c', 'C':
		return editor.ModeCircle, true
	}
	return 0, false
}

// CreateRenderer creates the renderer for the widget
func (v *CanvasView) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{view: v}
	r.rebuild()
	return r
}

// screen converts a canvas point to a widget position
func (v *CanvasView) screen(p geometry.Vector2) fyne.Position {
	s := v.viewport.ToScreen(p)
	return fyne.NewPos(float32(s.X), float32(s.Y))
}
