// Package gesture turns raw pointer button state into editor input.
//
// A press that is released before the pointer travelled ClickTolerance
// screen pixels is a click, reported on the release frame. A press that
// travels further is a drag: the button is reported as held from then on and
// no click is reported on release.
package gesture

import (
	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/pkg/geometry"
)

// DefaultClickTolerance is the pointer travel in screen pixels that turns a
// press into a drag
const DefaultClickTolerance = 5.0

// Raw is the pointer and keyboard state polled from a window for one frame
type Raw struct {
	Screen           geometry.Vector2
	PrimaryPressed   bool // Went down this frame
	PrimaryDown      bool
	PrimaryReleased  bool // Went up this frame
	SecondaryPressed bool
	DeletePressed    bool
}

// Tracker follows the primary button across frames
type Tracker struct {
	ClickTolerance float64

	pressed     bool
	pressPos    geometry.Vector2
	pressCursor *geometry.Vector2 // Canvas position of the press
	dragging    bool
}

// NewTracker creates a tracker with the default click tolerance
func NewTracker() *Tracker {
	return &Tracker{ClickTolerance: DefaultClickTolerance}
}

// Input resolves one frame. cursor is the pointer in canvas space, nil when
// the pointer is outside of the canvas.
func (t *Tracker) Input(raw Raw, cursor *geometry.Vector2) editor.Input {
	if raw.PrimaryPressed {
		t.pressed = true
		t.pressPos = raw.Screen
		t.pressCursor = nil
		if cursor != nil {
			c := *cursor
			t.pressCursor = &c
		}
		t.dragging = false
	}
	if t.pressed && raw.PrimaryDown && raw.Screen.Distance(t.pressPos) >= t.ClickTolerance {
		t.dragging = true
	}

	in := editor.Input{
		Cursor:           cursor,
		PrimaryDown:      t.pressed && raw.PrimaryDown && t.dragging,
		SecondaryClicked: raw.SecondaryPressed,
		DeletePressed:    raw.DeletePressed,
	}
	if in.PrimaryDown {
		in.PressCursor = t.pressCursor
	}

	if raw.PrimaryReleased || (t.pressed && !raw.PrimaryDown && !raw.PrimaryPressed) {
		in.PrimaryClicked = t.pressed && !t.dragging
		in.PrimaryDown = false
		in.PressCursor = nil
		t.pressed = false
		t.pressCursor = nil
		t.dragging = false
	}
	return in
}

// Dragging reports whether the current press has turned into a drag
func (t *Tracker) Dragging() bool {
	return t.dragging
}

// Reset forgets the current press, e.g. when the pointer moved onto the
// toolbar
func (t *Tracker) Reset() {
	t.pressed = false
	t.pressCursor = nil
	t.dragging = false
}
