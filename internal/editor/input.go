package editor

import (
	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/shape"
)

// Input is one frame of resolved pointer and keyboard state.
//
// Cursor is already in canvas logical space and nil while the pointer is
// outside the canvas. PrimaryClicked fires on the frame the button is
// released after a press without drag, so it is never set together with
// PrimaryDown.
//
// PressCursor is where the held primary button went down, in canvas space.
// Hosts that only report a drag after some pointer travel set it so the
// dragged control point is picked at the press position; nil falls back to
// Cursor.
type Input struct {
	Cursor           *geometry.Vector2
	PressCursor      *geometry.Vector2
	PrimaryClicked   bool // Edge: press and release
	PrimaryDown      bool // Level: button held
	SecondaryClicked bool // Edge
	DeletePressed    bool // Edge
}

// At returns a copy of the input with the cursor set to p
func (in Input) At(p geometry.Vector2) Input {
	in.Cursor = &p
	return in
}

// Action describes what the editor did with a frame
type Action int

const (
	ActionNone Action = iota
	ActionDeleted
	ActionDragged
	ActionSelected
	ActionDeselected
	ActionPointAdded
	ActionShapeBuilt
	ActionRejected
	ActionCancelled
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionDeleted:
		return "deleted"
	case ActionDragged:
		return "dragged"
	case ActionSelected:
		return "selected"
	case ActionDeselected:
		return "deselected"
	case ActionPointAdded:
		return "point added"
	case ActionShapeBuilt:
		return "shape built"
	case ActionRejected:
		return "rejected"
	case ActionCancelled:
		return "cancelled"
	}
	return "unknown"
}

// RenderIntent is the result of one frame: what happened and the transient
// geometry to draw on top of the shape collection
type RenderIntent struct {
	Action  Action
	Preview []shape.Primitive
}
