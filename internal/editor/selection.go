package editor

import (
	"math"

	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/sirupsen/logrus"
)

// Select handles one frame in select mode. The first matching case wins:
// delete the selection, drag a control point of the selected shape, then
// select by click.
func (e *Editor) Select(in Input) RenderIntent {
	if in.DeletePressed && e.selectedShape != noSelection {
		e.DeleteSelected()
		return RenderIntent{Action: ActionDeleted}
	}

	if handled, moved := e.drag(in); handled {
		if moved {
			return RenderIntent{Action: ActionDragged}
		}
		return RenderIntent{}
	}

	if in.PrimaryClicked && in.Cursor != nil {
		if _, ok := e.SelectAt(*in.Cursor); ok {
			return RenderIntent{Action: ActionSelected}
		}
		return RenderIntent{Action: ActionDeselected}
	}

	if in.SecondaryClicked && e.selectedShape != noSelection {
		e.Unselect()
		return RenderIntent{Action: ActionDeselected}
	}

	return RenderIntent{}
}

// drag consumes a held primary button while a shape is selected. Releasing
// the button drops the point lock but keeps the shape selected.
func (e *Editor) drag(in Input) (handled, moved bool) {
	if e.selectedShape == noSelection {
		return false, false
	}
	if !in.PrimaryDown {
		e.ReleasePoint()
		return false, false
	}
	if in.Cursor == nil {
		return false, false
	}
	anchor := *in.Cursor
	if in.PressCursor != nil {
		anchor = *in.PressCursor
	}
	return true, e.DragSelectedPoint(anchor, *in.Cursor)
}

// MoveSelectedPoint drags a control point of the selected shape to cursor,
// picking the point at cursor
func (e *Editor) MoveSelectedPoint(cursor geometry.Vector2) bool {
	return e.DragSelectedPoint(cursor, cursor)
}

// DragSelectedPoint moves a control point of the selected shape to cursor.
//
// The point is resolved once per gesture: the control point nearest to
// anchor, if within the point threshold, is locked until ReleasePoint so it
// is not lost when the cursor runs ahead of its marker.
func (e *Editor) DragSelectedPoint(anchor, cursor geometry.Vector2) bool {
	if e.selectedShape == noSelection {
		return false
	}
	if e.selectedPoint == noSelection {
		e.selectedPoint = e.nearestPoint(e.selectedShape, anchor)
		if e.selectedPoint == noSelection {
			return false
		}
		e.log.WithFields(logrus.Fields{"shape": e.selectedShape, "point": e.selectedPoint}).Debug("control point locked")
	}
	e.shapes[e.selectedShape].Replace(e.selectedPoint, cursor)
	return true
}

// ReleasePoint ends a control point drag
func (e *Editor) ReleasePoint() {
	e.selectedPoint = noSelection
}

// nearestPoint returns the index of the control point closest to p, or
// noSelection when none is within the point threshold
func (e *Editor) nearestPoint(shapeIndex int, p geometry.Vector2) int {
	best := noSelection
	bestDist := math.Inf(1)
	for i, point := range e.shapes[shapeIndex].Points() {
		if d := point.Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	if bestDist < e.pointThreshold {
		return best
	}
	return noSelection
}

// SelectAt selects the shape with the lowest hit-test score at p when that
// score is below the threshold, otherwise clears the selection. Ties go to
// the earliest shape.
func (e *Editor) SelectAt(p geometry.Vector2) (int, bool) {
	best := noSelection
	bestScore := math.Inf(1)
	for i, s := range e.shapes {
		if score := s.HitTest(p); score < bestScore {
			best, bestScore = i, score
		}
	}

	e.Unselect()
	if best == noSelection || bestScore >= e.threshold {
		return noSelection, false
	}

	e.shapes[best].Select()
	e.selectedShape = best
	e.log.WithFields(logrus.Fields{
		"shape": best,
		"kind":  e.shapes[best].Kind(),
		"score": bestScore,
	}).Debug("shape selected")
	return best, true
}

// Unselect clears the shape selection and any point selection with it
func (e *Editor) Unselect() {
	if e.selectedShape != noSelection {
		e.shapes[e.selectedShape].Unselect()
	}
	e.selectedShape = noSelection
	e.selectedPoint = noSelection
}

// DeleteSelected removes the selected shape. The selection is cleared in the
// same step, before indices shift.
func (e *Editor) DeleteSelected() bool {
	index := e.selectedShape
	if index == noSelection {
		return false
	}
	e.selectedShape = noSelection
	e.selectedPoint = noSelection

	removed := e.shapes[index]
	e.shapes = append(e.shapes[:index], e.shapes[index+1:]...)
	e.log.WithFields(logrus.Fields{"shape": index, "kind": removed.Kind()}).Info("shape deleted")
	return true
}
