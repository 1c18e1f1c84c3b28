package editor

import (
	"errors"

	"github.com/bluekompass/bluekompass/pkg/builder"
	"github.com/sirupsen/logrus"
)

// Construct handles one frame in line or circle mode: a click places the
// next point and completes the shape once enough points are placed, any
// other frame previews the shape at the cursor.
func (e *Editor) Construct(in Input) RenderIntent {
	// Editing and construction are exclusive
	e.Unselect()

	strategy, ok := e.mode.strategy()
	if !ok {
		return RenderIntent{}
	}
	e.builder.SetStrategy(strategy)

	if in.SecondaryClicked {
		if e.Cancel() {
			return RenderIntent{Action: ActionCancelled}
		}
		return RenderIntent{}
	}

	if in.PrimaryClicked {
		if in.Cursor == nil {
			return RenderIntent{}
		}
		if !e.builder.AddPoint(*in.Cursor) {
			return RenderIntent{}
		}
		if _, err := e.AddShapeFromBuilder(); err != nil {
			if errors.Is(err, builder.ErrIncomplete) {
				return RenderIntent{Action: ActionPointAdded}
			}
			return RenderIntent{Action: ActionRejected}
		}
		return RenderIntent{Action: ActionShapeBuilt}
	}

	if in.Cursor != nil {
		return RenderIntent{Preview: e.builder.Preview(*in.Cursor, e.style)}
	}
	return RenderIntent{}
}

// AddShapeFromBuilder appends the builder's shape to the collection once it
// is complete and resets the builder. Degenerate input is discarded.
func (e *Editor) AddShapeFromBuilder() (int, error) {
	s, err := e.builder.Build()
	if errors.Is(err, builder.ErrIncomplete) {
		return noSelection, err
	}
	e.builder.Reset()
	if err != nil {
		e.log.WithError(err).WithField("strategy", e.builder.Strategy()).Warn("discarding shape")
		return noSelection, err
	}

	e.shapes = append(e.shapes, s)
	index := len(e.shapes) - 1
	e.log.WithFields(logrus.Fields{"shape": index, "kind": s.Kind()}).Info("shape created")
	return index, nil
}

// Cancel drops the points of the shape under construction
func (e *Editor) Cancel() bool {
	if e.builder.Len() == 0 {
		return false
	}
	e.builder.Reset()
	e.log.WithField("strategy", e.builder.Strategy()).Debug("construction cancelled")
	return true
}
