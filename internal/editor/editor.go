// Package editor is the interactive shape editing engine. It owns the shape
// collection, the selection and the shape builder, and turns one frame of
// pointer and keyboard input into edits of that state.
package editor

import (
	"iter"

	"github.com/bluekompass/bluekompass/pkg/builder"
	"github.com/bluekompass/bluekompass/pkg/shape"
	"github.com/sirupsen/logrus"
)

// noSelection marks an empty shape or point selection
const noSelection = -1

// DefaultThreshold is the hit-test score below which a shape or control
// point counts as under the cursor, in canvas units
const DefaultThreshold = 10.0

// Editor holds the editing session state. It is not safe for concurrent use;
// hosts drive it from their frame loop.
type Editor struct {
	shapes         []shape.Shape
	selectedShape  int
	selectedPoint  int
	mode           Mode
	builder        *builder.Builder
	style          shape.Style
	threshold      float64
	pointThreshold float64
	log            logrus.FieldLogger
}

// Option configures an Editor
type Option func(*Editor)

// WithLogger sets the logger used for editing events
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Editor) {
		e.log = log
	}
}

// WithStyle sets the style used to draw shapes and previews
func WithStyle(style shape.Style) Option {
	return func(e *Editor) {
		e.style = style
	}
}

// WithThresholds sets the shape selection and control point thresholds
func WithThresholds(shapeThreshold, pointThreshold float64) Option {
	return func(e *Editor) {
		e.threshold = shapeThreshold
		e.pointThreshold = pointThreshold
	}
}

// WithMode sets the initial mode
func WithMode(mode Mode) Option {
	return func(e *Editor) {
		e.mode = mode
	}
}

// New creates an editor with an empty collection in select mode
func New(opts ...Option) *Editor {
	e := &Editor{
		selectedShape:  noSelection,
		selectedPoint:  noSelection,
		mode:           ModeSelect,
		builder:        builder.New(builder.StrategyLine),
		style:          shape.DefaultStyle(),
		threshold:      DefaultThreshold,
		pointThreshold: DefaultThreshold,
		log:            logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if strategy, ok := e.mode.strategy(); ok {
		e.builder.SetStrategy(strategy)
	}
	return e
}

// Mode returns the current interaction mode
func (e *Editor) Mode() Mode {
	return e.mode
}

// SetMode switches the interaction mode. The builder is reset, so points of
// a shape under construction are lost, and any drag is released. Every mode
// except select clears the shape selection.
func (e *Editor) SetMode(mode Mode) {
	if mode == e.mode {
		return
	}
	e.log.WithFields(logrus.Fields{"from": e.mode, "to": mode}).Debug("mode changed")
	e.mode = mode
	e.builder.Reset()
	if strategy, ok := mode.strategy(); ok {
		e.builder.SetStrategy(strategy)
	}
	e.selectedPoint = noSelection
	if mode != ModeSelect {
		e.Unselect()
	}
}

// Style returns the style used to draw shapes
func (e *Editor) Style() shape.Style {
	return e.style
}

// Update processes one frame of input according to the current mode
func (e *Editor) Update(in Input) RenderIntent {
	switch e.mode {
	case ModeSelect:
		return e.Select(in)
	case ModeLine, ModeCircle:
		return e.Construct(in)
	default:
		// Pointer input pans the canvas, which the host handles
		e.Unselect()
		return RenderIntent{}
	}
}

// Len returns the number of shapes
func (e *Editor) Len() int {
	return len(e.shapes)
}

// Shape returns the shape at index
func (e *Editor) Shape(index int) (shape.Shape, bool) {
	if index < 0 || index >= len(e.shapes) {
		return shape.Shape{}, false
	}
	return e.shapes[index], true
}

// Shapes iterates over the collection in creation order. The yielded shapes
// are copies.
func (e *Editor) Shapes() iter.Seq2[int, shape.Shape] {
	return func(yield func(int, shape.Shape) bool) {
		for i, s := range e.shapes {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Selection returns the selected shape and control point indices
func (e *Editor) Selection() (shapeIndex int, pointIndex int, ok bool) {
	if e.selectedShape == noSelection {
		return noSelection, noSelection, false
	}
	return e.selectedShape, e.selectedPoint, true
}

// PendingPoints returns the points placed for the shape under construction
func (e *Editor) PendingPoints() int {
	return e.builder.Len()
}

// Draw returns the primitives of every shape in collection order
func (e *Editor) Draw() []shape.Primitive {
	var prims []shape.Primitive
	for _, s := range e.shapes {
		prims = append(prims, s.Draw(e.style)...)
	}
	return prims
}
