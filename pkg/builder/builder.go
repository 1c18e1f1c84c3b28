// Package builder accumulates points clicked by the user until they define a
// complete shape.
package builder

import (
	"errors"

	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/shape"
)

// ErrIncomplete is returned by Build while points are still missing
var ErrIncomplete = errors.New("not enough points")

// State describes how far construction has progressed
type State int

const (
	StateEmpty State = iota
	StatePartial
	StateReady
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Builder is the incremental point accumulator for one shape
type Builder struct {
	strategy Strategy
	points   [3]geometry.Vector2
	n        int
}

// New creates an empty builder
func New(strategy Strategy) *Builder {
	return &Builder{strategy: strategy}
}

// Strategy returns the shape kind being built
func (b *Builder) Strategy() Strategy {
	return b.strategy
}

// SetStrategy switches the shape kind. Pending points are dropped when the
// strategy changes since they cannot be reinterpreted.
func (b *Builder) SetStrategy(strategy Strategy) {
	if b.strategy != strategy {
		b.strategy = strategy
		b.Reset()
	}
}

// Reset drops all pending points
func (b *Builder) Reset() {
	b.n = 0
	b.points = [3]geometry.Vector2{}
}

// AddPoint appends p. Points beyond the strategy's requirement are ignored
// and false is returned.
func (b *Builder) AddPoint(p geometry.Vector2) bool {
	if b.n >= b.strategy.Required() {
		return false
	}
	b.points[b.n] = p
	b.n++
	return true
}

// Len returns the number of pending points
func (b *Builder) Len() int {
	return b.n
}

// Points returns a copy of the pending points
func (b *Builder) Points() []geometry.Vector2 {
	return append([]geometry.Vector2(nil), b.points[:b.n]...)
}

// State returns the construction state
func (b *Builder) State() State {
	switch {
	case b.n == 0:
		return StateEmpty
	case b.n >= b.strategy.Required():
		return StateReady
	default:
		return StatePartial
	}
}

// Preview returns the primitives of the shape that would be built if cursor
// were the final point. It does not modify the builder.
func (b *Builder) Preview(cursor geometry.Vector2, style shape.Style) []shape.Primitive {
	return b.strategy.preview(b.points[:b.n], cursor, style)
}

// Build returns the completed shape once all points are present. The caller
// appends it and resets the builder.
func (b *Builder) Build() (shape.Shape, error) {
	if b.State() != StateReady {
		return shape.Shape{}, ErrIncomplete
	}
	return b.strategy.build(b.points[:b.n])
}
