package builder

import (
	"fmt"

	"github.com/bluekompass/bluekompass/pkg/geometry"
	"github.com/bluekompass/bluekompass/pkg/shape"
)

// Strategy selects which shape the builder constructs
type Strategy int

const (
	StrategyLine Strategy = iota
	StrategyCircle
)

func (s Strategy) String() string {
	switch s {
	case StrategyLine:
		return "line"
	case StrategyCircle:
		return "circle"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Required returns the number of points needed to complete the shape
func (s Strategy) Required() int {
	switch s {
	case StrategyCircle:
		return 3
	default:
		return 2
	}
}

// build creates the shape from exactly Required points
func (s Strategy) build(points []geometry.Vector2) (shape.Shape, error) {
	switch s {
	case StrategyLine:
		return shape.FromLine(shape.NewLine([2]geometry.Vector2{points[0], points[1]})), nil
	case StrategyCircle:
		if _, _, err := geometry.Circumcircle(points[0], points[1], points[2]); err != nil {
			return shape.Shape{}, fmt.Errorf("cannot build circle: %w", err)
		}
		return shape.FromCircle(shape.NewCircle([3]geometry.Vector2{points[0], points[1], points[2]})), nil
	}
	return shape.Shape{}, fmt.Errorf("unknown strategy %v", s)
}

// preview renders the shape that would be built if cursor were the next point
func (s Strategy) preview(points []geometry.Vector2, cursor geometry.Vector2, style shape.Style) []shape.Primitive {
	if len(points) == 0 {
		return nil
	}
	style = style.ForPreview()

	switch s {
	case StrategyLine:
		end := cursor
		if len(points) > 1 {
			end = points[1]
		}
		return shape.FromLine(shape.NewLine([2]geometry.Vector2{points[0], end})).Draw(style)
	case StrategyCircle:
		if len(points) == 1 {
			return []shape.Primitive{style.ControlMarkers([]geometry.Vector2{points[0]}, style.Marker)}
		}
		last := cursor
		if len(points) > 2 {
			last = points[2]
		}
		// Degenerate previews fall back to markers in Draw
		return shape.FromCircle(shape.NewCircle([3]geometry.Vector2{points[0], points[1], last})).Draw(style)
	}
	return nil
}
