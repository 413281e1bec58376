package rush

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/geometry-rush/internal/config"
	"github.com/vovakirdan/geometry-rush/internal/core"
)

// ErrUnknownShape reports an obstacle whose collision geometry is not recognized.
// It signals a broken catalog, never a regular miss.
var ErrUnknownShape = errors.New("rush: unknown collision shape")

// Shape selects the overlap test used for an obstacle kind.
type Shape int

const (
	ShapeRect     Shape = iota + 1 // axis-aligned bounding box
	ShapeTriangle                  // triangle inscribed in the bounding box, apex up
)

// String returns the config name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return config.ShapeRect
	case ShapeTriangle:
		return config.ShapeTriangle
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape converts a config shape name.
func ParseShape(name string) (Shape, error) {
	switch name {
	case config.ShapeRect:
		return ShapeRect, nil
	case config.ShapeTriangle:
		return ShapeTriangle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// RectOverlap reports whether the actor, shrunk inward by tolerance, strictly
// overlaps the obstacle box. Only the actor is shrunk.
func RectOverlap(actor, obstacle core.Rect, tolerance float64) bool {
	return actor.Inset(tolerance).Intersects(obstacle)
}

// TriangleOverlap reports whether any corner of the actor lies inside or on the
// triangle inscribed in box. Boxes that are strictly apart are rejected first.
func TriangleOverlap(actor, box core.Rect) bool {
	if actor.Separated(box) {
		return false
	}
	tri := core.InscribedTriangle(box)
	for _, c := range actor.Corners() {
		if tri.Contains(c) {
			return true
		}
	}
	return false
}

// Collides runs the overlap test selected by the obstacle's shape.
func Collides(actor core.Rect, o Obstacle, tolerance float64) (bool, error) {
	switch o.Kind.Shape {
	case ShapeRect:
		return RectOverlap(actor, o.Bounds(), tolerance), nil
	case ShapeTriangle:
		return TriangleOverlap(actor, o.Bounds()), nil
	default:
		return false, fmt.Errorf("%w: %s on obstacle %q", ErrUnknownShape, o.Kind.Shape, o.Kind.Name)
	}
}
