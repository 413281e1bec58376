package rush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/geometry-rush/internal/core"
)

func TestRectOverlapTolerance(t *testing.T) {
	actor := core.NewRect(0, 0, 30, 30)

	tests := []struct {
		name     string
		obstacle core.Rect
		want     bool
	}{
		{"clear overlap", core.NewRect(20, 10, 20, 20), true},
		{"inside tolerance margin", core.NewRect(29, 0, 20, 30), false},
		{"touching shrunk edge", core.NewRect(28, 0, 20, 30), false},
		{"just past shrunk edge", core.NewRect(27.9, 0, 20, 30), true},
		{"below shrunk bottom", core.NewRect(0, 28, 30, 10), false},
		{"far away", core.NewRect(100, 100, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectOverlap(actor, tt.obstacle, 2))
		})
	}
}

func TestRectOverlapSymmetricWithoutTolerance(t *testing.T) {
	rects := []core.Rect{
		core.NewRect(0, 0, 10, 10),
		core.NewRect(10, 0, 10, 10), // shares an edge with the first
		core.NewRect(5, 5, 10, 10),
		core.NewRect(-3, 8, 4, 4),
	}
	for _, a := range rects {
		for _, b := range rects {
			assert.Equal(t, RectOverlap(a, b, 0), RectOverlap(b, a, 0), "%v vs %v", a, b)
		}
	}
	assert.False(t, RectOverlap(rects[0], rects[1], 0), "edge contact must not overlap")
}

func TestTriangleOverlap(t *testing.T) {
	box := core.NewRect(100, 100, 30, 30)

	tests := []struct {
		name  string
		actor core.Rect
		want  bool
	}{
		{"entirely above", core.NewRect(100, 60, 30, 30), false},
		{"entirely left", core.NewRect(60, 110, 30, 30), false},
		{"resting on box top beside apex", core.NewRect(80, 70, 30, 30), false},
		{"corner on apex", core.NewRect(115, 70, 30, 30), true},
		{"corner in upper left notch", core.NewRect(90, 90, 12, 12), false},
		{"corner on slanted edge", core.NewRect(110, 110, 10, 10), true},
		{"corner deep inside", core.NewRect(112, 120, 30, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TriangleOverlap(tt.actor, box))
		})
	}
}

func TestTriangleCentroidCollides(t *testing.T) {
	box := core.NewRect(40, 60, 30, 30)
	c := core.InscribedTriangle(box).Centroid()
	tiny := core.NewRect(c.X, c.Y, 0.5, 0.5)
	assert.True(t, TriangleOverlap(tiny, box))
}

func TestCollidesDispatch(t *testing.T) {
	actor := core.NewRect(100, 100, 30, 30)

	rect := Obstacle{Kind: Kind{Name: "crate", Width: 30, Height: 30, Shape: ShapeRect}, X: 105, Y: 90}
	hit, err := Collides(actor, rect, 2)
	require.NoError(t, err)
	assert.True(t, hit)

	// Top-left notch of the box overlaps the actor, the triangle does not.
	spike := Obstacle{Kind: Kind{Name: "spike", Width: 30, Height: 30, Shape: ShapeTriangle}, X: 125, Y: 90}
	hit, err = Collides(actor, spike, 2)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.True(t, RectOverlap(actor, spike.Bounds(), 2))
}

func TestCollidesUnknownShape(t *testing.T) {
	bad := Obstacle{Kind: Kind{Name: "ghost", Width: 10, Height: 10}, X: 0, Y: 0}
	hit, err := Collides(core.NewRect(0, 0, 10, 10), bad, 2)
	assert.False(t, hit)
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestParseShape(t *testing.T) {
	s, err := ParseShape("triangle")
	require.NoError(t, err)
	assert.Equal(t, ShapeTriangle, s)
	assert.Equal(t, "rect", ShapeRect.String())

	_, err = ParseShape("circle")
	assert.ErrorIs(t, err, ErrUnknownShape)
}
