// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Y grows downwards, matching screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset shrinks the rectangle by margin on every side.
func (r Rect) Inset(margin float64) Rect {
	return Rect{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - margin*2,
		H: r.H - margin*2,
	}
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; rectangles that only share an
// edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Separated reports whether the rectangles are strictly apart on either axis.
// Touching edges are not separated.
func (r Rect) Separated(other Rect) bool {
	if r.Right() < other.X || r.X > other.Right() {
		return true
	}
	return r.Bottom() < other.Y || r.Y > other.Bottom()
}

// Corners returns the four corners: top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{
		{X: r.X, Y: r.Y},
		{X: r.Right(), Y: r.Y},
		{X: r.X, Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
}

// Triangle is a closed triangle given by its three vertices.
type Triangle struct {
	A, B, C Vec
}

// InscribedTriangle returns the triangle with its apex at the top-center of r
// and its base along the bottom edge of r.
func InscribedTriangle(r Rect) Triangle {
	return Triangle{
		A: Vec{X: r.X + r.W/2, Y: r.Y},
		B: Vec{X: r.X, Y: r.Bottom()},
		C: Vec{X: r.Right(), Y: r.Bottom()},
	}
}

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle) Centroid() Vec {
	return Vec{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
	}
}

// Contains reports whether p lies inside the triangle or on its boundary.
// Barycentric sign test; works for either vertex winding.
func (t Triangle) Contains(p Vec) bool {
	dx := p.X - t.C.X
	dy := p.Y - t.C.Y
	dx21 := t.C.X - t.B.X
	dy12 := t.B.Y - t.C.Y
	d := dy12*(t.A.X-t.C.X) + dx21*(t.A.Y-t.C.Y)
	s := dy12*dx + dx21*dy
	u := (t.C.Y-t.A.Y)*dx + (t.A.X-t.C.X)*dy

	if d < 0 {
		return s <= 0 && u <= 0 && s+u >= d
	}
	return s >= 0 && u >= 0 && s+u <= d
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
