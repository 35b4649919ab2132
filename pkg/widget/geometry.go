// Package widget defines the contract between widgets and the host runtime
// that lays them out, paints them and feeds them input.
//
// A widget tree is rebuilt by the application every frame. The host asks the
// root for a layout Node, wraps it in a Layout to obtain absolute positions,
// and then hands that same Layout to Draw and OnEvent so that painting and
// hit-testing always agree on geometry.
package widget

import "math"

// Point is a position in logical pixels.
type Point struct {
	X float32
	Y float32
}

// Vector is a displacement in logical pixels.
type Vector struct {
	X float32
	Y float32
}

// Add returns the point displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Size is a width and height in logical pixels.
type Size struct {
	Width  float32
	Height float32
}

var (
	// ZeroSize has no extent.
	ZeroSize = Size{}

	// InfiniteSize is unbounded on both axes.
	InfiniteSize = Size{Width: float32(math.Inf(1)), Height: float32(math.Inf(1))}
)

// Pad grows the size by the padding on every side.
func (s Size) Pad(p Padding) Size {
	return Size{Width: s.Width + p.Horizontal(), Height: s.Height + p.Vertical()}
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// Rectangle is an axis-aligned box anchored at its top-left corner.
type Rectangle struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// NewRectangle creates a rectangle from a position and a size.
func NewRectangle(p Point, s Size) Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rectangle) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.Width &&
		r.Y <= p.Y && p.Y <= r.Y+r.Height
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the extent of the rectangle.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Bottom returns the y coordinate of the lower edge.
func (r Rectangle) Bottom() float32 {
	return r.Y + r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float32 {
	return r.X + r.Width
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects reports whether the two rectangles overlap.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Intersection returns the overlap of the two rectangles. ok is false when
// they do not overlap, in which case the rectangle is empty.
func (r Rectangle) Intersection(o Rectangle) (out Rectangle, ok bool) {
	x, y := max(r.X, o.X), max(r.Y, o.Y)
	right, bottom := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rectangle{X: x, Y: y}, false
	}
	return Rectangle{X: x, Y: y, Width: right - x, Height: bottom - y}, true
}
