// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is an axis-aligned box in world units. Bounds may be infinite.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BoxAround returns the box of the given size centred on c.
func BoxAround(c Vec2, w, h float64) Box {
	return Box{
		MinX: c.X - w/2, MaxX: c.X + w/2,
		MinY: c.Y - h/2, MaxY: c.Y + h/2,
	}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ClosestPoint clamps p onto the box on each axis.
func (b Box) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(b.MinX, math.Min(p.X, b.MaxX)),
		Y: math.Max(b.MinY, math.Min(p.Y, b.MaxY)),
	}
}

// IntersectsSphere reports whether a sphere (circle) overlaps the box.
// A sphere whose distance to the box equals its radius is not intersecting.
func (b Box) IntersectsSphere(center Vec2, radius float64) bool {
	return b.ClosestPoint(center).Distance(center) < radius
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
