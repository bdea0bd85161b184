// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in pixel space.
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

// Valid reports whether width and height are non-negative.
func (r Rect) Valid() bool {
	return r.W >= 0 && r.H >= 0
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps returns true if the two rectangles intersect with positive area.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// SetTopLeft moves the rectangle so its top-left corner is at (x, y).
func (r *Rect) SetTopLeft(x, y int) {
	r.X = x
	r.Y = y
}

// SetBottom moves the rectangle vertically so its bottom edge is at y.
func (r *Rect) SetBottom(y int) {
	r.Y = y - r.H
}

// SetRight moves the rectangle horizontally so its right edge is at x.
func (r *Rect) SetRight(x int) {
	r.X = x - r.W
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ResolveVertical lands a falling mover on top of an obstacle.
// When vy > 0 and the mover overlaps the obstacle, the mover's bottom edge is
// clamped to the obstacle's top edge, vy is zeroed and onGround is set.
// Returns whether a resolution happened.
func ResolveVertical(mover *Rect, vy *float64, onGround *bool, obstacle Rect) bool {
	if *vy <= 0 || !mover.Overlaps(obstacle) {
		return false
	}
	mover.SetBottom(obstacle.Y)
	*vy = 0
	*onGround = true
	return true
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
