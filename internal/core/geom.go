// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in logical units.
// It is used both for hitboxes and for sprite source/destination regions.
// Width and height must be non-negative; see Valid.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// WithSize returns a rectangle of the given size anchored at the origin.
// Usually combined with CenterAt.
func WithSize(w, h float64) Rect {
	return Rect{W: w, H: h}
}

// Valid reports whether the rectangle has non-negative, finite dimensions.
func (r Rect) Valid() bool {
	if math.IsNaN(r.W) || math.IsNaN(r.H) || math.IsInf(r.W, 0) || math.IsInf(r.H, 0) {
		return false
	}
	return r.W >= 0 && r.H >= 0
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether the two rectangles strictly intersect.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Contains reports whether every corner of inner lies within r (inclusive).
func (r Rect) Contains(inner Rect) bool {
	return inner.X >= r.X && inner.Right() <= r.Right() &&
		inner.Y >= r.Y && inner.Bottom() <= r.Bottom()
}

// MoveInside returns a copy of r shifted so that it lies fully inside bounds.
// The second result is false when r is wider or taller than bounds, in which
// case no such position exists.
func (r Rect) MoveInside(bounds Rect) (Rect, bool) {
	if r.W > bounds.W || r.H > bounds.H {
		return Rect{}, false
	}

	moved := r
	switch {
	case r.X < bounds.X:
		moved.X = bounds.X
	case r.Right() >= bounds.Right():
		moved.X = bounds.Right() - r.W
	}
	switch {
	case r.Y < bounds.Y:
		moved.Y = bounds.Y
	case r.Bottom() >= bounds.Bottom():
		moved.Y = bounds.Bottom() - r.H
	}
	return moved, true
}

// Center returns the centroid of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterAt returns a copy of r repositioned so its centroid is (x, y).
func (r Rect) CenterAt(x, y float64) Rect {
	return Rect{X: x - r.W/2, Y: y - r.H/2, W: r.W, H: r.H}
}

// Translate returns a copy of r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
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
