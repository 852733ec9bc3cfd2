// Package core provides fundamental types and utilities for the froggit platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in screen cells.
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

// Vec is a point or displacement in world units.
type Vec struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Box is an axis-aligned bounding box in world units, used for collision
// detection. Min is the lower-left corner, Max the upper-right one.
type Box struct {
	Min, Max Vec
}

// NewBox creates a box from its lower-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{Min: Vec{X: x, Y: y}, Max: Vec{X: x + w, Y: y + h}}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec {
	return Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec) Box {
	return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Intersects returns true if the two boxes overlap with positive area.
// Boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box) bool {
	if b.Min.X >= other.Max.X || other.Min.X >= b.Max.X {
		return false
	}
	if b.Min.Y >= other.Max.Y || other.Min.Y >= b.Max.Y {
		return false
	}
	return true
}

// Contains returns true if p lies inside the box. The lower and left edges
// are inclusive, the upper and right edges exclusive, so adjacent boxes never
// both contain the same point.
func (b Box) Contains(p Vec) bool {
	return p.X >= b.Min.X && p.X < b.Max.X && p.Y >= b.Min.Y && p.Y < b.Max.Y
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
