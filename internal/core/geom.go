// Package core provides fundamental types and utilities for the tile game.
// It contains no external dependencies (especially no terminal libraries) to
// keep game logic pure and testable.
package core

import "math"

// Vec2f is a 2D float vector used for positions and velocities.
// Terminal cells and pixels are integers, but physics wants fractions.
type Vec2f struct {
	X, Y float32
}

// Vec2 creates a vector from float components.
func Vec2(x, y float32) Vec2f {
	return Vec2f{X: x, Y: y}
}

// Vec2i creates a vector from integer components.
func Vec2i(x, y int) Vec2f {
	return Vec2f{X: float32(x), Y: float32(y)}
}

// Add returns v + o componentwise.
func (v Vec2f) Add(o Vec2f) Vec2f {
	return Vec2f{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o componentwise.
func (v Vec2f) Sub(o Vec2f) Vec2f {
	return Vec2f{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns v * o componentwise.
func (v Vec2f) Mul(o Vec2f) Vec2f {
	return Vec2f{X: v.X * o.X, Y: v.Y * o.Y}
}

// Div returns v / o componentwise. Division by zero follows IEEE-754.
func (v Vec2f) Div(o Vec2f) Vec2f {
	return Vec2f{X: v.X / o.X, Y: v.Y / o.Y}
}

// AddScalar adds s to both components.
func (v Vec2f) AddScalar(s float32) Vec2f {
	return Vec2f{X: v.X + s, Y: v.Y + s}
}

// SubScalar subtracts s from both components.
func (v Vec2f) SubScalar(s float32) Vec2f {
	return Vec2f{X: v.X - s, Y: v.Y - s}
}

// MulScalar scales both components by s.
func (v Vec2f) MulScalar(s float32) Vec2f {
	return Vec2f{X: v.X * s, Y: v.Y * s}
}

// DivScalar divides both components by s.
func (v Vec2f) DivScalar(s float32) Vec2f {
	return Vec2f{X: v.X / s, Y: v.Y / s}
}

// AddAssign is the in-place form of Add.
func (v *Vec2f) AddAssign(o Vec2f) {
	*v = v.Add(o)
}

// SubAssign is the in-place form of Sub.
func (v *Vec2f) SubAssign(o Vec2f) {
	*v = v.Sub(o)
}

// MulAssign is the in-place form of Mul.
func (v *Vec2f) MulAssign(o Vec2f) {
	*v = v.Mul(o)
}

// DivAssign is the in-place form of Div.
func (v *Vec2f) DivAssign(o Vec2f) {
	*v = v.Div(o)
}

// AddScalarAssign is the in-place form of AddScalar.
func (v *Vec2f) AddScalarAssign(s float32) {
	*v = v.AddScalar(s)
}

// SubScalarAssign is the in-place form of SubScalar.
func (v *Vec2f) SubScalarAssign(s float32) {
	*v = v.SubScalar(s)
}

// MulScalarAssign is the in-place form of MulScalar.
func (v *Vec2f) MulScalarAssign(s float32) {
	*v = v.MulScalar(s)
}

// DivScalarAssign is the in-place form of DivScalar.
func (v *Vec2f) DivScalarAssign(s float32) {
	*v = v.DivScalar(s)
}

// Len returns the Euclidean length of the vector.
func (v Vec2f) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Rect represents an axis-aligned rectangle in pixels.
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

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Within returns true if r lies entirely inside a w x h area anchored at the origin.
func (r Rect) Within(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= w && r.Bottom() <= h
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
