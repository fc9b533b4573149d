// Package vec provides the signed (Vec2) and unsigned (Vec2u) integer
// vectors used as positions, deltas and dimensions across lvlgrid.
//
// Both types are small immutable values: every operation returns a new
// vector and never mutates its receiver.
//
// Conversions:
//
//   - Vec2.Unsign: signed → unsigned, ok=false when any component is negative.
//     Treat ok=false as an "off-grid" signal, not as an error.
//   - Vec2u.Sign:  unsigned → signed, always succeeds.
//
// Complexity: every operation is O(1).
package vec

import "fmt"

// Vec2 is a signed 2D integer vector: positions that may be negative,
// deltas and directions.
type Vec2 struct {
	X, Y int
}

// Vec2u is an unsigned 2D integer vector: valid grid coordinates and
// dimensions.
type Vec2u struct {
	X, Y uint
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales both components by k.
func (v Vec2) Mul(k int) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Neg flips the sign of both components.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Rem returns the component-wise Euclidean remainder of v by o.
// Result components always lie in [0, |o|), even for negative v, which
// makes Rem suitable for wrapping coordinates around a grid:
//
//	Vec2{-1, 5}.Rem(Vec2{3, 3}) == Vec2{2, 2}
//
// A zero component in o panics with an integer divide by zero.
func (v Vec2) Rem(o Vec2) Vec2 {
	return Vec2{X: remEuclid(v.X, o.X), Y: remEuclid(v.Y, o.Y)}
}

// remEuclid is Go's truncated % shifted into [0, |d|).
func remEuclid(a, d int) int {
	r := a % d
	if r < 0 {
		if d < 0 {
			r -= d
		} else {
			r += d
		}
	}
	return r
}

// Unsign converts v to a Vec2u. ok is false when either component is
// negative; the returned vector is then the zero value.
func (v Vec2) Unsign() (Vec2u, bool) {
	if v.X < 0 || v.Y < 0 {
		return Vec2u{}, false
	}
	return Vec2u{X: uint(v.X), Y: uint(v.Y)}, true
}

// IsZero reports whether v is the zero vector.
func (v Vec2) IsZero() bool {
	return v == Zero
}

// String formats v as "(x,y)".
func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Add returns u + o.
func (u Vec2u) Add(o Vec2u) Vec2u {
	return Vec2u{X: u.X + o.X, Y: u.Y + o.Y}
}

// Mul scales both components by k.
func (u Vec2u) Mul(k uint) Vec2u {
	return Vec2u{X: u.X * k, Y: u.Y * k}
}

// Sign widens u into a Vec2. It always succeeds.
func (u Vec2u) Sign() Vec2 {
	return Vec2{X: int(u.X), Y: int(u.Y)}
}

// String formats u as "(x,y)".
func (u Vec2u) String() string {
	return fmt.Sprintf("(%d,%d)", u.X, u.Y)
}
