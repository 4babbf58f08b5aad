package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec2 is a world-space point or direction. The y axis points up.
type Vec2 = cp.Vector

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Direction returns v scaled to unit length, or the zero vector when v is zero.
func Direction(v Vec2) Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Mult(1 / l)
}

// AngleFromUp returns the signed clockwise angle in radians between (0, 1)
// and v, in (-pi, pi].
func AngleFromUp(v Vec2) float64 {
	return math.Atan2(v.X, v.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Vec2
	Max Vec2
}

// NewRect builds a rectangle from two opposite corners in any order.
func NewRect(a, b Vec2) Rect {
	return Rect{
		Min: V(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		Max: V(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec2 {
	return V((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Corners returns the corners counter-clockwise starting at Min.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		r.Min,
		V(r.Max.X, r.Min.Y),
		r.Max,
		V(r.Min.X, r.Max.Y),
	}
}
