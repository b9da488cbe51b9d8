package types

import "fmt"

// GridSize is the side length of the square play field, in cells.
const GridSize = 20

// Point is an integer cell address on the grid.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }
func (p Point) Scale(k int) Point { return Point{X: p.X * k, Y: p.Y * k} }

// MagSq returns the squared length of p treated as a vector.
func (p Point) MagSq() int { return p.X*p.X + p.Y*p.Y }

// Clamp restricts both components to [lo, hi].
func (p Point) Clamp(lo, hi int) Point {
	return Point{X: clamp(p.X, lo, hi), Y: clamp(p.Y, lo, hi)}
}

// InBounds reports whether p lies on the play field.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}

func (p Point) Vec() Vec { return Vec{X: float64(p.X), Y: float64(p.Y)} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Vec is a position in continuous grid space, used for interpolated drawing.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{X: v.X * k, Y: v.Y * k} }
func (v Vec) String() string { return fmt.Sprintf("(%.3f,%.3f)", v.X, v.Y) }

// Lerp blends from toward to by t: to*t + from*(1-t).
func Lerp(from, to Point, t float64) Vec {
	return to.Vec().Scale(t).Add(from.Vec().Scale(1 - t))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
