// Package geom provides the pure geometry used by the drawing canvas:
// distances, bounding rectangles derived from drag corners, circles derived
// from a diagonal, and circle/rectangle collision.
//
// All functions are total over finite inputs and never retain their arguments.
package geom

import "math"

// Point is a canvas-space coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return Distance(p, q)
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	xs := p2.X - p1.X
	ys := p2.Y - p1.Y
	return math.Sqrt(xs*xs + ys*ys)
}

// Rect is an axis-aligned rectangle with its origin at the top left corner
// in a y-down space.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoundingRect returns the rectangle spanned by two opposite corners.
// Width and height are never negative, and the corner order does not matter.
func BoundingRect(p1, p2 Point) Rect {
	return Rect{
		X:      math.Min(p1.X, p2.X),
		Y:      math.Min(p1.Y, p2.Y),
		Width:  math.Abs(p2.X - p1.X),
		Height: math.Abs(p2.Y - p1.Y),
	}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X && pt.X <= r.MaxX() && pt.Y >= r.Y && pt.Y <= r.MaxY()
}

// Clamp limits value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
