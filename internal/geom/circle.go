package geom

import (
	"fmt"
	"math"
)

// Circle is a circle given by its center and radius.
type Circle struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Center returns the circle's center point.
func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}

// Contains reports whether pt lies inside c or on its boundary.
func (c Circle) Contains(pt Point) bool {
	dx := pt.X - c.X
	dy := pt.Y - c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// CenterMode selects how a circle's center is derived from its drag corners.
type CenterMode int

const (
	// CenterLegacy uses |x1+x2|/2. It equals the midpoint only while the
	// coordinate sum is non-negative.
	CenterLegacy CenterMode = iota
	// CenterMidpoint uses the true midpoint (x1+x2)/2.
	CenterMidpoint
)

func (m CenterMode) String() string {
	switch m {
	case CenterMidpoint:
		return "midpoint"
	default:
		return "legacy"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m CenterMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CenterMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "legacy", "":
		*m = CenterLegacy
	case "midpoint":
		*m = CenterMidpoint
	default:
		return fmt.Errorf("unknown center mode %q", string(b))
	}
	return nil
}

// CircleFromCorners derives the circle inscribed in the diagonal p1-p2:
// center (|x1+x2|/2, |y1+y2|/2) and radius half the diagonal length.
func CircleFromCorners(p1, p2 Point) Circle {
	return CircleFromCornersMode(p1, p2, CenterLegacy)
}

// CircleFromCornersMode is CircleFromCorners with a selectable center formula.
func CircleFromCornersMode(p1, p2 Point, mode CenterMode) Circle {
	var cx, cy float64
	if mode == CenterMidpoint {
		cx = (p1.X + p2.X) / 2
		cy = (p1.Y + p2.Y) / 2
	} else {
		cx = math.Abs(p1.X+p2.X) / 2
		cy = math.Abs(p1.Y+p2.Y) / 2
	}
	return Circle{X: cx, Y: cy, R: Distance(p1, p2) / 2}
}

// CircleRectCollide reports whether c and r share at least one point.
// The circle center is clamped to the rectangle and the distance to that
// nearest point is compared against the radius, so containment in either
// direction counts as a collision.
func CircleRectCollide(c Circle, r Rect) bool {
	nearestX := Clamp(c.X, r.X, r.MaxX())
	nearestY := Clamp(c.Y, r.Y, r.MaxY())

	dx := c.X - nearestX
	dy := c.Y - nearestY

	return dx*dx+dy*dy <= c.R*c.R
}
