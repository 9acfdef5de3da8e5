package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/piwi3910/tilecanvas/internal/geom"
)

// ShapeKind is the kind of shape placed on the canvas.
type ShapeKind int

const (
	KindSquare ShapeKind = iota // Stroked rectangle, target of tiling
	KindCircle                  // Stroked circle, used as the exclusion mask
)

func (k ShapeKind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	default:
		return "square"
	}
}

// Toggle returns the other shape kind.
func (k ShapeKind) Toggle() ShapeKind {
	if k == KindCircle {
		return KindSquare
	}
	return KindCircle
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "square":
		*k = KindSquare
	case "circle":
		*k = KindCircle
	default:
		return fmt.Errorf("unknown shape kind %q", string(b))
	}
	return nil
}

// ErrZeroDrag is returned when a shape's start and end corners coincide.
var ErrZeroDrag = errors.New("shape start and end are the same point")

// Shape is a placed shape defined by the two opposite corners of the drag
// that created it. Start may be any corner; nothing is normalized.
type Shape struct {
	ID    string     `json:"id"`
	Kind  ShapeKind  `json:"kind"`
	Start geom.Point `json:"start"`
	End   geom.Point `json:"end"`
}

func NewShape(kind ShapeKind, start, end geom.Point) Shape {
	return Shape{
		ID:    uuid.New().String()[:8],
		Kind:  kind,
		Start: start,
		End:   end,
	}
}

// NewShapeChecked is NewShape but rejects a zero-length drag.
func NewShapeChecked(kind ShapeKind, start, end geom.Point) (Shape, error) {
	if start == end {
		return Shape{}, ErrZeroDrag
	}
	return NewShape(kind, start, end), nil
}

// Rect returns the shape's bounding rectangle, recomputed on each call.
func (s Shape) Rect() geom.Rect {
	return geom.BoundingRect(s.Start, s.End)
}

// Circle returns the circle derived from the shape's corners.
func (s Shape) Circle(mode geom.CenterMode) geom.Circle {
	return geom.CircleFromCornersMode(s.Start, s.End, mode)
}
