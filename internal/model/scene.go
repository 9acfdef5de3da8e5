package model

// Scene is the ordered collection of shapes on the canvas. Shapes are only
// ever appended; Reset clears the whole collection.
type Scene struct {
	shapes []Shape
}

func NewScene() *Scene {
	return &Scene{}
}

// Add appends a shape. Zero-length drags are rejected with ErrZeroDrag.
func (s *Scene) Add(shape Shape) error {
	if shape.Start == shape.End {
		return ErrZeroDrag
	}
	s.shapes = append(s.shapes, shape)
	return nil
}

// Reset removes every shape.
func (s *Scene) Reset() {
	s.shapes = nil
}

func (s *Scene) Len() int { return len(s.shapes) }

// Shapes returns a copy of the shapes in insertion order.
func (s *Scene) Shapes() []Shape {
	if s.shapes == nil {
		return nil
	}
	cp := make([]Shape, len(s.shapes))
	copy(cp, s.shapes)
	return cp
}

// Squares returns the square shapes in insertion order.
func (s *Scene) Squares() []Shape {
	return filterKind(s.shapes, KindSquare)
}

// Circles returns the circle shapes in insertion order.
func (s *Scene) Circles() []Shape {
	return filterKind(s.shapes, KindCircle)
}

// FilterKind returns the shapes of the given kind, preserving order.
func FilterKind(shapes []Shape, kind ShapeKind) []Shape {
	return filterKind(shapes, kind)
}

func filterKind(shapes []Shape, kind ShapeKind) []Shape {
	var result []Shape
	for _, sh := range shapes {
		if sh.Kind == kind {
			result = append(result, sh)
		}
	}
	return result
}
