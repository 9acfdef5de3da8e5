// Package engine plans the tiling of placed squares with small cells that
// avoid the scene's exclusion circle.
package engine

import (
	"errors"
	"iter"
	"slices"

	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/model"
)

// ErrMultipleCircles is returned under the reject policy when the scene
// holds more than one circle.
var ErrMultipleCircles = errors.New("tiling supports at most one exclusion circle")

// Cell is a single square tile placed inside a target region.
type Cell struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size"`
}

// Rect returns the cell as a rectangle.
func (c Cell) Rect() geom.Rect {
	return geom.Rect{X: c.X, Y: c.Y, Width: c.Size, Height: c.Size}
}

// Cells walks a grid over target and yields every cell of side cellSize that
// does not collide with ref. The walk starts one cell in from the origin on
// each axis, steps by pitch, and stops while a further cell would reach the
// far edge. Columns are the outer loop and rows the inner one.
//
// The returned sequence depends only on its arguments and may be iterated
// any number of times. Non-positive cellSize or pitch yields nothing.
func Cells(target geom.Rect, ref geom.Circle, cellSize, pitch int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		if cellSize <= 0 || pitch <= 0 {
			return
		}
		size := float64(cellSize)
		step := float64(pitch)
		endX := target.MaxX()
		endY := target.MaxY()

		for x := target.X + size; x+size < endX; x += step {
			for y := target.Y + size; y+size < endY; y += step {
				cell := Cell{X: x, Y: y, Size: size}
				if geom.CircleRectCollide(ref, cell.Rect()) {
					continue
				}
				if !yield(cell) {
					return
				}
			}
		}
	}
}

// Tile is the eager form of Cells.
func Tile(target geom.Rect, ref geom.Circle, cellSize, pitch int) []Cell {
	return slices.Collect(Cells(target, ref, cellSize, pitch))
}

// Region holds the cells planned for one square.
type Region struct {
	Square model.Shape `json:"square"`
	Cells  []Cell      `json:"cells"`
}

// Plan is the result of tiling a whole scene.
type Plan struct {
	Circle  *geom.Circle `json:"circle,omitempty"` // Exclusion mask; nil when tiling was a no-op
	Regions []Region     `json:"regions"`
}

// Count returns the total number of cells across all regions.
func (p Plan) Count() int {
	n := 0
	for _, r := range p.Regions {
		n += len(r.Cells)
	}
	return n
}

// Empty reports whether the plan holds no cells.
func (p Plan) Empty() bool {
	return p.Count() == 0
}

// All yields every planned cell in region order.
func (p Plan) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, r := range p.Regions {
			for _, c := range r.Cells {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Tiler plans tilings for a scene using fixed settings.
type Tiler struct {
	Settings model.Settings
}

func New(settings model.Settings) *Tiler {
	return &Tiler{Settings: settings}
}

// Plan tiles every square in shapes against the exclusion circle chosen by
// the circle policy. A scene without circles produces an empty plan and no
// error.
func (t *Tiler) Plan(shapes []model.Shape) (Plan, error) {
	if err := t.Settings.Validate(); err != nil {
		return Plan{}, err
	}

	mask, ok, err := exclusionCircle(shapes, t.Settings.CirclePolicy)
	if err != nil || !ok {
		return Plan{}, err
	}

	circle := mask.Circle(t.Settings.CenterMode)
	plan := Plan{Circle: &circle}
	for _, sq := range model.FilterKind(shapes, model.KindSquare) {
		plan.Regions = append(plan.Regions, Region{
			Square: sq,
			Cells:  Tile(sq.Rect(), circle, t.Settings.CellSize, t.Settings.Pitch),
		})
	}
	return plan, nil
}

// PlanScene is shorthand for New(settings).Plan(shapes).
func PlanScene(shapes []model.Shape, settings model.Settings) (Plan, error) {
	return New(settings).Plan(shapes)
}

// exclusionCircle picks the circle shape that masks the tiling.
func exclusionCircle(shapes []model.Shape, policy model.CirclePolicy) (model.Shape, bool, error) {
	circles := model.FilterKind(shapes, model.KindCircle)
	if len(circles) == 0 {
		return model.Shape{}, false, nil
	}

	switch policy {
	case model.CircleLast:
		return circles[len(circles)-1], true, nil
	case model.CircleReject:
		if len(circles) > 1 {
			return model.Shape{}, false, ErrMultipleCircles
		}
	}
	return circles[0], true, nil
}
