// Package render draws scenes and tile plans onto an abstract 2D surface.
package render

import (
	"math"

	"github.com/piwi3910/tilecanvas/internal/engine"
	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/model"
)

// Surface is a 2D drawing target in canvas-space coordinates.
type Surface interface {
	Clear(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	// Arc strokes a circular arc from start to end (radians).
	Arc(cx, cy, r, start, end float64, ccw bool)
}

// FullTurn is the sweep of a complete circle.
const FullTurn = 2 * math.Pi

// IsFullCircle reports whether an arc sweep closes on itself.
func IsFullCircle(start, end float64) bool {
	return math.Abs(end-start) >= FullTurn-1e-9
}

// DrawShape strokes a single shape.
func DrawShape(s Surface, shape model.Shape, mode geom.CenterMode) {
	switch shape.Kind {
	case model.KindCircle:
		c := shape.Circle(mode)
		s.Arc(c.X, c.Y, c.R, 0, FullTurn, false)
	default:
		r := shape.Rect()
		s.StrokeRect(r.X, r.Y, r.Width, r.Height)
	}
}

// DrawScene clears the canvas and redraws every stored shape, followed by
// the in-progress preview when one is given.
func DrawScene(s Surface, shapes []model.Shape, settings model.Settings, preview *model.Shape) {
	s.Clear(0, 0, settings.CanvasWidth, settings.CanvasHeight)
	for _, sh := range shapes {
		DrawShape(s, sh, settings.CenterMode)
	}
	if preview != nil {
		DrawShape(s, *preview, settings.CenterMode)
	}
}

// DrawPlan fills every planned cell.
func DrawPlan(s Surface, plan engine.Plan) {
	for c := range plan.All() {
		s.FillRect(c.X, c.Y, c.Size, c.Size)
	}
}

// DrawAll draws the scene and then its tile plan.
func DrawAll(s Surface, shapes []model.Shape, plan engine.Plan, settings model.Settings) {
	DrawScene(s, shapes, settings, nil)
	DrawPlan(s, plan)
}
