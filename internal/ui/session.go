package ui

import (
	"github.com/piwi3910/tilecanvas/internal/applog"
	"github.com/piwi3910/tilecanvas/internal/engine"
	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/model"
	"github.com/piwi3910/tilecanvas/internal/render"
)

// Session holds the interactive drawing state: the selected shape kind, the
// placed shapes, the drag in progress and the last tiling result.
type Session struct {
	Settings model.Settings

	kind     model.ShapeKind
	scene    *model.Scene
	plan     engine.Plan
	dragging bool
	start    geom.Point
	current  geom.Point
}

func NewSession(settings model.Settings) *Session {
	return &Session{
		Settings: settings,
		kind:     model.KindSquare,
		scene:    model.NewScene(),
	}
}

// SetSettings replaces the tiling settings. The current plan was built from
// the old ones and is dropped.
func (s *Session) SetSettings(settings model.Settings) {
	s.Settings = settings
	s.plan = engine.Plan{}
}

// Kind returns the shape kind new drags will create.
func (s *Session) Kind() model.ShapeKind { return s.kind }

// SetKind selects the shape kind for new drags.
func (s *Session) SetKind(k model.ShapeKind) { s.kind = k }

// ToggleKind switches between square and circle.
func (s *Session) ToggleKind() model.ShapeKind {
	s.kind = s.kind.Toggle()
	return s.kind
}

// Shapes returns the placed shapes in insertion order.
func (s *Session) Shapes() []model.Shape { return s.scene.Shapes() }

// Plan returns the most recent tiling result.
func (s *Session) Plan() engine.Plan { return s.plan }

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool { return s.dragging }

// Press starts a drag at p.
func (s *Session) Press(p geom.Point) {
	s.dragging = true
	s.start = p
	s.current = p
}

// Move updates the drag end. It reports whether a preview should be redrawn.
func (s *Session) Move(p geom.Point) bool {
	if !s.dragging {
		return false
	}
	s.current = p
	return true
}

// Release ends the drag at p and stores the shape. A release at the press
// point places nothing. It reports whether a shape was added.
func (s *Session) Release(p geom.Point) bool {
	if !s.dragging {
		return false
	}
	s.dragging = false
	shape, err := model.NewShapeChecked(s.kind, s.start, p)
	if err != nil {
		return false
	}
	if err := s.scene.Add(shape); err != nil {
		return false
	}
	// A new shape makes the previous tiling stale.
	s.plan = engine.Plan{}
	applog.Logger().Debug("shape placed", "id", shape.ID, "kind", shape.Kind,
		"x", shape.Rect().X, "y", shape.Rect().Y)
	return true
}

// Cancel abandons the drag in progress.
func (s *Session) Cancel() {
	s.dragging = false
}

// Preview returns the shape being dragged, or nil when idle.
func (s *Session) Preview() *model.Shape {
	if !s.dragging || s.start == s.current {
		return nil
	}
	shape := model.Shape{Kind: s.kind, Start: s.start, End: s.current}
	return &shape
}

// Tile plans the tiling of every placed square. Without a circle the plan
// is empty; that is not an error.
func (s *Session) Tile() (engine.Plan, error) {
	plan, err := engine.PlanScene(s.scene.Shapes(), s.Settings)
	if err != nil {
		applog.Logger().Warn("tiling failed", "err", err)
		return engine.Plan{}, err
	}
	s.plan = plan
	applog.Logger().Info("tiled scene", "regions", len(plan.Regions), "cells", plan.Count())
	return plan, nil
}

// Reset removes every shape and the tiling result.
func (s *Session) Reset() {
	s.scene.Reset()
	s.plan = engine.Plan{}
	s.dragging = false
}

// Draw renders the scene, any preview and the current plan onto surface.
func (s *Session) Draw(surface render.Surface) {
	render.DrawScene(surface, s.scene.Shapes(), s.Settings, s.Preview())
	render.DrawPlan(surface, s.plan)
}

// DemoSession returns a tiled session with two squares sharing one circle,
// scaled to the canvas size.
func DemoSession(settings model.Settings) (*Session, error) {
	s := NewSession(settings)
	w, h := settings.CanvasWidth, settings.CanvasHeight
	place := func(kind model.ShapeKind, x1, y1, x2, y2 float64) {
		s.SetKind(kind)
		s.Press(geom.Pt(x1*w, y1*h))
		s.Release(geom.Pt(x2*w, y2*h))
	}
	place(model.KindSquare, 0.05, 0.1, 0.45, 0.9)
	place(model.KindSquare, 0.55, 0.1, 0.95, 0.9)
	place(model.KindCircle, 0.4, 0.4, 0.6, 0.6)
	s.SetKind(model.KindSquare)

	if _, err := s.Tile(); err != nil {
		return nil, err
	}
	return s, nil
}
