package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/tilecanvas/internal/engine"
	"github.com/piwi3910/tilecanvas/internal/model"
	"github.com/piwi3910/tilecanvas/internal/render"
)

// DXF layer names.
const (
	LayerShapes = "SHAPES"
	LayerTiles  = "TILES"
)

// DXFSurface writes drawing commands as DXF entities. DXF is y-up, so y is
// flipped against the canvas height. Clear is a no-op because the drawing
// is written once.
type DXFSurface struct {
	d       *drawing.Drawing
	canvasH float64
	err     error
}

var _ render.Surface = (*DXFSurface)(nil)

// NewDXFSurface creates a drawing with the shape and tile layers.
func NewDXFSurface(canvasH float64) (*DXFSurface, error) {
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(LayerTiles, color.Blue, dxf.DefaultLineType, false); err != nil {
		return nil, fmt.Errorf("adding layer %s: %w", LayerTiles, err)
	}
	if _, err := d.AddLayer(LayerShapes, color.Red, dxf.DefaultLineType, true); err != nil {
		return nil, fmt.Errorf("adding layer %s: %w", LayerShapes, err)
	}
	return &DXFSurface{d: d, canvasH: canvasH}, nil
}

// Err returns the first error hit while adding entities.
func (s *DXFSurface) Err() error { return s.err }

func (s *DXFSurface) fy(y float64) float64 { return s.canvasH - y }

func (s *DXFSurface) use(layer string) {
	if s.err != nil {
		return
	}
	if err := s.d.ChangeLayer(layer); err != nil {
		s.err = fmt.Errorf("switching to layer %s: %w", layer, err)
	}
}

func (s *DXFSurface) rect(x, y, w, h float64) {
	if s.err != nil {
		return
	}
	_, err := s.d.LwPolyline(true,
		[]float64{x, s.fy(y)},
		[]float64{x + w, s.fy(y)},
		[]float64{x + w, s.fy(y + h)},
		[]float64{x, s.fy(y + h)},
	)
	if err != nil {
		s.err = fmt.Errorf("adding rectangle: %w", err)
	}
}

func (s *DXFSurface) Clear(x, y, w, h float64) {}

func (s *DXFSurface) StrokeRect(x, y, w, h float64) {
	s.use(LayerShapes)
	s.rect(x, y, w, h)
}

// FillRect writes the cell outline on the tiles layer.
func (s *DXFSurface) FillRect(x, y, w, h float64) {
	s.use(LayerTiles)
	s.rect(x, y, w, h)
}

func (s *DXFSurface) Arc(cx, cy, r, start, end float64, ccw bool) {
	s.use(LayerShapes)
	if s.err != nil {
		return
	}
	var err error
	if render.IsFullCircle(start, end) {
		_, err = s.d.Circle(cx, s.fy(cy), 0, r)
	} else {
		from, to := ccwDegrees(start, end, ccw)
		_, err = s.d.Arc(cx, s.fy(cy), 0, r, from, to)
	}
	if err != nil {
		s.err = fmt.Errorf("adding arc: %w", err)
	}
}

// ExportDXF writes the scene and its tile cells to a DXF file.
func ExportDXF(path string, shapes []model.Shape, plan engine.Plan, settings model.Settings) error {
	if len(shapes) == 0 {
		return ErrNothingToExport
	}

	surface, err := NewDXFSurface(settings.CanvasHeight)
	if err != nil {
		return err
	}
	render.DrawAll(surface, shapes, plan, settings)
	if err := surface.Err(); err != nil {
		return err
	}

	if err := surface.d.SaveAs(path); err != nil {
		return fmt.Errorf("writing DXF %s: %w", path, err)
	}
	return nil
}
