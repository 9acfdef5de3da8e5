package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/tilecanvas/internal/engine"
	"github.com/piwi3910/tilecanvas/internal/model"
	"github.com/piwi3910/tilecanvas/internal/render"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// PDFSurface draws canvas-space commands onto the current page of a PDF,
// scaled and offset to fit the page's drawing area.
type PDFSurface struct {
	pdf     *fpdf.Fpdf
	scale   float64
	offsetX float64
	offsetY float64
}

var _ render.Surface = (*PDFSurface)(nil)

// NewPDFSurface fits a canvas of the given logical size into the page area.
func NewPDFSurface(pdf *fpdf.Fpdf, canvasW, canvasH float64) *PDFSurface {
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/canvasW, drawHeight/canvasH)

	return &PDFSurface{
		pdf:     pdf,
		scale:   scale,
		offsetX: marginLeft + (drawWidth-canvasW*scale)/2,
		offsetY: drawAreaTop,
	}
}

func (s *PDFSurface) px(x float64) float64 { return s.offsetX + x*s.scale }
func (s *PDFSurface) py(y float64) float64 { return s.offsetY + y*s.scale }

func (s *PDFSurface) Clear(x, y, w, h float64) {
	s.pdf.SetFillColor(255, 255, 255)
	s.pdf.SetDrawColor(180, 180, 180)
	s.pdf.SetLineWidth(0.2)
	s.pdf.Rect(s.px(x), s.py(y), w*s.scale, h*s.scale, "FD")
}

func (s *PDFSurface) StrokeRect(x, y, w, h float64) {
	s.pdf.SetDrawColor(30, 30, 30)
	s.pdf.SetLineWidth(0.3)
	s.pdf.Rect(s.px(x), s.py(y), w*s.scale, h*s.scale, "D")
}

func (s *PDFSurface) FillRect(x, y, w, h float64) {
	s.pdf.SetFillColor(33, 150, 243)
	s.pdf.Rect(s.px(x), s.py(y), w*s.scale, h*s.scale, "F")
}

func (s *PDFSurface) Arc(cx, cy, r, start, end float64, ccw bool) {
	s.pdf.SetDrawColor(30, 30, 30)
	s.pdf.SetLineWidth(0.3)
	if render.IsFullCircle(start, end) {
		s.pdf.Circle(s.px(cx), s.py(cy), r*s.scale, "D")
		return
	}
	from, to := ccwDegrees(start, end, ccw)
	s.pdf.Arc(s.px(cx), s.py(cy), r*s.scale, r*s.scale, 0, from, to, "D")
}

// ExportPDF writes a single-page PDF with the scene and its tile cells.
func ExportPDF(path string, shapes []model.Shape, plan engine.Plan, settings model.Settings) error {
	if len(shapes) == 0 {
		return ErrNothingToExport
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderHeader(pdf, shapes, plan, settings)

	surface := NewPDFSurface(pdf, settings.CanvasWidth, settings.CanvasHeight)
	render.DrawAll(surface, shapes, plan, settings)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	return nil
}

// renderHeader draws the title and the shape/cell counts.
func renderHeader(pdf *fpdf.Fpdf, shapes []model.Shape, plan engine.Plan, settings model.Settings) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Canvas %.0f x %.0f px", settings.CanvasWidth, settings.CanvasHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	squares := len(model.FilterKind(shapes, model.KindSquare))
	circles := len(model.FilterKind(shapes, model.KindCircle))

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Squares: %d | Circles: %d | Tile cells: %d | Cell size: %d px | Pitch: %d px",
		squares, circles, plan.Count(), settings.CellSize, settings.Pitch)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")
}
