package widgets

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/render"
)

// Drawing colors.
var (
	colorBackground = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	colorShape      = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	colorTile       = color.NRGBA{R: 33, G: 150, B: 243, A: 230}
)

// arcSegmentLength is the approximate on-screen length of one segment used
// to approximate partial arcs.
const arcSegmentLength = 6

// DrawCanvas is an interactive drawing surface with a fixed logical canvas
// size. Pointer positions are rescaled into canvas space before they reach
// the callbacks, and drawing output is scaled back to the widget size.
type DrawCanvas struct {
	widget.BaseWidget

	canvasW float64
	canvasH float64
	paint   func(render.Surface)

	OnPress   func(geom.Point)
	OnMove    func(geom.Point)
	OnRelease func(geom.Point)

	last geom.Point
}

var (
	_ desktop.Mouseable = (*DrawCanvas)(nil)
	_ fyne.Draggable    = (*DrawCanvas)(nil)
)

// NewDrawCanvas creates a canvas of the given logical size. paint is called
// on every refresh to produce the drawing commands.
func NewDrawCanvas(canvasW, canvasH float64, paint func(render.Surface)) *DrawCanvas {
	dc := &DrawCanvas{
		canvasW: canvasW,
		canvasH: canvasH,
		paint:   paint,
	}
	dc.ExtendBaseWidget(dc)
	return dc
}

// SetCanvasSize changes the logical canvas size and redraws.
func (dc *DrawCanvas) SetCanvasSize(w, h float64) {
	dc.canvasW = w
	dc.canvasH = h
	dc.Refresh()
}

// toCanvas maps a widget-local position into canvas space.
func (dc *DrawCanvas) toCanvas(pos fyne.Position) geom.Point {
	size := dc.Size()
	box := geom.Rect{Width: float64(size.Width), Height: float64(size.Height)}
	return geom.MapToCanvas(geom.Pt(float64(pos.X), float64(pos.Y)), box, dc.canvasW, dc.canvasH)
}

func (dc *DrawCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	dc.last = dc.toCanvas(ev.Position)
	if dc.OnPress != nil {
		dc.OnPress(dc.last)
	}
}

func (dc *DrawCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	dc.last = dc.toCanvas(ev.Position)
	if dc.OnRelease != nil {
		dc.OnRelease(dc.last)
	}
}

func (dc *DrawCanvas) Dragged(ev *fyne.DragEvent) {
	dc.last = dc.toCanvas(ev.Position)
	if dc.OnMove != nil {
		dc.OnMove(dc.last)
	}
}

// DragEnd releases at the last dragged position. MouseUp usually fires
// first, in which case the release is already handled by the caller.
func (dc *DrawCanvas) DragEnd() {
	if dc.OnRelease != nil {
		dc.OnRelease(dc.last)
	}
}

func (dc *DrawCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &drawCanvasRenderer{dc: dc}
}

type drawCanvasRenderer struct {
	dc      *DrawCanvas
	objects []fyne.CanvasObject
}

func (r *drawCanvasRenderer) rebuild(size fyne.Size) {
	rec := &render.Recorder{}
	if r.dc.paint != nil {
		r.dc.paint(rec)
	}
	r.objects = CommandObjects(rec.Commands, size, r.dc.canvasW, r.dc.canvasH)
}

func (r *drawCanvasRenderer) Layout(size fyne.Size)        { r.rebuild(size) }
func (r *drawCanvasRenderer) Refresh()                     { r.rebuild(r.dc.Size()) }
func (r *drawCanvasRenderer) Destroy()                     {}
func (r *drawCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *drawCanvasRenderer) MinSize() fyne.Size           { return fyne.NewSize(400, 300) }

// CommandObjects converts recorded canvas-space commands into fyne canvas
// objects laid out in a widget of the given size.
func CommandObjects(cmds []render.Command, size fyne.Size, canvasW, canvasH float64) []fyne.CanvasObject {
	if canvasW <= 0 || canvasH <= 0 {
		return nil
	}
	sx := float32(float64(size.Width) / canvasW)
	sy := float32(float64(size.Height) / canvasH)

	pos := func(x, y float64) fyne.Position {
		return fyne.NewPos(float32(x)*sx, float32(y)*sy)
	}

	var objects []fyne.CanvasObject
	for _, c := range cmds {
		switch c.Op {
		case render.OpClear:
			bg := canvas.NewRectangle(colorBackground)
			bg.Move(pos(c.X, c.Y))
			bg.Resize(fyne.NewSize(float32(c.W)*sx, float32(c.H)*sy))
			objects = append(objects, bg)

		case render.OpStrokeRect:
			border := canvas.NewRectangle(color.Transparent)
			border.StrokeColor = colorShape
			border.StrokeWidth = 1
			border.Move(pos(c.X, c.Y))
			border.Resize(fyne.NewSize(float32(c.W)*sx, float32(c.H)*sy))
			objects = append(objects, border)

		case render.OpFillRect:
			cell := canvas.NewRectangle(colorTile)
			cell.Move(pos(c.X, c.Y))
			cell.Resize(fyne.NewSize(float32(c.W)*sx, float32(c.H)*sy))
			objects = append(objects, cell)

		case render.OpArc:
			if render.IsFullCircle(c.Start, c.End) {
				circle := canvas.NewCircle(color.Transparent)
				circle.StrokeColor = colorShape
				circle.StrokeWidth = 1
				circle.Move(pos(c.X-c.R, c.Y-c.R))
				circle.Resize(fyne.NewSize(float32(2*c.R)*sx, float32(2*c.R)*sy))
				objects = append(objects, circle)
				continue
			}
			objects = append(objects, arcLines(c, pos, sx)...)
		}
	}
	return objects
}

// arcLines approximates a partial arc with straight segments.
func arcLines(c render.Command, pos func(x, y float64) fyne.Position, scale float32) []fyne.CanvasObject {
	sweep := c.End - c.Start
	dir := 1.0
	if c.CCW {
		sweep = c.Start - c.End
		dir = -1.0
	}
	for sweep < 0 {
		sweep += render.FullTurn
	}

	n := int(math.Ceil(c.R * float64(scale) * sweep / arcSegmentLength))
	if n < 4 {
		n = 4
	}

	var lines []fyne.CanvasObject
	prev := pos(c.X+c.R*math.Cos(c.Start), c.Y+c.R*math.Sin(c.Start))
	for i := 1; i <= n; i++ {
		a := c.Start + dir*sweep*float64(i)/float64(n)
		next := pos(c.X+c.R*math.Cos(a), c.Y+c.R*math.Sin(a))
		line := canvas.NewLine(colorShape)
		line.StrokeWidth = 1
		line.Position1 = prev
		line.Position2 = next
		lines = append(lines, line)
		prev = next
	}
	return lines
}
