package widgets

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/render"
)

func TestCommandObjects_ScalesToWidget(t *testing.T) {
	cmds := []render.Command{
		{Op: render.OpClear, W: 800, H: 400},
		{Op: render.OpStrokeRect, X: 100, Y: 50, W: 200, H: 100},
		{Op: render.OpFillRect, X: 10, Y: 10, W: 10, H: 10},
		{Op: render.OpArc, X: 400, Y: 200, R: 50, Start: 0, End: 2 * math.Pi},
	}

	objs := CommandObjects(cmds, fyne.NewSize(400, 200), 800, 400)
	require.Len(t, objs, 4)

	bg := objs[0].(*canvas.Rectangle)
	assert.Equal(t, fyne.NewSize(400, 200), bg.Size())

	border := objs[1].(*canvas.Rectangle)
	assert.Equal(t, fyne.NewPos(50, 25), border.Position())
	assert.Equal(t, fyne.NewSize(100, 50), border.Size())
	assert.Equal(t, float32(1), border.StrokeWidth)

	cell := objs[2].(*canvas.Rectangle)
	assert.Equal(t, colorTile, cell.FillColor)

	circle := objs[3].(*canvas.Circle)
	assert.Equal(t, fyne.NewPos(175, 75), circle.Position())
	assert.Equal(t, fyne.NewSize(50, 50), circle.Size())
}

func TestCommandObjects_PartialArcBecomesLines(t *testing.T) {
	cmds := []render.Command{{Op: render.OpArc, X: 100, Y: 100, R: 40, Start: 0, End: math.Pi / 2}}

	objs := CommandObjects(cmds, fyne.NewSize(200, 200), 200, 200)
	require.NotEmpty(t, objs)

	first := objs[0].(*canvas.Line)
	last := objs[len(objs)-1].(*canvas.Line)
	assert.InDelta(t, 140.0, float64(first.Position1.X), 1e-3)
	assert.InDelta(t, 100.0, float64(first.Position1.Y), 1e-3)
	assert.InDelta(t, 100.0, float64(last.Position2.X), 1e-3)
	assert.InDelta(t, 140.0, float64(last.Position2.Y), 1e-3)
}

func TestCommandObjects_InvalidCanvas(t *testing.T) {
	assert.Nil(t, CommandObjects([]render.Command{{Op: render.OpClear}}, fyne.NewSize(10, 10), 0, 10))
}

func TestDrawCanvas_MapsPointerToCanvasSpace(t *testing.T) {
	test.NewTempApp(t)

	var pressed, released geom.Point
	var moves int
	dc := NewDrawCanvas(800, 400, nil)
	dc.OnPress = func(p geom.Point) { pressed = p }
	dc.OnMove = func(geom.Point) { moves++ }
	dc.OnRelease = func(p geom.Point) { released = p }
	dc.Resize(fyne.NewSize(400, 200))

	dc.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 50)},
		Button:     desktop.MouseButtonPrimary,
	})
	dc.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(150, 100)}})
	dc.MouseUp(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 100)},
		Button:     desktop.MouseButtonPrimary,
	})

	assert.Equal(t, geom.Pt(200, 100), pressed)
	assert.Equal(t, 1, moves)
	assert.Equal(t, geom.Pt(400, 200), released)
}

func TestDrawCanvas_IgnoresSecondaryButton(t *testing.T) {
	test.NewTempApp(t)

	called := false
	dc := NewDrawCanvas(800, 400, nil)
	dc.OnPress = func(geom.Point) { called = true }
	dc.Resize(fyne.NewSize(400, 200))

	dc.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	assert.False(t, called)
}

func TestDrawCanvas_RendersPaintedCommands(t *testing.T) {
	test.NewTempApp(t)

	dc := NewDrawCanvas(100, 100, func(s render.Surface) {
		s.Clear(0, 0, 100, 100)
		s.StrokeRect(10, 10, 20, 20)
	})
	dc.Resize(fyne.NewSize(100, 100))

	r := test.WidgetRenderer(dc)
	r.Refresh()
	assert.Len(t, r.Objects(), 2)
}
