package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/model"
)

// farCircle is a zero-radius mask well outside every test region.
var farCircle = geom.Circle{X: 1000, Y: 1000, R: 0}

func TestTile_GridWithoutCollisions(t *testing.T) {
	target := geom.Rect{X: 0, Y: 0, Width: 50, Height: 50}

	cells := Tile(target, farCircle, 10, 15)

	// Origins at 10 and 25; a cell at 40 would reach the far edge at 50
	require.Len(t, cells, 4)
	assert.Equal(t, []Cell{
		{X: 10, Y: 10, Size: 10},
		{X: 10, Y: 25, Size: 10},
		{X: 25, Y: 10, Size: 10},
		{X: 25, Y: 25, Size: 10},
	}, cells, "columns are the outer loop")
}

func TestTile_CountPerAxis(t *testing.T) {
	cases := []struct {
		extent  float64
		perAxis int
	}{
		{extent: 20, perAxis: 0},
		{extent: 21, perAxis: 1},
		{extent: 35, perAxis: 1},
		{extent: 36, perAxis: 2},
		{extent: 55, perAxis: 3},
		{extent: 100, perAxis: 6},
	}
	for _, tc := range cases {
		target := geom.Rect{X: 0, Y: 0, Width: tc.extent, Height: tc.extent}
		cells := Tile(target, farCircle, 10, 15)
		assert.Len(t, cells, tc.perAxis*tc.perAxis, "extent %.0f", tc.extent)
	}
}

func TestTile_OffsetOrigin(t *testing.T) {
	target := geom.Rect{X: 100, Y: 200, Width: 55, Height: 21}
	cells := Tile(target, farCircle, 10, 15)

	require.Len(t, cells, 3)
	for _, c := range cells {
		assert.Equal(t, 210.0, c.Y)
		assert.GreaterOrEqual(t, c.X, target.X+10)
		assert.Less(t, c.X+c.Size, target.MaxX())
	}
}

func TestTile_Deterministic(t *testing.T) {
	target := geom.Rect{X: 0, Y: 0, Width: 50, Height: 50}

	first := Tile(target, farCircle, 10, 15)
	second := Tile(target, farCircle, 10, 15)
	assert.Equal(t, first, second)

	seq := Cells(target, farCircle, 10, 15)
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq), "sequence should be restartable")
}

func TestTile_CircleCoveringRegion(t *testing.T) {
	target := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	cover := geom.Circle{X: 50, Y: 50, R: 100}

	assert.Empty(t, Tile(target, cover, 10, 15))
}

func TestTile_ExcludesCollidingCells(t *testing.T) {
	target := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	mask := geom.Circle{X: 50, Y: 50, R: 10}

	cells := Tile(target, mask, 10, 15)

	// 6x6 grid minus the four cells around the center
	assert.Len(t, cells, 32)
	for _, c := range cells {
		assert.False(t, geom.CircleRectCollide(mask, c.Rect()), "cell %+v overlaps the mask", c)
	}
	assert.NotContains(t, cells, Cell{X: 40, Y: 40, Size: 10})
	assert.Contains(t, cells, Cell{X: 25, Y: 40, Size: 10})
}

func TestTile_InvalidStep(t *testing.T) {
	target := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	assert.Empty(t, Tile(target, farCircle, 10, 0))
	assert.Empty(t, Tile(target, farCircle, 0, 15))
	assert.Empty(t, Tile(target, farCircle, -10, 15))
}

func TestCells_StopsEarly(t *testing.T) {
	target := geom.Rect{X: 0, Y: 0, Width: 100, Height: 100}
	n := 0
	for range Cells(target, farCircle, 10, 15) {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestPlan_NoCircleIsNoOp(t *testing.T) {
	shapes := []model.Shape{
		model.NewShape(model.KindSquare, geom.Pt(0, 0), geom.Pt(50, 50)),
	}

	plan, err := PlanScene(shapes, model.DefaultSettings())
	require.NoError(t, err)
	assert.Nil(t, plan.Circle)
	assert.Empty(t, plan.Regions)
	assert.True(t, plan.Empty())
}

func TestPlan_TilesEverySquare(t *testing.T) {
	shapes := []model.Shape{
		model.NewShape(model.KindSquare, geom.Pt(0, 0), geom.Pt(50, 50)),
		model.NewShape(model.KindCircle, geom.Pt(500, 500), geom.Pt(510, 510)),
		// Dragged from bottom-right, still tiles the same area
		model.NewShape(model.KindSquare, geom.Pt(150, 150), geom.Pt(100, 100)),
	}

	plan, err := PlanScene(shapes, model.DefaultSettings())
	require.NoError(t, err)
	require.NotNil(t, plan.Circle)
	require.Len(t, plan.Regions, 2)

	assert.Equal(t, shapes[0].ID, plan.Regions[0].Square.ID)
	assert.Equal(t, shapes[2].ID, plan.Regions[1].Square.ID)
	assert.Len(t, plan.Regions[0].Cells, 4)
	assert.Len(t, plan.Regions[1].Cells, 4)
	assert.Equal(t, 8, plan.Count())
	assert.Equal(t, 8, len(slices.Collect(plan.All())))
	assert.Equal(t, Cell{X: 110, Y: 110, Size: 10}, plan.Regions[1].Cells[0])
}

func TestPlan_CirclePolicies(t *testing.T) {
	square := model.NewShape(model.KindSquare, geom.Pt(0, 0), geom.Pt(50, 50))
	covering := model.NewShape(model.KindCircle, geom.Pt(-50, -50), geom.Pt(100, 100))
	far := model.NewShape(model.KindCircle, geom.Pt(500, 500), geom.Pt(510, 510))
	shapes := []model.Shape{square, covering, far}

	settings := model.DefaultSettings()

	settings.CirclePolicy = model.CircleFirst
	plan, err := PlanScene(shapes, settings)
	require.NoError(t, err)
	assert.Equal(t, 0, plan.Count(), "first circle covers the square")

	settings.CirclePolicy = model.CircleLast
	plan, err = PlanScene(shapes, settings)
	require.NoError(t, err)
	assert.Equal(t, 4, plan.Count(), "last circle is far away")

	settings.CirclePolicy = model.CircleReject
	_, err = PlanScene(shapes, settings)
	assert.ErrorIs(t, err, ErrMultipleCircles)

	// A single circle is fine under reject
	_, err = PlanScene([]model.Shape{square, far}, settings)
	assert.NoError(t, err)
}

func TestPlan_UsesCenterMode(t *testing.T) {
	square := model.NewShape(model.KindSquare, geom.Pt(-100, 0), geom.Pt(0, 100))
	circle := model.NewShape(model.KindCircle, geom.Pt(-60, 40), geom.Pt(-40, 60))
	shapes := []model.Shape{square, circle}

	settings := model.DefaultSettings()
	settings.CenterMode = geom.CenterMidpoint
	plan, err := PlanScene(shapes, settings)
	require.NoError(t, err)
	require.NotNil(t, plan.Circle)
	assert.InDelta(t, -50.0, plan.Circle.X, 1e-9)

	settings.CenterMode = geom.CenterLegacy
	plan, err = PlanScene(shapes, settings)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, plan.Circle.X, 1e-9, "legacy center is reflected to positive x")
}

func TestPlan_InvalidSettings(t *testing.T) {
	settings := model.DefaultSettings()
	settings.Pitch = 0

	_, err := New(settings).Plan(nil)
	assert.Error(t, err)
}
