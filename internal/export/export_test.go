package export

import (
	"bytes"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/tilecanvas/internal/engine"
	"github.com/piwi3910/tilecanvas/internal/geom"
	"github.com/piwi3910/tilecanvas/internal/model"
)

// buildTestScene returns a square, a circle clipping its right half, and
// a second square far from the circle, all on a 400x300 canvas.
func buildTestScene(t *testing.T) ([]model.Shape, engine.Plan, model.Settings) {
	t.Helper()

	settings := model.DefaultSettings()
	settings.CanvasWidth = 400
	settings.CanvasHeight = 300

	shapes := []model.Shape{
		model.NewShape(model.KindSquare, geom.Pt(10, 10), geom.Pt(110, 110)),
		model.NewShape(model.KindCircle, geom.Pt(90, 40), geom.Pt(130, 80)),
		model.NewShape(model.KindSquare, geom.Pt(300, 200), geom.Pt(250, 150)),
	}
	plan, err := engine.PlanScene(shapes, settings)
	require.NoError(t, err)
	require.False(t, plan.Empty())
	return shapes, plan, settings
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"out.pdf":           FormatPDF,
		"/tmp/OUT.DXF":      FormatDXF,
		"a/b/c.png":         FormatPNG,
		"cells.report.xlsx": FormatXLSX,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("drawing.svg")
	assert.Error(t, err)
	_, err = FormatFromPath("noext")
	assert.Error(t, err)
}

func TestCCWDegrees(t *testing.T) {
	// Clockwise on screen from 3 to 6 o'clock is -90..0 in a y-up frame
	from, to := ccwDegrees(0, math.Pi/2, false)
	assert.InDelta(t, -90.0, from, 1e-9)
	assert.InDelta(t, 0.0, to, 1e-9)

	// Counter-clockwise on screen covers the other three quarters
	from, to = ccwDegrees(0, math.Pi/2, true)
	assert.InDelta(t, 0.0, from, 1e-9)
	assert.InDelta(t, 270.0, to, 1e-9)
}

func TestExportPDF_CreatesFile(t *testing.T) {
	shapes, plan, settings := buildTestScene(t)
	path := filepath.Join(t.TempDir(), "canvas.pdf")

	require.NoError(t, ExportPDF(path, shapes, plan, settings))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF")
}

func TestExportPDF_EmptyScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	err := ExportPDF(path, nil, engine.Plan{}, model.DefaultSettings())
	assert.ErrorIs(t, err, ErrNothingToExport)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file should be written")
}

func TestExportDXF_WritesEntities(t *testing.T) {
	shapes, plan, settings := buildTestScene(t)
	path := filepath.Join(t.TempDir(), "canvas.dxf")

	require.NoError(t, ExportDXF(path, shapes, plan, settings))

	d, err := dxf.Open(path)
	require.NoError(t, err)

	var polylines, circles int
	for _, ent := range d.Entities() {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			polylines++
		case *entity.Circle:
			circles++
			// Circle center flipped into y-up space
			assert.InDelta(t, 110.0, e.Center[0], 1e-6)
			assert.InDelta(t, settings.CanvasHeight-60.0, e.Center[1], 1e-6)
		}
	}
	assert.Equal(t, 2+plan.Count(), polylines, "two squares plus one outline per cell")
	assert.Equal(t, 1, circles)
}

func TestExportDXF_EmptyScene(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "x.dxf"), nil, engine.Plan{}, model.DefaultSettings())
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportPNG_RendersPixels(t *testing.T) {
	shapes, plan, settings := buildTestScene(t)

	var buf bytes.Buffer
	require.NoError(t, ExportPNG(&buf, shapes, plan, settings))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	// Background stays white
	r, g, b, _ := img.At(200, 50).RGBA()
	assert.Equal(t, uint32(0xffff), r&g&b)

	// Center of the first cell is filled
	first := plan.Regions[0].Cells[0]
	r, g, b, _ = img.At(int(first.X+first.Size/2), int(first.Y+first.Size/2)).RGBA()
	assert.Equal(t, uint32(pngFill.R)*0x101, r)
	assert.Equal(t, uint32(pngFill.G)*0x101, g)
	assert.Equal(t, uint32(pngFill.B)*0x101, b)

	// Square outline is stroked; the edge pixel is half covered
	r, _, _, _ = img.At(60, 10).RGBA()
	assert.Less(t, r, uint32(0xffff))
}

func TestExportPNGFile(t *testing.T) {
	shapes, plan, settings := buildTestScene(t)
	path := filepath.Join(t.TempDir(), "canvas.png")

	require.NoError(t, ExportPNGFile(path, shapes, plan, settings))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportCellReport(t *testing.T) {
	shapes, plan, _ := buildTestScene(t)
	path := filepath.Join(t.TempDir(), "cells.xlsx")

	require.NoError(t, ExportCellReport(path, plan))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetCells)
	require.NoError(t, err)
	require.Len(t, rows, plan.Count()+1)
	assert.Equal(t, []string{"Region", "Square ID", "X", "Y", "Size"}, rows[0])

	first := plan.Regions[0].Cells[0]
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, shapes[0].ID, rows[1][1])
	assert.Equal(t, "20", rows[1][2])
	assert.Equal(t, 20.0, first.X)

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	require.Len(t, summary, len(plan.Regions)+2)
	assert.Equal(t, "Total", summary[len(summary)-1][0])
}

func TestExportCellReport_EmptyPlan(t *testing.T) {
	err := ExportCellReport(filepath.Join(t.TempDir(), "cells.xlsx"), engine.Plan{})
	assert.ErrorIs(t, err, ErrNoCells)
}

func TestExportFile_Dispatch(t *testing.T) {
	shapes, plan, settings := buildTestScene(t)
	dir := t.TempDir()

	for _, f := range Formats {
		path := filepath.Join(dir, "canvas."+string(f))
		require.NoError(t, ExportFile(path, shapes, plan, settings), f)
		_, err := os.Stat(path)
		assert.NoError(t, err, f)
	}

	assert.Error(t, ExportFile(filepath.Join(dir, "canvas.svg"), shapes, plan, settings))
}
