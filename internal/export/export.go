// Package export renders the canvas scene and its tile plan to files.
// Every backend implements render.Surface, so the same drawing code that
// feeds the on-screen canvas also produces PDF, DXF and PNG output.
package export

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/piwi3910/tilecanvas/internal/applog"
	"github.com/piwi3910/tilecanvas/internal/engine"
	"github.com/piwi3910/tilecanvas/internal/model"
)

// ErrNothingToExport is returned when the scene holds no shapes.
var ErrNothingToExport = errors.New("nothing to export: the canvas is empty")

// Format identifies an export file type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDXF  Format = "dxf"
	FormatPNG  Format = "png"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported export format in menu order.
var Formats = []Format{FormatPDF, FormatDXF, FormatPNG, FormatXLSX}

// FormatFromPath picks the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	for _, f := range Formats {
		if string(f) == ext {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format %q", filepath.Ext(path))
}

// ExportFile writes the scene and plan to path, choosing the backend by the
// file extension.
func ExportFile(path string, shapes []model.Shape, plan engine.Plan, settings model.Settings) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatPDF:
		err = ExportPDF(path, shapes, plan, settings)
	case FormatDXF:
		err = ExportDXF(path, shapes, plan, settings)
	case FormatPNG:
		err = ExportPNGFile(path, shapes, plan, settings)
	case FormatXLSX:
		err = ExportCellReport(path, plan)
	}
	if err != nil {
		applog.Logger().Warn("export failed", "format", format, "path", path, "err", err)
		return err
	}
	applog.Logger().Info("export complete", "format", format, "path", path,
		"shapes", len(shapes), "cells", plan.Count())
	return nil
}

// ccwDegrees converts a canvas arc into a counter-clockwise sweep in a y-up
// frame, in degrees. Canvas angles grow clockwise on screen, so flipping
// the y axis negates them.
func ccwDegrees(start, end float64, ccw bool) (from, to float64) {
	a0 := -start * 180 / math.Pi
	a1 := -end * 180 / math.Pi
	if !ccw {
		a0, a1 = a1, a0
	}
	for a1 < a0 {
		a1 += 360
	}
	return a0, a1
}
