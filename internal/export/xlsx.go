package export

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/tilecanvas/internal/engine"
)

// Sheet names in the cell report workbook.
const (
	SheetCells   = "Cells"
	SheetSummary = "Summary"
)

// ErrNoCells is returned when a cell report is requested for an empty plan.
var ErrNoCells = errors.New("no tile cells to report: run Tile first")

// CellReportHeader is the header row of the Cells sheet.
var CellReportHeader = []interface{}{"Region", "Square ID", "X", "Y", "Size"}

// ExportCellReport writes one row per tile cell to an XLSX workbook, plus a
// per-region summary.
func ExportCellReport(path string, plan engine.Plan) error {
	if plan.Empty() {
		return ErrNoCells
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCells); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetCells, "A1", &CellReportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for i, region := range plan.Regions {
		for _, c := range region.Cells {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []interface{}{i + 1, region.Square.ID, c.X, c.Y, c.Size}
			if err := f.SetSheetRow(SheetCells, cell, &values); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}

	if err := writeSummary(f, plan); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing XLSX %s: %w", path, err)
	}
	return nil
}

func writeSummary(f *excelize.File, plan engine.Plan) error {
	if _, err := f.NewSheet(SheetSummary); err != nil {
		return fmt.Errorf("adding summary sheet: %w", err)
	}

	header := []interface{}{"Region", "Square ID", "Width", "Height", "Cells"}
	if err := f.SetSheetRow(SheetSummary, "A1", &header); err != nil {
		return err
	}
	for i, region := range plan.Regions {
		r := region.Square.Rect()
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{i + 1, region.Square.ID, r.Width, r.Height, len(region.Cells)}
		if err := f.SetSheetRow(SheetSummary, cell, &values); err != nil {
			return err
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(1, len(plan.Regions)+2)
	if err != nil {
		return err
	}
	total := []interface{}{"Total", "", "", "", plan.Count()}
	return f.SetSheetRow(SheetSummary, totalCell, &total)
}
