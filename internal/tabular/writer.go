package tabular

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sureshguna14/template-automation/internal/domain"
)

// OverlayRows writes records into an existing sheet starting at startRow
// (1-based), one cell per header column at that header's physical position,
// leaving the header and anything above it untouched. Blank cells are skipped
// rather than cleared.
func OverlayRows(path, sheet string, startRow int, headers []HeaderCell, rows []domain.Record) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	for r, row := range rows {
		for _, h := range headers {
			value := row.Get(h.Name)
			if value.IsBlank() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(h.Col, startRow+r)
			if err != nil {
				return fmt.Errorf("cell coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value.Cell()); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}
	return f.Save()
}

// ReplaceSheet deletes any existing sheet of the same name and writes the
// table with a first-row header in its place.
func ReplaceSheet(path, sheet string, table domain.Table) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := replaceSheet(f, sheet, table); err != nil {
		return err
	}
	return f.Save()
}

// ReplaceSheetAutoSized is ReplaceSheet plus content-width column sizing,
// used for the regenerated summary sheet.
func ReplaceSheetAutoSized(path, sheet string, table domain.Table) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := replaceSheet(f, sheet, table); err != nil {
		return err
	}
	if err := AutoSizeColumns(f, sheet); err != nil {
		return err
	}
	return f.Save()
}

func replaceSheet(f *excelize.File, sheet string, table domain.Table) error {
	if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
		if err := f.DeleteSheet(sheet); err != nil {
			return fmt.Errorf("delete sheet %s: %w", sheet, err)
		}
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	for c, col := range table.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("write header %s: %w", col, err)
		}
	}
	for r, row := range table.Rows {
		for c, col := range table.Columns {
			value := row.Get(col)
			if value.IsBlank() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("cell coordinates: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value.Cell()); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

// AutoSizeColumns widens each column of a sheet to fit its longest cell.
func AutoSizeColumns(f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	widths := map[int]int{}
	for _, row := range rows {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}
	for c, width := range widths {
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, name, name, float64(width+2)); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}
