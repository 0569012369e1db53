// Package tabular wraps the raw file-format primitives: reading csv/xlsx
// uploads into tables, overlaying rows into a workbook sheet, replacing whole
// sheets, and cell-level edits.
package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sureshguna14/template-automation/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned when an uploaded file is not supported.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrSheetNotFound is returned when the named sheet is absent.
	ErrSheetNotFound = errors.New("sheet not found")

	byteOrderMark = []byte{0xEF, 0xBB, 0xBF}
)

// ReadSource reads a source-data upload, csv or xlsx, with the first row as
// header. For workbooks the first sheet is used.
func ReadSource(path string) (domain.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return readCSV(path)
	case ".xlsx":
		table, _, err := ReadWorkbookTable(path)
		return table, err
	default:
		return domain.Table{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// ReadWorkbookTable reads the first sheet of a workbook with a first-row
// header and reports the sheet name it read.
func ReadWorkbookTable(path string) (domain.Table, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, "", fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.Table{}, "", errors.New("workbook has no sheets")
	}
	table, err := sheetTable(f, sheets[0], 1)
	if err != nil {
		return domain.Table{}, "", err
	}
	return table, sheets[0], nil
}

// ReadSheet reads a named sheet using the given 1-based header row; rows above
// the header are skipped.
func ReadSheet(path, sheet string, headerRow int) (domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()
	return sheetTable(f, sheet, headerRow)
}

// HeaderCell is one named header cell and its physical 1-based column.
type HeaderCell struct {
	Name string
	Col  int
}

// ReadHeaderCells returns the template's column schema from its header row,
// keeping each header's physical column so writers skip the gaps left by
// blank header cells instead of shifting later columns.
func ReadHeaderCells(path, sheet string, headerRow int) ([]HeaderCell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if headerRow < 1 || headerRow > len(rows) {
		return nil, fmt.Errorf("header row %d out of range", headerRow)
	}

	var cells []HeaderCell
	for i, cell := range rows[headerRow-1] {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		cells = append(cells, HeaderCell{Name: name, Col: i + 1})
	}
	if len(cells) == 0 {
		return nil, errors.New("header row is empty")
	}
	return cells, nil
}

// HeaderNames projects the schema's column names in header order.
func HeaderNames(cells []HeaderCell) []string {
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = c.Name
	}
	return names
}

func sheetTable(f *excelize.File, sheet string, headerRow int) (domain.Table, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return domain.Table{}, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return buildTable(rows, headerRow)
}

func readCSV(path string) (domain.Table, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read csv: %w", err)
	}
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("parse csv: %w", err)
	}
	return buildTable(records, 1)
}

// buildTable shapes a raw cell grid into a Table. headerRow is 1-based; cells
// below blank or missing headers are dropped, fully-blank data rows removed.
func buildTable(records [][]string, headerRow int) (domain.Table, error) {
	if headerRow < 1 || headerRow > len(records) {
		return domain.Table{}, fmt.Errorf("header row %d out of range", headerRow)
	}

	raw := records[headerRow-1]
	columns := make([]string, 0, len(raw))
	positions := make([]int, 0, len(raw))
	for i, cell := range raw {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		columns = append(columns, name)
		positions = append(positions, i)
	}
	if len(columns) == 0 {
		return domain.Table{}, errors.New("header row is empty")
	}

	table := domain.Table{Columns: columns}
	for _, row := range records[headerRow:] {
		record := make(domain.Record, len(columns))
		for c, pos := range positions {
			if pos < len(row) {
				record[columns[c]] = domain.ParseValue(row[pos])
			}
		}
		table.Rows = append(table.Rows, record)
	}
	return table.DropBlankRows(), nil
}
