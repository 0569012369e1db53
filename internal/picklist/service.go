// Package picklist bulk-overwrites template columns with a single selected
// value via cell-level workbook edits.
package picklist

import (
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sureshguna14/template-automation/internal/domain"
)

// Service applies picklist selections to template files.
type Service struct {
	logger *zap.Logger
}

// NewService creates a picklist service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Apply overwrites every data-row cell of each named column with the given
// value. Empty values and columns absent from the header row are skipped.
// Returns false on any I/O or structural failure.
func (s *Service) Apply(templatePath, sheetName string, values map[string]string) bool {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		s.logger.Error("open template workbook", zap.Error(err))
		return false
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		s.logger.Error("read template sheet", zap.String("sheet", sheetName), zap.Error(err))
		return false
	}
	if len(rows) < domain.TemplateHeaderRow {
		s.logger.Error("template has no header row", zap.String("sheet", sheetName))
		return false
	}
	header := rows[domain.TemplateHeaderRow-1]
	lastRow := len(rows)

	columns := make([]string, 0, len(values))
	for col := range values {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	applied := 0
	for _, col := range columns {
		value := values[col]
		if value == "" {
			continue
		}
		colIdx := headerIndex(header, col)
		if colIdx < 0 {
			continue
		}
		for row := domain.TemplateDataRow; row <= lastRow; row++ {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, row)
			if err != nil {
				s.logger.Error("cell coordinates", zap.Error(err))
				return false
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				s.logger.Error("write cell", zap.String("cell", cell), zap.Error(err))
				return false
			}
		}
		applied++
	}

	if err := f.Save(); err != nil {
		s.logger.Error("save template workbook", zap.Error(err))
		return false
	}
	s.logger.Info("picklist values applied",
		zap.String("template", templatePath),
		zap.String("sheet", sheetName),
		zap.Int("columns", applied),
	)
	return true
}

func headerIndex(header []string, name string) int {
	for i, cell := range header {
		if cell == name {
			return i
		}
	}
	return -1
}
