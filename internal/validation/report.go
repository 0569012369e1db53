package validation

import (
	"strings"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

const (
	rowIndexHeader   = "Row_Index"
	summaryHeader    = "Validation_Summary"
	validationPrefix = "Validation_"
)

// ReportRow is one template row's aggregated findings.
type ReportRow struct {
	RowIndex int
	TempID   domain.Value
	// Columns maps each issue-bearing column to its concatenated distinct
	// messages for this row; empty string when the column is clean here.
	Columns map[string]string
	Summary string
}

// buildReport groups issues by row and column. Only rows with at least one
// finding are kept. Rows whose Temp ID is blank are dropped from the persisted
// report even when they carry findings, so identifier-blank findings never
// reach the sheet; they still fail the run.
func buildReport(table domain.Table, issues []domain.Issue) ([]ReportRow, []string) {
	var issueColumns []string
	seenColumn := map[string]struct{}{}
	messages := map[int]map[string][]string{}

	for _, issue := range issues {
		if _, ok := seenColumn[issue.ColumnName]; !ok {
			seenColumn[issue.ColumnName] = struct{}{}
			issueColumns = append(issueColumns, issue.ColumnName)
		}
		byColumn, ok := messages[issue.RowIndex]
		if !ok {
			byColumn = map[string][]string{}
			messages[issue.RowIndex] = byColumn
		}
		if !containsString(byColumn[issue.ColumnName], issue.Message) {
			byColumn[issue.ColumnName] = append(byColumn[issue.ColumnName], issue.Message)
		}
	}

	hasTempID := table.HasColumn(domain.TempIDColumn)
	var report []ReportRow
	for idx, row := range table.Rows {
		columns := make(map[string]string, len(issueColumns))
		var parts []string
		for _, col := range issueColumns {
			joined := strings.Join(messages[idx][col], "; ")
			columns[col] = joined
			if joined != "" {
				parts = append(parts, joined)
			}
		}
		if len(parts) == 0 {
			continue
		}
		tempID := row.Get(domain.TempIDColumn)
		if hasTempID && tempID.IsBlank() {
			continue
		}
		report = append(report, ReportRow{
			RowIndex: idx,
			TempID:   tempID,
			Columns:  columns,
			Summary:  strings.Join(parts, "; "),
		})
	}
	return report, issueColumns
}

// writeSummarySheet replaces the summary sheet with the report and sizes its
// columns to the content.
func writeSummarySheet(path string, report []ReportRow, issueColumns []string) error {
	columns := []string{rowIndexHeader, domain.TempIDColumn}
	for _, col := range issueColumns {
		columns = append(columns, validationPrefix+col)
	}
	columns = append(columns, summaryHeader)

	table := domain.Table{Columns: columns}
	for _, row := range report {
		record := domain.Record{
			rowIndexHeader:      domain.NumberValue(float64(row.RowIndex)),
			domain.TempIDColumn: row.TempID,
			summaryHeader:       domain.StringValue(row.Summary),
		}
		for _, col := range issueColumns {
			if msg := row.Columns[col]; msg != "" {
				record[validationPrefix+col] = domain.StringValue(msg)
			}
		}
		table.Rows = append(table.Rows, record)
	}

	return tabular.ReplaceSheetAutoSized(path, domain.SummarySheetName, table)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
