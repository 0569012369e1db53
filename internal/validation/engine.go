// Package validation scans populated template data against the declarative
// per-template rules and writes the consolidated findings back into the
// workbook as a summary sheet.
package validation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/registry"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

const (
	duplicateIssueText    = "Duplicate entry Identified"
	defaultMismatchMarker = "does not match default"
)

// Engine validates populated templates.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a validation engine.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Request describes one validation run.
type Request struct {
	TemplatePath string
	SheetName    string
	// Templates selects the rule sets to apply; empty means every
	// rule-bearing template type.
	Templates []domain.TemplateType
	// Source, when present, is cross-checked against configured defaults.
	Source *domain.Table
}

// Validate scans the populated template and persists a Validation_Summary
// sheet when findings exist. A missing or unreadable workbook is a reported
// failure; a per-template scan fault fails the run but does not stop the
// remaining templates.
func (e *Engine) Validate(ctx context.Context, req Request) domain.ValidationSummary {
	runID := uuid.New()
	summary := domain.ValidationSummary{
		RunID:            runID,
		ValidationPassed: true,
		Issues:           []domain.Issue{},
	}

	sheet := req.SheetName
	if sheet == "" {
		sheet = domain.DefaultSheetName
	}

	logger := e.logger.With(zap.String("run_id", runID.String()), zap.String("sheet", sheet))

	templates := req.Templates
	if len(templates) == 0 {
		templates = registry.RuleBearingTypes()
	}
	templates = uniqueTypes(templates)

	if err := dropSummarySheet(req.TemplatePath); err != nil {
		logger.Error("open template workbook", zap.Error(err))
		summary.ValidationPassed = false
		return summary
	}

	for _, t := range templates {
		table, err := tabular.ReadSheet(req.TemplatePath, sheet, domain.TemplateHeaderRow)
		if err != nil {
			logger.Error("read template data", zap.String("template", string(t)), zap.Error(err))
			summary.ValidationPassed = false
			continue
		}
		if table.IsEmpty() {
			logger.Info("skipping validation, no data found", zap.String("template", string(t)))
			continue
		}
		summary.TotalRecords += len(table.Rows)

		issues, err := scanTemplate(t, table, req.Source)
		summary.Issues = append(summary.Issues, issues...)
		if err != nil {
			logger.Error("validation scan failed", zap.String("template", string(t)), zap.Error(err))
			summary.ValidationPassed = false
		}
	}

	if len(summary.Issues) == 0 {
		return summary
	}
	summary.ValidationPassed = false

	table, err := tabular.ReadSheet(req.TemplatePath, sheet, domain.TemplateHeaderRow)
	if err != nil {
		logger.Error("re-read template data for report", zap.Error(err))
		return summary
	}
	report, issueColumns := buildReport(table, summary.Issues)
	if err := writeSummarySheet(req.TemplatePath, report, issueColumns); err != nil {
		logger.Error("write summary sheet", zap.Error(err))
		return summary
	}

	for _, row := range report {
		if strings.Contains(row.Summary, duplicateIssueText) {
			summary.DuplicateTempIDCount++
		}
		if strings.Contains(row.Summary, defaultMismatchMarker) {
			summary.DefaultMismatchCount++
		}
	}

	logger.Info("validation completed",
		zap.Int("total_records", summary.TotalRecords),
		zap.Int("issues", len(summary.Issues)),
		zap.Int("report_rows", len(report)),
	)
	return summary
}

// dropSummarySheet removes a stale summary sheet so repeated runs never
// accumulate prior findings. It doubles as the workbook readability check.
func dropSummarySheet(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	idx, err := f.GetSheetIndex(domain.SummarySheetName)
	if err != nil || idx < 0 {
		return nil
	}
	if err := f.DeleteSheet(domain.SummarySheetName); err != nil {
		return fmt.Errorf("delete summary sheet: %w", err)
	}
	return f.Save()
}

// scanTemplate runs the rule checks for one template type. Issues found
// before a scan fault are kept alongside the error.
func scanTemplate(t domain.TemplateType, table domain.Table, source *domain.Table) ([]domain.Issue, error) {
	rules := registry.Rules(t)
	cfg := registry.Config(t)
	var issues []domain.Issue

	appendIssue := func(rowIdx int, tempID domain.Value, column, message string) {
		issues = append(issues, domain.Issue{
			TemplateName: string(t),
			RowIndex:     rowIdx,
			TempID:       tempID.Display(),
			ColumnName:   column,
			Message:      message,
		})
	}

	// Source values that deviate from the configured defaults.
	if source != nil && !source.IsEmpty() {
		for _, col := range sortedKeys(cfg.DefaultValues) {
			if !source.HasColumn(col) {
				continue
			}
			expected := cfg.DefaultValues[col]
			for idx, row := range source.Rows {
				v := row.Get(col)
				norm, ok := v.Normalize()
				if ok && norm != domain.NormalizeString(expected) {
					appendIssue(idx, rowTempID(*source, row), col,
						fmt.Sprintf("Source value '%s' does not match default '%s'", v.Display(), expected))
				}
			}
		}
	}

	// Duplicate keys: every member of a duplicate group is flagged.
	keyColumns := presentKeyColumns(rules.Unique, table)
	if len(keyColumns) > 0 {
		groups := make(map[string]int, len(table.Rows))
		keys := make([]string, len(table.Rows))
		for idx, row := range table.Rows {
			parts := make([]string, len(keyColumns))
			for i, col := range keyColumns {
				parts[i] = row.Get(col).Display()
			}
			keys[idx] = strings.Join(parts, "\x1f")
			groups[keys[idx]]++
		}
		for idx, row := range table.Rows {
			if groups[keys[idx]] > 1 {
				appendIssue(idx, rowTempID(table, row), keyColumns[0], duplicateIssueText)
			}
		}
	}

	// Required fields.
	for _, col := range rules.Required {
		if !table.HasColumn(col) {
			return issues, fmt.Errorf("required column %q not found", col)
		}
		for idx, row := range table.Rows {
			if row.Get(col).IsBlank() {
				appendIssue(idx, rowTempID(table, row), col, fmt.Sprintf("%s must not contain blank", col))
			}
		}
	}

	// Type checks.
	for _, col := range sortedKeys(rules.Types) {
		if !table.HasColumn(col) {
			return issues, fmt.Errorf("typed column %q not found", col)
		}
		expected := rules.Types[col]
		for idx, row := range table.Rows {
			v := row.Get(col)
			if !v.IsBlank() && !v.Matches(expected) {
				appendIssue(idx, rowTempID(table, row), col, fmt.Sprintf("%s should be %s", col, expected))
			}
		}
	}

	// Fixed-value checks.
	for _, col := range sortedKeys(rules.Values) {
		if !table.HasColumn(col) {
			return issues, fmt.Errorf("value-checked column %q not found", col)
		}
		expected := rules.Values[col]
		for idx, row := range table.Rows {
			v := row.Get(col)
			norm, ok := v.Normalize()
			if ok && norm != domain.NormalizeString(expected) {
				appendIssue(idx, rowTempID(table, row), col,
					fmt.Sprintf("%s value '%s' does not match default '%s'", col, v.Display(), expected))
			}
		}
	}

	// Blank identifiers.
	if table.HasColumn(domain.TempIDColumn) {
		for idx, row := range table.Rows {
			if row.Get(domain.TempIDColumn).IsBlank() {
				appendIssue(idx, rowTempID(table, row), domain.TempIDColumn, "Temp ID is blank")
			}
		}
	}

	return issues, nil
}

func rowTempID(table domain.Table, row domain.Record) domain.Value {
	if !table.HasColumn(domain.TempIDColumn) {
		return domain.StringValue("N/A")
	}
	return row.Get(domain.TempIDColumn)
}

func presentKeyColumns(unique []string, table domain.Table) []string {
	var out []string
	for _, col := range unique {
		if !table.HasColumn(col) {
			continue
		}
		for _, row := range table.Rows {
			if !row.Get(col).IsBlank() {
				out = append(out, col)
				break
			}
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func uniqueTypes(in []domain.TemplateType) []domain.TemplateType {
	seen := make(map[domain.TemplateType]struct{}, len(in))
	out := make([]domain.TemplateType, 0, len(in))
	for _, t := range in {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
