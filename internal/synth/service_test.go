package synth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

func writeTemplate(t *testing.T, headers []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.xlsx")

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	if err := f.SetSheetName("Sheet1", domain.DefaultSheetName); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if err := f.SetCellValue(domain.DefaultSheetName, "A1", "Template Banner"); err != nil {
		t.Fatalf("write banner: %v", err)
	}
	for c, col := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, domain.TemplateHeaderRow)
		if err != nil {
			t.Fatalf("cell coordinates: %v", err)
		}
		if err := f.SetCellValue(domain.DefaultSheetName, cell, col); err != nil {
			t.Fatalf("write header: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save template: %v", err)
	}
	return path
}

func TestUpdateTemplateWritesDataRegion(t *testing.T) {
	headers := []string{"Temp ID", "Agreement_ID__c", "SVMXC__Company__c", "SVMXC__Active__c"}
	path := writeTemplate(t, headers)

	source := sourceTable(
		[]string{"Temp ID", "UCM__Id__c"},
		map[string]string{"Temp ID": "A1", "UCM__Id__c": "U1"},
		map[string]string{"Temp ID": "", "UCM__Id__c": "U2"},
	)

	service := NewService(nil)
	result, err := service.UpdateTemplate(context.Background(), Request{
		TemplateType: domain.TemplateServiceContractDLT,
		TemplatePath: path,
		Source:       source,
	})
	if err != nil {
		t.Fatalf("UpdateTemplate returned error: %v", err)
	}
	if !result.Status || result.RecordCount != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}

	table, err := tabular.ReadSheet(path, domain.DefaultSheetName, domain.TemplateHeaderRow)
	if err != nil {
		t.Fatalf("read updated template: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(table.Rows))
	}
	if got := table.Rows[0].Get("Temp ID").Display(); got != "A1" {
		t.Fatalf("row 0 Temp ID = %q, want A1", got)
	}
	if got := table.Rows[0].Get("Agreement_ID__c").Display(); got != "A1" {
		t.Fatalf("row 0 Agreement_ID__c = %q, want A1", got)
	}
	if got := table.Rows[1].Get("Temp ID"); got.Kind != domain.KindNumber || got.Num != float64(domain.TempIDSeed) {
		t.Fatalf("row 1 Temp ID = %+v, want %d", got, domain.TempIDSeed)
	}
	if got := table.Rows[1].Get("SVMXC__Company__c").Display(); got != "U2" {
		t.Fatalf("row 1 SVMXC__Company__c = %q, want U2", got)
	}
	if got := table.Rows[0].Get("SVMXC__Active__c").Display(); got != "TRUE" {
		t.Fatalf("row 0 SVMXC__Active__c = %q, want TRUE", got)
	}
}

func TestUpdateTemplateKeepsAlignmentAcrossBlankHeaderCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.xlsx")

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", domain.DefaultSheetName); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if err := f.SetCellValue(domain.DefaultSheetName, "A1", "Template Banner"); err != nil {
		t.Fatalf("write banner: %v", err)
	}
	// Header row with a gap: B2 stays blank.
	if err := f.SetCellValue(domain.DefaultSheetName, "A2", "Temp ID"); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := f.SetCellValue(domain.DefaultSheetName, "C2", "SVMXC__Installed_Product__c"); err != nil {
		t.Fatalf("write header: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save template: %v", err)
	}
	_ = f.Close()

	source := sourceTable(
		[]string{"Asset#"},
		map[string]string{"Asset#": "A-1"},
	)

	service := NewService(nil)
	result, err := service.UpdateTemplate(context.Background(), Request{
		TemplateType: domain.TemplateCoveredProduct,
		TemplatePath: path,
		Source:       source,
	})
	if err != nil {
		t.Fatalf("UpdateTemplate returned error: %v", err)
	}
	if !result.Status {
		t.Fatalf("unexpected result: %+v", result)
	}

	updated, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open updated template: %v", err)
	}
	defer func() { _ = updated.Close() }()

	if got, _ := updated.GetCellValue(domain.DefaultSheetName, "B3"); got != "" {
		t.Fatalf("blank header column must stay empty, got %q", got)
	}
	if got, _ := updated.GetCellValue(domain.DefaultSheetName, "C3"); got != "A-1" {
		t.Fatalf("installed product must land under its header, got %q", got)
	}
	if got, _ := updated.GetCellValue(domain.DefaultSheetName, "A3"); got != "5001" {
		t.Fatalf("unexpected identifier cell %q", got)
	}
}

func TestUpdateTemplateNoQualifyingRecordsLeavesFileUntouched(t *testing.T) {
	headers := []string{"Temp ID", "Service_Offering__c"}
	path := writeTemplate(t, headers)

	source := sourceTable(
		[]string{"Need parts pricing"},
		map[string]string{"Need parts pricing": "no"},
	)

	service := NewService(nil)
	result, err := service.UpdateTemplate(context.Background(), Request{
		TemplateType: domain.TemplatePartsPricing,
		TemplatePath: path,
		Source:       source,
	})
	if err != nil {
		t.Fatalf("no qualifying records should not be an error, got %v", err)
	}
	if result.Status {
		t.Fatalf("expected failed result, got %+v", result)
	}

	table, err := tabular.ReadSheet(path, domain.DefaultSheetName, domain.TemplateHeaderRow)
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("data region should stay empty, got %d rows", len(table.Rows))
	}
}

func TestUpdateTemplateMissingNameColumnSurfaces(t *testing.T) {
	path := writeTemplate(t, []string{"Temp ID", "Name"})

	source := sourceTable(
		[]string{"Other"},
		map[string]string{"Other": "x"},
	)

	service := NewService(nil)
	result, err := service.UpdateTemplate(context.Background(), Request{
		TemplateType: domain.TemplateServicePlan,
		TemplatePath: path,
		Source:       source,
	})
	if err == nil {
		t.Fatalf("expected ErrMissingNameColumn to surface")
	}
	if result.Status {
		t.Fatalf("expected failed result, got %+v", result)
	}
}
