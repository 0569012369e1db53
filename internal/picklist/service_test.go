package picklist

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sureshguna14/template-automation/internal/domain"
	"github.com/sureshguna14/template-automation/internal/tabular"
)

func writeTemplate(t *testing.T, headers []string, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.xlsx")

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetName("Sheet1", domain.DefaultSheetName))
	require.NoError(t, f.SetCellValue(domain.DefaultSheetName, "A1", "Template Banner"))
	for c, col := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, domain.TemplateHeaderRow)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(domain.DefaultSheetName, cell, col))
	}
	for r, row := range rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, domain.TemplateDataRow+r)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(domain.DefaultSheetName, name, cell))
		}
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestApplyOverwritesEveryDataRow(t *testing.T) {
	path := writeTemplate(t,
		[]string{"Temp ID", "SVMXC__Active__c", "HCS_Status__c"},
		[][]string{
			{"A1", "FALSE", "Open"},
			{"A2", "FALSE", "Closed"},
		})

	service := NewService(nil)
	ok := service.Apply(path, domain.DefaultSheetName, map[string]string{
		"SVMXC__Active__c": "TRUE",
		"HCS_Status__c":    "Draft",
	})
	require.True(t, ok)

	table, err := tabular.ReadSheet(path, domain.DefaultSheetName, domain.TemplateHeaderRow)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	for _, row := range table.Rows {
		require.Equal(t, "TRUE", row.Get("SVMXC__Active__c").Display())
		require.Equal(t, "Draft", row.Get("HCS_Status__c").Display())
	}
	require.Equal(t, "A1", table.Rows[0].Get("Temp ID").Display())
}

func TestApplySkipsUnknownColumnsAndEmptyValues(t *testing.T) {
	path := writeTemplate(t,
		[]string{"Temp ID", "HCS_Status__c"},
		[][]string{{"A1", "Open"}})

	service := NewService(nil)
	ok := service.Apply(path, domain.DefaultSheetName, map[string]string{
		"Unknown_Column": "x",
		"HCS_Status__c":  "",
	})
	require.True(t, ok)

	table, err := tabular.ReadSheet(path, domain.DefaultSheetName, domain.TemplateHeaderRow)
	require.NoError(t, err)
	require.Equal(t, "Open", table.Rows[0].Get("HCS_Status__c").Display())
}

func TestApplyMissingWorkbookFails(t *testing.T) {
	service := NewService(nil)
	require.False(t, service.Apply(filepath.Join(t.TempDir(), "absent.xlsx"), domain.DefaultSheetName, map[string]string{
		"HCS_Status__c": "Draft",
	}))
}

func TestApplyMissingSheetFails(t *testing.T) {
	path := writeTemplate(t, []string{"Temp ID"}, [][]string{{"A1"}})

	service := NewService(nil)
	require.False(t, service.Apply(path, "Missing", map[string]string{"Temp ID": "x"}))
}
